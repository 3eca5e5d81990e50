package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de precio del cliente. Determinan qué precio del producto aplica por defecto.
const (
	TierRetail         = "retail"
	TierWholesale      = "wholesale"
	TierSuperWholesale = "superwholesale"
)

// ValidTier indica si el valor es un nivel de precio conocido.
func ValidTier(tier string) bool {
	switch tier {
	case TierRetail, TierWholesale, TierSuperWholesale:
		return true
	}
	return false
}

// Customer representa un cliente del depósito mayorista.
// TotalDebt es el saldo corriente que el cliente debe al depósito: sube con
// pedidos pagados de menos y baja con abonos (settlements) y sobrepagos,
// ambos con piso en 0.
type Customer struct {
	ID           string
	Username     string
	Name         string
	Phone        string
	Tier         string
	TotalDebt    decimal.Decimal
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
