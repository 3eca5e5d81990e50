package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement registro inmutable de un abono a la deuda de un cliente.
// Name y Username son snapshot al momento del abono: si el cliente se elimina
// o cambia de nombre, el historial conserva los datos originales.
type Settlement struct {
	ID         string
	CustomerID string
	Name       string
	Username   string
	Amount     decimal.Decimal
	Date       time.Time
}
