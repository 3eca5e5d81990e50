package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del pedido. El único tránsito permitido es pending → confirmed.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
)

// ValidOrderStatus indica si el valor es un estado conocido.
func ValidOrderStatus(status string) bool {
	return status == OrderStatusPending || status == OrderStatusConfirmed
}

// OrderLine una línea del pedido. UnitPrice queda capturado al momento de guardar:
// cambios posteriores de precios del catálogo no alteran pedidos históricos.
type OrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal cantidad por precio unitario.
func (l OrderLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order representa un pedido de un cliente.
// TotalPrice es derivado de las líneas y lo recalcula siempre el motor de
// pedidos al guardar; nunca se acepta del cliente.
type Order struct {
	ID         string
	CustomerID string
	Lines      []OrderLine
	TotalPrice decimal.Decimal
	PaidAmount decimal.Decimal
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
