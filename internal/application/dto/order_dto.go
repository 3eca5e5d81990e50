package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest línea del pedido (producto, cantidad, precio unitario).
// UnitPrice es opcional: si va nil, el motor resuelve el precio del nivel del
// cliente; si viene, se toma como precio personalizado del operador.
type OrderLineRequest struct {
	ProductID string           `json:"product_id"`
	Quantity  int              `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Lines      []OrderLineRequest `json:"lines"`
	PaidAmount decimal.Decimal    `json:"paid_amount"`
}

// UpdateOrderRequest body para PUT /api/orders/:id. Reemplaza cliente, líneas y pago.
type UpdateOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Lines      []OrderLineRequest `json:"lines"`
	PaidAmount decimal.Decimal    `json:"paid_amount"`
}

// UpdateOrderStatusRequest body para PATCH /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderLineResponse línea del pedido en respuestas.
type OrderLineResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse pedido con líneas y, si aplica, avisos de sobreventa.
// Backorders lista los productos cuyo stock quedó en 0 con demanda por encima
// del disponible: la venta no se bloquea, solo se avisa.
type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Lines      []OrderLineResponse `json:"lines"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	PaidAmount decimal.Decimal     `json:"paid_amount"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	Backorders []BackorderWarning  `json:"backorders,omitempty"`
}

// BackorderWarning aviso de que la cantidad pedida superó el stock disponible.
type BackorderWarning struct {
	ProductID string `json:"product_id"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}
