package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterCustomerRequest body para POST /api/auth/register.
type RegisterCustomerRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Tier     string `json:"tier,omitempty"`
	Password string `json:"password"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id. Campos nil no se tocan.
type UpdateCustomerRequest struct {
	Username *string `json:"username,omitempty"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Tier     *string `json:"tier,omitempty"`
	Password *string `json:"password,omitempty"`
}

// CustomerResponse cliente en respuestas (sin hash de password).
type CustomerResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone,omitempty"`
	Tier      string          `json:"tier"`
	TotalDebt decimal.Decimal `json:"total_debt"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// LoginRequest body para POST /api/auth/login y /api/auth/admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token JWT más los datos del cliente autenticado.
type LoginResponse struct {
	Token    string            `json:"token"`
	Customer *CustomerResponse `json:"customer,omitempty"`
	Admin    *AdminResponse    `json:"admin,omitempty"`
}

// AdminResponse administrador en respuestas.
type AdminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// CreateAdminRequest body para POST /api/admins (solo admin).
type CreateAdminRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// SettleDebtRequest body para POST /api/customers/:id/settle.
type SettleDebtRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// SettleDebtResponse saldo resultante tras el abono.
type SettleDebtResponse struct {
	CustomerID string          `json:"customer_id"`
	TotalDebt  decimal.Decimal `json:"total_debt"`
}

// SettlementResponse abono registrado.
type SettlementResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Name       string          `json:"name"`
	Username   string          `json:"username"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
}
