package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/depot-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// UpdateDebt solo debe invocarse dentro de la transacción que también
// modifica pedidos y stock; GetForUpdate es el paso previo obligatorio.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByUsername(username string) (*entity.Customer, error)
	// GetForUpdate bloquea la fila del cliente (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	UpdateDebt(id string, debt decimal.Decimal) error
	Delete(id string) error
}
