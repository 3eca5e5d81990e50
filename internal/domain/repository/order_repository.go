package repository

import "github.com/tu-usuario/depot-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	// Create persiste cabecera y líneas.
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// GetForUpdate bloquea la cabecera del pedido (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(id string) (*entity.Order, error)
	// List lista pedidos; customerID vacío lista todos.
	List(customerID string, limit, offset int) ([]*entity.Order, error)
	// Update reemplaza cabecera y líneas completas del pedido.
	Update(order *entity.Order) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}
