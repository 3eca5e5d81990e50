package orders

import (
	"context"

	"github.com/tu-usuario/depot-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que pedido, deuda del cliente y
// stock de productos se confirmen o reviertan como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
	) error) error
}
