package ledger

import (
	"context"

	"github.com/tu-usuario/depot-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando los
// repositorios de cliente y abonos atados a esa tx. Garantiza que la reducción
// de deuda y su registro de auditoría se confirmen juntos.
type TxRunner interface {
	RunLedger(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		settlementRepo repository.SettlementRepository,
	) error) error
}
