package repository

import (
	"time"

	"github.com/tu-usuario/depot-api/internal/domain/entity"
)

// SettlementRepository define el puerto para el registro de abonos (append-only).
type SettlementRepository interface {
	Create(settlement *entity.Settlement) error
	// ListByDateRange lista abonos con from <= date < to, más recientes primero.
	ListByDateRange(from, to time.Time) ([]*entity.Settlement, error)
	DeleteAll() error
}
