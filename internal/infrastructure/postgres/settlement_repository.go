package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/depot-api/internal/domain"
	"github.com/tu-usuario/depot-api/internal/domain/entity"
	"github.com/tu-usuario/depot-api/internal/domain/repository"
)

var _ repository.SettlementRepository = (*SettlementRepo)(nil)

// SettlementRepo implementación del puerto SettlementRepository sobre PostgreSQL (usable con pool o tx).
// El registro es append-only: solo inserción, listado por rango y purga total.
type SettlementRepo struct {
	q Querier
}

// NewSettlementRepository construye el adaptador de persistencia para abonos. Pasar pool o tx (Querier).
func NewSettlementRepository(q Querier) *SettlementRepo {
	return &SettlementRepo{q: q}
}

// Create persiste un abono con el nombre y username del cliente al momento del pago.
func (r *SettlementRepo) Create(settlement *entity.Settlement) error {
	query := `
		INSERT INTO settlements (id, customer_id, name, username, amount, date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		settlement.ID, settlement.CustomerID, settlement.Name, settlement.Username,
		settlement.Amount, settlement.Date,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert settlement: %w", err)
	}
	return nil
}

// ListByDateRange lista abonos con from <= date < to, más recientes primero.
func (r *SettlementRepo) ListByDateRange(from, to time.Time) ([]*entity.Settlement, error) {
	query := `
		SELECT id, customer_id, name, username, amount, date
		FROM settlements WHERE date >= $1 AND date < $2 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list settlements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Settlement
	for rows.Next() {
		var s entity.Settlement
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.Name, &s.Username, &s.Amount, &s.Date); err != nil {
			return nil, fmt.Errorf("scan settlement: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// DeleteAll vacía el registro de abonos (cierre de caja).
func (r *SettlementRepo) DeleteAll() error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM settlements`)
	if err != nil {
		return fmt.Errorf("purge settlements: %w", err)
	}
	return nil
}
