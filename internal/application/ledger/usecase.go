package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/depot-api/internal/application/dto"
	"github.com/tu-usuario/depot-api/internal/domain"
	"github.com/tu-usuario/depot-api/internal/domain/entity"
	"github.com/tu-usuario/depot-api/internal/domain/repository"
)

// SettlementUseCase registra abonos a la deuda de clientes y consulta el
// historial. El abono y la actualización del saldo corren en una transacción.
type SettlementUseCase struct {
	txRunner       TxRunner
	settlementRepo repository.SettlementRepository
}

// NewSettlementUseCase construye el caso de uso.
func NewSettlementUseCase(txRunner TxRunner, settlementRepo repository.SettlementRepository) *SettlementUseCase {
	return &SettlementUseCase{txRunner: txRunner, settlementRepo: settlementRepo}
}

// Settle abona `amount` a la deuda del cliente: rechaza montos no positivos o
// mayores que la deuda actual, persiste el saldo con piso en 0 y deja el
// registro inmutable del abono con snapshot de nombre y username.
func (uc *SettlementUseCase) Settle(ctx context.Context, customerID string, amount decimal.Decimal) (*dto.SettleDebtResponse, error) {
	if customerID == "" || !amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.SettleDebtResponse
	err := uc.txRunner.RunLedger(ctx, func(
		customerRepo repository.CustomerRepository,
		settlementRepo repository.SettlementRepository,
	) error {
		customer, err := customerRepo.GetForUpdate(customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		if amount.GreaterThan(customer.TotalDebt) {
			return domain.ErrInvalidInput
		}

		debt := customer.TotalDebt.Sub(amount)
		if debt.LessThan(decimal.Zero) {
			debt = decimal.Zero
		}
		if err := customerRepo.UpdateDebt(customer.ID, debt); err != nil {
			return err
		}
		settlement := &entity.Settlement{
			ID:         uuid.New().String(),
			CustomerID: customer.ID,
			Name:       customer.Name,
			Username:   customer.Username,
			Amount:     amount,
			Date:       time.Now(),
		}
		if err := settlementRepo.Create(settlement); err != nil {
			return err
		}
		out = &dto.SettleDebtResponse{CustomerID: customer.ID, TotalDebt: debt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByDay lista los abonos de un día (00:00 a 00:00 del siguiente).
func (uc *SettlementUseCase) ListByDay(ctx context.Context, day time.Time) ([]*dto.SettlementResponse, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)
	list, err := uc.settlementRepo.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return toSettlementResponses(list), nil
}

// ListToday lista los abonos del día en curso.
func (uc *SettlementUseCase) ListToday(ctx context.Context) ([]*dto.SettlementResponse, error) {
	return uc.ListByDay(ctx, time.Now())
}

// PurgeAll elimina todo el historial de abonos (mantenimiento admin).
func (uc *SettlementUseCase) PurgeAll(ctx context.Context) error {
	return uc.settlementRepo.DeleteAll()
}

func toSettlementResponses(list []*entity.Settlement) []*dto.SettlementResponse {
	out := make([]*dto.SettlementResponse, 0, len(list))
	for _, s := range list {
		out = append(out, &dto.SettlementResponse{
			ID:         s.ID,
			CustomerID: s.CustomerID,
			Name:       s.Name,
			Username:   s.Username,
			Amount:     s.Amount,
			Date:       s.Date,
		})
	}
	return out
}
