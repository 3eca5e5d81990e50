package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/depot-api/internal/application/dto"
	"github.com/tu-usuario/depot-api/internal/domain"
	"github.com/tu-usuario/depot-api/internal/domain/entity"
	"github.com/tu-usuario/depot-api/internal/domain/repository"
)

// OrderUseCase es el motor de pedidos: crear, editar, eliminar y cambiar el
// estado de pedidos. Cada operación compuesta (pedido + deuda + stock) corre
// dentro de una sola transacción con bloqueo de filas (SELECT FOR UPDATE).
type OrderUseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
}

// NewOrderUseCase construye el motor de pedidos.
func NewOrderUseCase(txRunner TxRunner, orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo}
}

// validateLines valida la forma de las líneas antes de tocar la BD:
// lista no vacía, producto presente, cantidad >= 1, precio (si viene) >= 0.
func validateLines(lines []dto.OrderLineRequest) error {
	if len(lines) == 0 {
		return domain.ErrInvalidInput
	}
	for _, l := range lines {
		if l.ProductID == "" || l.Quantity < 1 {
			return domain.ErrInvalidInput
		}
		if l.UnitPrice != nil && l.UnitPrice.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// clampPaid recorta el pago recibido en 0 (pagos negativos cuentan como 0).
func clampPaid(paid decimal.Decimal) decimal.Decimal {
	if paid.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return paid
}

// Create crea un pedido: calcula el total, ajusta la deuda del cliente y
// descuenta stock, todo en una transacción. Devuelve el pedido con avisos de
// sobreventa si alguna línea superó el stock disponible.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateLines(in.Lines); err != nil {
		return nil, err
	}
	paid := clampPaid(in.PaidAmount)
	now := time.Now()

	var out *dto.OrderResponse
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
	) error {
		customer, err := customerRepo.GetForUpdate(in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}

		order := &entity.Order{
			ID:         uuid.New().String(),
			CustomerID: customer.ID,
			PaidAmount: paid,
			Status:     entity.OrderStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		lines, total, warnings, err := applyLines(productRepo, order.ID, in.Lines, customer.Tier)
		if err != nil {
			return err
		}
		order.Lines = lines
		order.TotalPrice = total

		if err := orderRepo.Create(order); err != nil {
			return err
		}
		newDebt := DebtAfterPayment(customer.TotalDebt, total, paid)
		if err := customerRepo.UpdateDebt(customer.ID, newDebt); err != nil {
			return err
		}
		out = toOrderResponse(order, warnings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update edita un pedido: revierte los efectos del pedido original (stock y
// deuda) y aplica las líneas nuevas, en una sola transacción. La reversión de
// deuda se hace contra el cliente *original* del pedido y la aplicación contra
// el cliente nuevo, de modo que reasignar el pedido a otro cliente deja ambos
// saldos correctos.
func (uc *OrderUseCase) Update(ctx context.Context, orderID string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if orderID == "" || in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateLines(in.Lines); err != nil {
		return nil, err
	}
	paid := clampPaid(in.PaidAmount)
	now := time.Now()

	var out *dto.OrderResponse
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquear el pedido antes de leer sus líneas: dos ediciones
		// concurrentes no deben revertir dos veces los mismos efectos.
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		origCustomer, err := customerRepo.GetForUpdate(order.CustomerID)
		if err != nil {
			return err
		}
		if origCustomer == nil {
			return domain.ErrNotFound
		}
		newCustomer := origCustomer
		if in.CustomerID != order.CustomerID {
			newCustomer, err = customerRepo.GetForUpdate(in.CustomerID)
			if err != nil {
				return err
			}
			if newCustomer == nil {
				return domain.ErrNotFound
			}
		}

		// Fase de reversión: devolver stock de las líneas originales
		// (incremento sin tope) y deshacer el delta de deuda original.
		if err := restoreStock(productRepo, order.Lines); err != nil {
			return err
		}
		baseDebt := DebtAfterReversal(origCustomer.TotalDebt, order.TotalPrice, order.PaidAmount)
		applyDebt := baseDebt
		if newCustomer.ID != origCustomer.ID {
			if err := customerRepo.UpdateDebt(origCustomer.ID, baseDebt); err != nil {
				return err
			}
			applyDebt = newCustomer.TotalDebt
		}

		// Fase de aplicación: misma aritmética que Create sobre la deuda ya revertida.
		lines, total, warnings, err := applyLines(productRepo, order.ID, in.Lines, newCustomer.Tier)
		if err != nil {
			return err
		}
		order.CustomerID = newCustomer.ID
		order.Lines = lines
		order.TotalPrice = total
		order.PaidAmount = paid
		order.UpdatedAt = now

		if err := orderRepo.Update(order); err != nil {
			return err
		}
		newDebt := DebtAfterPayment(applyDebt, total, paid)
		if err := customerRepo.UpdateDebt(newCustomer.ID, newDebt); err != nil {
			return err
		}
		out = toOrderResponse(order, warnings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un pedido revirtiendo por completo sus efectos: stock de
// vuelta a cada producto y deuda del cliente restaurada, en una transacción.
func (uc *OrderUseCase) Delete(ctx context.Context, orderID string) error {
	if orderID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
	) error {
		order, err := orderRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		customer, err := customerRepo.GetForUpdate(order.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		if err := restoreStock(productRepo, order.Lines); err != nil {
			return err
		}
		debt := DebtAfterReversal(customer.TotalDebt, order.TotalPrice, order.PaidAmount)
		if err := customerRepo.UpdateDebt(customer.ID, debt); err != nil {
			return err
		}
		return orderRepo.Delete(order.ID)
	})
}

// SetStatus cambia el estado del pedido. Solo se permite pending → confirmed;
// repetir el estado actual es un no-op; volver de confirmed a pending se
// rechaza. No toca deuda ni stock.
func (uc *OrderUseCase) SetStatus(ctx context.Context, orderID, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status == status {
		return toOrderResponse(order, nil), nil
	}
	if order.Status == entity.OrderStatusConfirmed {
		return nil, domain.ErrConflict
	}
	if err := uc.orderRepo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return toOrderResponse(order, nil), nil
}

// GetByID obtiene un pedido con sus líneas.
func (uc *OrderUseCase) GetByID(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order, nil), nil
}

// List lista pedidos; customerID vacío lista todos.
func (uc *OrderUseCase) List(ctx context.Context, customerID string, limit, offset int) ([]*dto.OrderResponse, error) {
	list, err := uc.orderRepo.List(customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, order := range list {
		out = append(out, toOrderResponse(order, nil))
	}
	return out, nil
}

// applyLines bloquea cada producto, resuelve el precio unitario (el enviado por
// el operador o, si va nil, el del nivel del cliente), arma las líneas, calcula
// el total y descuenta stock con piso en 0. Devuelve avisos por cada línea que
// pidió más de lo disponible.
func applyLines(
	productRepo repository.ProductRepository,
	orderID string,
	reqLines []dto.OrderLineRequest,
	tier string,
) ([]entity.OrderLine, decimal.Decimal, []dto.BackorderWarning, error) {
	lines := make([]entity.OrderLine, 0, len(reqLines))
	total := decimal.Zero
	var warnings []dto.BackorderWarning

	for _, l := range reqLines {
		product, err := productRepo.GetForUpdate(l.ProductID)
		if err != nil {
			return nil, decimal.Zero, nil, err
		}
		if product == nil {
			return nil, decimal.Zero, nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, l.ProductID)
		}
		unitPrice := product.Prices.For(tier)
		if l.UnitPrice != nil {
			unitPrice = *l.UnitPrice
		}
		line := entity.OrderLine{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  l.Quantity,
			UnitPrice: unitPrice,
		}
		lines = append(lines, line)
		total = total.Add(line.Subtotal())

		if l.Quantity > product.Stock {
			warnings = append(warnings, dto.BackorderWarning{
				ProductID: product.ID,
				Requested: l.Quantity,
				Available: product.Stock,
			})
		}
		if err := productRepo.UpdateStock(product.ID, ClampStock(product.Stock, -l.Quantity)); err != nil {
			return nil, decimal.Zero, nil, err
		}
	}
	return lines, total, warnings, nil
}

// restoreStock devuelve a cada producto la cantidad de su línea. El incremento
// no tiene tope: una reversión siempre suma lo que el pedido descontó.
func restoreStock(productRepo repository.ProductRepository, lines []entity.OrderLine) error {
	for _, l := range lines {
		product, err := productRepo.GetForUpdate(l.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, l.ProductID)
		}
		if err := productRepo.UpdateStock(product.ID, product.Stock+l.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func toOrderResponse(order *entity.Order, warnings []dto.BackorderWarning) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		TotalPrice: order.TotalPrice,
		PaidAmount: order.PaidAmount,
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
		Backorders: warnings,
		Lines:      make([]dto.OrderLineResponse, 0, len(order.Lines)),
	}
	for _, l := range order.Lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		})
	}
	return resp
}
