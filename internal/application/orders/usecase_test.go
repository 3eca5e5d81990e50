package orders_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/depot-api/internal/application/dto"
	"github.com/tu-usuario/depot-api/internal/application/orders"
	"github.com/tu-usuario/depot-api/internal/domain"
	"github.com/tu-usuario/depot-api/internal/domain/entity"
	"github.com/tu-usuario/depot-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner toma un snapshot del estado antes de cada
// callback y lo restaura si el callback falla (o si se simula un fallo de
// commit), imitando el rollback de una transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	customers map[string]*entity.Customer
	products  map[string]*entity.Product
	orders    map[string]*entity.Order

	orderLocks int // veces que un pedido se leyó con bloqueo (GetForUpdate)
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers: map[string]*entity.Customer{},
		products:  map[string]*entity.Product{},
		orders:    map[string]*entity.Order{},
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	c := newFakeStore()
	for k, v := range s.customers {
		cp := *v
		c.customers[k] = &cp
	}
	for k, v := range s.products {
		cp := *v
		c.products[k] = &cp
	}
	for k, v := range s.orders {
		cp := *v
		cp.Lines = append([]entity.OrderLine(nil), v.Lines...)
		c.orders[k] = &cp
	}
	return c
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.customers = snap.customers
	s.products = snap.products
	s.orders = snap.orders
}

type fakeCustomerRepo struct{ s *fakeStore }

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (r *fakeCustomerRepo) GetByUsername(username string) (*entity.Customer, error) {
	for _, c := range r.s.customers {
		if c.Username == username {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeCustomerRepo) GetForUpdate(id string) (*entity.Customer, error) { return r.GetByID(id) }
func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.s.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}
func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}
func (r *fakeCustomerRepo) UpdateDebt(id string, debt decimal.Decimal) error {
	c, ok := r.s.customers[id]
	if !ok {
		return fmt.Errorf("cliente %s no existe", id)
	}
	c.TotalDebt = debt
	return nil
}
func (r *fakeCustomerRepo) Delete(id string) error {
	delete(r.s.customers, id)
	return nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
func (r *fakeProductRepo) ListByBrand(brandID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.BrandID == brandID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}
func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	p, ok := r.s.products[id]
	if !ok {
		return fmt.Errorf("producto %s no existe", id)
	}
	p.Stock = stock
	return nil
}
func (r *fakeProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	cp := *o
	cp.Lines = append([]entity.OrderLine(nil), o.Lines...)
	r.s.orders[o.ID] = &cp
	return nil
}
func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	cp.Lines = append([]entity.OrderLine(nil), o.Lines...)
	return &cp, nil
}
func (r *fakeOrderRepo) GetForUpdate(id string) (*entity.Order, error) {
	r.s.orderLocks++
	return r.GetByID(id)
}
func (r *fakeOrderRepo) List(customerID string, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.s.orders {
		if customerID != "" && o.CustomerID != customerID {
			continue
		}
		cp := *o
		cp.Lines = append([]entity.OrderLine(nil), o.Lines...)
		out = append(out, &cp)
	}
	return out, nil
}
func (r *fakeOrderRepo) Update(o *entity.Order) error { return r.Create(o) }
func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	o, ok := r.s.orders[id]
	if !ok {
		return fmt.Errorf("pedido %s no existe", id)
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}
func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.s.orders, id)
	return nil
}

type fakeTxRunner struct {
	s         *fakeStore
	commitErr error
	runs      int
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.runs++
	snap := r.s.snapshot()
	err := fn(&fakeOrderRepo{r.s}, &fakeCustomerRepo{r.s}, &fakeProductRepo{r.s})
	if err != nil {
		r.s.restore(snap)
		return err
	}
	if r.commitErr != nil {
		r.s.restore(snap)
		return fmt.Errorf("%w: commit: %v", domain.ErrConsistency, r.commitErr)
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	custAID = "00000000-0000-0000-0000-0000000000a1"
	custBID = "00000000-0000-0000-0000-0000000000b2"
	prodXID = "00000000-0000-0000-0000-00000000f001"
	prodYID = "00000000-0000-0000-0000-00000000f002"
)

// newEngine monta el motor sobre un estado con dos clientes y dos productos.
// Cliente A: mayorista, deuda 20. Producto X: precio mayorista 10, stock 8.
func newEngine() (*orders.OrderUseCase, *fakeStore, *fakeTxRunner) {
	store := newFakeStore()
	store.customers[custAID] = &entity.Customer{
		ID: custAID, Username: "tienda-norte", Name: "Tienda Norte",
		Tier: entity.TierWholesale, TotalDebt: d("20"),
	}
	store.customers[custBID] = &entity.Customer{
		ID: custBID, Username: "tienda-sur", Name: "Tienda Sur",
		Tier: entity.TierRetail, TotalDebt: d("0"),
	}
	store.products[prodXID] = &entity.Product{
		ID: prodXID, Name: "Harina 1kg",
		Prices: entity.TierPrices{Retail: d("12"), Wholesale: d("10"), SuperWholesale: d("9")},
		Stock:  8,
	}
	store.products[prodYID] = &entity.Product{
		ID: prodYID, Name: "Aceite 1L",
		Prices: entity.TierPrices{Retail: d("20"), Wholesale: d("17"), SuperWholesale: d("15")},
		Stock:  5,
	}
	runner := &fakeTxRunner{s: store}
	return orders.NewOrderUseCase(runner, &fakeOrderRepo{store}), store, runner
}

func linesReq(productID string, qty int) []dto.OrderLineRequest {
	return []dto.OrderLineRequest{{ProductID: productID, Quantity: qty}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_PagoParcialSumaDeudaYDescuentaStock(t *testing.T) {
	uc, store, _ := newEngine()

	// 3 x 10 (precio mayorista) = 30, pagados 10 → deuda 20 + 20 = 40, stock 8 - 3 = 5.
	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 3),
		PaidAmount: d("10"),
	})
	require.NoError(t, err)

	assert.True(t, d("30").Equal(resp.TotalPrice), "total derivado de las líneas: %s", resp.TotalPrice)
	assert.Equal(t, entity.OrderStatusPending, resp.Status, "todo pedido nace pendiente")
	assert.Empty(t, resp.Backorders)
	assert.True(t, d("40").Equal(store.customers[custAID].TotalDebt),
		"deuda esperada 40, obtenida %s", store.customers[custAID].TotalDebt)
	assert.Equal(t, 5, store.products[prodXID].Stock)
}

func TestCreate_PrecioPorNivelDelCliente(t *testing.T) {
	uc, store, _ := newEngine()

	// Cliente B es minorista: misma línea, precio retail 12.
	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custBID,
		Lines:      linesReq(prodXID, 2),
		PaidAmount: d("24"),
	})
	require.NoError(t, err)
	assert.True(t, d("24").Equal(resp.TotalPrice))
	require.Len(t, resp.Lines, 1)
	assert.True(t, d("12").Equal(resp.Lines[0].UnitPrice))
	// Pago exacto: la deuda de B no cambia.
	assert.True(t, store.customers[custBID].TotalDebt.IsZero())
}

func TestCreate_PrecioPersonalizadoPorLinea(t *testing.T) {
	uc, _, _ := newEngine()

	custom := d("7.50")
	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      []dto.OrderLineRequest{{ProductID: prodXID, Quantity: 4, UnitPrice: &custom}},
		PaidAmount: d("30"),
	})
	require.NoError(t, err)
	assert.True(t, d("30").Equal(resp.TotalPrice), "4 x 7.50 con precio del operador")
}

func TestCreate_SobrepagoAbonaDeudaPreviaConPiso(t *testing.T) {
	uc, store, _ := newEngine()

	// Total 10, pagados 90: excedente 80 > deuda 20 → deuda 0, el resto se descarta.
	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 1),
		PaidAmount: d("90"),
	})
	require.NoError(t, err)
	assert.True(t, store.customers[custAID].TotalDebt.IsZero(),
		"el excedente nunca deja deuda negativa: %s", store.customers[custAID].TotalDebt)
}

func TestCreate_PagoNegativoCuentaComoCero(t *testing.T) {
	uc, store, _ := newEngine()

	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 1),
		PaidAmount: d("-5"),
	})
	require.NoError(t, err)
	assert.True(t, resp.PaidAmount.IsZero())
	assert.True(t, d("30").Equal(store.customers[custAID].TotalDebt), "20 + total 10 sin pago")
}

func TestCreate_SobreventaDejaStockEnCeroYAvisa(t *testing.T) {
	uc, store, _ := newEngine()

	// Producto Y tiene stock 5; se piden 8. La venta no se bloquea.
	resp, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custBID,
		Lines:      linesReq(prodYID, 8),
		PaidAmount: d("160"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, store.products[prodYID].Stock)
	require.Len(t, resp.Backorders, 1)
	assert.Equal(t, prodYID, resp.Backorders[0].ProductID)
	assert.Equal(t, 8, resp.Backorders[0].Requested)
	assert.Equal(t, 5, resp.Backorders[0].Available)
}

func TestCreate_ValidacionCortaAntesDeTocarEstado(t *testing.T) {
	uc, store, runner := newEngine()

	cases := []struct {
		name string
		in   dto.CreateOrderRequest
	}{
		{"sin cliente", dto.CreateOrderRequest{Lines: linesReq(prodXID, 1)}},
		{"sin líneas", dto.CreateOrderRequest{CustomerID: custAID}},
		{"cantidad cero", dto.CreateOrderRequest{CustomerID: custAID, Lines: linesReq(prodXID, 0)}},
		{"línea sin producto", dto.CreateOrderRequest{CustomerID: custAID, Lines: linesReq("", 1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	negative := d("-1")
	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      []dto.OrderLineRequest{{ProductID: prodXID, Quantity: 1, UnitPrice: &negative}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Equal(t, 0, runner.runs, "la validación debe cortar antes de abrir transacción")
	assert.True(t, d("20").Equal(store.customers[custAID].TotalDebt))
	assert.Equal(t, 8, store.products[prodXID].Stock)
}

func TestCreate_ClienteInexistente(t *testing.T) {
	uc, _, _ := newEngine()
	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: "no-existe",
		Lines:      linesReq(prodXID, 1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ProductoInexistenteRevierteTodo(t *testing.T) {
	uc, store, _ := newEngine()

	// La primera línea descuenta stock; la segunda no existe → rollback total.
	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines: []dto.OrderLineRequest{
			{ProductID: prodXID, Quantity: 3},
			{ProductID: "no-existe", Quantity: 1},
		},
		PaidAmount: d("10"),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 8, store.products[prodXID].Stock, "el stock de la primera línea debe volver")
	assert.True(t, d("20").Equal(store.customers[custAID].TotalDebt))
	assert.Empty(t, store.orders)
}

func TestCreate_CommitFallidoReportaErrConsistency(t *testing.T) {
	uc, store, runner := newEngine()
	runner.commitErr = fmt.Errorf("conexión perdida")

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 1),
		PaidAmount: d("5"),
	})
	require.ErrorIs(t, err, domain.ErrConsistency)
	assert.Equal(t, 8, store.products[prodXID].Stock, "nada quedó aplicado a medias")
	assert.True(t, d("20").Equal(store.customers[custAID].TotalDebt))
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_EsReversionMasAplicacion(t *testing.T) {
	uc, store, _ := newEngine()

	// Pedido inicial: 3 x 10 = 30, pagados 10 → deuda 40, stock 5.
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 3),
		PaidAmount: d("10"),
	})
	require.NoError(t, err)

	// Edición: 2 x 10 = 20, pagados 60.
	// Reversión: 40 - 30 + 10 = 20. Aplicación: excedente 40 > 20 → deuda 0.
	// Stock: 5 + 3 - 2 = 6.
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 2),
		PaidAmount: d("60"),
	})
	require.NoError(t, err)

	assert.True(t, d("20").Equal(resp.TotalPrice))
	assert.True(t, store.customers[custAID].TotalDebt.IsZero(),
		"deuda esperada 0, obtenida %s", store.customers[custAID].TotalDebt)
	assert.Equal(t, 6, store.products[prodXID].Stock)
}

func TestUpdate_CicloCompletoDeUnPedido(t *testing.T) {
	uc, store, _ := newEngine()

	store.products["prod-z"] = &entity.Product{
		ID: "prod-z", Name: "Azúcar 2kg",
		Prices: entity.TierPrices{Retail: d("25"), Wholesale: d("25"), SuperWholesale: d("25")},
		Stock:  10,
	}

	// 2 x 25 = 50, pagados 30 → deuda 20, stock 8.
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custBID,
		Lines:      linesReq("prod-z", 2),
		PaidAmount: d("30"),
	})
	require.NoError(t, err)
	require.True(t, d("20").Equal(store.customers[custBID].TotalDebt),
		"deuda esperada 20, obtenida %s", store.customers[custBID].TotalDebt)
	require.Equal(t, 8, store.products["prod-z"].Stock)

	// Edición a 1 x 25 pagados 25: reversión 20 - 50 + 30 = 0, aplicación pago
	// exacto → deuda 0, stock 8 + 2 - 1 = 9.
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		CustomerID: custBID,
		Lines:      linesReq("prod-z", 1),
		PaidAmount: d("25"),
	})
	require.NoError(t, err)
	assert.True(t, store.customers[custBID].TotalDebt.IsZero(),
		"deuda esperada 0, obtenida %s", store.customers[custBID].TotalDebt)
	assert.Equal(t, 9, store.products["prod-z"].Stock)
}

func TestUpdate_EditarSinCambiosDejaElEstadoIgual(t *testing.T) {
	uc, store, _ := newEngine()

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 3),
		PaidAmount: d("10"),
	})
	require.NoError(t, err)
	debtBefore := store.customers[custAID].TotalDebt
	stockBefore := store.products[prodXID].Stock

	// Reemitir el pedido idéntico: revertir y aplicar se cancelan.
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 3),
		PaidAmount: d("10"),
	})
	require.NoError(t, err)
	assert.True(t, debtBefore.Equal(store.customers[custAID].TotalDebt))
	assert.Equal(t, stockBefore, store.products[prodXID].Stock)
}

func TestUpdate_CambioDeClienteReparteLosSaldos(t *testing.T) {
	uc, store, _ := newEngine()

	// Pedido de A: 2 x 10 = 20, pagados 5 → deuda A = 20 + 15 = 35.
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 2),
		PaidAmount: d("5"),
	})
	require.NoError(t, err)
	require.True(t, d("35").Equal(store.customers[custAID].TotalDebt))

	// Reasignar a B: la reversión va al cliente *original*, la aplicación al nuevo.
	// A vuelve a 20. B (retail, precio 12): 2 x 12 = 24, pagados 5 → deuda B = 19.
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		CustomerID: custBID,
		Lines:      linesReq(prodXID, 2),
		PaidAmount: d("5"),
	})
	require.NoError(t, err)

	assert.Equal(t, custBID, resp.CustomerID)
	assert.True(t, d("20").Equal(store.customers[custAID].TotalDebt),
		"la deuda del cliente original debe quedar revertida, obtenida %s", store.customers[custAID].TotalDebt)
	assert.True(t, d("19").Equal(store.customers[custBID].TotalDebt),
		"la deuda del cliente nuevo debe cargar el pedido, obtenida %s", store.customers[custBID].TotalDebt)
	assert.Equal(t, 6, store.products[prodXID].Stock, "restaurar 2 y volver a descontar 2 deja el stock igual")
}

func TestUpdate_PedidoInexistente(t *testing.T) {
	uc, _, _ := newEngine()
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_FalloIntermedioNoDejaEfectosParciales(t *testing.T) {
	uc, store, _ := newEngine()

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 3),
		PaidAmount: d("10"),
	})
	require.NoError(t, err)
	debtBefore := store.customers[custAID].TotalDebt
	stockBefore := store.products[prodXID].Stock

	// La edición referencia un producto inexistente después de la reversión:
	// todo (incluida la reversión ya ejecutada) debe deshacerse.
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		CustomerID: custAID,
		Lines: []dto.OrderLineRequest{
			{ProductID: prodXID, Quantity: 1},
			{ProductID: "no-existe", Quantity: 1},
		},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, debtBefore.Equal(store.customers[custAID].TotalDebt))
	assert.Equal(t, stockBefore, store.products[prodXID].Stock)
}

func TestUpdate_LeeElPedidoConBloqueo(t *testing.T) {
	uc, store, _ := newEngine()

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 3),
		PaidAmount: d("10"),
	})
	require.NoError(t, err)
	require.Equal(t, 0, store.orderLocks)

	// La edición debe leer el pedido con FOR UPDATE: dos ediciones concurrentes
	// del mismo pedido serializan sobre la cabecera y no revierten dos veces.
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 2),
		PaidAmount: d("10"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.orderLocks)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Equal(t, 2, store.orderLocks, "eliminar también bloquea el pedido antes de revertir")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_RevierteDeudaYStockPorCompleto(t *testing.T) {
	uc, store, _ := newEngine()

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 3),
		PaidAmount: d("10"),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	assert.True(t, d("20").Equal(store.customers[custAID].TotalDebt),
		"la deuda debe volver al valor previo al pedido")
	assert.Equal(t, 8, store.products[prodXID].Stock)
	assert.Empty(t, store.orders)
}

func TestDelete_PedidoInexistente(t *testing.T) {
	uc, _, _ := newEngine()
	assert.ErrorIs(t, uc.Delete(context.Background(), "no-existe"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// SetStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestSetStatus_AvanzaDePendienteAConfirmado(t *testing.T) {
	uc, store, _ := newEngine()
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 1),
	})
	require.NoError(t, err)
	debtBefore := store.customers[custAID].TotalDebt
	stockBefore := store.products[prodXID].Stock

	resp, err := uc.SetStatus(context.Background(), created.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, resp.Status)

	// Confirmar no toca deuda ni stock.
	assert.True(t, debtBefore.Equal(store.customers[custAID].TotalDebt))
	assert.Equal(t, stockBefore, store.products[prodXID].Stock)
}

func TestSetStatus_RepetirElEstadoEsNoOp(t *testing.T) {
	uc, _, _ := newEngine()
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 1),
	})
	require.NoError(t, err)

	resp, err := uc.SetStatus(context.Background(), created.ID, entity.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
}

func TestSetStatus_NoRetrocedeDeConfirmado(t *testing.T) {
	uc, _, _ := newEngine()
	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: custAID,
		Lines:      linesReq(prodXID, 1),
	})
	require.NoError(t, err)
	_, err = uc.SetStatus(context.Background(), created.ID, entity.OrderStatusConfirmed)
	require.NoError(t, err)

	_, err = uc.SetStatus(context.Background(), created.ID, entity.OrderStatusPending)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSetStatus_ValorDesconocido(t *testing.T) {
	uc, _, _ := newEngine()
	_, err := uc.SetStatus(context.Background(), "cualquiera", "enviado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetStatus_PedidoInexistente(t *testing.T) {
	uc, _, _ := newEngine()
	_, err := uc.SetStatus(context.Background(), "no-existe", entity.OrderStatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
