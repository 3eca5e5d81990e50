package usecase_test

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/depot-api/internal/domain"
	"github.com/tu-usuario/depot-api/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los CRUD. deleteErr permite simular el RESTRICT de la
// BD cuando el registro está referenciado.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	deleteErr error
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	for _, existing := range r.customers {
		if existing.Username == c.Username {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}
func (r *fakeCustomerRepo) GetByUsername(username string) (*entity.Customer, error) {
	for _, c := range r.customers {
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
	for _, c := range r.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}
func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}
func (r *fakeCustomerRepo) UpdateDebt(id string, debt decimal.Decimal) error {
	c, ok := r.customers[id]
	if !ok {
		return fmt.Errorf("cliente %s no existe", id)
	}
	c.TotalDebt = debt
	return nil
}
func (r *fakeCustomerRepo) Delete(id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.customers, id)
	return nil
}

type fakeProductRepo struct {
	products  map[string]*entity.Product
	deleteErr error
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
func (r *fakeProductRepo) ListByBrand(brandID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.BrandID == brandID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error {
	// Como el adaptador real: Update no toca el stock.
	stored, ok := r.products[p.ID]
	stock := p.Stock
	if ok {
		stock = stored.Stock
	}
	cp := *p
	cp.Stock = stock
	r.products[p.ID] = &cp
	return nil
}
func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	p, ok := r.products[id]
	if !ok {
		return fmt.Errorf("producto %s no existe", id)
	}
	p.Stock = stock
	return nil
}
func (r *fakeProductRepo) Delete(id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.products, id)
	return nil
}

type fakeBrandRepo struct {
	brands    map[string]*entity.Brand
	deleteErr error
}

func (r *fakeBrandRepo) Create(b *entity.Brand) error {
	for _, existing := range r.brands {
		if existing.Name == b.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *b
	r.brands[b.ID] = &cp
	return nil
}
func (r *fakeBrandRepo) GetByID(id string) (*entity.Brand, error) {
	b, ok := r.brands[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}
func (r *fakeBrandRepo) GetByName(name string) (*entity.Brand, error) {
	for _, b := range r.brands {
		if b.Name == name {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}
func (r *fakeBrandRepo) List(limit, offset int) ([]*entity.Brand, error) {
	var out []*entity.Brand
	for _, b := range r.brands {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}
func (r *fakeBrandRepo) Update(b *entity.Brand) error {
	cp := *b
	r.brands[b.ID] = &cp
	return nil
}
func (r *fakeBrandRepo) Delete(id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.brands, id)
	return nil
}
