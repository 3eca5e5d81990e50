package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/depot-api/internal/application/dto"
	"github.com/tu-usuario/depot-api/internal/domain"
	"github.com/tu-usuario/depot-api/internal/domain/entity"
	"github.com/tu-usuario/depot-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock se edita aquí solo
// por ajuste directo del admin; las ventas lo mueven vía el motor de pedidos.
type ProductUseCase struct {
	repo      repository.ProductRepository
	brandRepo repository.BrandRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, brandRepo repository.BrandRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, brandRepo: brandRepo}
}

func validPrices(p entity.TierPrices) bool {
	return !p.Retail.LessThan(decimal.Zero) &&
		!p.Wholesale.LessThan(decimal.Zero) &&
		!p.SuperWholesale.LessThan(decimal.Zero)
}

// Create crea un producto. La marca debe existir; los tres precios son
// obligatorios y no negativos; el stock inicial no puede ser negativo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.BrandID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validPrices(in.Prices) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	brand, err := uc.brandRepo.GetByID(in.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		BrandID:       in.BrandID,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
		ImagePublicID: in.ImagePublicID,
		Prices:        in.Prices,
		Stock:         in.Stock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos, opcionalmente filtrados por marca.
func (uc *ProductUseCase) List(brandID string, limit, offset int) ([]*dto.ProductResponse, error) {
	var list []*entity.Product
	var err error
	if brandID != "" {
		list, err = uc.repo.ListByBrand(brandID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update actualiza un producto. Editar el stock por aquí es un ajuste directo
// del admin, no pasa por el motor de pedidos.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name != "" {
		product.Name = *in.Name
	}
	if in.BrandID != nil && *in.BrandID != product.BrandID {
		brand, err := uc.brandRepo.GetByID(*in.BrandID)
		if err != nil {
			return nil, err
		}
		if brand == nil {
			return nil, domain.ErrNotFound
		}
		product.BrandID = *in.BrandID
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.ImagePublicID != nil {
		product.ImagePublicID = *in.ImagePublicID
	}
	if in.Prices != nil {
		if !validPrices(*in.Prices) {
			return nil, domain.ErrInvalidInput
		}
		product.Prices = *in.Prices
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	// El stock se persiste aparte: Update del repositorio no lo toca.
	if in.Stock != nil {
		if err := uc.repo.UpdateStock(product.ID, *in.Stock); err != nil {
			return nil, err
		}
		product.Stock = *in.Stock
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Si aparece en líneas de pedidos históricos, la
// BD lo rechaza (RESTRICT) y se devuelve ErrConflict.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		BrandID:       p.BrandID,
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		ImagePublicID: p.ImagePublicID,
		Prices:        p.Prices,
		Stock:         p.Stock,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
