package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/depot-api/internal/application/dto"
	"github.com/tu-usuario/depot-api/internal/domain"
	"github.com/tu-usuario/depot-api/internal/domain/entity"
	"github.com/tu-usuario/depot-api/internal/domain/repository"
)

// BrandUseCase casos de uso CRUD para marcas.
type BrandUseCase struct {
	repo repository.BrandRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

// Create crea una marca con nombre único.
func (uc *BrandUseCase) Create(in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	brand := &entity.Brand{
		ID:           uuid.New().String(),
		Name:         in.Name,
		LogoURL:      in.LogoURL,
		LogoPublicID: in.LogoPublicID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// GetByID obtiene una marca por ID.
func (uc *BrandUseCase) GetByID(id string) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	return toBrandResponse(brand), nil
}

// List lista marcas con paginación.
func (uc *BrandUseCase) List(limit, offset int) ([]*dto.BrandResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BrandResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBrandResponse(b))
	}
	return out, nil
}

// Update actualiza una marca; el nombre nuevo debe seguir siendo único.
func (uc *BrandUseCase) Update(id string, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name != brand.Name {
		existing, _ := uc.repo.GetByName(*in.Name)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		brand.Name = *in.Name
	}
	if in.LogoURL != nil {
		brand.LogoURL = *in.LogoURL
	}
	if in.LogoPublicID != nil {
		brand.LogoPublicID = *in.LogoPublicID
	}
	brand.UpdatedAt = time.Now()
	if err := uc.repo.Update(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// Delete elimina una marca. Con productos que la referencian, la BD lo rechaza
// (RESTRICT) y se devuelve ErrConflict.
func (uc *BrandUseCase) Delete(id string) error {
	brand, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if brand == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	return &dto.BrandResponse{
		ID:           b.ID,
		Name:         b.Name,
		LogoURL:      b.LogoURL,
		LogoPublicID: b.LogoPublicID,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
