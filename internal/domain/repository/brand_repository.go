package repository

import "github.com/tu-usuario/depot-api/internal/domain/entity"

// BrandRepository define el puerto de persistencia para Brand.
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id string) (*entity.Brand, error)
	GetByName(name string) (*entity.Brand, error)
	List(limit, offset int) ([]*entity.Brand, error)
	Update(brand *entity.Brand) error
	Delete(id string) error
}
