package repository

import "github.com/tu-usuario/depot-api/internal/domain/entity"

// AdminRepository define el puerto de persistencia para Admin.
type AdminRepository interface {
	Create(admin *entity.Admin) error
	GetByID(id string) (*entity.Admin, error)
	GetByUsername(username string) (*entity.Admin, error)
	List(limit, offset int) ([]*entity.Admin, error)
	Delete(id string) error
}
