package usecase

import (
	"regexp"
	"time"

	"github.com/tu-usuario/depot-api/internal/application/dto"
	"github.com/tu-usuario/depot-api/internal/domain"
	"github.com/tu-usuario/depot-api/internal/domain/entity"
	"github.com/tu-usuario/depot-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// Formato de teléfono: empieza por 07, 06 o 05 y tiene 10 dígitos.
var phonePattern = regexp.MustCompile(`^0[765]\d{8}$`)

// CustomerUseCase casos de uso CRUD para clientes. La deuda no se edita por
// aquí: solo la mueven el motor de pedidos y los abonos.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return ToCustomerResponse(customer), nil
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(limit, offset int) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToCustomerResponse(c))
	}
	return out, nil
}

// Update actualiza el perfil del cliente. Username debe seguir siendo único,
// el teléfono respeta el formato y la password (si viene) se rehashea.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Username != nil && *in.Username != customer.Username {
		existing, _ := uc.repo.GetByUsername(*in.Username)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		customer.Username = *in.Username
	}
	if in.Name != nil && *in.Name != "" {
		customer.Name = *in.Name
	}
	if in.Phone != nil {
		if *in.Phone != "" && !phonePattern.MatchString(*in.Phone) {
			return nil, domain.ErrInvalidInput
		}
		customer.Phone = *in.Phone
	}
	if in.Tier != nil {
		if !entity.ValidTier(*in.Tier) {
			return nil, domain.ErrInvalidInput
		}
		customer.Tier = *in.Tier
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		customer.PasswordHash = string(hash)
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// Delete elimina un cliente. Si tiene pedidos o abonos referenciándolo, la BD
// lo rechaza (RESTRICT) y se devuelve ErrConflict.
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ValidPhone indica si el teléfono cumple el formato aceptado.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ToCustomerResponse mapea la entidad a su DTO de respuesta (sin hash).
func ToCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Username:  c.Username,
		Name:      c.Name,
		Phone:     c.Phone,
		Tier:      c.Tier,
		TotalDebt: c.TotalDebt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
