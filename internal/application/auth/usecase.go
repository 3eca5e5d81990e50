package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/depot-api/internal/application/dto"
	"github.com/tu-usuario/depot-api/internal/application/usecase"
	"github.com/tu-usuario/depot-api/internal/domain"
	"github.com/tu-usuario/depot-api/internal/domain/entity"
	"github.com/tu-usuario/depot-api/internal/domain/repository"
	"github.com/tu-usuario/depot-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Roles en el claim del token.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login de clientes y
// login de administradores.
type AuthUseCase struct {
	customerRepo repository.CustomerRepository
	adminRepo    repository.AdminRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(customerRepo repository.CustomerRepository, adminRepo repository.AdminRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{customerRepo: customerRepo, adminRepo: adminRepo, jwtCfg: jwtCfg}
}

// RegisterCustomer crea un cliente: valida username único, teléfono y password
// mínima de 8 caracteres, hashea con bcrypt y persiste. Devuelve token + datos.
func (uc *AuthUseCase) RegisterCustomer(in dto.RegisterCustomerRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Name == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	if in.Phone != "" && !usecase.ValidPhone(in.Phone) {
		return nil, domain.ErrInvalidInput
	}
	tier := in.Tier
	if tier == "" {
		tier = entity.TierRetail
	}
	if !entity.ValidTier(tier) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.customerRepo.GetByUsername(in.Username)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Name:         in.Name,
		Phone:        in.Phone,
		Tier:         tier,
		TotalDebt:    decimal.Zero,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, customer.ID, RoleCustomer, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Customer: usecase.ToCustomerResponse(customer)}, nil
}

// LoginCustomer verifica username/password y devuelve token + datos del cliente.
func (uc *AuthUseCase) LoginCustomer(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, customer.ID, RoleCustomer, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Customer: usecase.ToCustomerResponse(customer)}, nil
}

// EnsureAdmin siembra el administrador inicial si no existe. Con username vacío
// no hace nada; la password debe tener al menos 8 caracteres.
func (uc *AuthUseCase) EnsureAdmin(username, name, password string) error {
	if username == "" {
		return nil
	}
	if len(password) < 8 {
		return domain.ErrInvalidInput
	}
	existing, err := uc.adminRepo.GetByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	return uc.adminRepo.Create(&entity.Admin{
		ID:           uuid.New().String(),
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// CreateAdmin crea un administrador adicional. Username único, password mínima
// de 8 caracteres.
func (uc *AuthUseCase) CreateAdmin(in dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	if in.Username == "" || in.Name == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.adminRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	admin := &entity.Admin{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Name:         in.Name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	return toAdminResponse(admin), nil
}

// GetAdmin obtiene un administrador por ID.
func (uc *AuthUseCase) GetAdmin(id string) (*dto.AdminResponse, error) {
	admin, err := uc.adminRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotFound
	}
	return toAdminResponse(admin), nil
}

// ListAdmins lista administradores con paginación.
func (uc *AuthUseCase) ListAdmins(limit, offset int) ([]*dto.AdminResponse, error) {
	list, err := uc.adminRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AdminResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAdminResponse(a))
	}
	return out, nil
}

// DeleteAdmin elimina un administrador. Un administrador no puede eliminarse a
// sí mismo: siempre queda al menos quien ejecuta la operación.
func (uc *AuthUseCase) DeleteAdmin(id, requesterID string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if id == requesterID {
		return domain.ErrConflict
	}
	admin, err := uc.adminRepo.GetByID(id)
	if err != nil {
		return err
	}
	if admin == nil {
		return domain.ErrNotFound
	}
	return uc.adminRepo.Delete(id)
}

func toAdminResponse(a *entity.Admin) *dto.AdminResponse {
	return &dto.AdminResponse{ID: a.ID, Username: a.Username, Name: a.Name}
}

// LoginAdmin verifica credenciales de administrador y devuelve token con rol admin.
func (uc *AuthUseCase) LoginAdmin(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	admin, err := uc.adminRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Admin: toAdminResponse(admin)}, nil
}
