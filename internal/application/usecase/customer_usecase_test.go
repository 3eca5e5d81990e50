package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/depot-api/internal/application/dto"
	"github.com/tu-usuario/depot-api/internal/application/usecase"
	"github.com/tu-usuario/depot-api/internal/domain"
	"github.com/tu-usuario/depot-api/internal/domain/entity"
)

func str(s string) *string { return &s }

func newCustomerFixture() (*usecase.CustomerUseCase, *fakeCustomerRepo) {
	repo := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		"c1": {ID: "c1", Username: "tienda-norte", Name: "Tienda Norte", Phone: "0712345678",
			Tier: entity.TierWholesale, TotalDebt: d("20"), PasswordHash: "hash"},
		"c2": {ID: "c2", Username: "tienda-sur", Name: "Tienda Sur", Tier: entity.TierRetail},
	}}
	return usecase.NewCustomerUseCase(repo), repo
}

func TestCustomerUpdate_CamposNilNoSeTocan(t *testing.T) {
	uc, repo := newCustomerFixture()

	resp, err := uc.Update("c1", dto.UpdateCustomerRequest{Name: str("Tienda Norte 2")})
	require.NoError(t, err)

	assert.Equal(t, "Tienda Norte 2", resp.Name)
	assert.Equal(t, "tienda-norte", resp.Username, "username no enviado no debe cambiar")
	assert.Equal(t, entity.TierWholesale, resp.Tier)
	assert.Equal(t, "hash", repo.customers["c1"].PasswordHash)
}

func TestCustomerUpdate_UsernameDuplicado(t *testing.T) {
	uc, _ := newCustomerFixture()
	_, err := uc.Update("c1", dto.UpdateCustomerRequest{Username: str("tienda-sur")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCustomerUpdate_TelefonoInvalido(t *testing.T) {
	uc, _ := newCustomerFixture()

	for _, phone := range []string{"12345", "0812345678", "071234567", "07123456789"} {
		_, err := uc.Update("c1", dto.UpdateCustomerRequest{Phone: str(phone)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "teléfono %q debe rechazarse", phone)
	}
	// Vacío borra el teléfono; un formato válido se acepta.
	_, err := uc.Update("c1", dto.UpdateCustomerRequest{Phone: str("")})
	assert.NoError(t, err)
	_, err = uc.Update("c1", dto.UpdateCustomerRequest{Phone: str("0698765432")})
	assert.NoError(t, err)
}

func TestCustomerUpdate_NivelInvalido(t *testing.T) {
	uc, _ := newCustomerFixture()
	_, err := uc.Update("c1", dto.UpdateCustomerRequest{Tier: str("premium")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := uc.Update("c1", dto.UpdateCustomerRequest{Tier: str(entity.TierSuperWholesale)})
	require.NoError(t, err)
	assert.Equal(t, entity.TierSuperWholesale, resp.Tier)
}

func TestCustomerUpdate_PasswordCortaSeRechaza(t *testing.T) {
	uc, repo := newCustomerFixture()
	_, err := uc.Update("c1", dto.UpdateCustomerRequest{Password: str("corta")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update("c1", dto.UpdateCustomerRequest{Password: str("secreta-larga")})
	require.NoError(t, err)
	assert.NotEqual(t, "hash", repo.customers["c1"].PasswordHash, "la password nueva debe rehashearse")
}

func TestCustomerUpdate_NoExiste(t *testing.T) {
	uc, _ := newCustomerFixture()
	_, err := uc.Update("nadie", dto.UpdateCustomerRequest{Name: str("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerDelete_ReferenciadoDevuelveConflict(t *testing.T) {
	uc, repo := newCustomerFixture()
	repo.deleteErr = domain.ErrConflict

	assert.ErrorIs(t, uc.Delete("c1"), domain.ErrConflict)
}

func TestCustomerGetByID_SinHashEnLaRespuesta(t *testing.T) {
	uc, _ := newCustomerFixture()
	resp, err := uc.GetByID("c1")
	require.NoError(t, err)
	assert.True(t, d("20").Equal(resp.TotalDebt))

	_, err = uc.GetByID("nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidPhone(t *testing.T) {
	assert.True(t, usecase.ValidPhone("0712345678"))
	assert.True(t, usecase.ValidPhone("0612345678"))
	assert.True(t, usecase.ValidPhone("0512345678"))
	assert.False(t, usecase.ValidPhone("0412345678"))
	assert.False(t, usecase.ValidPhone("07123"))
}
