package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pymesoft/gestion-pyme/internal/application/dto"
	"github.com/pymesoft/gestion-pyme/internal/application/usecase"
	"github.com/pymesoft/gestion-pyme/internal/domain"
)

func TestCustomerCreate_RequiereNameYCuit(t *testing.T) {
	cases := []struct {
		name string
		in   dto.CreateCustomerRequest
	}{
		{"sin name", dto.CreateCustomerRequest{CUIT: "20-12345678-3"}},
		{"sin cuit", dto.CreateCustomerRequest{Name: "Juana"}},
		{"vacío", dto.CreateCustomerRequest{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemCustomerRepo()
			uc := usecase.NewCustomerUseCase(repo)

			_, err := uc.Create(tc.in)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Empty(t, repo.customers, "no debe quedar ninguna fila persistida")
		})
	}
}

func TestCustomerCreate_EmailYPhoneSonOpcionales(t *testing.T) {
	repo := newMemCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo)

	resp, err := uc.Create(dto.CreateCustomerRequest{Name: "Juana Pérez", CUIT: "20-12345678-3"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Juana Pérez", resp.Name)
	assert.Empty(t, resp.Email)
	assert.Len(t, repo.customers, 1)
}

func TestCustomerUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemCustomerRepo())

	_, err := uc.Update(dto.UpdateCustomerRequest{ID: "no-existe", Name: "X", CUIT: "1"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerUpdate_ModificaCampos(t *testing.T) {
	repo := newMemCustomerRepo()
	uc := usecase.NewCustomerUseCase(repo)

	created, err := uc.Create(dto.CreateCustomerRequest{Name: "Juana", CUIT: "20-12345678-3"})
	require.NoError(t, err)

	updated, err := uc.Update(dto.UpdateCustomerRequest{
		ID: created.ID, Name: "Juana Pérez", CUIT: "20-12345678-3", Email: "juana@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Juana Pérez", updated.Name)
	assert.Equal(t, "juana@example.com", updated.Email)
}

func TestCustomerDelete_Inexistente(t *testing.T) {
	uc := usecase.NewCustomerUseCase(newMemCustomerRepo())

	err := uc.Delete("no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
