package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/pymesoft/gestion-pyme/internal/application/dto"
	"github.com/pymesoft/gestion-pyme/internal/domain"
	"github.com/pymesoft/gestion-pyme/internal/domain/entity"
	"github.com/pymesoft/gestion-pyme/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente. Name y CUIT son obligatorios; no se valida formato
// ni unicidad del CUIT. Si falta alguno, no se toca el almacenamiento.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.CUIT == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CUIT:      in.CUIT,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes; search filtra por nombre (contiene, case-insensitive).
func (uc *CustomerUseCase) List(search string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(search)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update actualiza un cliente. ID, Name y CUIT son obligatorios.
func (uc *CustomerUseCase) Update(in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.ID == "" || in.Name == "" || in.CUIT == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = in.Name
	customer.CUIT = in.CUIT
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente por ID. Las facturas existentes conservan la
// referencia y se renderizan con cliente "Desconocido".
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

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		CUIT:      c.CUIT,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
