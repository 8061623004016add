package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/pymesoft/gestion-pyme/internal/application/dto"
	"github.com/pymesoft/gestion-pyme/internal/domain"
	"github.com/pymesoft/gestion-pyme/internal/domain/entity"
	"github.com/pymesoft/gestion-pyme/internal/domain/repository"
)

// StockUseCase casos de uso del libro de stock.
type StockUseCase struct {
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockRepository, productRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, productRepo: productRepo}
}

// List devuelve todas las filas de stock con el producto anidado.
// Sin paginación ni filtros.
func (uc *StockUseCase) List() ([]*dto.StockResponse, error) {
	stocks, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	briefs := make(map[string]*dto.ProductBrief)
	out := make([]*dto.StockResponse, 0, len(stocks))
	for _, s := range stocks {
		brief, ok := briefs[s.ProductID]
		if !ok {
			brief = uc.productBrief(s.ProductID)
			briefs[s.ProductID] = brief
		}
		resp := toStockResponse(s, brief)
		out = append(out, &resp)
	}
	return out, nil
}

// Create inserta una fila de stock nueva. No verifica si el producto ya tiene
// otra fila: los duplicados están permitidos.
func (uc *StockUseCase) Create(in dto.CreateStockRequest) (*dto.StockResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	stock := &entity.Stock{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UpdatedAt: time.Now(),
	}
	if err := uc.stockRepo.Create(stock); err != nil {
		return nil, err
	}
	resp := toStockResponse(stock, nil)
	return &resp, nil
}

// Adjust incrementa la cantidad de la fila en Adjustment (positivo o negativo)
// de forma atómica y devuelve la fila actualizada con el producto anidado.
// La cantidad puede quedar negativa.
func (uc *StockUseCase) Adjust(in dto.AdjustStockRequest) (*dto.StockResponse, error) {
	if in.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	stock, err := uc.stockRepo.Adjust(in.ID, in.Adjustment)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	resp := toStockResponse(stock, uc.productBrief(stock.ProductID))
	return &resp, nil
}

// productBrief resuelve el producto para anidar; nil si no existe o falla.
func (uc *StockUseCase) productBrief(productID string) *dto.ProductBrief {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil || product == nil {
		return nil
	}
	return &dto.ProductBrief{ID: product.ID, Name: product.Name, Price: product.Price}
}
