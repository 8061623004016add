package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/pymesoft/gestion-pyme/internal/application/dto"
	"github.com/pymesoft/gestion-pyme/internal/domain"
	"github.com/pymesoft/gestion-pyme/internal/domain/entity"
	"github.com/pymesoft/gestion-pyme/internal/domain/repository"
)

// ProductTxRunner ejecuta una función con repos de producto y stock dentro
// de una transacción (alta de producto + stock inicial en un solo commit).
type ProductTxRunner interface {
	RunProduct(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// ProductUseCase casos de uso de productos.
type ProductUseCase struct {
	txRunner    ProductTxRunner
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner ProductTxRunner, productRepo repository.ProductRepository, stockRepo repository.StockRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo, stockRepo: stockRepo}
}

// Create valida y persiste un producto junto con su fila de stock inicial,
// ambos dentro de la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     in.Price,
		UserID:    in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	stock := &entity.Stock{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Quantity:  in.Quantity,
		UpdatedAt: now,
	}
	err := uc.txRunner.RunProduct(ctx, func(productRepo repository.ProductRepository, stockRepo repository.StockRepository) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return stockRepo.Create(stock)
	})
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	resp.Stocks = []dto.StockResponse{toStockResponse(stock, nil)}
	return resp, nil
}

// List lista productos con sus filas de stock anidadas.
func (uc *ProductUseCase) List(search string) ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.List(search)
	if err != nil {
		return nil, err
	}
	stocks, err := uc.stockRepo.List()
	if err != nil {
		return nil, err
	}
	byProduct := make(map[string][]dto.StockResponse)
	for _, s := range stocks {
		byProduct[s.ProductID] = append(byProduct[s.ProductID], toStockResponse(s, nil))
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp := toProductResponse(p)
		resp.Stocks = byProduct[p.ID]
		out = append(out, resp)
	}
	return out, nil
}

// Update actualiza nombre y precio del producto y reemplaza la cantidad de su
// primera fila de stock. Si el producto no tiene stock, retorna ErrNotFound.
func (uc *ProductUseCase) Update(ctx context.Context, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.ID == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	stocks, err := uc.stockRepo.ListByProduct(in.ID)
	if err != nil {
		return nil, err
	}
	if len(stocks) == 0 {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product.Name = in.Name
	product.Price = in.Price
	product.UpdatedAt = now
	stock := stocks[0]
	stock.Quantity = in.Quantity
	stock.UpdatedAt = now

	err = uc.txRunner.RunProduct(ctx, func(productRepo repository.ProductRepository, stockRepo repository.StockRepository) error {
		if err := productRepo.Update(product); err != nil {
			return err
		}
		return stockRepo.Update(stock)
	})
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	resp.Stocks = []dto.StockResponse{toStockResponse(stock, nil)}
	return resp, nil
}

// Delete elimina un producto por ID. No hay guarda referencial: las líneas de
// factura que lo referencian quedan a merced de las constraints de la DB.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toStockResponse(s *entity.Stock, product *dto.ProductBrief) dto.StockResponse {
	return dto.StockResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		Product:   product,
		UpdatedAt: s.UpdatedAt,
	}
}
