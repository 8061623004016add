package usecase_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/pymesoft/gestion-pyme/internal/domain/entity"
	"github.com/pymesoft/gestion-pyme/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// memCustomerRepo repo de clientes en memoria.
type memCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *memCustomerRepo) List(string) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCustomerRepo) Update(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) Delete(id string) error {
	delete(r.customers, id)
	return nil
}

// memProductRepo repo de productos en memoria.
type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *memProductRepo) List(string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

// memStockRepo repo de stock en memoria. Adjust es atómico bajo mutex, igual
// que el UPDATE relativo en la base real.
type memStockRepo struct {
	mu    sync.Mutex
	stock map[string]*entity.Stock
	order []string
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{stock: make(map[string]*entity.Stock)}
}

func (r *memStockRepo) Create(s *entity.Stock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.stock[s.ID] = &cp
	r.order = append(r.order, s.ID)
	return nil
}

func (r *memStockRepo) GetByID(id string) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stock[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memStockRepo) List() ([]*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Stock, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.stock[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memStockRepo) ListByProduct(productID string) ([]*entity.Stock, error) {
	all, _ := r.List()
	var out []*entity.Stock
	for _, s := range all {
		if s.ProductID == productID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memStockRepo) Adjust(id string, delta int64) (*entity.Stock, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stock[id]
	if !ok {
		return nil, nil
	}
	s.Quantity += delta
	cp := *s
	return &cp, nil
}

func (r *memStockRepo) Update(s *entity.Stock) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.stock[s.ID] = &cp
	return nil
}

// memUserRepo repo de usuarios en memoria con unicidad de email.
type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

// passTxRunner ejecuta la función directamente sobre los repos en memoria.
type passTxRunner struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
}

func (t *passTxRunner) RunProduct(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
) error) error {
	return fn(t.productRepo, t.stockRepo)
}
