package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/eshabeddings/catalog-service/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, input models.ProductInput) (*models.Product, error)
	UpdateByID(ctx context.Context, id string, input models.ProductInput) error
	DeleteByID(ctx context.Context, id string) error
}

// InMemoryProductRepository implements ProductRepository with in-memory
// storage. It backs tests and local development when no Mongo URI is
// configured; records do not survive a restart.
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string // insertion order, so listings are deterministic
}

// NewInMemoryProductRepository creates an empty in-memory product repository
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[string]models.Product),
	}
}

// ListAll returns all products in insertion order
func (r *InMemoryProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, r.products[id])
	}
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// Create assigns a new unique ID, stores the record and returns it
func (r *InMemoryProductRepository) Create(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product := models.Product{
		ID:          primitive.NewObjectID().Hex(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    input.Category,
	}
	r.products[product.ID] = product
	r.order = append(r.order, product.ID)
	return &product, nil
}

// UpdateByID replaces the content fields of the record matching id
func (r *InMemoryProductRepository) UpdateByID(ctx context.Context, id string, input models.ProductInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, exists := r.products[id]
	if !exists {
		return ErrProductNotFound
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Image = input.Image
	product.Category = input.Category
	r.products[id] = product
	return nil
}

// DeleteByID removes the record matching id
func (r *InMemoryProductRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[id]; !exists {
		return ErrProductNotFound
	}

	delete(r.products, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
