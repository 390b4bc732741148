package service

import (
	"context"
	"errors"

	"github.com/eshabeddings/catalog-service/internal/models"
	"github.com/eshabeddings/catalog-service/internal/repository"
)

var (
	// ErrUnauthorized means the supplied admin token did not match the
	// configured secret. Nothing reaches the store after this.
	ErrUnauthorized = errors.New("invalid admin token")

	// ErrMissingFields means at least one required content field was
	// empty. Checked after authorization, before the store is touched.
	ErrMissingFields = errors.New("all product fields are required")
)

// CatalogService is the only sanctioned entry point to the product store.
// Every mutating call is authorized against a single shared secret supplied
// by the caller; the secret is never cached between calls.
type CatalogService struct {
	repo       repository.ProductRepository
	adminToken string
}

// NewCatalogService creates a catalog service over repo, authorizing
// writes against adminToken.
func NewCatalogService(repo repository.ProductRepository, adminToken string) *CatalogService {
	return &CatalogService{
		repo:       repo,
		adminToken: adminToken,
	}
}

// ListProducts returns all products in the catalog
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.ListAll(ctx)
}

// GetProduct returns a product by ID
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateProduct validates the token and the input, then stores a new
// product and returns it with its assigned ID.
func (s *CatalogService) CreateProduct(ctx context.Context, input models.ProductInput, token string) (*models.Product, error) {
	if err := s.authorize(token); err != nil {
		return nil, err
	}
	if !input.Complete() {
		return nil, ErrMissingFields
	}
	return s.repo.Create(ctx, input)
}

// UpdateProduct replaces the content fields of the product matching id.
// Returns repository.ErrProductNotFound if no such product exists.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input models.ProductInput, token string) error {
	if err := s.authorize(token); err != nil {
		return err
	}
	if !input.Complete() {
		return ErrMissingFields
	}
	return s.repo.UpdateByID(ctx, id, input)
}

// DeleteProduct removes the product matching id. The original storefront
// skipped the token check on delete; the policy here is symmetric across
// all writes (see DESIGN.md).
func (s *CatalogService) DeleteProduct(ctx context.Context, id string, token string) error {
	if err := s.authorize(token); err != nil {
		return err
	}
	return s.repo.DeleteByID(ctx, id)
}

func (s *CatalogService) authorize(token string) error {
	if token != s.adminToken {
		return ErrUnauthorized
	}
	return nil
}
