package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eshabeddings/catalog-service/internal/handlers"
	"github.com/eshabeddings/catalog-service/internal/models"
	"github.com/eshabeddings/catalog-service/internal/repository"
	"github.com/eshabeddings/catalog-service/internal/service"
	"github.com/eshabeddings/catalog-service/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminToken = "test-admin-token"

// startServer runs the real handler stack over the in-memory store.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := repository.NewInMemoryProductRepository()
	svc := service.NewCatalogService(repo, testAdminToken)
	log := logger.New("error")
	handler := handlers.NewProductHandler(svc, log)

	r := chi.NewRouter()
	r.Get("/api/products", handler.ListProducts)
	r.Post("/api/products", handler.CreateProduct)
	r.Put("/api/products/{productId}", handler.UpdateProduct)
	r.Delete("/api/products/{productId}", handler.DeleteProduct)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func duvetInput() models.ProductInput {
	return models.ProductInput{
		Name:        "Warm Duvet",
		Description: "A thick duvet for the harmattan season",
		Price:       45000,
		Image:       "https://res.cloudinary.com/demo/duvet.jpg",
		Category:    "duvets",
	}
}

func TestClientRoundTrip(t *testing.T) {
	srv := startServer(t)
	c := New(srv.URL, testAdminToken)
	ctx := context.Background()

	created, err := c.CreateProduct(ctx, duvetInput())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Warm Duvet", created.Name)

	products, err := c.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, *created, products[0])

	updated := duvetInput()
	updated.Price = 52000
	require.NoError(t, c.UpdateProduct(ctx, created.ID, updated))

	products, err = c.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 52000.0, products[0].Price)

	require.NoError(t, c.DeleteProduct(ctx, created.ID))

	products, err = c.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestClientWrongToken(t *testing.T) {
	srv := startServer(t)
	c := New(srv.URL, "wrong")
	ctx := context.Background()

	_, err := c.CreateProduct(ctx, duvetInput())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "Unauthorized", apiErr.Message)

	// The failed create left nothing behind.
	reader := New(srv.URL, "")
	products, err := reader.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestClientNotFound(t *testing.T) {
	srv := startServer(t)
	c := New(srv.URL, testAdminToken)

	err := c.DeleteProduct(context.Background(), "64f000000000000000000000")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestClientMissingFields(t *testing.T) {
	srv := startServer(t)
	c := New(srv.URL, testAdminToken)

	input := duvetInput()
	input.Description = ""
	_, err := c.CreateProduct(context.Background(), input)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}
