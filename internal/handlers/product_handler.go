package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/eshabeddings/catalog-service/internal/models"
	"github.com/eshabeddings/catalog-service/internal/repository"
	"github.com/eshabeddings/catalog-service/internal/service"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// adminTokenHeader carries the shared secret on requests without a body.
const adminTokenHeader = "X-Admin-Token"

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// productRequest is the write-call body: the five content fields plus the
// shared secret, resent on every mutating call exactly as the admin form
// submits it.
type productRequest struct {
	models.ProductInput
	AdminToken string `json:"adminToken"`
}

// ListProducts handles GET /api/products
// Returns every product in the catalog; the storefront filters client-side.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.service.ListProducts(ctx)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		writeError(w, http.StatusInternalServerError, "Error fetching products")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// CreateProduct handles POST /api/products
// - 201: created product
// - 403: admin token mismatch
// - 400: missing content field or malformed body
// - 500: store failure
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid create request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.service.CreateProduct(ctx, req.ProductInput, req.AdminToken)
	if err != nil {
		h.writeServiceError(w, err, "failed to create product")
		return
	}

	h.logger.Info("product created", "productId", product.ID, "category", product.Category)
	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/{productId}
// Replaces the content fields of the product; the ID never changes.
// - 200: updated
// - 403/400 as for create
// - 404: unknown product ID
// - 500: store failure
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productId")

	if !validProductID(productID) {
		h.logger.Warn("invalid product ID format", "productId", productID)
		writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid update request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateProduct(ctx, productID, req.ProductInput, req.AdminToken); err != nil {
		h.writeServiceError(w, err, "failed to update product")
		return
	}

	h.logger.Info("product updated", "productId", productID)
	writeMessage(w, http.StatusOK, "Product updated successfully")
}

// DeleteProduct handles DELETE /api/products/{productId}
// The shared secret travels in the X-Admin-Token header since DELETE
// carries no body. Same policy as the other writes.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productId")

	if !validProductID(productID) {
		h.logger.Warn("invalid product ID format", "productId", productID)
		writeError(w, http.StatusBadRequest, "Invalid ID supplied")
		return
	}

	if err := h.service.DeleteProduct(ctx, productID, r.Header.Get(adminTokenHeader)); err != nil {
		h.writeServiceError(w, err, "failed to delete product")
		return
	}

	h.logger.Info("product deleted", "productId", productID)
	writeMessage(w, http.StatusOK, "Product deleted successfully")
}

// writeServiceError maps service and repository errors onto HTTP statuses.
// Anything unrecognised is a store failure and stays opaque to the caller.
func (h *ProductHandler) writeServiceError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusForbidden, "Unauthorized")
	case errors.Is(err, service.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "All fields are required")
	case errors.Is(err, repository.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "Product not found")
	default:
		h.logger.Error(logMsg, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// validProductID checks the path segment parses as a store ID.
func validProductID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
