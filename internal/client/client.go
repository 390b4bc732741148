// Package client is the typed HTTP client the admin tooling uses against
// the catalog API. It embeds the shared secret on every mutating call and
// treats any non-success status as a terminal error for that call; callers
// resubmit, nothing retries.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/eshabeddings/catalog-service/internal/models"
)

// APIError is a non-success response from the catalog API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("catalog api: %d %s", e.StatusCode, e.Message)
}

// Client talks to a catalog service instance.
type Client struct {
	baseURL    string
	adminToken string
	httpClient *http.Client
}

// New creates a client for the catalog API at baseURL. adminToken is sent
// on every mutating call; leave it empty for read-only use.
func New(baseURL, adminToken string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		adminToken: adminToken,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type productPayload struct {
	models.ProductInput
	AdminToken string `json:"adminToken"`
}

// ListProducts fetches the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := c.do(req, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct submits a new product and returns it with its assigned ID.
func (c *Client) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	body, err := json.Marshal(productPayload{ProductInput: input, AdminToken: c.adminToken})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/products", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var product models.Product
	if err := c.do(req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces the content fields of the product matching id.
func (c *Client) UpdateProduct(ctx context.Context, id string, input models.ProductInput) error {
	body, err := json.Marshal(productPayload{ProductInput: input, AdminToken: c.adminToken})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/products/"+id, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, nil)
}

// DeleteProduct removes the product matching id.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/products/"+id, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Admin-Token", c.adminToken)

	return c.do(req, nil)
}

// do executes the request, decoding a success body into out when out is
// non-nil and turning any other status into an *APIError.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
