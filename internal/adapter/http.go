package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying resty client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the request to
// POST /auth/register and keeps the returned token.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/auth/register", req)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /auth/login and keeps the returned token.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/auth/login", req)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if auth.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: response carries no token", path)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// ListProducts implements [ServerAdapter]. GET /products with the non-empty
// filter fields as query parameters.
func (h *httpServerAdapter) ListProducts(ctx context.Context, filter models.ProductFilter) (models.ProductPage, error) {
	var page models.ProductPage

	resp, err := h.request(ctx).
		SetQueryParams(filter.QueryParams()).
		SetResult(&page).
		Get("/products")
	if err != nil {
		return models.ProductPage{}, fmt.Errorf("list products request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProductPage{}, err
	}

	return page, nil
}

// GetProduct implements [ServerAdapter]. GET /products/{id}.
func (h *httpServerAdapter) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product

	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&product).
		Get("/products/{id}")
	if err != nil {
		return models.Product{}, fmt.Errorf("get product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	return product, nil
}

// CreateProduct implements [ServerAdapter]. POST /products, requires a token.
func (h *httpServerAdapter) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	var product models.Product

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&product).
		Post("/products")
	if err != nil {
		return models.Product{}, fmt.Errorf("create product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	return product, nil
}

// UpdateProduct implements [ServerAdapter]. PUT /products/{id}, requires a
// token. Unset fields are omitted from the body.
func (h *httpServerAdapter) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	var product models.Product

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(update).
		SetResult(&product).
		Put("/products/{id}")
	if err != nil {
		return models.Product{}, fmt.Errorf("update product request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Product{}, err
	}

	return product, nil
}

// DeleteProduct implements [ServerAdapter]. DELETE /products/{id}, requires a
// token.
func (h *httpServerAdapter) DeleteProduct(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/products/{id}")
	if err != nil {
		return fmt.Errorf("delete product request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListFavorites implements [ServerAdapter]. GET /favorites, requires a token.
func (h *httpServerAdapter) ListFavorites(ctx context.Context, page models.PageRequest) (models.FavoritePage, error) {
	var favorites models.FavoritePage

	req := h.request(ctx).SetResult(&favorites)
	if page.Page != 0 {
		req.SetQueryParam("page", strconv.Itoa(page.Page))
	}
	if page.Limit != 0 {
		req.SetQueryParam("limit", strconv.Itoa(page.Limit))
	}

	resp, err := req.Get("/favorites")
	if err != nil {
		return models.FavoritePage{}, fmt.Errorf("list favorites request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FavoritePage{}, err
	}

	return favorites, nil
}

// AddFavorite implements [ServerAdapter]. POST /favorites/{productId}.
func (h *httpServerAdapter) AddFavorite(ctx context.Context, productID int64) error {
	resp, err := h.request(ctx).
		SetPathParam("productId", strconv.FormatInt(productID, 10)).
		Post("/favorites/{productId}")
	if err != nil {
		return fmt.Errorf("add favorite request: %w", err)
	}

	return mapHTTPError(resp)
}

// RemoveFavorite implements [ServerAdapter]. DELETE /favorites/{productId}.
func (h *httpServerAdapter) RemoveFavorite(ctx context.Context, productID int64) error {
	resp, err := h.request(ctx).
		SetPathParam("productId", strconv.FormatInt(productID, 10)).
		Delete("/favorites/{productId}")
	if err != nil {
		return fmt.Errorf("remove favorite request: %w", err)
	}

	return mapHTTPError(resp)
}

// request starts a request carrying the bearer token when one is set.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
