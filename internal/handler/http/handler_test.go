package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each mock implements one service interface; method fields are overridden
// per test case. Calling a method whose field is nil panics, which the
// recover middleware turns into a 500 the test will notice.

type mockAppInfoService struct {
	version string
	pingFn  func(ctx context.Context) error
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string { return m.version }

func (m *mockAppInfoService) Ping(ctx context.Context) error {
	if m.pingFn == nil {
		return nil
	}
	return m.pingFn(ctx)
}

type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockProductService struct {
	listFn   func(ctx context.Context, filter models.ProductFilter, viewerID int64) (models.ProductPage, error)
	getFn    func(ctx context.Context, id, viewerID int64) (models.Product, error)
	createFn func(ctx context.Context, input models.ProductInput) (models.Product, error)
	updateFn func(ctx context.Context, userID, id int64, update models.ProductUpdate) (models.Product, error)
	deleteFn func(ctx context.Context, userID, id int64) error
}

func (m *mockProductService) ListProducts(ctx context.Context, filter models.ProductFilter, viewerID int64) (models.ProductPage, error) {
	return m.listFn(ctx, filter, viewerID)
}

func (m *mockProductService) GetProduct(ctx context.Context, id, viewerID int64) (models.Product, error) {
	return m.getFn(ctx, id, viewerID)
}

func (m *mockProductService) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	return m.createFn(ctx, input)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, userID, id int64, update models.ProductUpdate) (models.Product, error) {
	return m.updateFn(ctx, userID, id, update)
}

func (m *mockProductService) DeleteProduct(ctx context.Context, userID, id int64) error {
	return m.deleteFn(ctx, userID, id)
}

type mockFavoriteService struct {
	listFn   func(ctx context.Context, userID int64, page, limit int) (models.FavoritePage, error)
	addFn    func(ctx context.Context, userID, productID int64) error
	removeFn func(ctx context.Context, userID, productID int64) error
}

func (m *mockFavoriteService) ListFavorites(ctx context.Context, userID int64, page, limit int) (models.FavoritePage, error) {
	return m.listFn(ctx, userID, page, limit)
}

func (m *mockFavoriteService) AddFavorite(ctx context.Context, userID, productID int64) error {
	return m.addFn(ctx, userID, productID)
}

func (m *mockFavoriteService) RemoveFavorite(ctx context.Context, userID, productID int64) error {
	return m.removeFn(ctx, userID, productID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var (
	john = models.Identity{ID: 1, Username: "john_doe", Email: "john@example.com"}
	jane = models.Identity{ID: 2, Username: "jane_smith", Email: "jane@example.com"}
)

// tokenAuth returns an AuthService mock whose ParseToken accepts "john-token"
// and "jane-token", reports "expired-token" as expired and rejects the rest.
func tokenAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			switch tokenString {
			case "john-token":
				return tokenFor(john), nil
			case "jane-token":
				return tokenFor(jane), nil
			case "expired-token":
				return models.Token{}, service.ErrTokenIsExpired
			default:
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
		},
	}
}

func tokenFor(identity models.Identity) models.Token {
	return models.Token{
		Claims: models.TokenClaims{UserID: identity.ID, Username: identity.Username, Email: identity.Email},
	}
}

// newTestRouter builds the full router over the given services. Nil
// services are replaced with empty mocks.
func newTestRouter(t *testing.T, svcs *service.Services, cfg config.Server) http.Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = tokenAuth()
	}
	if svcs.ProductService == nil {
		svcs.ProductService = &mockProductService{}
	}
	if svcs.FavoriteService == nil {
		svcs.FavoriteService = &mockFavoriteService{}
	}
	return NewHandler(svcs, cfg, logger.Nop()).Init()
}

// do sends the request through router. An empty token sends no
// Authorization header.
func do(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[models.ErrorResponse](t, rec).Error
}
