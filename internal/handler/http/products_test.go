package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/models"
)

func productsRouter(t *testing.T, products *mockProductService) http.Handler {
	t.Helper()
	return newTestRouter(t, &service.Services{ProductService: products}, config.Server{})
}

func sellerID(id int64) *int64 { return &id }

// ─────────────────────────────────────────────
// listProducts
// ─────────────────────────────────────────────

func TestListProducts_PassesFilterAndViewer(t *testing.T) {
	products := &mockProductService{
		listFn: func(_ context.Context, filter models.ProductFilter, viewerID int64) (models.ProductPage, error) {
			assert.Equal(t, models.ProductFilter{
				Page: 2, Limit: 5, Search: "lamp", Category: "home", SortBy: "price", Order: "asc",
			}, filter)
			assert.Equal(t, john.ID, viewerID)
			return models.ProductPage{
				Products:   []models.Product{{ID: 4, Title: "Desk Lamp", IsFavorited: true}},
				Pagination: models.Pagination{Page: 2, Limit: 5, Total: 6, TotalPages: 2, HasPrev: true},
			}, nil
		},
	}

	rec := do(t, productsRouter(t, products), http.MethodGet,
		"/products?page=2&limit=5&search=lamp&category=home&sortBy=price&order=asc", "", "john-token")

	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[models.ProductPage](t, rec)
	require.Len(t, page.Products, 1)
	assert.True(t, page.Products[0].IsFavorited)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Contains(t, rec.Body.String(), `"totalPages":2`)
	assert.Contains(t, rec.Body.String(), `"hasPrev":true`)
}

func TestListProducts_AnonymousAndBadNumbers(t *testing.T) {
	products := &mockProductService{
		listFn: func(_ context.Context, filter models.ProductFilter, viewerID int64) (models.ProductPage, error) {
			assert.Zero(t, filter.Page, "non-numeric page falls back to the default")
			assert.Zero(t, filter.Limit)
			assert.Zero(t, viewerID)
			return models.ProductPage{Products: []models.Product{}}, nil
		},
	}

	for _, token := range []string{"", "forged"} {
		rec := do(t, productsRouter(t, products), http.MethodGet, "/products?page=abc&limit=", "", token)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

// ─────────────────────────────────────────────
// getProduct
// ─────────────────────────────────────────────

func TestGetProduct(t *testing.T) {
	products := &mockProductService{
		getFn: func(_ context.Context, id, viewerID int64) (models.Product, error) {
			if id != 1 {
				return models.Product{}, service.ErrProductNotFound
			}
			return models.Product{ID: 1, Title: "Headphones", SellerID: sellerID(john.ID), IsFavorited: viewerID == jane.ID}, nil
		},
	}
	router := productsRouter(t, products)

	tests := []struct {
		name          string
		path          string
		token         string
		wantStatus    int
		wantFavorited bool
	}{
		{name: "anonymous", path: "/products/1", wantStatus: http.StatusOK},
		{name: "viewer flag", path: "/products/1", token: "jane-token", wantStatus: http.StatusOK, wantFavorited: true},
		{name: "missing", path: "/products/99", wantStatus: http.StatusNotFound},
		{name: "non-numeric id", path: "/products/abc", wantStatus: http.StatusNotFound},
		{name: "zero id", path: "/products/0", wantStatus: http.StatusNotFound},
		{name: "negative id", path: "/products/-3", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, tt.path, "", tt.token)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNotFound {
				assert.Equal(t, app.MsgProductNotFound, errorMessage(t, rec))
				return
			}
			assert.Equal(t, tt.wantFavorited, decode[models.Product](t, rec).IsFavorited)
		})
	}
}

// ─────────────────────────────────────────────
// createProduct
// ─────────────────────────────────────────────

func TestCreateProduct_Success(t *testing.T) {
	products := &mockProductService{
		createFn: func(_ context.Context, input models.ProductInput) (models.Product, error) {
			assert.Equal(t, john.ID, input.SellerID, "seller comes from the token")
			assert.Equal(t, "Headphones", input.Title)
			return models.Product{ID: 11, Title: input.Title, Price: input.Price, SellerID: sellerID(input.SellerID)}, nil
		},
	}

	rec := do(t, productsRouter(t, products), http.MethodPost, "/products",
		`{"title":"Headphones","description":"Great sound quality headphones","price":99.99,"seller_id":2}`, "john-token")

	require.Equal(t, http.StatusCreated, rec.Code)
	product := decode[models.Product](t, rec)
	require.NotNil(t, product.SellerID)
	assert.Equal(t, john.ID, *product.SellerID)
}

func TestCreateProduct_RequiresAuth(t *testing.T) {
	rec := do(t, productsRouter(t, &mockProductService{}), http.MethodPost, "/products",
		`{"title":"Headphones","description":"Great sound quality headphones","price":99.99}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, app.MsgNoToken, errorMessage(t, rec))
}

func TestCreateProduct_Validation(t *testing.T) {
	rec := do(t, productsRouter(t, &mockProductService{}), http.MethodPost, "/products",
		`{"title":"H","description":"short","price":0,"image":"not a url"}`, "john-token")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, decode[models.ValidationErrorResponse](t, rec).Errors, 4)
}

func validationMessages(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, f := range decode[models.ValidationErrorResponse](t, rec).Errors {
		out[f.Field] = f.Message
	}
	return out
}

func TestCreateProduct_TrimmedBeforeValidation(t *testing.T) {
	products := &mockProductService{
		createFn: func(_ context.Context, input models.ProductInput) (models.Product, error) {
			assert.Equal(t, "Lamp", input.Title)
			assert.Equal(t, "A very bright lamp", input.Description)
			assert.Equal(t, "home", input.Category)
			return models.Product{ID: 12, Title: input.Title}, nil
		},
	}
	router := productsRouter(t, products)

	rec := do(t, router, http.MethodPost, "/products",
		`{"title":"  ","description":"          x","price":1}`, "john-token")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{
		"title":       "Title must be 2-200 characters",
		"description": "Description must be 10-2000 characters",
	}, validationMessages(t, rec))

	rec = do(t, router, http.MethodPost, "/products",
		`{"title":"  Lamp ","description":"  A very bright lamp  ","price":5,"category":" home "}`, "john-token")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

// ─────────────────────────────────────────────
// updateProduct
// ─────────────────────────────────────────────

func TestUpdateProduct_PresentValuesValidated(t *testing.T) {
	called := false
	products := &mockProductService{
		updateFn: func(context.Context, int64, int64, models.ProductUpdate) (models.Product, error) {
			called = true
			return models.Product{}, nil
		},
	}
	router := productsRouter(t, products)

	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{
			name: "empty title and description",
			body: `{"title":"","description":""}`,
			want: map[string]string{
				"title":       "Title must be 2-200 characters",
				"description": "Description must be 10-2000 characters",
			},
		},
		{name: "zero price", body: `{"price":0}`, want: map[string]string{"price": "Price must be greater than 0"}},
		{name: "whitespace title", body: `{"title":"   "}`, want: map[string]string{"title": "Title must be 2-200 characters"}},
		{name: "empty image", body: `{"image":""}`, want: map[string]string{"image": "Image must be a valid URL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPut, "/products/1", tt.body, "john-token")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, validationMessages(t, rec))
		})
	}
	assert.False(t, called, "service must not be reached with invalid input")
}

func TestUpdateProduct_PartialBody(t *testing.T) {
	products := &mockProductService{
		updateFn: func(_ context.Context, userID, id int64, update models.ProductUpdate) (models.Product, error) {
			assert.Equal(t, john.ID, userID)
			assert.Equal(t, int64(1), id)
			assert.Equal(t, models.Some(79.99), update.Price)
			assert.True(t, update.Image.Set && update.Image.Null, "null clears the image")
			assert.False(t, update.Title.Set)
			return models.Product{ID: 1, Price: 79.99}, nil
		},
	}

	rec := do(t, productsRouter(t, products), http.MethodPut, "/products/1", `{"price":79.99,"image":null}`, "john-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 79.99, decode[models.Product](t, rec).Price, 1e-9)
}

func TestUpdateProduct_Errors(t *testing.T) {
	products := &mockProductService{
		updateFn: func(_ context.Context, userID, id int64, _ models.ProductUpdate) (models.Product, error) {
			if id == 99 {
				return models.Product{}, service.ErrProductNotFound
			}
			if userID != john.ID {
				return models.Product{}, service.ErrNotAllowedToUpdateProduct
			}
			return models.Product{ID: id}, nil
		},
	}
	router := productsRouter(t, products)

	tests := []struct {
		name       string
		path       string
		body       string
		token      string
		wantStatus int
		wantError  string
	}{
		{"not owner", "/products/1", `{"price":5}`, "jane-token", http.StatusForbidden, app.MsgNotAllowedToUpdateProduct},
		{"missing", "/products/99", `{"price":5}`, "john-token", http.StatusNotFound, app.MsgProductNotFound},
		{"bad id", "/products/x", `{"price":5}`, "john-token", http.StatusNotFound, app.MsgProductNotFound},
		{"no token", "/products/1", `{"price":5}`, "", http.StatusUnauthorized, app.MsgNoToken},
		{"bad json", "/products/1", `{"price":`, "john-token", http.StatusBadRequest, app.MsgInvalidRequestBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodPut, tt.path, tt.body, tt.token)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, errorMessage(t, rec))
		})
	}
}

func TestUpdateProduct_NullTitleRejected(t *testing.T) {
	rec := do(t, productsRouter(t, &mockProductService{}), http.MethodPut, "/products/1", `{"title":null}`, "john-token")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[models.ValidationErrorResponse](t, rec)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "title", resp.Errors[0].Field)
}

// ─────────────────────────────────────────────
// deleteProduct
// ─────────────────────────────────────────────

func TestDeleteProduct(t *testing.T) {
	products := &mockProductService{
		deleteFn: func(_ context.Context, userID, id int64) error {
			if userID != john.ID {
				return service.ErrNotAllowedToDeleteProduct
			}
			return nil
		},
	}
	router := productsRouter(t, products)

	rec := do(t, router, http.MethodDelete, "/products/1", "", "jane-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, app.MsgNotAllowedToDeleteProduct, errorMessage(t, rec))

	rec = do(t, router, http.MethodDelete, "/products/1", "", "john-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgProductDeleted, decode[models.MessageResponse](t, rec).Message)
}
