package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/mock"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
)

func newTestProductSvc(t *testing.T) (ProductService, *mock.MockProductRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProductRepository(ctrl)

	return NewProductService(repo, logger.Nop()), repo
}

func ownedProduct(id, sellerID int64) models.Product {
	return models.Product{ID: id, Title: "Headphones", SellerID: &sellerID}
}

// ── ListProducts ─────────────────────────────────────────────────────────────

func TestNewProductQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter models.ProductFilter
		want   models.ProductQuery
	}{
		{
			name:   "defaults",
			filter: models.ProductFilter{},
			want: models.ProductQuery{
				PageRequest: models.PageRequest{Page: 1, Limit: 10},
				SortBy:      models.SortByCreatedAt,
				Order:       models.OrderDesc,
			},
		},
		{
			name:   "explicit ascending price",
			filter: models.ProductFilter{Page: 2, Limit: 5, SortBy: "price", Order: "asc", Search: " lamp ", Category: "home"},
			want: models.ProductQuery{
				PageRequest: models.PageRequest{Page: 2, Limit: 5},
				Search:      "lamp",
				Category:    "home",
				SortBy:      models.SortByPrice,
				Order:       models.OrderAsc,
			},
		},
		{
			name:   "unknown sort column and order",
			filter: models.ProductFilter{SortBy: "seller_id; DROP TABLE users", Order: "sideways", Limit: 100},
			want: models.ProductQuery{
				PageRequest: models.PageRequest{Page: 1, Limit: models.MaxLimit},
				SortBy:      models.SortByCreatedAt,
				Order:       models.OrderDesc,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newProductQuery(tt.filter, 0))
		})
	}
}

func TestProductService_ListProducts(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	ctx := context.Background()

	products := []models.Product{{ID: 1}, {ID: 2}}
	repo.EXPECT().ListProducts(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, q models.ProductQuery) ([]models.Product, int64, error) {
			assert.Equal(t, int64(9), q.ViewerID)
			assert.Equal(t, 2, q.Limit)
			return products, 5, nil
		},
	)

	page, err := svc.ListProducts(ctx, models.ProductFilter{Limit: 2}, 9)
	require.NoError(t, err)
	assert.Len(t, page.Products, 2)
	assert.Equal(t, models.Pagination{Page: 1, Limit: 2, Total: 5, TotalPages: 3, HasNext: true}, page.Pagination)
}

func TestProductService_ListProducts_StorageError(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	repo.EXPECT().ListProducts(gomock.Any(), gomock.Any()).Return(nil, int64(0), store.ErrExecutingQuery)

	_, err := svc.ListProducts(context.Background(), models.ProductFilter{}, 0)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── GetProduct ───────────────────────────────────────────────────────────────

func TestProductService_GetProduct_NotFound(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	repo.EXPECT().GetProduct(gomock.Any(), int64(4), int64(0)).Return(models.Product{}, store.ErrProductNotFound)

	_, err := svc.GetProduct(context.Background(), 4, 0)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

// ── CreateProduct ────────────────────────────────────────────────────────────

func TestProductService_CreateProduct(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	ctx := context.Background()

	input := models.ProductInput{Title: "Headphones", Description: "Great sound quality headphones", Price: 99.99, SellerID: 1}
	repo.EXPECT().CreateProduct(ctx, input).Return(ownedProduct(10, 1), nil)

	product, err := svc.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.True(t, product.IsOwnedBy(1))
}

// ── UpdateProduct ────────────────────────────────────────────────────────────

func TestProductService_UpdateProduct_Success(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	ctx := context.Background()
	update := models.ProductUpdate{Price: models.Some(49.5)}

	updated := ownedProduct(10, 1)
	updated.Price = 49.5

	gomock.InOrder(
		repo.EXPECT().GetProduct(ctx, int64(10), int64(0)).Return(ownedProduct(10, 1), nil),
		repo.EXPECT().UpdateProduct(ctx, int64(10), update).Return(nil),
		repo.EXPECT().GetProduct(ctx, int64(10), int64(1)).Return(updated, nil),
	)

	product, err := svc.UpdateProduct(ctx, 1, 10, update)
	require.NoError(t, err)
	assert.InDelta(t, 49.5, product.Price, 1e-9)
}

func TestProductService_UpdateProduct_NotOwner(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	ctx := context.Background()

	// UpdateProduct must never be reached
	repo.EXPECT().GetProduct(ctx, int64(10), int64(0)).Return(ownedProduct(10, 1), nil)

	_, err := svc.UpdateProduct(ctx, 2, 10, models.ProductUpdate{Title: models.Some("Stolen")})
	assert.ErrorIs(t, err, ErrNotAllowedToUpdateProduct)
}

func TestProductService_UpdateProduct_OrphanedProduct(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetProduct(ctx, int64(10), int64(0)).Return(models.Product{ID: 10}, nil)

	_, err := svc.UpdateProduct(ctx, 1, 10, models.ProductUpdate{})
	assert.ErrorIs(t, err, ErrNotAllowedToUpdateProduct)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	repo.EXPECT().GetProduct(gomock.Any(), int64(10), int64(0)).Return(models.Product{}, store.ErrProductNotFound)

	_, err := svc.UpdateProduct(context.Background(), 1, 10, models.ProductUpdate{})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductService_UpdateProduct_DeletedConcurrently(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetProduct(ctx, int64(10), int64(0)).Return(ownedProduct(10, 1), nil)
	repo.EXPECT().UpdateProduct(ctx, int64(10), gomock.Any()).Return(store.ErrProductNotFound)

	_, err := svc.UpdateProduct(ctx, 1, 10, models.ProductUpdate{})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

// ── DeleteProduct ────────────────────────────────────────────────────────────

func TestProductService_DeleteProduct(t *testing.T) {
	svc, repo := newTestProductSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetProduct(ctx, int64(10), int64(0)).Return(ownedProduct(10, 1), nil).Times(2)
	repo.EXPECT().DeleteProduct(ctx, int64(10)).Return(nil)

	assert.ErrorIs(t, svc.DeleteProduct(ctx, 2, 10), ErrNotAllowedToDeleteProduct)
	assert.NoError(t, svc.DeleteProduct(ctx, 1, 10))
}
