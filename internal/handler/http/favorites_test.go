// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/models"
)

// favoritesRouter serves favorites from an in-memory set of product ids
// per user. Product 404 does not exist.
func favoritesRouter(t *testing.T) http.Handler {
	t.Helper()
	saved := map[int64]map[int64]bool{}

	favorites := &mockFavoriteService{
		listFn: func(_ context.Context, userID int64, page, limit int) (models.FavoritePage, error) {
			now := time.Now()
			out := models.FavoritePage{Favorites: []models.Product{}}
			for id := range saved[userID] {
				out.Favorites = append(out.Favorites, models.Product{ID: id, IsFavorited: true, FavoritedAt: &now})
			}
			out.Pagination = models.Pagination{Page: page, Limit: limit, Total: int64(len(out.Favorites))}
			return out, nil
		},
		addFn: func(_ context.Context, userID, productID int64) error {
			if productID == 404 {
				return service.ErrProductNotFound
			}
			if saved[userID][productID] {
				return service.ErrFavoriteAlreadyExists
			}
			if saved[userID] == nil {
				saved[userID] = map[int64]bool{}
			}
			saved[userID][productID] = true
			return nil
		},
		removeFn: func(_ context.Context, userID, productID int64) error {
			if !saved[userID][productID] {
				return service.ErrFavoriteNotFound
			}
			delete(saved[userID], productID)
			return nil
		},
	}

	return newTestRouter(t, &service.Services{FavoriteService: favorites}, config.Server{})
}

func TestFavorites_AddRemoveLifecycle(t *testing.T) {
	router := favoritesRouter(t)

	rec := do(t, router, http.MethodPost, "/favorites/3", "", "john-token")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, app.MsgAddedToFavorites, decode[models.MessageResponse](t, rec).Message)

	rec = do(t, router, http.MethodPost, "/favorites/3", "", "john-token")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, app.MsgFavoriteAlreadyExists, errorMessage(t, rec))

	rec = do(t, router, http.MethodGet, "/favorites?page=1&limit=20", "", "john-token")
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[models.FavoritePage](t, rec)
	require.Len(t, page.Favorites, 1)
	assert.True(t, page.Favorites[0].IsFavorited)
	assert.NotNil(t, page.Favorites[0].FavoritedAt)

	rec = do(t, router, http.MethodDelete, "/favorites/3", "", "john-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgRemovedFromFavorites, decode[models.MessageResponse](t, rec).Message)

	rec = do(t, router, http.MethodDelete, "/favorites/3", "", "john-token")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgFavoriteNotFound, errorMessage(t, rec))
}

func TestFavorites_Errors(t *testing.T) {
	router := favoritesRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
		wantError  string
	}{
		{"add missing product", http.MethodPost, "/favorites/404", "john-token", http.StatusNotFound, app.MsgProductNotFound},
		{"add bad id", http.MethodPost, "/favorites/abc", "john-token", http.StatusNotFound, app.MsgProductNotFound},
		{"remove bad id", http.MethodDelete, "/favorites/0", "john-token", http.StatusNotFound, app.MsgFavoriteNotFound},
		{"list without token", http.MethodGet, "/favorites", "", http.StatusUnauthorized, app.MsgNoToken},
		{"add with expired token", http.MethodPost, "/favorites/1", "expired-token", http.StatusUnauthorized, app.MsgTokenIsExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, tt.method, tt.path, "", tt.token)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, errorMessage(t, rec))
		})
	}
}

func TestFavorites_ArePerUser(t *testing.T) {
	router := favoritesRouter(t)

	require.Equal(t, http.StatusCreated, do(t, router, http.MethodPost, "/favorites/5", "", "jane-token").Code)

	rec := do(t, router, http.MethodGet, "/favorites", "", "john-token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[models.FavoritePage](t, rec).Favorites)
}
