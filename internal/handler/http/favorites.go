package http

import (
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
)

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	page, err := h.services.FavoriteService.ListFavorites(ctx, userID, queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, ok := pathID(r, "productId")
	if !ok {
		writeError(w, r, service.ErrProductNotFound)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	if err := h.services.FavoriteService.AddFavorite(ctx, userID, productID); err != nil {
		logger.FromRequest(r).Debug().Err(err).Int64("product_id", productID).Msg("add favorite failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAddedToFavorites}, http.StatusCreated)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, ok := pathID(r, "productId")
	if !ok {
		writeError(w, r, service.ErrFavoriteNotFound)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	if err := h.services.FavoriteService.RemoveFavorite(ctx, userID, productID); err != nil {
		logger.FromRequest(r).Debug().Err(err).Int64("product_id", productID).Msg("remove favorite failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgRemovedFromFavorites}, http.StatusOK)
}
