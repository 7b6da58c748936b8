// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	filter := models.ProductFilter{
		Page:     queryInt(r, "page"),
		Limit:    queryInt(r, "limit"),
		Search:   query.Get("search"),
		Category: query.Get("category"),
		SortBy:   query.Get("sortBy"),
		Order:    query.Get("order"),
	}
	viewerID, _ := utils.GetUserIDFromContext(ctx)

	page, err := h.services.ProductService.ListProducts(ctx, filter, viewerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, service.ErrProductNotFound)
		return
	}
	viewerID, _ := utils.GetUserIDFromContext(ctx)

	product, err := h.services.ProductService.GetProduct(ctx, id, viewerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.ProductInput
	if err := decodeBody(r, &input); err != nil {
		log.Err(err).Msg("invalid product body")
		writeError(w, r, err)
		return
	}
	input.Normalize()

	if err := h.validator.Validate(ctx, input); err != nil {
		writeError(w, r, err)
		return
	}

	identity, _ := utils.GetIdentityFromContext(ctx)
	input.SellerID = identity.ID

	product, err := h.services.ProductService.CreateProduct(ctx, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("product_id", product.ID).Int64("seller_id", identity.ID).Msg("product created")
	utils.WriteJSON(w, product, http.StatusCreated)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, service.ErrProductNotFound)
		return
	}

	var update models.ProductUpdate
	if err := decodeBody(r, &update); err != nil {
		log.Err(err).Msg("invalid product update body")
		writeError(w, r, err)
		return
	}
	update.Normalize()

	if err := h.validator.Validate(ctx, update); err != nil {
		writeError(w, r, err)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	product, err := h.services.ProductService.UpdateProduct(ctx, userID, id, update)
	if err != nil {
		log.Err(err).Int64("product_id", id).Msg("product update failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, service.ErrProductNotFound)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	if err := h.services.ProductService.DeleteProduct(ctx, userID, id); err != nil {
		logger.FromRequest(r).Err(err).Int64("product_id", id).Msg("product delete failed")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgProductDeleted}, http.StatusOK)
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt returns the integer query parameter, or 0 when it is missing or
// not a number. Zero selects the default downstream.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}
