package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		log.Err(err).Msg("invalid register body")
		writeError(w, r, err)
		return
	}
	req.Normalize()

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("register request rejected")
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("registration failed")
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", resp.User.ID).Msg("user registered")
	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		log.Err(err).Msg("invalid login body")
		writeError(w, r, err)
		return
	}
	req.Normalize()

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("login request rejected")
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Msg("login failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", resp.User.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, resp, http.StatusOK)
}

// decodeBody decodes the JSON body into dst. A missing body leaves dst
// untouched so the validator reports the missing fields.
func decodeBody(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
}
