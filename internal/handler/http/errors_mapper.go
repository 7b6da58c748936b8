package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/internal/validators"
	"github.com/MKhiriev/go-marketplace/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidRequestBody:     http.StatusBadRequest,
	ErrNoToken:                http.StatusUnauthorized,
	ErrMalformedAuthorization: http.StatusUnauthorized,
	ErrRouteNotFound:          http.StatusNotFound,

	service.ErrUserAlreadyExists:       http.StatusConflict,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrProductNotFound:           http.StatusNotFound,
	service.ErrNotAllowedToUpdateProduct: http.StatusForbidden,
	service.ErrNotAllowedToDeleteProduct: http.StatusForbidden,

	service.ErrFavoriteAlreadyExists: http.StatusConflict,
	service.ErrFavoriteNotFound:      http.StatusNotFound,
}

// statusFromError returns the response status for err together with the
// sentinel it matched. Unknown errors map to 500 and a nil sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError renders err as the JSON error body. Validation failures list
// their fields; anything not in errorStatusMap is logged and hidden behind
// a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: validationErr.Fields}, http.StatusBadRequest)
		return
	}

	status, target := statusFromError(err)
	if target == nil {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("request failed with unexpected error")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalServerError}, status)
		return
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: target.Error()}, status)
}
