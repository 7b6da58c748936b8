package http

import (
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
)

var apiEndpoints = map[string]map[string]string{
	"auth": {
		"register": "POST /auth/register",
		"login":    "POST /auth/login",
	},
	"products": {
		"list":   "GET /products",
		"single": "GET /products/:id",
		"create": "POST /products",
		"update": "PUT /products/:id",
		"delete": "DELETE /products/:id",
	},
	"favorites": {
		"list":   "GET /favorites",
		"add":    "POST /favorites/:productId",
		"remove": "DELETE /favorites/:productId",
	},
}

func (h *Handler) apiInfo(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.APIInfo{
		Message:   app.MsgAPIIsRunning,
		Version:   h.services.AppInfoService.GetAppVersion(r.Context()),
		Endpoints: apiEndpoints,
	}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		utils.WriteJSON(w, models.HealthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
