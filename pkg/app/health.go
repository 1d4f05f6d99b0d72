package app

import (
	"context"
	"net/http"
	"time"

	"luxestay/pkg/client"
	httputil "luxestay/pkg/http"
	"luxestay/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const readyTimeout = 2 * time.Second

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Cache    string `json:"cache,omitempty"`
}

type HealthHandler struct {
	client *client.Client
	log    *logger.Logger
}

func NewHealthHandler(c *client.Client, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		client: c,
		log:    log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.write(w, "Health", http.StatusOK, HealthResponse{Status: "ok"})
}

// Ready pings MongoDB, and Redis when one is configured.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ready", Database: "ok"}
	status := http.StatusOK

	if h.client.Mongo == nil {
		resp.Database = "not connected"
		status = http.StatusServiceUnavailable
	} else if err := h.client.Mongo.Ping(ctx, nil); err != nil {
		h.log.Error("Database health check failed", "error", err, "path", r.URL.Path)
		resp.Database = "error"
		status = http.StatusServiceUnavailable
	}

	if h.client.Redis != nil {
		resp.Cache = "ok"
		if err := h.client.Redis.Ping(ctx).Err(); err != nil {
			h.log.Error("Redis health check failed", "error", err, "path", r.URL.Path)
			resp.Cache = "error"
			status = http.StatusServiceUnavailable
		}
	}

	if status != http.StatusOK {
		resp.Status = "unavailable"
	}
	h.write(w, "Ready", status, resp)
}

func (h *HealthHandler) write(w http.ResponseWriter, handler string, status int, resp HealthResponse) {
	if err := httputil.WriteJSON(w, status, resp); err != nil {
		h.log.Error("failed to write JSON response", "handler", handler, "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
