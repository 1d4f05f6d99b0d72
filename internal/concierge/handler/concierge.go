package handler

import (
	"errors"
	"net/http"

	"luxestay/internal/concierge/service"
	"luxestay/pkg/auth"
	apperrors "luxestay/pkg/errors"
	httputil "luxestay/pkg/http"
	"luxestay/pkg/logger"
	"luxestay/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ConciergeHandler struct {
	service service.ConciergeService
	tokens  *auth.TokenIssuer
	log     *logger.Logger
}

func NewConciergeHandler(service service.ConciergeService, tokens *auth.TokenIssuer, log *logger.Logger) *ConciergeHandler {
	return &ConciergeHandler{
		service: service,
		tokens:  tokens,
		log:     log,
	}
}

// Create opens a session. A bearer token is optional; when present it must be
// valid and its subject becomes the session's user.
func (h *ConciergeHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, err := h.optionalUser(r)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	turn, err := h.service.Create(r.Context(), userID)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, turn); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ConciergeHandler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess, err := h.service.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Get", err)
		return
	}

	if err := httputil.WriteSuccess(w, sess); err != nil {
		h.log.Error("failed to write success response", "handler", "Get", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ConciergeHandler) Send(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req model.ConciergeMessage
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "Send", err)
		return
	}

	turn, err := h.service.Send(r.Context(), ps.ByName("id"), req.Message)
	if err != nil {
		h.writeError(w, "Send", err)
		return
	}

	if err := httputil.WriteSuccess(w, turn); err != nil {
		h.log.Error("failed to write success response", "handler", "Send", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ConciergeHandler) Reset(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	turn, err := h.service.Reset(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Reset", err)
		return
	}

	if err := httputil.WriteSuccess(w, turn); err != nil {
		h.log.Error("failed to write success response", "handler", "Reset", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ConciergeHandler) Results(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	results, err := h.service.Results(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Results", err)
		return
	}

	if err := httputil.WriteSuccess(w, results); err != nil {
		h.log.Error("failed to write success response", "handler", "Results", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ConciergeHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *ConciergeHandler) optionalUser(r *http.Request) (string, error) {
	token, err := auth.BearerToken(r)
	if errors.Is(err, auth.ErrMissingToken) || h.tokens == nil {
		return "", nil
	}
	if err != nil {
		return "", apperrors.Unauthorized("Invalid authorization header")
	}

	userID, err := h.tokens.Subject(token)
	if err != nil {
		return "", apperrors.Unauthorized("Invalid or expired token")
	}
	return userID, nil
}

func (h *ConciergeHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *ConciergeHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/concierge/sessions", h.Create)
	router.GET("/api/v1/concierge/sessions/:id", h.Get)
	router.DELETE("/api/v1/concierge/sessions/:id", h.Delete)
	router.POST("/api/v1/concierge/sessions/:id/messages", h.Send)
	router.POST("/api/v1/concierge/sessions/:id/reset", h.Reset)
	router.GET("/api/v1/concierge/sessions/:id/results", h.Results)
}
