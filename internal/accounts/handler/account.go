package handler

import (
	"net/http"

	"luxestay/internal/accounts/service"
	httputil "luxestay/pkg/http"
	"luxestay/pkg/logger"
	"luxestay/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type AccountHandler struct {
	service service.AccountService
	log     *logger.Logger
}

func NewAccountHandler(service service.AccountService, log *logger.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		log:     log,
	}
}

func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var reg model.Registration
	if err := httputil.DecodeJSON(r, &reg); err != nil {
		h.writeError(w, "Register", err)
		return
	}

	account, err := h.service.Register(r.Context(), &reg)
	if err != nil {
		h.writeError(w, "Register", err)
		return
	}

	if err := httputil.WriteCreated(w, account); err != nil {
		h.log.Error("failed to write created response", "handler", "Register", "operation", "WriteCreated", "error", err)
	}
}

func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var creds model.Credentials
	if err := httputil.DecodeJSON(r, &creds); err != nil {
		h.writeError(w, "Login", err)
		return
	}

	result, err := h.service.Authenticate(r.Context(), &creds)
	if err != nil {
		h.writeError(w, "Login", err)
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "Login", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AccountHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *AccountHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/accounts/register", h.Register)
	router.POST("/api/v1/accounts/login", h.Login)
}
