package handler

import (
	"net/http"

	"luxestay/internal/chat/service"
	httputil "luxestay/pkg/http"
	"luxestay/pkg/logger"
	"luxestay/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ChatHandler struct {
	service service.ChatService
	log     *logger.Logger
}

func NewChatHandler(service service.ChatService, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log,
	}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ChatRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "Chat", err)
		return
	}

	resp, err := h.service.Chat(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Chat", err)
		return
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "Chat", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ChatHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *ChatHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/chat", h.Chat)
}
