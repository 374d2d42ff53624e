package blackjack

import (
	dto "casino_bot_backend/internal/api/dto/blackjack"
	"casino_bot_backend/internal/api/httperr"
	"casino_bot_backend/internal/converter"
	"casino_bot_backend/internal/middleware"
	"casino_bot_backend/internal/service"
	"casino_bot_backend/pkg/req"
	"casino_bot_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.BlackjackService
}

type Handler struct {
	serv service.BlackjackService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.StartRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Start(r.Context(), userID, payload.Bet)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackStartResponse(*result))
}

func (h *Handler) Hit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.serv.Hit(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackHitResponse(*result))
}

func (h *Handler) Stand(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.serv.Stand(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackStandResponse(*result))
}
