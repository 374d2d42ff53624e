package roulette

import (
	dto "casino_bot_backend/internal/api/dto/roulette"
	"casino_bot_backend/internal/api/httperr"
	"casino_bot_backend/internal/converter"
	"casino_bot_backend/internal/middleware"
	"casino_bot_backend/internal/service"
	"casino_bot_backend/pkg/req"
	"casino_bot_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.RouletteService
}

type Handler struct {
	serv service.RouletteService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.PlaceBet(r.Context(), userID, payload.Category, payload.Value, payload.Stake)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRouletteBetResponse(*result))
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := h.serv.Spin(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRouletteSpinResponse(*result))
}
