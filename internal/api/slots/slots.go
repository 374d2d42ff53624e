package slots

import (
	dto "casino_bot_backend/internal/api/dto/slots"
	"casino_bot_backend/internal/api/httperr"
	"casino_bot_backend/internal/converter"
	"casino_bot_backend/internal/middleware"
	"casino_bot_backend/internal/service"
	"casino_bot_backend/pkg/req"
	"casino_bot_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.SlotsService
}

type Handler struct {
	serv service.SlotsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.serv.Spin(r.Context(), userID, payload.Bet)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSlotsSpinResponse(*result))
}
