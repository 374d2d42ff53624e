package profile

import (
	"casino_bot_backend/internal/api/httperr"
	"casino_bot_backend/internal/converter"
	"casino_bot_backend/internal/middleware"
	"casino_bot_backend/internal/service"
	"casino_bot_backend/pkg/resp"
	"net/http"
	"strconv"
)

type HandlerDeps struct {
	Serv service.ProfileService
}

type Handler struct {
	serv service.ProfileService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.serv.Profile(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(user))
}

// TopPlayers отдаёт рейтинговую таблицу, лимит берётся из query-параметра
func (h *Handler) TopPlayers(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	players, err := h.serv.TopPlayers(r.Context(), limit)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTopPlayersResponse(players))
}
