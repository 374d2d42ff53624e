package admin

import (
	dto "casino_bot_backend/internal/api/dto/admin"
	"casino_bot_backend/internal/api/httperr"
	"casino_bot_backend/internal/config"
	"casino_bot_backend/internal/middleware"
	"casino_bot_backend/internal/service"
	"casino_bot_backend/pkg/req"
	"casino_bot_backend/pkg/resp"
	"context"
	"net/http"
)

type HandlerDeps struct {
	Serv        service.ModerationService
	AdminConfig config.AdminConfig
}

type Handler struct {
	serv        service.ModerationService
	adminConfig config.AdminConfig
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:        deps.Serv,
		adminConfig: deps.AdminConfig,
	}
}

// Ban блокирует пользователя и пишет запись в журнал модерации
func (h *Handler) Ban(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.serv.Ban)
}

// Unban снимает блокировку и пишет запись в журнал модерации
func (h *Handler) Unban(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.serv.Unban)
}

func (h *Handler) moderate(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, moderatorID, userID int, reason string) error,
) {
	moderatorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if !h.adminConfig.IsAdmin(moderatorID) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	payload, err := req.Decode[dto.ModerationRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := action(r.Context(), moderatorID, payload.UserID, payload.Reason); err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"user_id": payload.UserID,
	})
}
