package notification

import (
	"errors"
	"net/http"

	"post-scheduler/internal/handler/http/pathutil"
	"post-scheduler/internal/handler/http/respond"
	"post-scheduler/internal/usecase/notify"
)

type MarkReadHandler struct{ Svc *notify.Service }

// ServeHTTP 通知既読化
// @Summary      通知既読化
// @Description  通知を既読にします
// @Tags         notifications
// @Security     BearerAuth
// @Param        id path int true "通知ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid notification ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /notifications/{id}/read [post]
func (h MarkReadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.MarkRead(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, notify.ErrInvalidNotificationID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, notify.ErrNotificationNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type MarkAllReadHandler struct{ Svc *notify.Service }

// ServeHTTP 全通知既読化
// @Summary      全通知既読化
// @Description  すべての未読通知を既読にします
// @Tags         notifications
// @Security     BearerAuth
// @Success      204 "No Content"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /notifications/read-all [post]
func (h MarkAllReadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.MarkAllRead(r.Context()); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
