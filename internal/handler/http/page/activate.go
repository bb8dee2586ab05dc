package page

import (
	"errors"
	"net/http"

	"post-scheduler/internal/handler/http/pathutil"
	"post-scheduler/internal/handler/http/respond"
	pageUC "post-scheduler/internal/usecase/page"
)

type ActivateHandler struct{ Svc *pageUC.Service }

// ServeHTTP ページ有効化
// @Summary      ページ有効化
// @Description  ページを配信可能（active）状態に戻します。保留中の投稿は次回サイクルから再び配信対象になります
// @Tags         pages
// @Security     BearerAuth
// @Param        id path int true "ページID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid page ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /pages/{id}/activate [post]
func (h ActivateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Activate(r.Context(), id); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type DeactivateHandler struct{ Svc *pageUC.Service }

// ServeHTTP ページ無効化
// @Summary      ページ無効化
// @Description  ページを配信停止（inactive）状態にします。保留中の投稿は削除されず、警告通知が発行されます
// @Tags         pages
// @Security     BearerAuth
// @Param        id path int true "ページID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid page ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - page not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /pages/{id}/deactivate [post]
func (h DeactivateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Deactivate(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, pageUC.ErrPageNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
