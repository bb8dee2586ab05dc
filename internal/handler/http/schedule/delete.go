package schedule

import (
	"net/http"

	"post-scheduler/internal/handler/http/pathutil"
	"post-scheduler/internal/handler/http/respond"
	schedUC "post-scheduler/internal/usecase/schedule"
)

type DeleteHandler struct{ Svc *schedUC.Service }

// ServeHTTP 予約投稿削除
// @Summary      予約投稿削除
// @Description  保留状態の予約投稿を削除します。配信中・配信済み・失敗状態の投稿は削除できず 409 を返します
// @Tags         schedule
// @Security     BearerAuth
// @Param        id path int true "予約投稿ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid item ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - scheduled item not found"
// @Failure      409 {string} string "Conflict - item is no longer pending"
// @Router       /scheduled-items/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respondScheduleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type RetryHandler struct{ Svc *schedUC.Service }

// ServeHTTP 手動再試行
// @Summary      手動再試行
// @Description  失敗状態の予約投稿を保留状態に戻し、リトライ回数をリセットして即時配信対象にします
// @Tags         schedule
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "予約投稿ID"
// @Success      200 {object} DTO "再試行対象となった予約投稿"
// @Failure      400 {string} string "Bad request - invalid item ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - scheduled item not found"
// @Failure      409 {string} string "Conflict - item is not in failed state"
// @Router       /scheduled-items/{id}/retry [post]
func (h RetryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	item, err := h.Svc.Retry(r.Context(), id)
	if err != nil {
		respondScheduleError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(item))
}
