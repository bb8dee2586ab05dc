package account

import (
	"errors"
	"net/http"

	"post-scheduler/internal/handler/http/pathutil"
	"post-scheduler/internal/handler/http/respond"
	accUC "post-scheduler/internal/usecase/account"
)

type DeleteHandler struct{ Svc *accUC.Service }

// ServeHTTP アカウント削除
// @Summary      アカウント削除
// @Description  アカウントを削除します
// @Tags         accounts
// @Security     BearerAuth
// @Param        id path int true "アカウントID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - account not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /accounts/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, accUC.ErrAccountNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
