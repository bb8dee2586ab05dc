package account

import (
	"errors"
	"net/http"

	"post-scheduler/internal/handler/http/pathutil"
	"post-scheduler/internal/handler/http/respond"
	accUC "post-scheduler/internal/usecase/account"
)

type GetHandler struct{ Svc *accUC.Service }

// ServeHTTP アカウント詳細取得
// @Summary      アカウント詳細取得
// @Description  指定されたIDのアカウントを取得します
// @Tags         accounts
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "アカウントID"
// @Success      200 {object} DTO "アカウント詳細"
// @Failure      400 {string} string "Bad request - invalid account ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - account not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /accounts/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	account, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, accUC.ErrInvalidAccountID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, accUC.ErrAccountNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(account))
}
