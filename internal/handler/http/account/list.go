package account

import (
	"net/http"

	"post-scheduler/internal/handler/http/respond"
	accUC "post-scheduler/internal/usecase/account"
)

type ListHandler struct{ Svc *accUC.Service }

// ServeHTTP アカウント一覧取得
// @Summary      アカウント一覧取得
// @Description  登録されているアカウントをすべて取得します
// @Tags         accounts
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} DTO "アカウント一覧"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /accounts [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}
