package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"post-scheduler/internal/handler/http/pathutil"
	"post-scheduler/internal/handler/http/respond"
	accUC "post-scheduler/internal/usecase/account"
)

type UpdateHandler struct{ Svc *accUC.Service }

// ServeHTTP アカウント更新
// @Summary      アカウント更新
// @Description  既存のアカウントを更新します
// @Tags         accounts
// @Security     BearerAuth
// @Accept       json
// @Param        id path int true "アカウントID"
// @Param        account body object true "更新するアカウント情報"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - account not found"
// @Router       /accounts/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name          *string `json:"name"`
		CredentialRef *string `json:"credential_ref"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	err = h.Svc.Update(r.Context(), accUC.UpdateInput{
		ID:            id,
		Name:          req.Name,
		CredentialRef: req.CredentialRef,
	})
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, accUC.ErrAccountNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
