package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"post-scheduler/internal/handler/http/respond"
	accUC "post-scheduler/internal/usecase/account"
)

type CreateHandler struct{ Svc *accUC.Service }

// ServeHTTP アカウント作成
// @Summary      アカウント作成
// @Description  新しいアカウントを登録します
// @Tags         accounts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        account body object true "アカウント情報"
// @Success      201 {object} DTO "作成されたアカウント"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /accounts [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string `json:"name"`
		CredentialRef string `json:"credential_ref"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Name == "" || req.CredentialRef == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("name, credential_ref are required"))
		return
	}

	account, err := h.Svc.Create(r.Context(), accUC.CreateInput{
		Name:          req.Name,
		CredentialRef: req.CredentialRef,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(account))
}
