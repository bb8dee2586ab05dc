package page

import (
	"encoding/json"
	"errors"
	"net/http"

	"post-scheduler/internal/handler/http/respond"
	pageUC "post-scheduler/internal/usecase/page"
)

type CreateHandler struct{ Svc *pageUC.Service }

// ServeHTTP ページ作成
// @Summary      ページ作成
// @Description  新しいページを登録します。作成直後は配信可能（active）状態です
// @Tags         pages
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        page body object true "ページ情報"
// @Success      201 {object} DTO "作成されたページ"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /pages [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExternalID string `json:"external_id"`
		Name       string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.ExternalID == "" || req.Name == "" {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("external_id, name are required"))
		return
	}

	page, err := h.Svc.Create(r.Context(), pageUC.CreateInput{
		ExternalID: req.ExternalID,
		Name:       req.Name,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(page))
}
