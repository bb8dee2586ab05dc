package page

import (
	"encoding/json"
	"errors"
	"net/http"

	"post-scheduler/internal/handler/http/pathutil"
	"post-scheduler/internal/handler/http/respond"
	pageUC "post-scheduler/internal/usecase/page"
)

type UpdateHandler struct{ Svc *pageUC.Service }

// ServeHTTP ページ更新
// @Summary      ページ更新
// @Description  既存のページを更新します
// @Tags         pages
// @Security     BearerAuth
// @Accept       json
// @Param        id path int true "ページID"
// @Param        page body object true "更新するページ情報"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - page not found"
// @Router       /pages/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		ExternalID *string `json:"external_id"`
		Name       *string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	err = h.Svc.Update(r.Context(), pageUC.UpdateInput{
		ID:         id,
		ExternalID: req.ExternalID,
		Name:       req.Name,
	})
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, pageUC.ErrPageNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type DeleteHandler struct{ Svc *pageUC.Service }

// ServeHTTP ページ削除
// @Summary      ページ削除
// @Description  ページを削除します
// @Tags         pages
// @Security     BearerAuth
// @Param        id path int true "ページID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /pages/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
