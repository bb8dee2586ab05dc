package content

import (
	"encoding/json"
	"errors"
	"net/http"

	"post-scheduler/internal/handler/http/pathutil"
	"post-scheduler/internal/handler/http/respond"
	contentUC "post-scheduler/internal/usecase/content"
)

type UpdateHandler struct{ Svc *contentUC.Service }

// ServeHTTP コンテンツ更新
// @Summary      コンテンツ更新
// @Description  既存のコンテンツを更新します。配信中または配信済みの予約投稿から参照されている場合は 409 を返します
// @Tags         contents
// @Security     BearerAuth
// @Accept       json
// @Param        id path int true "コンテンツID"
// @Param        content body object true "更新するコンテンツ情報"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - content not found"
// @Failure      409 {string} string "Conflict - content is referenced by a non-pending scheduled item"
// @Router       /contents/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Body      *string   `json:"body"`
		MediaRefs *[]string `json:"media_refs"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	err = h.Svc.Update(r.Context(), contentUC.UpdateInput{
		ID:        id,
		Body:      req.Body,
		MediaRefs: req.MediaRefs,
	})
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, contentUC.ErrContentNotFound) {
			code = http.StatusNotFound
		} else if errors.Is(err, contentUC.ErrContentInUse) {
			code = http.StatusConflict
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type DeleteHandler struct{ Svc *contentUC.Service }

// ServeHTTP コンテンツ削除
// @Summary      コンテンツ削除
// @Description  コンテンツを削除します。配信中または配信済みの予約投稿から参照されている場合は 409 を返します
// @Tags         contents
// @Security     BearerAuth
// @Param        id path int true "コンテンツID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - content not found"
// @Failure      409 {string} string "Conflict - content is referenced by a non-pending scheduled item"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /contents/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, contentUC.ErrContentNotFound) {
			code = http.StatusNotFound
		} else if errors.Is(err, contentUC.ErrContentInUse) {
			code = http.StatusConflict
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
