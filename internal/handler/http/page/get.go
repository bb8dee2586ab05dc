package page

import (
	"errors"
	"net/http"

	"post-scheduler/internal/handler/http/pathutil"
	"post-scheduler/internal/handler/http/respond"
	pageUC "post-scheduler/internal/usecase/page"
)

type GetHandler struct{ Svc *pageUC.Service }

// ServeHTTP ページ詳細取得
// @Summary      ページ詳細取得
// @Description  指定されたIDのページを取得します
// @Tags         pages
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "ページID"
// @Success      200 {object} DTO "ページ詳細"
// @Failure      400 {string} string "Bad request - invalid page ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - page not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /pages/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	page, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, pageUC.ErrInvalidPageID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, pageUC.ErrPageNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(page))
}
