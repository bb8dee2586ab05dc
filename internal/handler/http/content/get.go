package content

import (
	"errors"
	"net/http"

	"post-scheduler/internal/handler/http/pathutil"
	"post-scheduler/internal/handler/http/respond"
	contentUC "post-scheduler/internal/usecase/content"
)

type GetHandler struct{ Svc *contentUC.Service }

// ServeHTTP コンテンツ詳細取得
// @Summary      コンテンツ詳細取得
// @Description  指定されたIDのコンテンツを取得します
// @Tags         contents
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "コンテンツID"
// @Success      200 {object} DTO "コンテンツ詳細"
// @Failure      400 {string} string "Bad request - invalid content ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - content not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /contents/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	content, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, contentUC.ErrInvalidContentID) {
			code = http.StatusBadRequest
		} else if errors.Is(err, contentUC.ErrContentNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(content))
}
