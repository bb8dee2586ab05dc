package content

import (
	"encoding/json"
	"errors"
	"net/http"

	"post-scheduler/internal/handler/http/respond"
	contentUC "post-scheduler/internal/usecase/content"
)

type CreateHandler struct{ Svc *contentUC.Service }

// ServeHTTP コンテンツ作成
// @Summary      コンテンツ作成
// @Description  新しいコンテンツをドラフト状態で作成します。本文またはメディア参照のどちらかが必須です
// @Tags         contents
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        content body object true "コンテンツ情報"
// @Success      201 {object} DTO "作成されたコンテンツ"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /contents [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Body      string   `json:"body"`
		MediaRefs []string `json:"media_refs"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Body == "" && len(req.MediaRefs) == 0 {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("body or media_refs is required"))
		return
	}

	content, err := h.Svc.Create(r.Context(), contentUC.CreateInput{
		Body:      req.Body,
		MediaRefs: req.MediaRefs,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(content))
}
