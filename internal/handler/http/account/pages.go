package account

import (
	"errors"
	"net/http"
	"time"

	"post-scheduler/internal/handler/http/pathutil"
	"post-scheduler/internal/handler/http/respond"
	accUC "post-scheduler/internal/usecase/account"
)

// PageDTO represents the JSON structure for pages listed under an account.
type PageDTO struct {
	ID         int64     `json:"id" example:"1"`
	ExternalID string    `json:"external_id" example:"1234567890"`
	Name       string    `json:"name" example:"広報ページ"`
	Active     bool      `json:"active" example:"true"`
	CreatedAt  time.Time `json:"created_at" example:"2026-01-05T12:00:00Z"`
}

type PagesHandler struct{ Svc *accUC.Service }

// ServeHTTP アカウント担当ページ一覧取得
// @Summary      アカウント担当ページ一覧取得
// @Description  アカウントが割り当てられているページを取得します
// @Tags         accounts
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "アカウントID"
// @Success      200 {array} PageDTO "ページ一覧"
// @Failure      400 {string} string "Bad request - invalid account ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - account not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /accounts/{id}/pages [get]
func (h PagesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	pages, err := h.Svc.ListPages(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, accUC.ErrAccountNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	out := make([]PageDTO, 0, len(pages))
	for _, p := range pages {
		out = append(out, PageDTO{
			ID:         p.ID,
			ExternalID: p.ExternalID,
			Name:       p.Name,
			Active:     p.Active,
			CreatedAt:  p.CreatedAt,
		})
	}
	respond.JSON(w, http.StatusOK, out)
}
