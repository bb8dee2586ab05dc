package page

import (
	"net/http"

	"post-scheduler/internal/handler/http/respond"
	pageUC "post-scheduler/internal/usecase/page"
)

type ListHandler struct{ Svc *pageUC.Service }

// ServeHTTP ページ一覧取得
// @Summary      ページ一覧取得
// @Description  登録されているページをすべて取得します
// @Tags         pages
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} DTO "ページ一覧"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /pages [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	pages, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(pages))
	for _, p := range pages {
		out = append(out, toDTO(p))
	}
	respond.JSON(w, http.StatusOK, out)
}

type ListUnassignedHandler struct{ Svc *pageUC.Service }

// ServeHTTP 未割り当てページ一覧取得
// @Summary      未割り当てページ一覧取得
// @Description  どのアカウントにも割り当てられていないページを取得します
// @Tags         pages
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} DTO "ページ一覧"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /pages/unassigned [get]
func (h ListUnassignedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	pages, err := h.Svc.ListUnassigned(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(pages))
	for _, p := range pages {
		out = append(out, toDTO(p))
	}
	respond.JSON(w, http.StatusOK, out)
}
