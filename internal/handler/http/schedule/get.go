package schedule

import (
	"net/http"

	"post-scheduler/internal/handler/http/pathutil"
	"post-scheduler/internal/handler/http/respond"
	schedUC "post-scheduler/internal/usecase/schedule"
)

type GetHandler struct{ Svc *schedUC.Service }

// ServeHTTP 予約投稿詳細取得
// @Summary      予約投稿詳細取得
// @Description  指定されたIDの予約投稿を取得します
// @Tags         schedule
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "予約投稿ID"
// @Success      200 {object} DTO "予約投稿詳細"
// @Failure      400 {string} string "Bad request - invalid item ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - scheduled item not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /scheduled-items/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	item, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respondScheduleError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(item))
}

type LogsHandler struct{ Svc *schedUC.Service }

// ServeHTTP 配信履歴取得
// @Summary      配信履歴取得
// @Description  予約投稿の配信試行履歴を古い順に取得します。1回の試行につき1件記録されます
// @Tags         schedule
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "予約投稿ID"
// @Success      200 {array} LogDTO "配信試行履歴"
// @Failure      400 {string} string "Bad request - invalid item ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - scheduled item not found"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /scheduled-items/{id}/logs [get]
func (h LogsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	logs, err := h.Svc.ListLogs(r.Context(), id)
	if err != nil {
		respondScheduleError(w, err)
		return
	}

	out := make([]LogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, toLogDTO(l))
	}
	respond.JSON(w, http.StatusOK, out)
}
