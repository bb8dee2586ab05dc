package schedule

import (
	"encoding/json"
	"errors"
	"net/http"

	"post-scheduler/internal/handler/http/respond"
	schedUC "post-scheduler/internal/usecase/schedule"
)

type ConfirmHandler struct{ Svc *schedUC.Service }

// ServeHTTP スケジュール確定
// @Summary      スケジュール確定
// @Description  プレビューした割り当てを確定し、保留状態の予約投稿を作成します。scheduled_time を省略した割り当ては preferred_date を起点に確定時点で再計算されます。プレビュー後に他のコンテンツがスロットを取った場合は 409 を返します（force 指定で上書き可能、上書きした予約は last_error に conflict-overridden が記録されます）
// @Tags         schedule
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body object true "確定内容（content_id, allocations, preferred_date, force）"
// @Success      201 {array} DTO "作成された予約投稿"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - content or page not found"
// @Failure      409 {object} ConflictResponse "Conflict - a previewed slot was taken since preview"
// @Failure      422 {string} string "Page inactive or no slot available"
// @Router       /schedule/confirm [post]
func (h ConfirmHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContentID     int64          `json:"content_id"`
		Allocations   []CandidateDTO `json:"allocations"`
		PreferredDate string         `json:"preferred_date"`
		Force         bool           `json:"force"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.ContentID == 0 || len(req.Allocations) == 0 {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("content_id, allocations are required"))
		return
	}
	preferred, err := parsePreferredDate(req.PreferredDate)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	allocations := make([]schedUC.Candidate, 0, len(req.Allocations))
	for _, a := range req.Allocations {
		allocations = append(allocations, schedUC.Candidate{
			PageID:        a.PageID,
			ScheduledTime: a.ScheduledTime,
		})
	}

	items, err := h.Svc.Confirm(r.Context(), schedUC.ConfirmInput{
		ContentID:     req.ContentID,
		Allocations:   allocations,
		PreferredDate: preferred,
		Force:         req.Force,
	})
	if err != nil {
		respondScheduleError(w, err)
		return
	}

	out := make([]DTO, 0, len(items))
	for _, item := range items {
		out = append(out, toDTO(item))
	}
	respond.JSON(w, http.StatusCreated, out)
}
