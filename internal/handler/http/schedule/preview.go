package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/handler/http/respond"
	schedUC "post-scheduler/internal/usecase/schedule"
)

type PreviewHandler struct{ Svc *schedUC.Service }

// ServeHTTP スロット割り当てプレビュー
// @Summary      スロット割り当てプレビュー
// @Description  指定されたページごとに希望日以降の次の空きスロットを計算します。何も保存されません。requested_time を指定すると全ページ同時刻での配信を検証します
// @Tags         schedule
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body object true "プレビュー対象（content_id, page_ids, preferred_date, requested_time）"
// @Success      200 {array} CandidateDTO "候補時刻（早い順、conflict はスロット繰り下げを示す）"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - content or page not found"
// @Failure      409 {object} ConflictResponse "Conflict - requested time collides on one or more pages"
// @Failure      422 {string} string "No slot available inside the look-ahead window"
// @Router       /schedule/preview [post]
func (h PreviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ContentID     int64      `json:"content_id"`
		PageIDs       []int64    `json:"page_ids"`
		PreferredDate string     `json:"preferred_date"`
		RequestedTime *time.Time `json:"requested_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.ContentID == 0 || len(req.PageIDs) == 0 {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("content_id, page_ids are required"))
		return
	}
	preferred, err := parsePreferredDate(req.PreferredDate)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	candidates, err := h.Svc.Preview(r.Context(), schedUC.PreviewInput{
		ContentID:     req.ContentID,
		PageIDs:       req.PageIDs,
		PreferredDate: preferred,
		RequestedTime: req.RequestedTime,
	})
	if err != nil {
		respondScheduleError(w, err)
		return
	}

	out := make([]CandidateDTO, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, CandidateDTO{PageID: c.PageID, ScheduledTime: c.ScheduledTime, Conflict: c.Conflict})
	}
	respond.JSON(w, http.StatusOK, out)
}

// parsePreferredDate parses an optional "YYYY-MM-DD" body field. The zero
// time means no preference.
func parsePreferredDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errors.New("preferred_date must be formatted as YYYY-MM-DD")
	}
	return d, nil
}

// ConflictResponse is the 409 payload listing the pages whose slot is taken.
type ConflictResponse struct {
	Error   string  `json:"error" example:"slot conflict on pages [2]; re-preview or confirm with force"`
	PageIDs []int64 `json:"page_ids" example:"2"`
}

// respondScheduleError maps scheduling use case errors onto HTTP statuses.
// Slot conflicts carry the conflicting page IDs in the body so clients can
// re-preview just those pages.
func respondScheduleError(w http.ResponseWriter, err error) {
	var conflict *entity.SlotConflictError
	if errors.As(err, &conflict) {
		respond.JSON(w, http.StatusConflict, ConflictResponse{
			Error:   conflict.Error(),
			PageIDs: conflict.PageIDs,
		})
		return
	}

	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, schedUC.ErrInvalidItemID),
		errors.Is(err, entity.ErrInvalidInput):
		code = http.StatusBadRequest
	case errors.Is(err, schedUC.ErrContentNotFound),
		errors.Is(err, schedUC.ErrPageNotFound),
		errors.Is(err, schedUC.ErrItemNotFound):
		code = http.StatusNotFound
	case errors.Is(err, schedUC.ErrPageInactive),
		errors.Is(err, entity.ErrNoSlotAvailable):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrConflict), errors.Is(err, entity.ErrInvalidState):
		code = http.StatusConflict
	}

	var vErr *entity.ValidationError
	if errors.As(err, &vErr) {
		code = http.StatusBadRequest
	}

	respond.SafeError(w, code, err)
}
