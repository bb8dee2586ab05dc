package page

import (
	"encoding/json"
	"net/http"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/handler/http/pathutil"
	"post-scheduler/internal/handler/http/respond"
	pageUC "post-scheduler/internal/usecase/page"
)

type ListTimeSlotsHandler struct{ Svc *pageUC.Service }

// ServeHTTP タイムスロット一覧取得
// @Summary      タイムスロット一覧取得
// @Description  ページの定期タイムスロットを取得します
// @Tags         pages
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "ページID"
// @Success      200 {array} TimeSlotDTO "タイムスロット一覧"
// @Failure      400 {string} string "Bad request - invalid page ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /pages/{id}/timeslots [get]
func (h ListTimeSlotsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	slots, err := h.Svc.ListTimeSlots(r.Context(), id)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]TimeSlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, toTimeSlotDTO(s))
	}
	respond.JSON(w, http.StatusOK, out)
}

type AddTimeSlotHandler struct{ Svc *pageUC.Service }

// ServeHTTP タイムスロット追加
// @Summary      タイムスロット追加
// @Description  ページに定期タイムスロットを追加します。time_of_day は HH:MM 形式です
// @Tags         pages
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "ページID"
// @Param        slot body object true "タイムスロット情報"
// @Success      201 {object} TimeSlotDTO "作成されたタイムスロット"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /pages/{id}/timeslots [post]
func (h AddTimeSlotHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		DayOfWeek int    `json:"day_of_week"`
		TimeOfDay string `json:"time_of_day"`
		Recurring *bool  `json:"recurring"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	// 省略時は定期スロット扱い
	recurring := true
	if req.Recurring != nil {
		recurring = *req.Recurring
	}

	slot := &entity.TimeSlot{
		PageID:    id,
		DayOfWeek: req.DayOfWeek,
		TimeOfDay: req.TimeOfDay,
		Recurring: recurring,
	}
	if err := h.Svc.AddTimeSlot(r.Context(), slot); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toTimeSlotDTO(slot))
}

type RemoveTimeSlotHandler struct{ Svc *pageUC.Service }

// ServeHTTP タイムスロット削除
// @Summary      タイムスロット削除
// @Description  タイムスロットを削除します。既存の予約投稿の時刻は変更されません
// @Tags         pages
// @Security     BearerAuth
// @Param        id path int true "ページID"
// @Param        slotID path int true "タイムスロットID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /pages/{id}/timeslots/{slotID} [delete]
func (h RemoveTimeSlotHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, err := pathutil.ParseID(r.PathValue("id")); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	slotID, err := pathutil.ParseID(r.PathValue("slotID"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.RemoveTimeSlot(r.Context(), slotID); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
