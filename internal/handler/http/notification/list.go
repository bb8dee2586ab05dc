package notification

import (
	"errors"
	"net/http"
	"strconv"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/handler/http/respond"
	"post-scheduler/internal/usecase/notify"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type ListHandler struct{ Svc *notify.Service }

// ServeHTTP 通知一覧取得
// @Summary      通知一覧取得
// @Description  通知を新しい順に取得します。unread=true で未読のみに絞り込めます
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Param        unread query bool false "未読のみ取得"
// @Param        offset query int  false "取得開始位置" default(0)
// @Param        limit  query int  false "取得件数" default(50) maximum(200)
// @Success      200 {array} DTO "通知一覧"
// @Failure      400 {string} string "Bad request - invalid query parameters"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /notifications [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	offset, err := parseNonNegative(q.Get("offset"), 0)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("offset must be a non-negative integer"))
		return
	}
	limit, err := parseNonNegative(q.Get("limit"), defaultLimit)
	if err != nil || limit == 0 || limit > maxLimit {
		respond.SafeError(w, http.StatusBadRequest, errors.New("limit must be between 1 and 200"))
		return
	}

	var notifications []DTO
	if q.Get("unread") == "true" {
		list, err := h.Svc.ListUnread(r.Context(), limit)
		if err != nil {
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}
		notifications = toDTOs(list)
	} else {
		list, err := h.Svc.List(r.Context(), offset, limit)
		if err != nil {
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}
		notifications = toDTOs(list)
	}

	respond.JSON(w, http.StatusOK, notifications)
}

type UnreadCountHandler struct{ Svc *notify.Service }

// ServeHTTP 未読件数取得
// @Summary      未読件数取得
// @Description  未読通知の件数を取得します
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]int64 "未読件数"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /notifications/unread-count [get]
func (h UnreadCountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count, err := h.Svc.UnreadCount(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]int64{"count": count})
}

func parseNonNegative(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New("must be a non-negative integer")
	}
	return n, nil
}

func toDTOs(list []*entity.Notification) []DTO {
	out := make([]DTO, 0, len(list))
	for _, n := range list {
		out = append(out, toDTO(n))
	}
	return out
}
