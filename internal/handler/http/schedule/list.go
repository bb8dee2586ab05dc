package schedule

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"post-scheduler/internal/common/pagination"
	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/handler/http/requestid"
	"post-scheduler/internal/handler/http/respond"
	"post-scheduler/internal/observability/logging"
	"post-scheduler/internal/repository"
	schedUC "post-scheduler/internal/usecase/schedule"
)

type ListHandler struct {
	Svc           *schedUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP 予約投稿一覧取得
// @Summary      予約投稿一覧取得（ページネーション対応）
// @Description  予約投稿をページ単位で取得します。status / page_id / content_id で絞り込めます。並び順は作成日時の昇順で安定しています
// @Tags         schedule
// @Security     BearerAuth
// @Produce      json
// @Param        page       query    int     false  "ページ番号 (1-based)" default(1) minimum(1)
// @Param        limit      query    int     false  "1ページあたりの件数" default(20) minimum(1) maximum(100)
// @Param        status     query    string  false  "状態で絞り込み (pending/publishing/success/failed)"
// @Param        page_id    query    int     false  "ページIDで絞り込み"
// @Param        content_id query    int     false  "コンテンツIDで絞り込み"
// @Success      200 {object} pagination.Response[DTO] "ページネーション付き予約投稿一覧"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /scheduled-items [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	ctx := r.Context()
	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("Invalid pagination parameters",
			"error", err.Error(),
			"request_id", reqID)
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	filter, err := parseItemFilter(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.ListPaginated(ctx, filter, params)
	if err != nil {
		logger.Error("Failed to list scheduled items",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit,
			"request_id", reqID)
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, toDTO(item))
	}

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.UpdateTotalCount(result.Pagination.Total)
	pagination.LogResponse(logger, reqID, params, len(dtos), duration, http.StatusOK)

	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}

func parseItemFilter(r *http.Request) (repository.ItemFilter, error) {
	var filter repository.ItemFilter

	if status := r.URL.Query().Get("status"); status != "" {
		switch status {
		case entity.ItemPending, entity.ItemPublishing, entity.ItemSuccess, entity.ItemFailed:
			filter.Status = &status
		default:
			return filter, errors.New("status must be pending, publishing, success or failed")
		}
	}

	if raw := r.URL.Query().Get("page_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return filter, errors.New("page_id must be a positive integer")
		}
		filter.PageID = &id
	}

	if raw := r.URL.Query().Get("content_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return filter, errors.New("content_id must be a positive integer")
		}
		filter.ContentID = &id
	}

	return filter, nil
}
