package content

import (
	"log/slog"
	"net/http"
	"time"

	"post-scheduler/internal/common/pagination"
	"post-scheduler/internal/handler/http/requestid"
	"post-scheduler/internal/handler/http/respond"
	"post-scheduler/internal/observability/logging"
	contentUC "post-scheduler/internal/usecase/content"
)

type ListHandler struct {
	Svc           *contentUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP コンテンツ一覧取得
// @Summary      コンテンツ一覧取得（ページネーション対応）
// @Description  登録されているコンテンツをページ単位で取得します
// @Tags         contents
// @Security     BearerAuth
// @Produce      json
// @Param        page   query    int  false  "ページ番号 (1-based)" default(1) minimum(1)
// @Param        limit  query    int  false  "1ページあたりの件数" default(20) minimum(1) maximum(100)
// @Success      200 {object} pagination.Response[DTO] "ページネーション付きコンテンツ一覧"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /contents [get]
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

	result, err := h.Svc.ListPaginated(ctx, params)
	if err != nil {
		logger.Error("Failed to list contents",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit,
			"request_id", reqID)
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, c := range result.Data {
		dtos = append(dtos, toDTO(c))
	}

	duration := time.Since(startTime)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.UpdateTotalCount(result.Pagination.Total)
	pagination.LogResponse(logger, reqID, params, len(dtos), duration, http.StatusOK)

	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}
