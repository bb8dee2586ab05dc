package schedule

import (
	"log/slog"
	"net/http"

	"post-scheduler/internal/common/pagination"
	"post-scheduler/internal/handler/http/auth"
	schedUC "post-scheduler/internal/usecase/schedule"
)

// Register registers the scheduling HTTP handlers with the given mux.
// Every route requires authentication via the auth middleware.
func Register(mux *http.ServeMux, svc *schedUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("POST   /schedule/preview", auth.Authz(PreviewHandler{svc}))
	mux.Handle("POST   /schedule/confirm", auth.Authz(ConfirmHandler{svc}))

	mux.Handle("GET    /scheduled-items", auth.Authz(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}))
	mux.Handle("GET    /scheduled-items/{id}", auth.Authz(GetHandler{svc}))
	mux.Handle("DELETE /scheduled-items/{id}", auth.Authz(DeleteHandler{svc}))
	mux.Handle("POST   /scheduled-items/{id}/retry", auth.Authz(RetryHandler{svc}))
	mux.Handle("GET    /scheduled-items/{id}/logs", auth.Authz(LogsHandler{svc}))
}
