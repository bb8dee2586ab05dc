package content

import (
	"log/slog"
	"net/http"

	"post-scheduler/internal/common/pagination"
	"post-scheduler/internal/handler/http/auth"
	contentUC "post-scheduler/internal/usecase/content"
)

// Register registers all content-related HTTP handlers with the given mux.
// Every route requires authentication via the auth middleware.
func Register(mux *http.ServeMux, svc *contentUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /contents", auth.Authz(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}))
	mux.Handle("POST   /contents", auth.Authz(CreateHandler{svc}))
	mux.Handle("GET    /contents/{id}", auth.Authz(GetHandler{svc}))
	mux.Handle("PUT    /contents/{id}", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /contents/{id}", auth.Authz(DeleteHandler{svc}))
}
