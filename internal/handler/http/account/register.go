package account

import (
	"net/http"

	"post-scheduler/internal/handler/http/auth"
	accUC "post-scheduler/internal/usecase/account"
)

// Register registers all account-related HTTP handlers with the given mux.
// Every route requires authentication via the auth middleware.
func Register(mux *http.ServeMux, svc *accUC.Service) {
	mux.Handle("GET    /accounts", auth.Authz(ListHandler{svc}))
	mux.Handle("POST   /accounts", auth.Authz(CreateHandler{svc}))
	mux.Handle("GET    /accounts/{id}", auth.Authz(GetHandler{svc}))
	mux.Handle("PUT    /accounts/{id}", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /accounts/{id}", auth.Authz(DeleteHandler{svc}))
	mux.Handle("GET    /accounts/{id}/pages", auth.Authz(PagesHandler{svc}))
}
