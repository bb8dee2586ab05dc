package notification

import (
	"net/http"

	"post-scheduler/internal/handler/http/auth"
	"post-scheduler/internal/usecase/notify"
)

// Register registers all notification-related HTTP handlers with the given
// mux. Every route requires authentication via the auth middleware.
func Register(mux *http.ServeMux, svc *notify.Service) {
	mux.Handle("GET    /notifications", auth.Authz(ListHandler{svc}))
	mux.Handle("GET    /notifications/unread-count", auth.Authz(UnreadCountHandler{svc}))
	mux.Handle("POST   /notifications/{id}/read", auth.Authz(MarkReadHandler{svc}))
	mux.Handle("POST   /notifications/read-all", auth.Authz(MarkAllReadHandler{svc}))
}
