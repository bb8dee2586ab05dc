package page

import (
	"net/http"

	"post-scheduler/internal/handler/http/auth"
	pageUC "post-scheduler/internal/usecase/page"
)

// Register registers all page-related HTTP handlers with the given mux.
// This covers page CRUD, activation state, account assignments and time
// slots. Every route requires authentication via the auth middleware.
func Register(mux *http.ServeMux, svc *pageUC.Service) {
	mux.Handle("GET    /pages", auth.Authz(ListHandler{svc}))
	mux.Handle("POST   /pages", auth.Authz(CreateHandler{svc}))
	mux.Handle("GET    /pages/unassigned", auth.Authz(ListUnassignedHandler{svc}))
	mux.Handle("GET    /pages/{id}", auth.Authz(GetHandler{svc}))
	mux.Handle("PUT    /pages/{id}", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /pages/{id}", auth.Authz(DeleteHandler{svc}))

	mux.Handle("POST   /pages/{id}/activate", auth.Authz(ActivateHandler{svc}))
	mux.Handle("POST   /pages/{id}/deactivate", auth.Authz(DeactivateHandler{svc}))

	mux.Handle("GET    /pages/{id}/assignments", auth.Authz(ListAssignmentsHandler{svc}))
	mux.Handle("POST   /pages/{id}/assignments", auth.Authz(AssignHandler{svc}))
	mux.Handle("DELETE /pages/{id}/assignments/{accountID}", auth.Authz(UnassignHandler{svc}))
	mux.Handle("PUT    /pages/{id}/assignments/{accountID}/primary", auth.Authz(SetPrimaryHandler{svc}))

	mux.Handle("GET    /pages/{id}/timeslots", auth.Authz(ListTimeSlotsHandler{svc}))
	mux.Handle("POST   /pages/{id}/timeslots", auth.Authz(AddTimeSlotHandler{svc}))
	mux.Handle("DELETE /pages/{id}/timeslots/{slotID}", auth.Authz(RemoveTimeSlotHandler{svc}))
}
