package page

import (
	"encoding/json"
	"errors"
	"net/http"

	"post-scheduler/internal/handler/http/pathutil"
	"post-scheduler/internal/handler/http/respond"
	pageUC "post-scheduler/internal/usecase/page"
)

type ListAssignmentsHandler struct{ Svc *pageUC.Service }

// ServeHTTP 割り当て一覧取得
// @Summary      割り当て一覧取得
// @Description  ページに割り当てられているアカウントを取得します
// @Tags         pages
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "ページID"
// @Success      200 {array} AssignmentDTO "割り当て一覧"
// @Failure      400 {string} string "Bad request - invalid page ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /pages/{id}/assignments [get]
func (h ListAssignmentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	assignments, err := h.Svc.ListAssignments(r.Context(), id)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]AssignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, toAssignmentDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}

type AssignHandler struct{ Svc *pageUC.Service }

// ServeHTTP アカウント割り当て
// @Summary      アカウント割り当て
// @Description  ページにアカウントを割り当てます。ページの最初の割り当ては自動的にプライマリになります
// @Tags         pages
// @Security     BearerAuth
// @Accept       json
// @Param        id path int true "ページID"
// @Param        assignment body object true "割り当て情報"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /pages/{id}/assignments [post]
func (h AssignHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		AccountID int64 `json:"account_id"`
		Primary   bool  `json:"primary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.AccountID == 0 {
		respond.SafeError(w, http.StatusBadRequest,
			errors.New("account_id is required"))
		return
	}

	if err := h.Svc.Assign(r.Context(), id, req.AccountID, req.Primary); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type UnassignHandler struct{ Svc *pageUC.Service }

// ServeHTTP アカウント割り当て解除
// @Summary      アカウント割り当て解除
// @Description  ページからアカウントの割り当てを解除します
// @Tags         pages
// @Security     BearerAuth
// @Param        id path int true "ページID"
// @Param        accountID path int true "アカウントID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /pages/{id}/assignments/{accountID} [delete]
func (h UnassignHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	accountID, err := pathutil.ParseID(r.PathValue("accountID"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Unassign(r.Context(), id, accountID); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type SetPrimaryHandler struct{ Svc *pageUC.Service }

// ServeHTTP プライマリ割り当て変更
// @Summary      プライマリ割り当て変更
// @Description  指定されたアカウントをページのプライマリに切り替えます
// @Tags         pages
// @Security     BearerAuth
// @Param        id path int true "ページID"
// @Param        accountID path int true "アカウントID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /pages/{id}/assignments/{accountID}/primary [put]
func (h SetPrimaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	accountID, err := pathutil.ParseID(r.PathValue("accountID"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.SetPrimary(r.Context(), id, accountID); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, pageUC.ErrInvalidPageID) || errors.Is(err, pageUC.ErrInvalidAccountID) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
