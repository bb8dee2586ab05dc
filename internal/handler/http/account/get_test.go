package account_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/handler/http/account"
	accUC "post-scheduler/internal/usecase/account"
)

/* ───────── モック実装 ───────── */

type stubGetRepo struct {
	account *entity.Account
	getErr  error
}

func (s *stubGetRepo) Get(_ context.Context, id int64) (*entity.Account, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.account != nil && s.account.ID == id {
		return s.account, nil
	}
	return nil, nil
}

// 以下は未使用だが、インターフェース満たすために実装
func (s *stubGetRepo) List(_ context.Context) ([]*entity.Account, error) {
	return nil, nil
}
func (s *stubGetRepo) Create(_ context.Context, _ *entity.Account) error {
	return nil
}
func (s *stubGetRepo) Update(_ context.Context, _ *entity.Account) error {
	return nil
}
func (s *stubGetRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

/* ───────── テスト ───────── */

func newGetRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/accounts/"+id, nil)
	req.SetPathValue("id", id)
	return req
}

func TestGetHandler_Success(t *testing.T) {
	repo := &stubGetRepo{
		account: &entity.Account{
			ID:            7,
			Name:          "ops team",
			CredentialRef: "vault:social/ops",
			CreatedAt:     time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC),
		},
	}
	svc := &accUC.Service{Repo: repo}

	rec := httptest.NewRecorder()
	account.GetHandler{Svc: svc}.ServeHTTP(rec, newGetRequest("7"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var out account.DTO
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.ID != 7 || out.Name != "ops team" {
		t.Errorf("unexpected response: %+v", out)
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	svc := &accUC.Service{Repo: &stubGetRepo{}}

	rec := httptest.NewRecorder()
	account.GetHandler{Svc: svc}.ServeHTTP(rec, newGetRequest("99"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGetHandler_InvalidID(t *testing.T) {
	svc := &accUC.Service{Repo: &stubGetRepo{}}

	rec := httptest.NewRecorder()
	account.GetHandler{Svc: svc}.ServeHTTP(rec, newGetRequest("abc"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
