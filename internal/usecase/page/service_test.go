package page_test

import (
	"context"
	"errors"
	"testing"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
	"post-scheduler/internal/usecase/notify"
	pageUC "post-scheduler/internal/usecase/page"
)

// partial stubs embed the interface and override only what a test touches
type stubPageRepo struct {
	repository.PageRepository
	data        map[int64]*entity.Page
	assignCalls []assignCall
}

type assignCall struct {
	pageID, accountID int64
	primary           bool
}

func newPageStub() *stubPageRepo {
	return &stubPageRepo{data: map[int64]*entity.Page{}}
}

func (s *stubPageRepo) Get(_ context.Context, id int64) (*entity.Page, error) {
	return s.data[id], nil
}

func (s *stubPageRepo) SetActive(_ context.Context, id int64, active bool) (bool, error) {
	p, ok := s.data[id]
	if !ok {
		return false, entity.ErrNotFound
	}
	was := p.Active
	p.Active = active
	return was, nil
}

func (s *stubPageRepo) Assign(_ context.Context, pageID, accountID int64, primary bool) error {
	s.assignCalls = append(s.assignCalls, assignCall{pageID, accountID, primary})
	return nil
}

func (s *stubPageRepo) Create(_ context.Context, p *entity.Page) error {
	p.ID = int64(len(s.data) + 1)
	s.data[p.ID] = p
	return nil
}

type stubItemRepo struct {
	repository.ScheduledItemRepository
	pending []*entity.ScheduledItem
	err     error
}

func (s *stubItemRepo) ListPendingByPage(_ context.Context, _ int64) ([]*entity.ScheduledItem, error) {
	return s.pending, s.err
}

type stubNotificationRepo struct {
	repository.NotificationRepository
	created []*entity.Notification
}

func (s *stubNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	s.created = append(s.created, n)
	return nil
}

func TestService_Deactivate_EmitsPerItemWarnings(t *testing.T) {
	pages := newPageStub()
	pages.data[1] = &entity.Page{ID: 1, Name: "Launch Updates", Active: true}
	items := &stubItemRepo{pending: []*entity.ScheduledItem{
		{ID: 11, ContentID: 1, PageID: 1, Status: entity.ItemPending},
		{ID: 12, ContentID: 2, PageID: 1, Status: entity.ItemPending},
	}}
	notifications := &stubNotificationRepo{}

	svc := &pageUC.Service{
		Repo:     pages,
		ItemRepo: items,
		Notifier: &notify.Service{Repo: notifications},
	}

	if err := svc.Deactivate(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if pages.data[1].Active {
		t.Error("page must be inactive")
	}
	if len(notifications.created) != 2 {
		t.Fatalf("expected one warning per pending item, got %d", len(notifications.created))
	}
	for _, n := range notifications.created {
		if n.Kind != entity.NotifyPageDeactivated {
			t.Errorf("expected kind %q, got %q", entity.NotifyPageDeactivated, n.Kind)
		}
	}
}

func TestService_Deactivate_AlreadyInactiveIsNoop(t *testing.T) {
	pages := newPageStub()
	pages.data[1] = &entity.Page{ID: 1, Name: "Launch Updates", Active: false}
	notifications := &stubNotificationRepo{}

	svc := &pageUC.Service{
		Repo:     pages,
		ItemRepo: &stubItemRepo{pending: []*entity.ScheduledItem{{ID: 11}}},
		Notifier: &notify.Service{Repo: notifications},
	}

	if err := svc.Deactivate(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if len(notifications.created) != 0 {
		t.Errorf("re-deactivation must not emit warnings, got %d", len(notifications.created))
	}
}

func TestService_Deactivate_NotFound(t *testing.T) {
	svc := &pageUC.Service{Repo: newPageStub()}

	if err := svc.Deactivate(context.Background(), 9); !errors.Is(err, pageUC.ErrPageNotFound) {
		t.Errorf("expected ErrPageNotFound, got %v", err)
	}
	if err := svc.Deactivate(context.Background(), 0); !errors.Is(err, pageUC.ErrInvalidPageID) {
		t.Errorf("expected ErrInvalidPageID, got %v", err)
	}
}

func TestService_Assign_validation(t *testing.T) {
	pages := newPageStub()
	svc := &pageUC.Service{Repo: pages}

	if err := svc.Assign(context.Background(), 0, 1, false); !errors.Is(err, pageUC.ErrInvalidPageID) {
		t.Errorf("expected ErrInvalidPageID, got %v", err)
	}
	if err := svc.Assign(context.Background(), 1, 0, false); !errors.Is(err, pageUC.ErrInvalidAccountID) {
		t.Errorf("expected ErrInvalidAccountID, got %v", err)
	}
	if err := svc.Assign(context.Background(), 1, 2, true); err != nil {
		t.Fatal(err)
	}
	if len(pages.assignCalls) != 1 || !pages.assignCalls[0].primary {
		t.Errorf("expected one primary assign call, got %v", pages.assignCalls)
	}
}

func TestService_Create(t *testing.T) {
	pages := newPageStub()
	svc := &pageUC.Service{Repo: pages}

	_, err := svc.Create(context.Background(), pageUC.CreateInput{ExternalID: "", Name: "x"})
	var validation *entity.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	page, err := svc.Create(context.Background(), pageUC.CreateInput{ExternalID: "ext-9", Name: "Page"})
	if err != nil {
		t.Fatal(err)
	}
	if !page.Active {
		t.Error("new pages must start active")
	}
}

func TestService_AddTimeSlot_validation(t *testing.T) {
	slots := &stubSlotRepo{}
	svc := &pageUC.Service{SlotRepo: slots}

	err := svc.AddTimeSlot(context.Background(), &entity.TimeSlot{PageID: 1, DayOfWeek: 9, TimeOfDay: "12:00"})
	var validation *entity.ValidationError
	if !errors.As(err, &validation) || validation.Field != "day_of_week" {
		t.Fatalf("expected day_of_week validation error, got %v", err)
	}

	slot := &entity.TimeSlot{PageID: 1, DayOfWeek: 3, TimeOfDay: "12:00", Recurring: true}
	if err := svc.AddTimeSlot(context.Background(), slot); err != nil {
		t.Fatal(err)
	}
	if len(slots.created) != 1 {
		t.Errorf("expected slot to be created")
	}
}

type stubSlotRepo struct {
	repository.TimeSlotRepository
	created []*entity.TimeSlot
}

func (s *stubSlotRepo) Create(_ context.Context, slot *entity.TimeSlot) error {
	s.created = append(s.created, slot)
	return nil
}
