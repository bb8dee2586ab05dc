package schedule_test

import (
	"context"
	"sort"
	"time"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
)

// in-memory ScheduledItemRepository mirroring the postgres semantics closely
// enough for allocation and lifecycle tests
type stubItemRepo struct {
	data   map[int64]*entity.ScheduledItem
	nextID int64
	err    error
}

func newItemStub() *stubItemRepo {
	return &stubItemRepo{data: map[int64]*entity.ScheduledItem{}, nextID: 1}
}

func (s *stubItemRepo) Get(_ context.Context, id int64) (*entity.ScheduledItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	if item, ok := s.data[id]; ok {
		clone := *item
		return &clone, nil
	}
	return nil, nil
}

func (s *stubItemRepo) sorted() []*entity.ScheduledItem {
	out := make([]*entity.ScheduledItem, 0, len(s.data))
	for _, item := range s.data {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func matches(item *entity.ScheduledItem, filter repository.ItemFilter) bool {
	if filter.Status != nil && item.Status != *filter.Status {
		return false
	}
	if filter.PageID != nil && item.PageID != *filter.PageID {
		return false
	}
	if filter.ContentID != nil && item.ContentID != *filter.ContentID {
		return false
	}
	return true
}

func (s *stubItemRepo) List(_ context.Context, filter repository.ItemFilter, offset, limit int) ([]*entity.ScheduledItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.ScheduledItem
	for _, item := range s.sorted() {
		if matches(item, filter) {
			out = append(out, item)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubItemRepo) Count(_ context.Context, filter repository.ItemFilter) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var count int64
	for _, item := range s.data {
		if matches(item, filter) {
			count++
		}
	}
	return count, nil
}

func (s *stubItemRepo) Create(_ context.Context, item *entity.ScheduledItem) error {
	if s.err != nil {
		return s.err
	}
	item.ID = s.nextID
	s.nextID++
	clone := *item
	s.data[item.ID] = &clone
	return nil
}

func (s *stubItemRepo) Transition(_ context.Context, id int64, expected, next string, fields repository.TransitionFields) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if !entity.CanTransition(expected, next) {
		return false, entity.ErrInvalidState
	}
	item, ok := s.data[id]
	if !ok || item.Status != expected {
		return false, nil
	}
	item.Status = next
	if fields.ExternalPostID != nil {
		item.ExternalPostID = *fields.ExternalPostID
	}
	if fields.RetryCount != nil {
		item.RetryCount = *fields.RetryCount
	}
	if fields.ScheduledTime != nil {
		item.ScheduledTime = *fields.ScheduledTime
	}
	if fields.LastError != nil {
		item.LastError = *fields.LastError
	}
	item.UpdatedAt = time.Now()
	return true, nil
}

func (s *stubItemRepo) DeletePending(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	item, ok := s.data[id]
	if !ok {
		return entity.ErrNotFound
	}
	if item.Status != entity.ItemPending {
		return entity.ErrConflict
	}
	delete(s.data, id)
	return nil
}

func (s *stubItemRepo) ListDue(_ context.Context, now time.Time) ([]*entity.ScheduledItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.ScheduledItem
	for _, item := range s.sorted() {
		if item.Status == entity.ItemPending && !item.ScheduledTime.After(now) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubItemRepo) ListActiveInWindow(_ context.Context, pageID int64, from, to time.Time) ([]*entity.ScheduledItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.ScheduledItem
	for _, item := range s.sorted() {
		if item.PageID != pageID || !item.Active() {
			continue
		}
		if item.ScheduledTime.Before(from) || item.ScheduledTime.After(to) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *stubItemRepo) FindActive(_ context.Context, contentID, pageID int64) (*entity.ScheduledItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	items := s.sorted()
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		if item.ContentID == contentID && item.PageID == pageID && item.Active() {
			clone := *item
			return &clone, nil
		}
	}
	return nil, nil
}

func (s *stubItemRepo) ListPendingByPage(_ context.Context, pageID int64) ([]*entity.ScheduledItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.ScheduledItem
	for _, item := range s.sorted() {
		if item.PageID == pageID && item.Status == entity.ItemPending {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubItemRepo) ReclaimStuck(_ context.Context, cutoff time.Time) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var reclaimed int64
	for _, item := range s.data {
		if item.Status == entity.ItemPublishing && item.UpdatedAt.Before(cutoff) {
			item.Status = entity.ItemPending
			reclaimed++
		}
	}
	return reclaimed, nil
}

// minimal in-memory TimeSlotRepository
type stubSlotRepo struct {
	data   map[int64]*entity.TimeSlot
	nextID int64
	err    error
}

func newSlotStub() *stubSlotRepo {
	return &stubSlotRepo{data: map[int64]*entity.TimeSlot{}, nextID: 1}
}

func (s *stubSlotRepo) add(pageID int64, dayOfWeek int, timeOfDay string) *entity.TimeSlot {
	slot := &entity.TimeSlot{ID: s.nextID, PageID: pageID, DayOfWeek: dayOfWeek, TimeOfDay: timeOfDay, Recurring: true}
	s.data[slot.ID] = slot
	s.nextID++
	return slot
}

func (s *stubSlotRepo) Get(_ context.Context, id int64) (*entity.TimeSlot, error) {
	return s.data[id], s.err
}

func (s *stubSlotRepo) ListByPage(_ context.Context, pageID int64) ([]*entity.TimeSlot, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.TimeSlot
	for _, slot := range s.data {
		if slot.PageID == pageID {
			out = append(out, slot)
		}
	}
	// deliberately not sorted; the allocator must not depend on slot order
	return out, nil
}

func (s *stubSlotRepo) Create(_ context.Context, slot *entity.TimeSlot) error {
	if s.err != nil {
		return s.err
	}
	slot.ID = s.nextID
	s.nextID++
	s.data[slot.ID] = slot
	return nil
}

func (s *stubSlotRepo) Update(_ context.Context, slot *entity.TimeSlot) error {
	if s.err != nil {
		return s.err
	}
	s.data[slot.ID] = slot
	return nil
}

func (s *stubSlotRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

// minimal in-memory ContentRepository
type stubContentRepo struct {
	data   map[int64]*entity.Content
	nextID int64
	err    error
}

func newContentStub() *stubContentRepo {
	return &stubContentRepo{data: map[int64]*entity.Content{}, nextID: 1}
}

func (s *stubContentRepo) add(body string) *entity.Content {
	c := &entity.Content{ID: s.nextID, Body: body, Status: entity.ContentDraft, CreatedAt: time.Now()}
	s.data[c.ID] = c
	s.nextID++
	return c
}

func (s *stubContentRepo) Get(_ context.Context, id int64) (*entity.Content, error) {
	return s.data[id], s.err
}

func (s *stubContentRepo) List(_ context.Context, _, _ int) ([]*entity.Content, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Content
	for _, c := range s.data {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubContentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.data)), s.err
}

func (s *stubContentRepo) Create(_ context.Context, c *entity.Content) error {
	if s.err != nil {
		return s.err
	}
	c.ID = s.nextID
	s.nextID++
	s.data[c.ID] = c
	return nil
}

func (s *stubContentRepo) Update(_ context.Context, c *entity.Content) error {
	if s.err != nil {
		return s.err
	}
	s.data[c.ID] = c
	return nil
}

func (s *stubContentRepo) SetStatus(_ context.Context, id int64, status string) error {
	if s.err != nil {
		return s.err
	}
	if c, ok := s.data[id]; ok {
		c.Status = status
	}
	return nil
}

func (s *stubContentRepo) MarkPublished(_ context.Context, id int64) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	c, ok := s.data[id]
	if !ok || c.Status == entity.ContentPublished {
		return false, nil
	}
	c.Status = entity.ContentPublished
	return true, nil
}

func (s *stubContentRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

// minimal in-memory PageRepository
type stubPageRepo struct {
	data   map[int64]*entity.Page
	nextID int64
	err    error
}

func newPageStub() *stubPageRepo {
	return &stubPageRepo{data: map[int64]*entity.Page{}, nextID: 1}
}

func (s *stubPageRepo) add(name string, active bool) *entity.Page {
	p := &entity.Page{ID: s.nextID, ExternalID: name, Name: name, Active: active, CreatedAt: time.Now()}
	s.data[p.ID] = p
	s.nextID++
	return p
}

func (s *stubPageRepo) Get(_ context.Context, id int64) (*entity.Page, error) {
	return s.data[id], s.err
}

func (s *stubPageRepo) List(_ context.Context) ([]*entity.Page, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Page
	for _, p := range s.data {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubPageRepo) ListByAccount(_ context.Context, _ int64) ([]*entity.Page, error) {
	return nil, s.err
}

func (s *stubPageRepo) ListUnassigned(_ context.Context) ([]*entity.Page, error) {
	return nil, s.err
}

func (s *stubPageRepo) Create(_ context.Context, p *entity.Page) error {
	if s.err != nil {
		return s.err
	}
	p.ID = s.nextID
	s.nextID++
	s.data[p.ID] = p
	return nil
}

func (s *stubPageRepo) Update(_ context.Context, p *entity.Page) error {
	if s.err != nil {
		return s.err
	}
	s.data[p.ID] = p
	return nil
}

func (s *stubPageRepo) SetActive(_ context.Context, id int64, active bool) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	p, ok := s.data[id]
	if !ok {
		return false, entity.ErrNotFound
	}
	was := p.Active
	p.Active = active
	return was, nil
}

func (s *stubPageRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

func (s *stubPageRepo) ListAssignments(_ context.Context, _ int64) ([]repository.AssignmentWithAccount, error) {
	return nil, s.err
}

func (s *stubPageRepo) Assign(_ context.Context, _, _ int64, _ bool) error { return s.err }

func (s *stubPageRepo) Unassign(_ context.Context, _, _ int64) error { return s.err }

func (s *stubPageRepo) SetPrimary(_ context.Context, _, _ int64) error { return s.err }

func (s *stubPageRepo) GetPrimaryAccount(_ context.Context, _ int64) (*entity.Account, error) {
	return nil, s.err
}

type stubLogRepo struct {
	logs []*entity.PublishLog
}

func (s *stubLogRepo) Create(_ context.Context, l *entity.PublishLog) error {
	l.ID = int64(len(s.logs) + 1)
	s.logs = append(s.logs, l)
	return nil
}

func (s *stubLogRepo) ListByItem(_ context.Context, itemID int64) ([]*entity.PublishLog, error) {
	var out []*entity.PublishLog
	for _, l := range s.logs {
		if l.ScheduledItemID == itemID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubLogRepo) List(_ context.Context, _, _ int) ([]*entity.PublishLog, error) {
	return s.logs, nil
}
