package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"post-scheduler/internal/domain/entity"
	"post-scheduler/internal/repository"
)

const (
	// DefaultCollisionWindow is the half-width of the exclusion zone around
	// every active item: two publications on the same page may not be
	// scheduled closer than this to each other.
	DefaultCollisionWindow = 30 * time.Minute

	// DefaultLookAhead bounds the slot search. A page whose slots are all
	// occupied for this long from now is reported as having no availability.
	DefaultLookAhead = 14 * 24 * time.Hour
)

// Allocator finds the earliest free candidate time for a page. Allocation is
// deterministic: given the same slots and the same set of active items it
// always returns the same instant, so preview and confirm agree.
type Allocator struct {
	ItemRepo repository.ScheduledItemRepository
	SlotRepo repository.TimeSlotRepository

	// Location is the wall-clock location slot times are interpreted in.
	// Defaults to time.Local.
	Location *time.Location

	// CollisionWindow and LookAhead default to the package constants when
	// zero.
	CollisionWindow time.Duration
	LookAhead       time.Duration

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (a *Allocator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *Allocator) location() *time.Location {
	if a.Location != nil {
		return a.Location
	}
	return time.Local
}

func (a *Allocator) window() time.Duration {
	if a.CollisionWindow > 0 {
		return a.CollisionWindow
	}
	return DefaultCollisionWindow
}

func (a *Allocator) lookAhead() time.Duration {
	if a.LookAhead > 0 {
		return a.LookAhead
	}
	return DefaultLookAhead
}

// HasCollision reports whether an active item on the page already occupies
// the collision window around t.
func (a *Allocator) HasCollision(ctx context.Context, pageID int64, t time.Time) (bool, error) {
	w := a.window()
	items, err := a.ItemRepo.ListActiveInWindow(ctx, pageID, t.Add(-w), t.Add(w))
	if err != nil {
		return false, fmt.Errorf("list active items in window: %w", err)
	}
	return len(items) > 0, nil
}

// ScanStart returns the instant the slot scan for a preferred calendar date
// begins: midnight of that date in the allocator's location, clamped to now
// so a past date never yields past candidates. A zero preferred date means
// "as soon as possible" and scans from now.
func (a *Allocator) ScanStart(preferred, now time.Time) time.Time {
	if preferred.IsZero() {
		return now
	}
	year, month, day := preferred.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, a.location())
	if start.Before(now) {
		return now
	}
	return start
}

// CandidateFor returns the earliest slot instant for the page that is
// strictly after "after" and free of collisions, scanning the look-ahead
// window day by day. Candidate instants on the same page are tried in
// chronological order with slot ID as the tie-break, so the result is stable
// even when two slots name the same wall-clock time.
//
// The bool reports whether the returned instant was advanced past at least
// one occupied slot, so callers can tell a first-choice candidate from a
// bumped one.
//
// Returns entity.ErrNoSlotAvailable when the page has no slot at all or
// every candidate inside the look-ahead is occupied.
func (a *Allocator) CandidateFor(ctx context.Context, pageID int64, after time.Time) (time.Time, bool, error) {
	slots, err := a.SlotRepo.ListByPage(ctx, pageID)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("list time slots: %w", err)
	}
	if len(slots) == 0 {
		return time.Time{}, false, entity.ErrNoSlotAvailable
	}

	loc := a.location()
	horizon := after.Add(a.lookAhead())

	var candidates []slotInstant
	for day := after.In(loc); !day.After(horizon); day = day.AddDate(0, 0, 1) {
		for _, slot := range slots {
			if int(day.Weekday()) != slot.DayOfWeek {
				continue
			}
			instant, err := slot.At(day, loc)
			if err != nil {
				return time.Time{}, false, err
			}
			if !instant.After(after) || instant.After(horizon) {
				continue
			}
			candidates = append(candidates, slotInstant{t: instant, slotID: slot.ID})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].t.Equal(candidates[j].t) {
			return candidates[i].t.Before(candidates[j].t)
		}
		return candidates[i].slotID < candidates[j].slotID
	})

	for i, c := range candidates {
		occupied, err := a.HasCollision(ctx, pageID, c.t)
		if err != nil {
			return time.Time{}, false, err
		}
		if !occupied {
			return c.t, i > 0, nil
		}
	}
	return time.Time{}, false, entity.ErrNoSlotAvailable
}

type slotInstant struct {
	t      time.Time
	slotID int64
}
