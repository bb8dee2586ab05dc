package entity

import (
	"fmt"
	"time"
)

// TimeSlot is a recurring availability window for a page: the page prefers to
// receive publications at TimeOfDay on DayOfWeek. Slots are allocation input
// only; dispatch never mutates them.
type TimeSlot struct {
	ID        int64
	PageID    int64
	DayOfWeek int    // 0 = Sunday … 6 = Saturday, matching time.Weekday
	TimeOfDay string // "HH:MM", wall clock in the scheduling location
	Recurring bool
}

// Validate checks the TimeSlot fields required at creation time.
func (s *TimeSlot) Validate() error {
	if s.PageID == 0 {
		return &ValidationError{Field: "page_id", Message: "page_id is required"}
	}
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return &ValidationError{Field: "day_of_week", Message: "day_of_week must be between 0 and 6"}
	}
	if _, _, err := ParseTimeOfDay(s.TimeOfDay); err != nil {
		return err
	}
	return nil
}

// ParseTimeOfDay parses a "HH:MM" wall-clock string into hour and minute.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, &ValidationError{Field: "time_of_day", Message: "time_of_day must be in HH:MM format"}
	}
	if _, perr := time.Parse("15:04", s); perr != nil {
		return 0, 0, &ValidationError{Field: "time_of_day", Message: "time_of_day must be in HH:MM format"}
	}
	if _, serr := fmt.Sscanf(s, "%d:%d", &hour, &minute); serr != nil {
		return 0, 0, &ValidationError{Field: "time_of_day", Message: "time_of_day must be in HH:MM format"}
	}
	return hour, minute, nil
}

// At anchors the slot's wall-clock time to a calendar day in the given
// location and returns the corresponding instant.
func (s *TimeSlot) At(day time.Time, loc *time.Location) (time.Time, error) {
	hour, minute, err := ParseTimeOfDay(s.TimeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	d := day.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc), nil
}
