package appointment

import (
	"time"

	"vitta-booking/internal/pkg/clock"
)

const DefaultMaxPerMonth = 4

// Rules holds the booking predicates. All of them are advisory: the
// reservation API re-validates every submission.
type Rules struct {
	clock       clock.Clock
	location    *time.Location
	maxPerMonth int
}

func NewRules(c clock.Clock, loc *time.Location, maxPerMonth int) *Rules {
	if loc == nil {
		loc = time.Local
	}
	if maxPerMonth <= 0 {
		maxPerMonth = DefaultMaxPerMonth
	}
	return &Rules{
		clock:       c,
		location:    loc,
		maxPerMonth: maxPerMonth,
	}
}

func (r *Rules) MaxPerMonth() int {
	return r.maxPerMonth
}

func (r *Rules) Location() *time.Location {
	return r.location
}

func (r *Rules) Today() CalendarDay {
	return r.DayOf(r.clock.Now())
}

// DayOf converts an instant to its calendar day in the booking location.
func (r *Rules) DayOf(t time.Time) CalendarDay {
	return NewCalendarDay(t.In(r.location))
}

func IsWeekday(d CalendarDay) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

func (r *Rules) IsDateInPast(d CalendarDay) bool {
	return d.Before(r.Today())
}

func IsDuplicateDate(list []CalendarDay, d CalendarDay) bool {
	key := d.Key()
	for _, existing := range list {
		if existing.Key() == key {
			return true
		}
	}
	return false
}

// IsSingleDateSelected is the precondition for picking a new date: nothing is picked yet.
func IsSingleDateSelected(list []CalendarDay) bool {
	return len(list) == 0
}

// IsSingleTimeSelected is the precondition for picking an hour: no hour is staged yet.
func IsSingleTimeSelected(hours map[DateKey]AvailableHour) bool {
	return len(hours) == 0
}

func (r *Rules) CountActiveThisMonth(appointments []Appointment) int {
	today := r.Today()
	count := 0
	for _, a := range appointments {
		if !a.Status.IsActive() {
			continue
		}
		day, err := a.Day()
		if err != nil {
			continue
		}
		if day.SameMonth(today) {
			count++
		}
	}
	return count
}

func (r *Rules) HasReachedMonthlyLimit(appointments []Appointment) bool {
	return r.CountActiveThisMonth(appointments) >= r.maxPerMonth
}

// IsBookable reports whether d is a weekday of the current month from today on.
// The monthly ceiling only counts the current month, so later months stay closed.
func (r *Rules) IsBookable(d CalendarDay) bool {
	return IsWeekday(d) && !r.IsDateInPast(d) && d.SameMonth(r.Today())
}

// BookableDays lists the weekdays of the current month from today on.
func (r *Rules) BookableDays() []CalendarDay {
	today := r.Today()
	first := DayOf(today.Year(), today.Month(), 1)

	var days []CalendarDay
	for d := first; d.SameMonth(today); d = d.AddDays(1) {
		if r.IsBookable(d) {
			days = append(days, d)
		}
	}
	return days
}
