package appointment

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateKeyLayout = "2006-01-02"
	HourLayout    = "15:04"
)

var (
	ErrInvalidDateKey = errors.New("invalid date key")
	ErrInvalidHour    = errors.New("invalid hour")
)

// DateKey is the canonical YYYY-MM-DD form of a CalendarDay.
type DateKey string

func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(DateKeyLayout, strings.TrimSpace(s))
	if err != nil {
		return "", ErrInvalidDateKey
	}
	return NewCalendarDay(t).Key(), nil
}

func (k DateKey) String() string {
	return string(k)
}

func (k DateKey) Day() (CalendarDay, error) {
	t, err := time.Parse(DateKeyLayout, string(k))
	if err != nil {
		return CalendarDay{}, ErrInvalidDateKey
	}
	return NewCalendarDay(t), nil
}

// CalendarDay is a date without time of day or zone.
type CalendarDay struct {
	year  int
	month time.Month
	day   int
}

// NewCalendarDay keeps the calendar date t has in its own location.
func NewCalendarDay(t time.Time) CalendarDay {
	y, m, d := t.Date()
	return CalendarDay{year: y, month: m, day: d}
}

// DayOf normalizes out-of-range values the same way time.Date does.
func DayOf(year int, month time.Month, day int) CalendarDay {
	return NewCalendarDay(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func (d CalendarDay) Year() int         { return d.year }
func (d CalendarDay) Month() time.Month { return d.month }
func (d CalendarDay) Day() int          { return d.day }

func (d CalendarDay) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d CalendarDay) Key() DateKey {
	return DateKey(fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day))
}

func (d CalendarDay) String() string {
	return string(d.Key())
}

// Midnight returns the start of d in loc.
func (d CalendarDay) Midnight(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d CalendarDay) Weekday() time.Weekday {
	return d.Midnight(time.UTC).Weekday()
}

func (d CalendarDay) AddDays(n int) CalendarDay {
	return DayOf(d.year, d.month, d.day+n)
}

func (d CalendarDay) Equal(other CalendarDay) bool {
	return d.Key() == other.Key()
}

func (d CalendarDay) Before(other CalendarDay) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

func (d CalendarDay) SameMonth(other CalendarDay) bool {
	return d.year == other.year && d.month == other.month
}

// AvailableHour is a bookable time of day in HH:MM.
type AvailableHour string

// ParseAvailableHour accepts HH:MM or HH:MM:SS and truncates to HH:MM.
func ParseAvailableHour(s string) (AvailableHour, error) {
	s = strings.TrimSpace(s)
	if len(s) < len(HourLayout) {
		return "", ErrInvalidHour
	}
	if len(s) > len(HourLayout) && s[len(HourLayout)] != ':' {
		return "", ErrInvalidHour
	}
	t, err := time.Parse(HourLayout, s[:len(HourLayout)])
	if err != nil {
		return "", ErrInvalidHour
	}
	return AvailableHour(t.Format(HourLayout)), nil
}

func (h AvailableHour) String() string {
	return string(h)
}
