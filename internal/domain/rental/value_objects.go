package rental

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
	ErrMissingWindow = errors.New("availability window requires both dates")
)

// DateRange holds two calendar dates. start is never after end.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) DateRange {
	s, e := truncateDate(start), truncateDate(end)
	if s.After(e) {
		s, e = e, s
	}
	return DateRange{start: s, end: e}
}

func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e), nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) StartString() string { return r.start.Format(DateLayout) }
func (r DateRange) EndString() string   { return r.end.Format(DateLayout) }

// RawDays is the number of whole days between the boundary dates, rounded up.
func (r DateRange) RawDays() int {
	d := r.end.Sub(r.start)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// Overlaps reports whether the two ranges share at least one date.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !other.start.After(r.end)
}

func (r DateRange) Contains(other DateRange) bool {
	return !other.start.Before(r.start) && !other.end.After(r.end)
}

func (r DateRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// Window is a product's availability period.
type Window struct {
	dates     DateRange
	available bool
}

func NewWindow(start, end string, available bool) (Window, error) {
	if start == "" || end == "" {
		return Window{}, ErrMissingWindow
	}
	r, err := ParseDateRange(start, end)
	if err != nil {
		return Window{}, err
	}
	return Window{dates: r, available: available}, nil
}

func (w Window) Dates() DateRange  { return w.dates }
func (w Window) IsAvailable() bool { return w.available }

// Admits reports whether the requested range can be rented inside the window.
func (w Window) Admits(requested DateRange) bool {
	return w.available && w.dates.Contains(requested)
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
