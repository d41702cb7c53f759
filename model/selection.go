package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/muhammadheryan/booking-capacity/constant"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Selection is the date, range or time slot chosen for a booking.
type Selection struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	FromTime  string `json:"from_time,omitempty" validate:"omitempty,datetime=15:04"`
	ToTime    string `json:"to_time,omitempty" validate:"omitempty,datetime=15:04"`
}

// Key is a stable textual form of the selection.
func (s Selection) Key() string {
	return strings.Join([]string{s.StartDate, s.EndDate, s.FromTime, s.ToTime}, "|")
}

func (s Selection) SlotKey(productID uint64) SlotKey {
	return SlotKey{ProductID: productID, Date: s.StartDate, FromTime: s.FromTime, ToTime: s.ToTime}
}

// Dates returns the concrete dates whose capacity a booking of type t
// consumes: every night of [start, end) for multi-day bookings, the start
// date otherwise.
func (s Selection) Dates(t constant.BookingType) ([]string, error) {
	start, err := time.Parse(DateLayout, s.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", s.StartDate, err)
	}
	if t != constant.BookingTypeMultiDay {
		return []string{start.Format(DateLayout)}, nil
	}
	end, err := time.Parse(DateLayout, s.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", s.EndDate, err)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("end date %s must be after start date %s", s.EndDate, s.StartDate)
	}
	dates := make([]string, 0, int(end.Sub(start).Hours()/24))
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates, nil
}

// Check validates the selection against the fields its booking type needs.
func (s Selection) Check(t constant.BookingType) error {
	if _, err := s.Dates(t); err != nil {
		return err
	}
	if !t.IsTimed() {
		return nil
	}
	if s.FromTime == "" {
		return fmt.Errorf("booking type %s requires a from time", t)
	}
	_, err := ParseTimeRange(s.FromTime, s.ToTime)
	return err
}

// WeekdayOf returns the weekday number of a date, Sunday being 0.
func WeekdayOf(date string) (int, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return int(d.Weekday()), nil
}

// TimeRange is a half-open interval of minutes since midnight.
type TimeRange struct {
	Start int
	End   int
}

// ParseTimeRange parses a from/to pair. An empty to time makes the range a
// single minute wide.
func ParseTimeRange(from, to string) (TimeRange, error) {
	start, err := parseClock(from)
	if err != nil {
		return TimeRange{}, err
	}
	if to == "" {
		return TimeRange{Start: start, End: start + 1}, nil
	}
	end, err := parseClock(to)
	if err != nil {
		return TimeRange{}, err
	}
	if end <= start {
		return TimeRange{}, fmt.Errorf("time range %s-%s is empty", from, to)
	}
	return TimeRange{Start: start, End: end}, nil
}

func parseClock(v string) (int, error) {
	t, err := time.Parse(ClockLayout, v)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", v, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func (r TimeRange) Overlaps(o TimeRange) bool {
	return r.Start < o.End && o.Start < r.End
}

// RangesOverlap parses both ranges and reports whether they intersect.
// Unparsable ranges never overlap.
func RangesOverlap(aFrom, aTo, bFrom, bTo string) bool {
	a, err := ParseTimeRange(aFrom, aTo)
	if err != nil {
		return false
	}
	b, err := ParseTimeRange(bFrom, bTo)
	if err != nil {
		return false
	}
	return a.Overlaps(b)
}
