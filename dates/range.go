// Package dates holds half-open date ranges and Java style date patterns.
package dates

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrInvalidRange = errors.New("invalid date range")
	ErrBadPattern   = errors.New("bad date pattern")
)

// DateRange covers [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, errors.Wrapf(ErrInvalidRange, "end %s before start %s",
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return DateRange{Start: start, End: end}, nil
}

// DaysFrom builds the range of n calendar days starting at the date of start.
func DaysFrom(start time.Time, n int) (DateRange, error) {
	y, m, d := start.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, start.Location())
	return NewDateRange(from, from.AddDate(0, 0, n))
}

func (r DateRange) IsEmpty() bool {
	return !r.Start.Before(r.End)
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

func (r DateRange) Overlaps(o DateRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// Intersect returns the common part, false when the ranges do not overlap.
func (r DateRange) Intersect(o DateRange) (DateRange, bool) {
	if !r.Overlaps(o) {
		return DateRange{}, false
	}
	start, end := r.Start, r.End
	if o.Start.After(start) {
		start = o.Start
	}
	if o.End.Before(end) {
		end = o.End
	}
	return DateRange{Start: start, End: end}, true
}

func (r DateRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Days counts whole 24 hour days.
func (r DateRange) Days() int {
	return int(r.Duration() / (24 * time.Hour))
}

// Each yields Start, Start+step, ... while inside the range.
func (r DateRange) Each(step time.Duration) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if step <= 0 {
			return
		}
		for t := r.Start; t.Before(r.End); t = t.Add(step) {
			if !yield(t) {
				return
			}
		}
	}
}

// EachDay steps by calendar day, which follows daylight saving changes.
func (r DateRange) EachDay() iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for i, t := 0, r.Start; t.Before(r.End); i, t = i+1, r.Start.AddDate(0, 0, i+1) {
			if !yield(t) {
				return
			}
		}
	}
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start.Format(time.RFC3339), r.End.Format(time.RFC3339))
}

// MarshalText writes the ISO 8601 interval form start/end.
func (r DateRange) MarshalText() ([]byte, error) {
	return []byte(r.Start.Format(time.RFC3339Nano) + "/" + r.End.Format(time.RFC3339Nano)), nil
}

func (r *DateRange) UnmarshalText(text []byte) error {
	parsed, err := ParseRange(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRange reads the start/end form written by MarshalText.
func ParseRange(s string) (DateRange, error) {
	from, to, ok := strings.Cut(s, "/")
	if !ok {
		return DateRange{}, errors.Wrapf(ErrInvalidRange, "%q: missing /", s)
	}
	start, err := time.Parse(time.RFC3339Nano, from)
	if err != nil {
		return DateRange{}, errors.Wrapf(ErrInvalidRange, "%q: %v", s, err)
	}
	end, err := time.Parse(time.RFC3339Nano, to)
	if err != nil {
		return DateRange{}, errors.Wrapf(ErrInvalidRange, "%q: %v", s, err)
	}
	return NewDateRange(start, end)
}
