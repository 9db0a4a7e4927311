package calendar

import (
	"cmp"
	"fmt"

	"github.com/nikmy/meetfinder/pkg/errors"
)

const (
	// StartOfDay is the first minute of a day.
	StartOfDay = 0

	// EndOfDay is the day length in minutes. As a range end it is either
	// an exclusive bound or, for the last window of a day, an inclusive one.
	EndOfDay = 24 * 60
)

// WholeDay covers the day up to and including EndOfDay.
var WholeDay = TimeRange{start: StartOfDay, end: EndOfDay, inclusive: true}

// TimeRange is an immutable span of minutes within a single day.
// Its end is exclusive unless the range was built as inclusive.
type TimeRange struct {
	start     int
	end       int
	inclusive bool
}

func FromStartDuration(start, duration int) (TimeRange, error) {
	if duration < 0 {
		return TimeRange{}, errors.Wrapf(ErrInvalidRange, "negative duration %d", duration)
	}

	return FromStartEnd(start, start+duration, false)
}

// FromStartEnd builds [start, end) or, with inclusive set, [start, end].
func FromStartEnd(start, end int, inclusive bool) (TimeRange, error) {
	if start < StartOfDay || end > EndOfDay || start > end {
		return TimeRange{}, errors.Wrapf(ErrInvalidRange, "bounds %d..%d out of day", start, end)
	}

	return TimeRange{start: start, end: end, inclusive: inclusive}, nil
}

func (r TimeRange) Start() int      { return r.start }
func (r TimeRange) End() int        { return r.end }
func (r TimeRange) Inclusive() bool { return r.inclusive }
func (r TimeRange) Duration() int   { return r.end - r.start }

// limit is the first minute past the range.
func (r TimeRange) limit() int {
	if r.inclusive {
		return r.end + 1
	}
	return r.end
}

// IsEmpty reports whether the range covers no minute at all.
func (r TimeRange) IsEmpty() bool {
	return r.limit() == r.start
}

func (r TimeRange) Contains(point int) bool {
	return r.start <= point && point < r.limit()
}

func (r TimeRange) ContainsRange(other TimeRange) bool {
	if other.IsEmpty() {
		return r.start <= other.start && other.start <= r.limit()
	}
	return r.start <= other.start && other.limit() <= r.limit()
}

// Overlaps reports whether both ranges cover at least one common minute.
func (r TimeRange) Overlaps(other TimeRange) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.start < other.limit() && other.start < r.limit()
}

// Compare orders ranges by start, then by end, exclusive ends first.
func (r TimeRange) Compare(other TimeRange) int {
	if c := cmp.Compare(r.start, other.start); c != 0 {
		return c
	}
	if c := cmp.Compare(r.end, other.end); c != 0 {
		return c
	}
	switch {
	case r.inclusive == other.inclusive:
		return 0
	case r.inclusive:
		return 1
	default:
		return -1
	}
}

func (r TimeRange) String() string {
	closing := ")"
	if r.inclusive {
		closing = "]"
	}
	return fmt.Sprintf("[%s, %s%s", FormatClock(r.start), FormatClock(r.end), closing)
}
