package scheduler

import (
	"slices"

	"github.com/nikmy/meetfinder/internal/calendar"
	"github.com/nikmy/meetfinder/pkg/errors"
)

/*
Find sweeps the day left to right keeping, per attendee class, the
rightmost minute up to which that class is busy (its block extent):

	|-----A-----|                  |------A-----|
	      |----------B-----|       |---B---|
	|______________________||______|
	        block            window

An event starting after an extent leaves a window behind it. Windows for
mandatory attendees are collected separately from windows that suit both
classes; the latter win whenever the request has optional attendees and
at least one such window exists.
*/
func Find(events []calendar.Event, req calendar.MeetingRequest) ([]calendar.TimeRange, error) {
	err := req.Validate()
	if err != nil {
		return nil, errors.WrapFail(err, "find meeting windows")
	}

	duration := req.Duration()
	if duration > calendar.EndOfDay {
		return []calendar.TimeRange{}, nil
	}

	mandatory, optional := req.Attendees(), req.OptionalAttendees()
	if mandatory.Len() == 0 && optional.Len() == 0 {
		return []calendar.TimeRange{calendar.WholeDay}, nil
	}

	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b calendar.Event) int {
		return a.When.Compare(b.When)
	})

	var (
		mandatoryBlock, optionalBlock blockExtent

		windows  []calendar.TimeRange
		combined []calendar.TimeRange
	)

	withOptional := optional.Len() > 0

	for _, e := range sorted {
		if e.When.IsEmpty() {
			continue
		}

		touchesMandatory := e.Involves(mandatory)
		touchesOptional := e.Involves(optional)
		if !touchesMandatory && !touchesOptional {
			continue
		}

		start := e.When.Start()

		if touchesMandatory {
			if from := mandatoryBlock.boundary(); fits(from, start, duration) {
				windows = append(windows, window(from, start, false))
			}
		}

		if withOptional {
			if from := max(mandatoryBlock.boundary(), optionalBlock.boundary()); fits(from, start, duration) {
				combined = append(combined, window(from, start, false))
			}
		}

		if touchesMandatory {
			mandatoryBlock.extend(e.When.End())
		}
		if touchesOptional {
			optionalBlock.extend(e.When.End())
		}
	}

	// the rest of the day is a window like any other, closed at its end
	if from := mandatoryBlock.boundary(); fits(from, calendar.EndOfDay, duration) {
		windows = append(windows, window(from, calendar.EndOfDay, true))
	}

	if withOptional {
		if from := max(mandatoryBlock.boundary(), optionalBlock.boundary()); fits(from, calendar.EndOfDay, duration) {
			combined = append(combined, window(from, calendar.EndOfDay, true))
		}
	}

	if len(combined) > 0 {
		return combined, nil
	}

	if windows == nil {
		windows = []calendar.TimeRange{}
	}
	return windows, nil
}

func fits(from, to, duration int) bool {
	return to > from && to-from >= duration
}

// window builds a range whose bounds come from validated events, so
// it can not be out of day.
func window(from, to int, inclusive bool) calendar.TimeRange {
	r, err := calendar.FromStartEnd(from, to, inclusive)
	if err != nil {
		panic(errors.WrapFail(err, "build window"))
	}
	return r
}
