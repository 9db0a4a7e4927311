package source

import (
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/nikmy/meetfinder/internal/calendar"
	"github.com/nikmy/meetfinder/pkg/errors"
	"github.com/nikmy/meetfinder/pkg/logger"
)

const statusCancelled = "CANCELLED"

// ParseICal decodes every VEVENT of the stream that falls on day, clipped to
// that day. Times are read in day's location. Cancelled and recurring events
// are skipped.
func ParseICal(r io.Reader, day time.Time, log logger.Logger) ([]calendar.Event, error) {
	loc := day.Location()
	y, m, d := day.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	dec := ical.NewDecoder(r)
	events := []calendar.Event{}

	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.WrapFail(err, "decode calendar")
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}

			name := eventName(comp)

			if status := comp.Props.Get(ical.PropStatus); status != nil && strings.EqualFold(status.Value, statusCancelled) {
				log.Debugf("skip cancelled event %q", name)
				continue
			}

			if comp.Props.Get(ical.PropRecurrenceRule) != nil {
				log.Warnf("skip recurring event %q", name)
				continue
			}

			start, end, err := eventBounds(comp, loc)
			if err != nil {
				return nil, errors.WrapFailf(err, "read bounds of %q", name)
			}

			if !start.Before(dayEnd) || !end.After(dayStart) {
				continue
			}

			when, err := calendar.FromStartEnd(floorMinute(start, dayStart), ceilMinute(end, dayStart), false)
			if err != nil {
				return nil, errors.WrapFailf(err, "clip %q to day", name)
			}

			events = append(events, calendar.NewEvent(name, when, eventAttendees(comp)...))
		}
	}

	return events, nil
}

func eventName(comp *ical.Component) string {
	if summary := comp.Props.Get(ical.PropSummary); summary != nil && summary.Value != "" {
		return summary.Value
	}
	if uid := comp.Props.Get(ical.PropUID); uid != nil && uid.Value != "" {
		return uid.Value
	}
	return uuid.NewString()
}

func eventBounds(comp *ical.Component, loc *time.Location) (time.Time, time.Time, error) {
	startProp := comp.Props.Get(ical.PropDateTimeStart)
	if startProp == nil {
		return time.Time{}, time.Time{}, errors.Error("no %s", ical.PropDateTimeStart)
	}

	start, err := startProp.DateTime(loc)
	if err != nil {
		return time.Time{}, time.Time{}, errors.WrapFail(err, "parse start")
	}

	var end time.Time
	switch {
	case comp.Props.Get(ical.PropDateTimeEnd) != nil:
		end, err = comp.Props.Get(ical.PropDateTimeEnd).DateTime(loc)
		if err != nil {
			return time.Time{}, time.Time{}, errors.WrapFail(err, "parse end")
		}
	case comp.Props.Get(ical.PropDuration) != nil:
		dur, err := comp.Props.Get(ical.PropDuration).Duration()
		if err != nil {
			return time.Time{}, time.Time{}, errors.WrapFail(err, "parse duration")
		}
		end = start.Add(dur)
	case isDate(startProp):
		end = start.AddDate(0, 0, 1)
	default:
		end = start
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.Error("ends before it starts")
	}

	return start.In(loc), end.In(loc), nil
}

// isDate reports whether the property holds a whole date, as all-day events do.
func isDate(prop *ical.Prop) bool {
	return len(prop.Value) == len("20060102")
}

// floorMinute and ceilMinute map an instant to a minute of the day so that a
// partially busy minute stays busy.
func floorMinute(t, dayStart time.Time) int {
	if !t.After(dayStart) {
		return calendar.StartOfDay
	}
	return min(int(t.Sub(dayStart)/time.Minute), calendar.EndOfDay)
}

func ceilMinute(t, dayStart time.Time) int {
	if !t.After(dayStart) {
		return calendar.StartOfDay
	}
	return min(int((t.Sub(dayStart)+time.Minute-1)/time.Minute), calendar.EndOfDay)
}

func eventAttendees(comp *ical.Component) []string {
	var attendees []string
	for _, name := range []string{ical.PropOrganizer, ical.PropAttendee} {
		for _, prop := range comp.Props[name] {
			if id := attendeeID(prop.Value); id != "" {
				attendees = append(attendees, id)
			}
		}
	}
	return attendees
}

func attendeeID(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= len("mailto:") && strings.EqualFold(value[:len("mailto:")], "mailto:") {
		value = value[len("mailto:"):]
	}
	return value
}
