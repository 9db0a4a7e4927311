package source

import (
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/nikmy/meetfinder/internal/calendar"
	"github.com/nikmy/meetfinder/pkg/errors"
)

type dayDocument struct {
	Events []eventEntry `yaml:"events"`
}

type eventEntry struct {
	Name      string   `yaml:"name"`
	Start     clock    `yaml:"start"`
	End       *clock   `yaml:"end"`
	Duration  *int     `yaml:"duration"`
	Attendees []string `yaml:"attendees"`
}

// clock decodes "HH:MM" into minutes since midnight.
type clock int

func (c *clock) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string

	err := unmarshal(&raw)
	if err != nil {
		return err
	}

	minutes, err := calendar.ParseClock(raw)
	if err != nil {
		return err
	}

	*c = clock(minutes)
	return nil
}

// ParseYAML reads a day document: a list of events with "HH:MM" bounds
// (end or duration in minutes) and attendee names.
func ParseYAML(r io.Reader) ([]calendar.Event, error) {
	var doc dayDocument

	err := yaml.NewDecoder(r).Decode(&doc)
	if errors.Is(err, io.EOF) {
		return []calendar.Event{}, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "decode yaml day")
	}

	events := make([]calendar.Event, 0, len(doc.Events))
	for i, entry := range doc.Events {
		when, err := entry.when()
		if err != nil {
			return nil, errors.WrapFailf(err, "read event #%d (%q)", i, entry.Name)
		}

		name := entry.Name
		if name == "" {
			name = uuid.NewString()
		}

		events = append(events, calendar.NewEvent(name, when, entry.Attendees...))
	}

	return events, nil
}

func (e eventEntry) when() (calendar.TimeRange, error) {
	switch {
	case e.End != nil && e.Duration != nil:
		return calendar.TimeRange{}, errors.Error("both end and duration are set")
	case e.End != nil:
		return calendar.FromStartEnd(int(e.Start), int(*e.End), false)
	case e.Duration != nil:
		return calendar.FromStartDuration(int(e.Start), *e.Duration)
	default:
		return calendar.TimeRange{}, errors.Error("neither end nor duration is set")
	}
}
