package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/meetfinder/internal/calendar"
	"github.com/nikmy/meetfinder/pkg/errors"
)

type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, YAML, JSON:
		return f, nil
	case "":
		return Text, nil
	default:
		return "", errors.Error("unknown output format %q", s)
	}
}

type windowRecord struct {
	Start     string `json:"start"     yaml:"start"`
	End       string `json:"end"       yaml:"end"`
	Inclusive bool   `json:"inclusive" yaml:"inclusive"`
	Minutes   int    `json:"minutes"   yaml:"minutes"`
}

type conflictRecord struct {
	Name      string   `json:"name"      yaml:"name"`
	Start     string   `json:"start"     yaml:"start"`
	End       string   `json:"end"       yaml:"end"`
	Attendees []string `json:"attendees" yaml:"attendees"`
}

func toWindowRecord(r calendar.TimeRange) windowRecord {
	return windowRecord{
		Start:     calendar.FormatClock(r.Start()),
		End:       calendar.FormatClock(r.End()),
		Inclusive: r.Inclusive(),
		Minutes:   r.Duration(),
	}
}

// Windows writes the meeting windows in the given format.
func Windows(w io.Writer, f Format, windows []calendar.TimeRange) error {
	if f == Text {
		if len(windows) == 0 {
			_, err := fmt.Fprintln(w, "no available windows")
			return errors.WrapFail(err, "write windows")
		}

		for _, r := range windows {
			_, err := fmt.Fprintf(w, "%s-%s (%d min)\n", calendar.FormatClock(r.Start()), calendar.FormatClock(r.End()), r.Duration())
			if err != nil {
				return errors.WrapFail(err, "write windows")
			}
		}
		return nil
	}

	records := make([]windowRecord, 0, len(windows))
	for _, r := range windows {
		records = append(records, toWindowRecord(r))
	}

	return encode(w, f, map[string]any{"windows": records})
}

// Conflicts writes the events that clash with a proposed slot.
func Conflicts(w io.Writer, f Format, events []calendar.Event) error {
	if f == Text {
		if len(events) == 0 {
			_, err := fmt.Fprintln(w, "no conflicts")
			return errors.WrapFail(err, "write conflicts")
		}

		for _, e := range events {
			_, err := fmt.Fprintf(w, "%s %s (%s)\n", e.When, e.Name, strings.Join(e.Attendees().Slice(), ", "))
			if err != nil {
				return errors.WrapFail(err, "write conflicts")
			}
		}
		return nil
	}

	records := make([]conflictRecord, 0, len(events))
	for _, e := range events {
		records = append(records, conflictRecord{
			Name:      e.Name,
			Start:     calendar.FormatClock(e.When.Start()),
			End:       calendar.FormatClock(e.When.End()),
			Attendees: e.Attendees().Slice(),
		})
	}

	return encode(w, f, map[string]any{"conflicts": records})
}

func encode(w io.Writer, f Format, v any) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(v)
		if err != nil {
			return errors.WrapFail(err, "encode yaml")
		}
		return errors.WrapFail(enc.Close(), "flush yaml")
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.WrapFail(enc.Encode(v), "encode json")
	default:
		return errors.Error("unknown output format %q", f)
	}
}
