package main

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/nikmy/meetfinder/internal/calendar"
	"github.com/nikmy/meetfinder/internal/planner"
	"github.com/nikmy/meetfinder/internal/report"
	"github.com/nikmy/meetfinder/internal/source"
	"github.com/nikmy/meetfinder/pkg/config"
	"github.com/nikmy/meetfinder/pkg/environment"
	"github.com/nikmy/meetfinder/pkg/errors"
	"github.com/nikmy/meetfinder/pkg/logger"
)

const dayLayout = "2006-01-02"

type application struct {
	cfg *config.Config
	log logger.Logger
}

func (a *application) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return errors.WrapFail(err, "load config")
	}

	if env := c.String("env"); env != "" {
		cfg.Environment = environment.FromString(env)
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		return errors.WrapFail(err, "init logger")
	}

	a.cfg, a.log = cfg, log
	return nil
}

func requestFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "events", Aliases: []string{"e"}, Usage: "day file (.yaml, .yml or .ics)"},
		&cli.StringFlag{Name: "day", Usage: "day to read from .ics files, " + dayLayout + " (default: today)"},
		&cli.IntFlag{Name: "duration", Aliases: []string{"d"}, Usage: "meeting length in minutes"},
		&cli.StringSliceFlag{Name: "attendee", Aliases: []string{"a"}, Usage: "mandatory attendee, repeatable"},
		&cli.StringSliceFlag{Name: "optional", Aliases: []string{"o"}, Usage: "optional attendee, repeatable"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "output format: text, yaml or json"},
	}
}

func (a *application) findCommand() *cli.Command {
	return &cli.Command{
		Name:  "find",
		Usage: "List every window the attendees can meet in.",
		Flags: requestFlags(),
		Action: func(c *cli.Context) error {
			p, req, format, err := a.prepare(c)
			if err != nil {
				return err
			}

			windows, err := p.Suggest(c.Context, req)
			if err != nil {
				return errors.WrapFail(err, "suggest windows")
			}

			return report.Windows(c.App.Writer, format, windows)
		},
	}
}

func (a *application) checkCommand() *cli.Command {
	flags := append(requestFlags(), &cli.StringFlag{
		Name:     "at",
		Usage:    "proposed start, HH:MM",
		Required: true,
	})

	return &cli.Command{
		Name:  "check",
		Usage: "Show events clashing with a meeting at the proposed time.",
		Flags: flags,
		Action: func(c *cli.Context) error {
			start, err := calendar.ParseClock(c.String("at"))
			if err != nil {
				return errors.WrapFail(err, "parse --at")
			}

			p, req, format, err := a.prepare(c)
			if err != nil {
				return err
			}

			found, err := p.Check(c.Context, start, req)
			if err != nil {
				return errors.WrapFail(err, "check slot")
			}

			return report.Conflicts(c.App.Writer, format, found)
		},
	}
}

func (a *application) prepare(c *cli.Context) (planner.API, calendar.MeetingRequest, report.Format, error) {
	defaults := a.cfg.Defaults

	format, err := report.ParseFormat(firstSet(c.String("format"), defaults.Format))
	if err != nil {
		return nil, calendar.MeetingRequest{}, "", err
	}

	path := firstSet(c.String("events"), defaults.Events)
	if path == "" {
		return nil, calendar.MeetingRequest{}, "", errors.Error("no events file, use --events")
	}

	day := time.Now()
	if raw := c.String("day"); raw != "" {
		day, err = time.ParseInLocation(dayLayout, raw, time.Local)
		if err != nil {
			return nil, calendar.MeetingRequest{}, "", errors.WrapFail(err, "parse --day")
		}
	}

	duration := defaults.Duration
	if c.IsSet("duration") {
		duration = c.Int("duration")
	}

	req, err := calendar.NewMeetingRequest(duration, c.StringSlice("attendee"), c.StringSlice("optional"))
	if err != nil {
		return nil, calendar.MeetingRequest{}, "", err
	}

	src := source.NewFile(a.log, path, day)
	return planner.New(a.log, src), req, format, nil
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
