package planner

import (
	"context"

	"github.com/nikmy/meetfinder/internal/calendar"
	"github.com/nikmy/meetfinder/internal/scheduler"
	"github.com/nikmy/meetfinder/pkg/errors"
	"github.com/nikmy/meetfinder/pkg/logger"
)

func New(log logger.Logger, source EventSource) API {
	return &planner{
		source: source,
		log:    log.With("planner"),
	}
}

type planner struct {
	source EventSource
	log    logger.Logger
}

func (p *planner) Suggest(ctx context.Context, req calendar.MeetingRequest) ([]calendar.TimeRange, error) {
	err := req.Validate()
	if err != nil {
		p.log.Debug(err)
		return nil, err
	}

	events, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	windows, err := scheduler.Find(events, req)
	if err != nil {
		return nil, err
	}

	p.log.Debugf("found %d windows among %d events", len(windows), len(events))
	return windows, nil
}

func (p *planner) Check(ctx context.Context, start int, req calendar.MeetingRequest) ([]calendar.Event, error) {
	err := req.Validate()
	if err != nil {
		p.log.Debug(err)
		return nil, err
	}

	slot, err := calendar.FromStartDuration(start, req.Duration())
	if err != nil {
		p.log.Debug(err)
		return nil, errors.WrapFail(err, "build slot")
	}

	events, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	found := scheduler.Conflicts(events, slot, req.Attendees())

	p.log.Debugf("%d conflicts at %s", len(found), slot)
	return found, nil
}

func (p *planner) load(ctx context.Context) ([]calendar.Event, error) {
	events, err := p.source.Events(ctx)
	if err != nil {
		err = errors.WrapFail(err, "load events")
		p.log.Error(err)
		return nil, err
	}
	return events, nil
}
