package planner

import (
	"context"

	"github.com/nikmy/meetfinder/internal/calendar"
)

type API interface {
	// Suggest returns the meeting windows for req over the events of the day.
	Suggest(ctx context.Context, req calendar.MeetingRequest) ([]calendar.TimeRange, error)

	// Check returns the events that keep mandatory attendees busy if the
	// meeting starts at the given minute. No events means the slot is free.
	Check(ctx context.Context, start int, req calendar.MeetingRequest) ([]calendar.Event, error)
}

type EventSource interface {
	Events(ctx context.Context) ([]calendar.Event, error)
}
