package calendar

import "github.com/nikmy/meetfinder/pkg/errors"

// MeetingRequest asks for a meeting of the given length that all mandatory
// attendees and, if possible, all optional attendees can join.
type MeetingRequest struct {
	duration  int
	attendees AttendeeSet
	optional  AttendeeSet
}

func NewMeetingRequest(duration int, attendees, optional []string) (MeetingRequest, error) {
	req := MeetingRequest{
		duration:  duration,
		attendees: NewAttendeeSet(attendees...),
		optional:  NewAttendeeSet(optional...),
	}
	return req, req.Validate()
}

func (r MeetingRequest) Validate() error {
	if r.duration <= 0 {
		return errors.Wrapf(ErrInvalidRequest, "duration must be positive, got %d", r.duration)
	}
	return nil
}

func (r MeetingRequest) Duration() int                  { return r.duration }
func (r MeetingRequest) Attendees() AttendeeSet         { return r.attendees }
func (r MeetingRequest) OptionalAttendees() AttendeeSet { return r.optional }

// Everyone is the union of mandatory and optional attendees.
func (r MeetingRequest) Everyone() AttendeeSet {
	return r.attendees.Union(r.optional)
}
