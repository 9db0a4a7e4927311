package calendar

// Event is a busy interval shared by its attendees.
type Event struct {
	// Name is used for diagnostics only.
	Name      string
	When      TimeRange
	attendees AttendeeSet
}

func NewEvent(name string, when TimeRange, attendees ...string) Event {
	return Event{
		Name:      name,
		When:      when,
		attendees: NewAttendeeSet(attendees...),
	}
}

func (e Event) Attendees() AttendeeSet {
	return e.attendees
}

// Involves reports whether any of the given attendees takes part in the event.
func (e Event) Involves(attendees AttendeeSet) bool {
	return e.attendees.Intersects(attendees)
}
