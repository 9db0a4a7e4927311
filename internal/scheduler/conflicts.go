package scheduler

import (
	"slices"
	"sort"

	"github.com/nikmy/meetfinder/internal/calendar"
)

// Conflicts returns events that keep any of the attendees busy during slot,
// ordered by start.
func Conflicts(events []calendar.Event, slot calendar.TimeRange, attendees calendar.AttendeeSet) []calendar.Event {
	if attendees.Len() == 0 {
		return nil
	}

	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b calendar.Event) int {
		return a.When.Compare(b.When)
	})

	// events starting after the slot can not overlap it
	n := sort.Search(len(sorted), func(i int) bool {
		return !slot.Contains(sorted[i].When.Start()) && sorted[i].When.Start() >= slot.Start()
	})

	var found []calendar.Event
	for _, e := range sorted[:n] {
		if e.Involves(attendees) && e.When.Overlaps(slot) {
			found = append(found, e)
		}
	}
	return found
}
