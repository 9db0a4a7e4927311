package calendar

import (
	"maps"
	"slices"
)

// AttendeeSet is a read-only set of attendee identifiers.
type AttendeeSet struct {
	ids map[string]struct{}
}

func NewAttendeeSet(ids ...string) AttendeeSet {
	set := AttendeeSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		set.ids[id] = struct{}{}
	}
	return set
}

func (s AttendeeSet) Len() int {
	return len(s.ids)
}

func (s AttendeeSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s AttendeeSet) Intersects(other AttendeeSet) bool {
	small, big := s, other
	if small.Len() > big.Len() {
		small, big = big, small
	}

	for id := range small.ids {
		if big.Has(id) {
			return true
		}
	}
	return false
}

func (s AttendeeSet) Union(other AttendeeSet) AttendeeSet {
	union := AttendeeSet{ids: make(map[string]struct{}, s.Len()+other.Len())}
	maps.Copy(union.ids, s.ids)
	maps.Copy(union.ids, other.ids)
	return union
}

// Slice returns the identifiers in ascending order.
func (s AttendeeSet) Slice() []string {
	return slices.Sorted(maps.Keys(s.ids))
}
