package scheduler

import "github.com/nikmy/meetfinder/internal/calendar"

// blockExtent tracks the rightmost minute an attendee class is busy until.
// A class that has seen no events is free from the start of the day, which
// is not the same as a class whose event ended at minute zero.
type blockExtent struct {
	end  int
	seen bool
}

func (b *blockExtent) boundary() int {
	if !b.seen {
		return calendar.StartOfDay
	}
	return b.end
}

func (b *blockExtent) extend(end int) {
	if !b.seen || end > b.end {
		b.end = end
	}
	b.seen = true
}
