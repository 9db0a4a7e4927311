package calendar

import "github.com/nikmy/meetfinder/pkg/errors"

var (
	// ErrInvalidRange is returned for bounds outside a single day or reversed bounds.
	ErrInvalidRange = errors.New("invalid time range")

	// ErrInvalidRequest is returned for meeting requests without a positive duration.
	ErrInvalidRequest = errors.New("invalid meeting request")
)
