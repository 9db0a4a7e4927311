package calendar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nikmy/meetfinder/pkg/errors"
)

// ParseClock converts "HH:MM" into minutes since midnight. "24:00" is
// accepted and maps to EndOfDay.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(mm) != 2 || hh == "" || len(hh) > 2 {
		return 0, errors.Error("malformed clock %q, want HH:MM", s)
	}

	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, errors.WrapFailf(err, "parse hours of %q", s)
	}

	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, errors.WrapFailf(err, "parse minutes of %q", s)
	}

	minutes := h*60 + m
	if h < 0 || m < 0 || m > 59 || minutes > EndOfDay {
		return 0, errors.Error("clock %q is out of day", s)
	}

	return minutes, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
