package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikmy/meetfinder/internal/calendar"
	"github.com/nikmy/meetfinder/pkg/errors"
	"github.com/nikmy/meetfinder/pkg/logger"
)

// File reads a day of events from a .yaml/.yml or .ics file on every call.
type File struct {
	path string
	day  time.Time
	log  logger.Logger
}

func NewFile(log logger.Logger, path string, day time.Time) *File {
	return &File{
		path: path,
		day:  day,
		log:  log.With("file_source"),
	}
}

func (f *File) Events(ctx context.Context) ([]calendar.Event, error) {
	err := ctx.Err()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(f.path)
	if err != nil {
		return nil, errors.WrapFail(err, "open events file")
	}

	defer func() {
		err := file.Close()
		if err != nil {
			f.log.Warn(errors.WrapFail(err, "close events file"))
		}
	}()

	var events []calendar.Event

	switch ext := strings.ToLower(filepath.Ext(f.path)); ext {
	case ".yaml", ".yml":
		events, err = ParseYAML(file)
	case ".ics", ".ical":
		events, err = ParseICal(file, f.day, f.log)
	default:
		return nil, errors.Failf("read events from %q files", ext)
	}

	if err != nil {
		return nil, errors.WrapFailf(err, "parse %s", f.path)
	}

	f.log.Debugf("loaded %d events from %s", len(events), f.path)
	return events, nil
}
