package planner

import (
	"github.com/nikmy/meetfinder/pkg/logger"
)

type eventSource interface {
	EventSource
}

type loggerImpl interface {
	logger.Logger
}
