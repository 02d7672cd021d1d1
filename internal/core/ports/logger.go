package ports

import (
	"time"

	"go.trai.ch/warm/internal/core/domain"
)

// EntryEvent is a log line about a single cache entry.
type EntryEvent struct {
	Key   domain.CacheKey
	State domain.EntryState
	Msg   string
	// Took is omitted from the output when zero.
	Took time.Duration
}

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
	Entry(ev EntryEvent)
}
