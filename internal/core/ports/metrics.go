package ports

import (
	"time"

	"go.trai.ch/warm/internal/core/domain"
)

//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks

// Metrics records cache activity.
type Metrics interface {
	// Hit records that key was served without regeneration.
	Hit(key domain.CacheKey)
	// Miss records that key had to be regenerated.
	Miss(key domain.CacheKey)
	// Regenerated records a successful regeneration and its duration.
	Regenerated(key domain.CacheKey, took time.Duration)
	// GenerationFailed records a failed regeneration.
	GenerationFailed(key domain.CacheKey)
	// WriteTextfile writes the current metrics in text exposition format to path.
	WriteTextfile(path string) error
}
