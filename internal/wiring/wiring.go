// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/warm/internal/adapters/config"
	_ "go.trai.ch/warm/internal/adapters/fs"
	_ "go.trai.ch/warm/internal/adapters/generator"
	_ "go.trai.ch/warm/internal/adapters/logger"
	_ "go.trai.ch/warm/internal/adapters/metrics"
	_ "go.trai.ch/warm/internal/adapters/resource"
	_ "go.trai.ch/warm/internal/adapters/store"
	_ "go.trai.ch/warm/internal/adapters/telemetry"
	_ "go.trai.ch/warm/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/warm/internal/app"
	_ "go.trai.ch/warm/internal/engine/freshness"
)
