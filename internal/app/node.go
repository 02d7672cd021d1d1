package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/warm/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/warm/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/warm/internal/adapters/generator" //nolint:depguard // Wired in app layer
	"go.trai.ch/warm/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/warm/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/warm/internal/adapters/resource"  //nolint:depguard // Wired in app layer
	"go.trai.ch/warm/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/warm/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/warm/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/warm/internal/core/ports"
	"go.trai.ch/warm/internal/engine/freshness"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.NodeID,
			store.MetaStoreNodeID,
			store.WriterNodeID,
			freshness.NodeID,
			resource.NodeID,
			generator.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one branch per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[afero.Fs](ctx)
	if err != nil {
		return nil, err
	}

	metas, err := graft.Dep[ports.MetaStore](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.CacheWriter](ctx)
	if err != nil {
		return nil, err
	}

	checker, err := graft.Dep[ports.FreshnessChecker](ctx)
	if err != nil {
		return nil, err
	}

	tracker, err := graft.Dep[*resource.Resources](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[*generator.Compiler](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, fsys, metas, checker, writer, tracker, compiler, tracer, m, w), nil
}
