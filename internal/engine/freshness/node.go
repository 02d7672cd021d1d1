package freshness

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/warm/internal/adapters/fs"
	"go.trai.ch/warm/internal/adapters/resource"
	"go.trai.ch/warm/internal/adapters/store"
	"go.trai.ch/warm/internal/core/ports"
)

// NodeID is the unique identifier for the freshness checker Graft node.
const NodeID graft.ID = "engine.freshness"

func init() {
	graft.Register(graft.Node[ports.FreshnessChecker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{store.MetaStoreNodeID, resource.NodeID, fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.FreshnessChecker, error) {
			metas, err := graft.Dep[ports.MetaStore](ctx)
			if err != nil {
				return nil, err
			}
			resources, err := graft.Dep[*resource.Resources](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewChecker(metas, resources, hasher), nil
		},
	})
}
