package resource

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/warm/internal/adapters/fs"
)

const (
	// NodeID is the unique identifier for the resource Graft node.
	NodeID graft.ID = "adapter.resource"
	// TypesNodeID is the unique identifier for the type registry Graft node.
	TypesNodeID graft.ID = "adapter.resource.types"
)

func init() {
	graft.Register(graft.Node[*Types]{
		ID:        TypesNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Types, error) {
			return NewTypes(), nil
		},
	})

	graft.Register(graft.Node[*Resources]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, fs.HasherNodeID, fs.WalkerNodeID, fs.ResolverNodeID, TypesNodeID},
		Run: func(ctx context.Context) (*Resources, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[*fs.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			types, err := graft.Dep[*Types](ctx)
			if err != nil {
				return nil, err
			}
			return New(fsys, hasher, walker, resolver, types), nil
		},
	})
}
