package store

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/warm/internal/adapters/fs"
	"go.trai.ch/warm/internal/core/ports"
)

const (
	// MetaStoreNodeID is the unique identifier for the meta store Graft node.
	MetaStoreNodeID graft.ID = "adapter.meta_store"
	// WriterNodeID is the unique identifier for the cache writer Graft node.
	WriterNodeID graft.ID = "adapter.cache_writer"
)

func init() {
	graft.Register(graft.Node[ports.MetaStore]{
		ID:        MetaStoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.MetaStore, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewMetaStore(fsys), nil
		},
	})

	graft.Register(graft.Node[ports.CacheWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (ports.CacheWriter, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(fsys), nil
		},
	})
}
