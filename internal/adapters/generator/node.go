package generator

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"go.trai.ch/warm/internal/adapters/fs"
	"go.trai.ch/warm/internal/adapters/resource"
)

// NodeID is the unique identifier for the compiler Graft node.
const NodeID graft.ID = "adapter.generator"

func init() {
	graft.Register(graft.Node[*Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, fs.WalkerNodeID, fs.ResolverNodeID, resource.TypesNodeID},
		Run: func(ctx context.Context) (*Compiler, error) {
			fsys, err := graft.Dep[afero.Fs](ctx)
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
			types, err := graft.Dep[*resource.Types](ctx)
			if err != nil {
				return nil, err
			}
			types.Register(TypeID, Signature)
			return NewCompiler(fsys, walker, resolver), nil
		},
	})
}
