package javac

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mrjar/internal/adapters/cas"
	"go.trai.ch/mrjar/internal/adapters/fs"
	"go.trai.ch/mrjar/internal/adapters/logger"
	"go.trai.ch/mrjar/internal/core/ports"
)

// NodeID is the unique identifier for the compiler Graft node.
const NodeID graft.ID = "adapter.compiler"

func init() {
	graft.Register(graft.Node[ports.Compiler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			fs.ScannerNodeID,
			fs.HasherNodeID,
			cas.NodeID,
		},
		Run: func(ctx context.Context) (ports.Compiler, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			scanner, err := graft.Dep[ports.SourceScanner](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewCompiler(log, scanner, store, hasher), nil
		},
	})
}
