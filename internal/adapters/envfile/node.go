package envfile

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/ShekharNarayanan/conda-portable/internal/adapters/logger"
	"github.com/ShekharNarayanan/conda-portable/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the environment loader Graft node.
	LoaderNodeID graft.ID = "adapter.envfile.loader"

	// WriterNodeID is the unique identifier for the environment writer Graft node.
	WriterNodeID graft.ID = "adapter.envfile.writer"
)

func init() {
	graft.Register(graft.Node[ports.EnvironmentLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.EnvironmentWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnvironmentWriter, error) {
			return NewWriter(), nil
		},
	})
}
