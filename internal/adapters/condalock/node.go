package condalock

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/ShekharNarayanan/conda-portable/internal/adapters/logger"
	"github.com/ShekharNarayanan/conda-portable/internal/core/ports"
)

// NodeID is the dependency injection identifier for the conda-lock adapter.
const NodeID graft.ID = "adapter.condalock"

func init() {
	graft.Register(graft.Node[ports.Locker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Locker, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocker(log), nil
		},
	})
}
