package rules

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/ShekharNarayanan/conda-portable/internal/adapters/logger"
	"github.com/ShekharNarayanan/conda-portable/internal/core/ports"
)

// NodeID is the dependency injection identifier for the rule source.
const NodeID graft.ID = "adapter.rules"

func init() {
	graft.Register(graft.Node[ports.RuleSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RuleSource, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(log), nil
		},
	})
}
