package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/ShekharNarayanan/conda-portable/internal/adapters/condalock" //nolint:depguard // Wired in app layer
	"github.com/ShekharNarayanan/conda-portable/internal/adapters/envfile"   //nolint:depguard // Wired in app layer
	"github.com/ShekharNarayanan/conda-portable/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/ShekharNarayanan/conda-portable/internal/adapters/rules"     //nolint:depguard // Wired in app layer
	"github.com/ShekharNarayanan/conda-portable/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the wired application object graph handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			rules.NodeID,
			envfile.LoaderNodeID,
			envfile.WriterNodeID,
			condalock.NodeID,
			logger.NodeID,
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
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	ruleSource, err := graft.Dep[ports.RuleSource](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.EnvironmentLoader](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.EnvironmentWriter](ctx)
	if err != nil {
		return nil, err
	}

	locker, err := graft.Dep[ports.Locker](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(ruleSource, loader, writer, locker, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
