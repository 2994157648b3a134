package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.limmat.ch/packrat/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.limmat.ch/packrat/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.limmat.ch/packrat/internal/adapters/journal"  //nolint:depguard // Wired in app layer
	"go.limmat.ch/packrat/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.limmat.ch/packrat/internal/core/ports"
	"go.limmat.ch/packrat/internal/engine/pipeline"
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
			detector.NodeID,
			journal.NodeID,
			logger.NodeID,
			pipeline.OrchestratorNodeID,
			pipeline.PublisherNodeID,
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
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	detect, err := graft.Dep[ports.EnvDetector](ctx)
	if err != nil {
		return nil, err
	}

	jrnl, err := graft.Dep[ports.Journal](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	orchestrator, err := graft.Dep[*pipeline.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	publisher, err := graft.Dep[*pipeline.Publisher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, detect, jrnl, log, orchestrator, publisher), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
