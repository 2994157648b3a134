package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.limmat.ch/packrat/internal/adapters/apt"
	"go.limmat.ch/packrat/internal/adapters/aptly"
	"go.limmat.ch/packrat/internal/adapters/debian"
	"go.limmat.ch/packrat/internal/adapters/fs"
	"go.limmat.ch/packrat/internal/adapters/gitvcs"
	"go.limmat.ch/packrat/internal/adapters/httpfetch"
	"go.limmat.ch/packrat/internal/adapters/logger"
	"go.limmat.ch/packrat/internal/adapters/pool"
	"go.limmat.ch/packrat/internal/adapters/telemetry/progrock"
	"go.limmat.ch/packrat/internal/core/ports"
)

const (
	// OrchestratorNodeID is the unique identifier for the orchestrator
	// Graft node.
	OrchestratorNodeID graft.ID = "engine.orchestrator"

	// PublisherNodeID is the unique identifier for the publisher Graft node.
	PublisherNodeID graft.ID = "engine.publisher"
)

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        OrchestratorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			apt.OracleNodeID,
			apt.InstallerNodeID,
			debian.NodeID,
			httpfetch.NodeID,
			pool.NodeID,
			fs.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			oracle, err := graft.Dep[ports.VersionOracle](ctx)
			if err != nil {
				return nil, err
			}
			installer, err := graft.Dep[ports.Installer](ctx)
			if err != nil {
				return nil, err
			}
			toolchain, err := graft.Dep[ports.Toolchain](ctx)
			if err != nil {
				return nil, err
			}
			fetcher, err := graft.Dep[ports.PatchFetcher](ctx)
			if err != nil {
				return nil, err
			}
			artifacts, err := graft.Dep[ports.Pool](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOrchestrator(oracle, installer, toolchain, fetcher, artifacts, hasher, telemetry, log), nil
		},
	})

	graft.Register(graft.Node[*Publisher]{
		ID:        PublisherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pool.NodeID,
			aptly.NodeID,
			gitvcs.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Publisher, error) {
			artifacts, err := graft.Dep[ports.Pool](ctx)
			if err != nil {
				return nil, err
			}
			repo, err := graft.Dep[ports.RepoManager](ctx)
			if err != nil {
				return nil, err
			}
			vcs, err := graft.Dep[ports.VCS](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPublisher(artifacts, repo, vcs, telemetry, log), nil
		},
	})
}
