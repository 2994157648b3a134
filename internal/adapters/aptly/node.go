package aptly

import (
	"context"

	"github.com/grindlemire/graft"
	"go.limmat.ch/packrat/internal/adapters/logger"
	"go.limmat.ch/packrat/internal/adapters/shell"
	"go.limmat.ch/packrat/internal/core/ports"
)

// NodeID is the unique identifier for the repo manager Graft node.
const NodeID graft.ID = "adapter.repo"

func init() {
	graft.Register(graft.Node[ports.RepoManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.RepoManager, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRepoManager(runner, log), nil
		},
	})
}
