package apt

import (
	"context"

	"github.com/grindlemire/graft"
	"go.limmat.ch/packrat/internal/adapters/shell"
	"go.limmat.ch/packrat/internal/core/ports"
)

const (
	// OracleNodeID is the unique identifier for the version oracle node.
	OracleNodeID graft.ID = "adapter.oracle"

	// InstallerNodeID is the unique identifier for the installer node.
	InstallerNodeID graft.ID = "adapter.installer"
)

func init() {
	graft.Register(graft.Node[ports.VersionOracle]{
		ID:        OracleNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.VersionOracle, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewOracle(runner), nil
		},
	})

	graft.Register(graft.Node[ports.Installer]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(runner), nil
		},
	})
}
