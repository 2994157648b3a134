package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.limmat.ch/packrat/internal/core/ports"
)

// NodeID is the unique identifier for the environment detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.EnvDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnvDetector, error) {
			return NewEnv(), nil
		},
	})
}
