package pool

import (
	"context"

	"github.com/grindlemire/graft"
	"go.limmat.ch/packrat/internal/core/ports"
)

// NodeID is the unique identifier for the pool Graft node.
const NodeID graft.ID = "adapter.pool"

func init() {
	graft.Register(graft.Node[ports.Pool]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Pool, error) {
			return NewPool(), nil
		},
	})
}
