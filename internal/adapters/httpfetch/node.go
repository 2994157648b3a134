package httpfetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.limmat.ch/packrat/internal/core/ports"
)

// NodeID is the unique identifier for the patch fetcher Graft node.
const NodeID graft.ID = "adapter.fetcher"

func init() {
	graft.Register(graft.Node[ports.PatchFetcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PatchFetcher, error) {
			return NewFetcher(), nil
		},
	})
}
