package journal

import (
	"context"

	"github.com/grindlemire/graft"
	"go.limmat.ch/packrat/internal/core/ports"
)

// NodeID is the unique identifier for the journal Graft node.
const NodeID graft.ID = "adapter.journal"

func init() {
	graft.Register(graft.Node[ports.Journal]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Journal, error) {
			return NewJournal(), nil
		},
	})
}
