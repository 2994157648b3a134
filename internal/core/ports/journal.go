package ports

import "go.limmat.ch/packrat/internal/core/domain"

// Journal stores the outcome of orchestration runs under a project root.
//
//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type Journal interface {
	// Append stores a run record under root.
	Append(root string, record domain.RunRecord) error

	// Last retrieves the most recent run record under root.
	// Returns nil, nil if no runs were recorded yet.
	Last(root string) (*domain.RunRecord, error)
}
