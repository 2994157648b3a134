package ports

import "context"

// VersionOracle answers what version the package index would install.
//
//go:generate go run go.uber.org/mock/mockgen -source=oracle.go -destination=mocks/mock_oracle.go -package=mocks
type VersionOracle interface {
	// CandidateVersion returns the raw candidate version for the package,
	// including any epoch. It returns domain.ErrNoCandidate when the index
	// has no installation candidate.
	CandidateVersion(ctx context.Context, pkg string) (string, error)
}
