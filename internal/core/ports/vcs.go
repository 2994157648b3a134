package ports

import "context"

// VCS records published archive state in version control.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VCS interface {
	// CommitAndPush stages everything under dir in the repository containing
	// it, commits with the message and pushes to the default remote.
	CommitAndPush(ctx context.Context, dir, message string) error
}
