// Package gitvcs records the published archive tree in version control.
package gitvcs

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"go.limmat.ch/packrat/internal/core/domain"
	"go.trai.ch/zerr"
)

// Committer identity used when the repository carries no user config.
const (
	committerName  = "packrat"
	committerEmail = "packrat@localhost"
)

// Publisher implements ports.VCS using go-git.
type Publisher struct{}

// NewPublisher creates a new Publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// CommitAndPush stages everything under dir in the repository containing it,
// commits with the message and pushes to the default remote. An unchanged
// tree is not an error: the commit is skipped and the push becomes a no-op.
func (p *Publisher) CommitAndPush(ctx context.Context, dir, message string) error {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrVCSOpenFailed.Error()), "dir", dir)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return zerr.Wrap(err, domain.ErrVCSOpenFailed.Error())
	}

	pattern, err := filepath.Rel(worktree.Filesystem.Root(), dir)
	if err != nil {
		return zerr.Wrap(err, domain.ErrVCSOpenFailed.Error())
	}

	if err := worktree.AddGlob(filepath.ToSlash(pattern)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrVCSCommitFailed.Error()), "pattern", pattern)
	}

	_, err = worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  committerName,
			Email: committerEmail,
			When:  time.Now(),
		},
	})
	if err != nil && !errors.Is(err, git.ErrEmptyCommit) {
		return zerr.Wrap(err, domain.ErrVCSCommitFailed.Error())
	}

	err = repo.PushContext(ctx, &git.PushOptions{RemoteName: git.DefaultRemoteName})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return zerr.Wrap(err, domain.ErrVCSPushFailed.Error())
	}

	return nil
}
