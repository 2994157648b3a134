package aptly_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.limmat.ch/packrat/internal/adapters/aptly"
	"go.limmat.ch/packrat/internal/core/domain"
	"go.limmat.ch/packrat/internal/core/ports"
	"go.limmat.ch/packrat/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRepoManager_RepoExists(t *testing.T) {
	tests := []struct {
		name   string
		runErr error
		want   bool
	}{
		{
			name:   "existing repo",
			runErr: nil,
			want:   true,
		},
		{
			name:   "missing repo",
			runErr: &domain.ToolError{Tool: "aptly", Code: 1, Err: errors.New("local repo not found")},
			want:   false,
		},
		{
			name:   "tool failure counts as absent",
			runErr: &domain.ToolError{Tool: "aptly", Code: 2, Err: errors.New("database locked")},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRunner := mocks.NewMockRunner(ctrl)
			mockRunner.EXPECT().
				Run(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, cmd ports.Command) error {
					assert.Equal(t, "aptly", cmd.Name)
					assert.Equal(t, []string{"repo", "show", "ppa"}, cmd.Args)
					return tt.runErr
				})

			manager := aptly.NewRepoManager(mockRunner, mocks.NewMockLogger(ctrl))
			assert.Equal(t, tt.want, manager.RepoExists(context.Background(), "ppa"))
		})
	}
}

func TestRepoManager_PublishExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockRunner(ctrl)
	mockRunner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd ports.Command) error {
			assert.Equal(t, []string{"publish", "show", "bookworm"}, cmd.Args)
			return nil
		})

	manager := aptly.NewRepoManager(mockRunner, mocks.NewMockLogger(ctrl))
	assert.True(t, manager.PublishExists(context.Background(), "bookworm"))
}

func TestRepoManager_Teardown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockRunner(ctrl)
	gomock.InOrder(
		mockRunner.EXPECT().
			Run(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd ports.Command) error {
				assert.Equal(t, []string{"publish", "drop", "bookworm"}, cmd.Args)
				return nil
			}),
		mockRunner.EXPECT().
			Run(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd ports.Command) error {
				assert.Equal(t, []string{"repo", "drop", "ppa"}, cmd.Args)
				return nil
			}),
	)

	manager := aptly.NewRepoManager(mockRunner, mocks.NewMockLogger(ctrl))
	require.NoError(t, manager.DropPublish(context.Background(), "bookworm"))
	require.NoError(t, manager.DropRepo(context.Background(), "ppa"))
}

func TestRepoManager_CreateRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockRunner(ctrl)
	mockRunner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd ports.Command) error {
			assert.Equal(t, "aptly", cmd.Name)
			assert.Equal(t, []string{"repo", "create", "-component=main", "-distribution=bookworm", "ppa"}, cmd.Args)
			return nil
		})

	manager := aptly.NewRepoManager(mockRunner, mocks.NewMockLogger(ctrl))
	require.NoError(t, manager.CreateRepo(context.Background(), "ppa", "main", "bookworm"))
}

func TestRepoManager_AddPackages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockRunner(ctrl)
	mockRunner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd ports.Command) error {
			assert.Equal(t, []string{"repo", "add", "ppa", "/tmp/staging"}, cmd.Args)
			return nil
		})

	manager := aptly.NewRepoManager(mockRunner, mocks.NewMockLogger(ctrl))
	require.NoError(t, manager.AddPackages(context.Background(), "ppa", "/tmp/staging"))
}

func TestRepoManager_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockRunner(ctrl)
	mockRunner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd ports.Command) error {
			assert.Equal(t, "aptly", cmd.Name)
			assert.Equal(t, []string{
				"publish", "repo",
				"-distribution=bookworm",
				"-architectures=amd64",
				"--skip-signing",
				"ppa",
			}, cmd.Args)
			return nil
		})

	manager := aptly.NewRepoManager(mockRunner, mocks.NewMockLogger(ctrl))
	require.NoError(t, manager.Publish(context.Background(), "ppa", "bookworm"))
}

func TestRepoManager_Publish_PropagatesExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockRunner(ctrl)
	mockRunner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(&domain.ToolError{Tool: "aptly", Code: 3, Err: errors.New("publish failed")})

	manager := aptly.NewRepoManager(mockRunner, mocks.NewMockLogger(ctrl))
	err := manager.Publish(context.Background(), "ppa", "bookworm")
	require.Error(t, err)
	assert.Equal(t, 3, domain.ExitCode(err))
}
