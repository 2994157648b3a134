package apt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.limmat.ch/packrat/internal/adapters/apt"
	"go.limmat.ch/packrat/internal/core/domain"
	"go.limmat.ch/packrat/internal/core/ports"
	"go.limmat.ch/packrat/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const policyOutput = `podman:
  Installed: (none)
  Candidate: 4.3.1+ds1-8+deb12u1
  Version table:
     4.3.1+ds1-8+deb12u1 500
        500 http://deb.debian.org/debian bookworm/main amd64 Packages
`

func TestOracle_CandidateVersion(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		want        string
		wantErr     bool
		errContains string
	}{
		{
			name:   "Parses Candidate Line",
			output: policyOutput,
			want:   "4.3.1+ds1-8+deb12u1",
		},
		{
			name:   "Keeps Epoch",
			output: "vlc:\n  Installed: (none)\n  Candidate: 1:3.0.18-2\n",
			want:   "1:3.0.18-2",
		},
		{
			name:        "No Candidate Line",
			output:      "N: Unable to locate package nope\n",
			wantErr:     true,
			errContains: "no installation candidate",
		},
		{
			name:        "None Candidate",
			output:      "gone:\n  Installed: (none)\n  Candidate: (none)\n",
			wantErr:     true,
			errContains: "no installation candidate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			runner := mocks.NewMockRunner(ctrl)
			runner.EXPECT().
				Output(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, cmd ports.Command) ([]byte, error) {
					assert.Equal(t, "apt-cache", cmd.Name)
					assert.Equal(t, []string{"policy", "podman"}, cmd.Args)
					return []byte(tt.output), nil
				})

			oracle := apt.NewOracle(runner)
			got, err := oracle.CandidateVersion(context.Background(), "podman")

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOracle_CandidateVersion_RunnerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	toolErr := &domain.ToolError{Tool: "apt-cache", Code: 100, Err: assert.AnError}

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().Output(gomock.Any(), gomock.Any()).Return(nil, toolErr)

	oracle := apt.NewOracle(runner)
	_, err := oracle.CandidateVersion(context.Background(), "podman")
	require.Error(t, err)
	assert.Equal(t, 100, domain.ExitCode(err))
}

func TestInstaller_Install(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd ports.Command) error {
			assert.Equal(t, "apt-get", cmd.Name)
			assert.Equal(t, []string{"install", "-y", "--no-install-recommends", "devscripts", "aptly"}, cmd.Args)
			assert.Contains(t, cmd.Env, "DEBIAN_FRONTEND=noninteractive")
			assert.True(t, cmd.Elevate)
			return nil
		})

	installer := apt.NewInstaller(runner)
	require.NoError(t, installer.Install(context.Background(), "devscripts", "aptly"))
}

func TestInstaller_Install_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No runner invocation expected for an empty set.
	runner := mocks.NewMockRunner(ctrl)

	installer := apt.NewInstaller(runner)
	require.NoError(t, installer.Install(context.Background()))
}

func TestInstaller_RefreshSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mocks.NewMockRunner(ctrl)
	runner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd ports.Command) error {
			assert.Equal(t, "apt-get", cmd.Name)
			assert.Equal(t, []string{"update"}, cmd.Args)
			assert.True(t, cmd.Elevate)
			return nil
		})

	installer := apt.NewInstaller(runner)
	require.NoError(t, installer.RefreshSources(context.Background()))
}
