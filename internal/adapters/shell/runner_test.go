package shell_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.limmat.ch/packrat/internal/adapters/shell"
	"go.limmat.ch/packrat/internal/core/domain"
	"go.limmat.ch/packrat/internal/core/ports"
	"go.limmat.ch/packrat/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRunner_Run_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("line1").Times(1)
	mockLogger.EXPECT().Info("line2").Times(1)

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), ports.Command{
		Name: "sh",
		Args: []string{"-c", "echo line1; echo line2"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestRunner_Run_EnvironmentVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("test-value-123").Times(1)

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), ports.Command{
		Name: "sh",
		Args: []string{"-c", "echo $MY_TEST_VAR"},
		Env:  []string{"MY_TEST_VAR=test-value-123"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestRunner_Run_Stdin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("from-stdin").Times(1)

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), ports.Command{
		Name:  "cat",
		Stdin: strings.NewReader("from-stdin\n"),
		Dir:   t.TempDir(),
	})
	require.NoError(t, err)
}

func TestRunner_Run_ExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), ports.Command{
		Name: "sh",
		Args: []string{"-c", "exit 42"},
		Dir:  t.TempDir(),
	})
	require.Error(t, err)

	var toolErr *domain.ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, "sh", toolErr.Tool)
	assert.Equal(t, 42, toolErr.Code)
	assert.Equal(t, 42, domain.ExitCode(err))
}

func TestRunner_Run_MissingBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(mockLogger)

	err := runner.Run(context.Background(), ports.Command{
		Name: "definitely-not-a-real-binary-xyz",
	})
	require.Error(t, err)

	var toolErr *domain.ToolError
	require.True(t, errors.As(err, &toolErr))
	assert.Equal(t, 0, toolErr.Code)
	assert.Equal(t, 1, domain.ExitCode(err))
}

func TestRunner_Output_CapturesStdout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	runner := shell.NewRunner(mockLogger)

	out, err := runner.Output(context.Background(), ports.Command{
		Name: "sh",
		Args: []string{"-c", "echo captured"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, "captured\n", string(out))
}

func TestRunner_Output_FailurePropagatesExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	// stderr goes to the logger, not the captured output
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(mockLogger)

	_, err := runner.Output(context.Background(), ports.Command{
		Name: "sh",
		Args: []string{"-c", "echo oops >&2; exit 2"},
		Dir:  t.TempDir(),
	})
	require.Error(t, err)
	assert.Equal(t, 2, domain.ExitCode(err))
}

func TestRunner_Run_VertexOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	vertex := &captureVertex{}

	runner := shell.NewRunner(mockLogger)
	ctx := ports.ContextWithVertex(context.Background(), vertex)

	err := runner.Run(ctx, ports.Command{
		Name: "sh",
		Args: []string{"-c", "echo to-vertex"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Contains(t, vertex.stdout.String(), "to-vertex")
}

// captureVertex is a minimal ports.Vertex collecting output for assertions.
type captureVertex struct {
	stdout strings.Builder
	stderr strings.Builder
}

func (v *captureVertex) Stdout() io.Writer { return &v.stdout }

func (v *captureVertex) Stderr() io.Writer { return &v.stderr }

func (v *captureVertex) Complete(error) {}

func (v *captureVertex) Cached() {}
