// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"
)

// Command describes one external tool invocation.
type Command struct {
	// Name is the binary to invoke.
	Name string

	// Args are the arguments passed to the binary.
	Args []string

	// Dir is the working directory; empty means the process working directory.
	Dir string

	// Env are additional environment variables in "KEY=VALUE" format,
	// appended to the process environment.
	Env []string

	// Stdin feeds the tool's standard input when set.
	Stdin io.Reader

	// Elevate requests root privileges. When the process does not already
	// run as root the invocation is wrapped in sudo.
	Elevate bool
}

// Runner executes external tools.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the command, streaming its output to the vertex attached
	// to ctx when one is present. A non-zero exit is returned as a
	// *domain.ToolError carrying the tool's exit code.
	Run(ctx context.Context, cmd Command) error

	// Output executes the command and returns its captured standard output.
	Output(ctx context.Context, cmd Command) ([]byte, error)
}
