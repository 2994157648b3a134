package domain

import (
	"errors"
	"fmt"
)

// ToolError reports a failed external tool invocation. It preserves the
// tool's exit code so the process can exit with the same code.
type ToolError struct {
	// Tool is the name of the invoked binary.
	Tool string
	// Code is the tool's exit code, 0 when the tool never ran.
	Code int
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("%s exited with code %d: %v", e.Tool, e.Code, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ToolError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error to the process exit code: the code carried by a
// ToolError in the chain, 1 for any other error, 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var toolErr *ToolError
	if errors.As(err, &toolErr) && toolErr.Code > 0 {
		return toolErr.Code
	}
	return 1
}
