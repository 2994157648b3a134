// Package shell provides the os/exec implementation of the command runner.
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"

	"go.limmat.ch/packrat/internal/core/domain"
	"go.limmat.ch/packrat/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger
	euid   int
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
		euid:   os.Geteuid(),
	}
}

// Run executes the command and waits for it to complete. Output is streamed
// to the vertex attached to ctx when present, to the logger otherwise.
func (r *Runner) Run(ctx context.Context, cmd ports.Command) error {
	stdout, stderr, flush := r.outputs(ctx)
	defer flush()

	c := r.build(ctx, cmd)
	c.Stdout = stdout
	c.Stderr = stderr

	return r.wait(cmd, c.Run())
}

// Output executes the command and returns its captured standard output.
// The error stream goes to the vertex or logger as with Run.
func (r *Runner) Output(ctx context.Context, cmd ports.Command) ([]byte, error) {
	_, stderr, flush := r.outputs(ctx)
	defer flush()

	var buf bytes.Buffer
	c := r.build(ctx, cmd)
	c.Stdout = &buf
	c.Stderr = stderr

	if err := r.wait(cmd, c.Run()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// build constructs the exec.Cmd, wrapping it in sudo when the command wants
// root privileges and the process has none.
func (r *Runner) build(ctx context.Context, cmd ports.Command) *exec.Cmd {
	name := cmd.Name
	args := cmd.Args
	if cmd.Elevate && r.euid != 0 {
		args = append([]string{"-E", name}, args...)
		name = "sudo"
	}

	c := exec.CommandContext(ctx, name, args...) //nolint:gosec // tool invocations are config driven
	c.Dir = cmd.Dir
	c.Stdin = cmd.Stdin
	c.Env = os.Environ()
	if len(cmd.Env) > 0 {
		c.Env = append(c.Env, cmd.Env...)
	}
	return c
}

// wait maps a command error to a ToolError carrying the exit code.
func (r *Runner) wait(cmd ports.Command, err error) error {
	if err == nil {
		return nil
	}

	var exitCode int
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	}

	return &domain.ToolError{
		Tool: cmd.Name,
		Code: exitCode,
		Err:  zerr.Wrap(err, "command failed"),
	}
}

// outputs picks the destination for tool output: the telemetry vertex when
// one is attached to ctx, the logger otherwise.
func (r *Runner) outputs(ctx context.Context) (stdout, stderr io.Writer, flush func()) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		return v.Stdout(), v.Stderr(), func() {}
	}

	out := &logWriter{logger: r.logger, level: "info"}
	errw := &logWriter{logger: r.logger, level: "error"}
	return out, errw, func() {
		out.Flush()
		errw.Flush()
	}
}

// logWriter buffers tool output and forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Flush logs any buffered partial line.
func (w *logWriter) Flush() {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
}

func (w *logWriter) logLine(line []byte) {
	msg := string(bytes.TrimSuffix(line, []byte("\r")))
	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Error(zerr.New(msg))
	}
}
