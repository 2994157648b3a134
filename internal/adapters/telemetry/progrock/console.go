package progrock

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
)

// ConsoleWriter renders status updates as linear, chronological console
// output with vertex name prefixes. Tool output goes to stdout, lifecycle
// messages to stderr.
type ConsoleWriter struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu       sync.Mutex
	vertices map[string]*vertexState // vertex ID -> state
	buffers  map[string]*bytes.Buffer
}

type vertexState struct {
	name      string
	startTime time.Time
	cached    bool
	done      bool
}

// NewConsoleWriter creates a new ConsoleWriter.
func NewConsoleWriter(stdout, stderr io.Writer) *ConsoleWriter {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	output := termenv.NewOutput(stderr, termenv.WithProfile(colorProfile()))

	return &ConsoleWriter{
		stdout:   stdout,
		stderr:   stderr,
		output:   output,
		vertices: make(map[string]*vertexState),
		buffers:  make(map[string]*bytes.Buffer),
	}
}

// colorProfile returns the color profile based on environment.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	// Use ANSI for basic color support in CI
	return termenv.ANSI
}

// WriteStatus renders one status update.
func (w *ConsoleWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		w.handleVertexLocked(v)
	}
	for _, l := range update.Logs {
		w.handleLogLocked(l)
	}

	return nil
}

// Close flushes all remaining buffers.
func (w *ConsoleWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id := range w.buffers {
		w.flushBufferLocked(id)
	}

	return nil
}

// handleVertexLocked prints lifecycle transitions. Progrock syncs the full
// vertex on every update, so transitions must only print once.
// Must be called with w.mu held.
func (w *ConsoleWriter) handleVertexLocked(v *progrock.Vertex) {
	state, ok := w.vertices[v.Id]
	if ok && state.done && v.Completed == nil {
		// Vertex IDs derive from the step name, so a later run of the same
		// step reuses the ID. Start its lifecycle over.
		ok = false
	}
	if !ok {
		state = &vertexState{name: v.Name, startTime: time.Now()}
		w.vertices[v.Id] = state
		if w.buffers[v.Id] == nil {
			w.buffers[v.Id] = new(bytes.Buffer)
		}

		prefix := w.output.String(fmt.Sprintf("[%s]", v.Name)).Faint().String()
		_, _ = fmt.Fprintf(w.stderr, "%s Starting...\n", prefix)
	}

	if v.Cached {
		state.cached = true
	}

	if v.Completed == nil || state.done {
		return
	}
	state.done = true

	// Flush any buffered partial line before the status line
	w.flushBufferLocked(v.Id)

	duration := time.Since(state.startTime).Round(time.Millisecond)
	prefix := fmt.Sprintf("[%s]", state.name)

	switch {
	case v.Error != nil:
		symbol := w.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(w.stderr, "%s %s Failed after %v: %s\n",
			prefix, symbol, duration, *v.Error)
	case state.cached:
		symbol := w.output.String("✓").Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(w.stderr, "%s %s Up to date\n", prefix, symbol)
	default:
		symbol := w.output.String("✓").Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(w.stderr, "%s %s Completed in %v\n",
			prefix, symbol, duration)
	}
}

// handleLogLocked buffers log data and prints complete lines with the
// vertex name prefix. Must be called with w.mu held.
func (w *ConsoleWriter) handleLogLocked(l *progrock.VertexLog) {
	state, ok := w.vertices[l.Vertex]
	if !ok {
		return
	}

	buf := w.buffers[l.Vertex]
	buf.Write(l.Data)

	// Process complete lines
	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Incomplete line, put it back
			if len(line) > 0 {
				newBuf := new(bytes.Buffer)
				newBuf.Write(line)
				w.buffers[l.Vertex] = newBuf
			}
			break
		}

		w.printLineLocked(state.name, line)
	}
}

// flushBufferLocked flushes any remaining data in a vertex's buffer.
// Must be called with w.mu held.
func (w *ConsoleWriter) flushBufferLocked(id string) {
	state, ok := w.vertices[id]
	if !ok {
		return
	}

	buf := w.buffers[id]
	if buf.Len() > 0 {
		w.printLineLocked(state.name, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked prints a line with the vertex name prefix.
// Must be called with w.mu held.
func (w *ConsoleWriter) printLineLocked(name string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))

	if len(line) == 0 {
		return
	}

	_, _ = fmt.Fprintf(w.stdout, "[%s] %s\n", name, string(line))
}
