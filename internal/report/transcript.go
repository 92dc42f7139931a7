// Package report writes the simulator's human-readable trial summaries and
// its PNG distribution/comparison plots, mirroring original_source/main.py's
// TeeStream-over-stdout-and-file transcript and mahjong_sim/plotting.py's
// fixed-DPI PNG output.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Transcript duplicates every write to both the terminal and a persisted
// file, the same behavior original_source/main.py gets from wrapping
// sys.stdout in a TeeStream before redirecting it.
type Transcript struct {
	io.Writer
	file *os.File
	path string
}

// NewTranscript opens "<outDir>/<name>-<uuid>.txt" and returns a Transcript
// that tees every subsequent write to it and to stdout.
func NewTranscript(outDir, name string) (*Transcript, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("report: create output dir: %w", err)
	}
	path := filepath.Join(outDir, fmt.Sprintf("%s-%s.txt", name, uuid.NewString()))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("report: create transcript: %w", err)
	}
	return &Transcript{
		Writer: io.MultiWriter(os.Stdout, f),
		file:   f,
		path:   path,
	}, nil
}

func (t *Transcript) Path() string { return t.path }

func (t *Transcript) Close() error { return t.file.Close() }

func (t *Transcript) Printf(format string, args ...any) {
	fmt.Fprintf(t, format, args...)
}
