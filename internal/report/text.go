package report

import (
	"bufio"
	"io"

	"github.com/tmxtools/tmxclean/pkg/cleaner"
)

// TextWriter writes the human-readable statistics summary.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a text report writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{
		w: bufio.NewWriter(w),
	}
}

// Write renders the grouped summary.
func (w *TextWriter) Write(stats *cleaner.Stats) error {
	if _, err := w.w.WriteString(stats.Report()); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	return w.w.Flush()
}
