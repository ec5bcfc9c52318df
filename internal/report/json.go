package report

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/tmxtools/tmxclean/pkg/cleaner"
)

// JSONWriter writes the statistics as indented JSON.
type JSONWriter struct {
	w *bufio.Writer
}

// NewJSONWriter creates a JSON report writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w: bufio.NewWriter(w),
	}
}

// Write marshals the statistics as a single JSON document.
func (w *JSONWriter) Write(stats *cleaner.Stats) error {
	output, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	if _, err := w.w.Write(output); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	return w.w.Flush()
}
