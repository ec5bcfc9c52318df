package report

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tmxtools/tmxclean/pkg/cleaner"
)

// YAMLWriter writes the statistics as YAML.
type YAMLWriter struct {
	w *bufio.Writer
}

// NewYAMLWriter creates a YAML report writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{
		w: bufio.NewWriter(w),
	}
}

// Write encodes the statistics as a single YAML document.
func (w *YAMLWriter) Write(stats *cleaner.Stats) error {
	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)

	if err := encoder.Encode(stats); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}
	return w.w.Flush()
}
