// Package report renders cleaning statistics in the supported output
// formats.
package report

import (
	"fmt"
	"io"

	"github.com/tmxtools/tmxclean/pkg/cleaner"
)

// Format represents report format types.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Writer serializes one statistics report.
type Writer interface {
	// Write renders the statistics of a completed run.
	Write(stats *cleaner.Stats) error
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatText, "":
		return NewTextWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}
