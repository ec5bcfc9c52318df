package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/tmxtools/tmxclean/pkg/cleaner"
)

func sampleStats() *cleaner.Stats {
	stats := cleaner.NewStats()
	stats.OriginalSegments = 1500
	stats.DuplicateSourceTargetCaseSensitive = 200
	stats.SourceEmpty = 50
	stats.WhitespaceCleaned = 30
	stats.FinalSegments = 1250
	return stats
}

// --- NewWriter Tests ---

func TestNewWriter_Formats(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"empty_defaults_to_text", Format(""), false},
		{"unknown", Format("xml"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWriter(&bytes.Buffer{}, tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewWriter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

// --- TextWriter Tests ---

func TestTextWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewTextWriter(buf)

	if err := w.Write(sampleStats()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "TMX CLEANING STATISTICS") {
		t.Errorf("missing report header: %q", out)
	}
	if !strings.Contains(out, "1,500") {
		t.Errorf("missing formatted original count: %q", out)
	}
	if !strings.Contains(out, "83.3%") {
		t.Errorf("missing retention rate: %q", out)
	}
}

// --- JSONWriter Tests ---

func TestJSONWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewJSONWriter(buf)

	if err := w.Write(sampleStats()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["original_segments"] != 1500 {
		t.Errorf("original_segments = %d, want 1500", decoded["original_segments"])
	}
	if decoded["final_segments"] != 1250 {
		t.Errorf("final_segments = %d, want 1250", decoded["final_segments"])
	}
}

// --- YAMLWriter Tests ---

func TestYAMLWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewYAMLWriter(buf)

	if err := w.Write(sampleStats()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var decoded map[string]int
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded["duplicate_source_target_case_sensitive"] != 200 {
		t.Errorf("duplicate counter = %d, want 200", decoded["duplicate_source_target_case_sensitive"])
	}
}
