package cleaner

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Reason identifies the single condition that removed a unit. Each removed
// unit is attributed to exactly one reason: the first matching condition in
// evaluation order.
type Reason string

const (
	ReasonDuplicateSourceTargetCaseSensitive   Reason = "duplicate_source_target_case_sensitive"
	ReasonDuplicateSourceTargetCaseInsensitive Reason = "duplicate_source_target_case_insensitive"
	ReasonDuplicateSourceCaseSensitive         Reason = "duplicate_source_case_sensitive"
	ReasonDuplicateSourceCaseInsensitive       Reason = "duplicate_source_case_insensitive"
	ReasonSourceSameAsTarget                   Reason = "source_same_as_target_case_sensitive"
	ReasonSourceEmpty                          Reason = "source_empty"
	ReasonTargetEmpty                          Reason = "target_empty"
	ReasonSourceEmptyTargetNot                 Reason = "source_empty_target_not"
	ReasonTargetEmptySourceNot                 Reason = "target_empty_source_not"
	ReasonBothEmpty                            Reason = "both_empty"
	ReasonInlineCode                           Reason = "inline_code"
)

// Stats accumulates per-condition counts over one cleaning pass. It is owned
// by a single run and read-only once the pass completes.
type Stats struct {
	OriginalSegments int `json:"original_segments" yaml:"original_segments"`

	DuplicateSourceTargetCaseSensitive   int `json:"duplicate_source_target_case_sensitive" yaml:"duplicate_source_target_case_sensitive"`
	DuplicateSourceTargetCaseInsensitive int `json:"duplicate_source_target_case_insensitive" yaml:"duplicate_source_target_case_insensitive"`
	DuplicateSourceCaseSensitive         int `json:"duplicate_source_case_sensitive" yaml:"duplicate_source_case_sensitive"`
	DuplicateSourceCaseInsensitive       int `json:"duplicate_source_case_insensitive" yaml:"duplicate_source_case_insensitive"`

	SourceSameAsTargetCaseSensitive int `json:"source_same_as_target_case_sensitive" yaml:"source_same_as_target_case_sensitive"`
	SourceEmpty                     int `json:"source_empty" yaml:"source_empty"`
	TargetEmpty                     int `json:"target_empty" yaml:"target_empty"`
	SourceEmptyTargetNot            int `json:"source_empty_target_not" yaml:"source_empty_target_not"`
	TargetEmptySourceNot            int `json:"target_empty_source_not" yaml:"target_empty_source_not"`
	BothEmpty                       int `json:"both_empty" yaml:"both_empty"`
	InlineCode                      int `json:"inline_code" yaml:"inline_code"`

	WhitespaceCleaned int `json:"whitespace_cleaned" yaml:"whitespace_cleaned"`
	FinalSegments     int `json:"final_segments" yaml:"final_segments"`
}

// NewStats returns zeroed counters for one pass.
func NewStats() *Stats {
	return &Stats{}
}

// inc attributes one removed unit to r.
func (s *Stats) inc(r Reason) {
	switch r {
	case ReasonDuplicateSourceTargetCaseSensitive:
		s.DuplicateSourceTargetCaseSensitive++
	case ReasonDuplicateSourceTargetCaseInsensitive:
		s.DuplicateSourceTargetCaseInsensitive++
	case ReasonDuplicateSourceCaseSensitive:
		s.DuplicateSourceCaseSensitive++
	case ReasonDuplicateSourceCaseInsensitive:
		s.DuplicateSourceCaseInsensitive++
	case ReasonSourceSameAsTarget:
		s.SourceSameAsTargetCaseSensitive++
	case ReasonSourceEmpty:
		s.SourceEmpty++
	case ReasonTargetEmpty:
		s.TargetEmpty++
	case ReasonSourceEmptyTargetNot:
		s.SourceEmptyTargetNot++
	case ReasonTargetEmptySourceNot:
		s.TargetEmptySourceNot++
	case ReasonBothEmpty:
		s.BothEmpty++
	case ReasonInlineCode:
		s.InlineCode++
	}
}

// TotalRemoved returns the number of units dropped during the pass,
// including structurally invalid units that have no named counter.
func (s *Stats) TotalRemoved() int {
	return s.OriginalSegments - s.FinalSegments
}

// RetentionRate returns the percentage of units kept, 0 for an empty input.
func (s *Stats) RetentionRate() float64 {
	if s.OriginalSegments == 0 {
		return 0
	}
	return float64(s.FinalSegments) / float64(s.OriginalSegments) * 100
}

// Report renders the counters as a human-readable summary grouped under
// duplicate, content, cleaning and final-result headings.
func (s *Stats) Report() string {
	if s.OriginalSegments == 0 {
		return "No statistics available"
	}

	line := strings.Repeat("=", 60)
	var sb strings.Builder

	sb.WriteString("TMX CLEANING STATISTICS\n")
	sb.WriteString(line + "\n")
	fmt.Fprintf(&sb, "Original segments:                                %s\n\n", comma(s.OriginalSegments))

	sb.WriteString("DUPLICATES REMOVED:\n")
	fmt.Fprintf(&sb, "  Duplicate Source and Target (case sensitive):   %s\n", comma(s.DuplicateSourceTargetCaseSensitive))
	fmt.Fprintf(&sb, "  Duplicate Source and Target (case insensitive): %s\n", comma(s.DuplicateSourceTargetCaseInsensitive))
	fmt.Fprintf(&sb, "  Duplicate Source (case sensitive):              %s\n", comma(s.DuplicateSourceCaseSensitive))
	fmt.Fprintf(&sb, "  Duplicate Source (case insensitive):            %s\n\n", comma(s.DuplicateSourceCaseInsensitive))

	sb.WriteString("CONTENT ISSUES REMOVED:\n")
	fmt.Fprintf(&sb, "  Source same as Target (case sensitive):         %s\n", comma(s.SourceSameAsTargetCaseSensitive))
	fmt.Fprintf(&sb, "  Source is empty:                                %s\n", comma(s.SourceEmpty))
	fmt.Fprintf(&sb, "  Target is empty:                                %s\n", comma(s.TargetEmpty))
	fmt.Fprintf(&sb, "  Source empty, Target not:                       %s\n", comma(s.SourceEmptyTargetNot))
	fmt.Fprintf(&sb, "  Target empty, Source not:                       %s\n", comma(s.TargetEmptySourceNot))
	fmt.Fprintf(&sb, "  Both Source and Target empty:                   %s\n", comma(s.BothEmpty))
	fmt.Fprintf(&sb, "  Contains inline code:                           %s\n\n", comma(s.InlineCode))

	sb.WriteString("CONTENT CLEANED:\n")
	fmt.Fprintf(&sb, "  Segments with whitespace cleaned:               %s\n\n", comma(s.WhitespaceCleaned))

	sb.WriteString("FINAL RESULTS:\n")
	fmt.Fprintf(&sb, "  Final segments:                                 %s\n", comma(s.FinalSegments))
	fmt.Fprintf(&sb, "  Total segments removed:                         %s\n", comma(s.TotalRemoved()))
	fmt.Fprintf(&sb, "  Retention rate:                                 %.1f%%\n", s.RetentionRate())
	sb.WriteString(line)

	return sb.String()
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}
