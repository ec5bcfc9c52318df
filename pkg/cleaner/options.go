package cleaner

// Options defines all cleaning toggles for a run. Each toggle is independent;
// none implies another. The zero value disables everything, in which case a
// pass keeps every structurally valid unit untouched.
type Options struct {
	// === Duplicate conditions ===

	// DuplicateSourceTargetCaseSensitive removes units whose exact
	// (source, target) pair appeared earlier in the document.
	DuplicateSourceTargetCaseSensitive bool `json:"duplicate_source_target_case_sensitive" yaml:"duplicate_source_target_case_sensitive" mapstructure:"duplicate_source_target_case_sensitive"`

	// DuplicateSourceTargetCaseInsensitive is the case-folded variant of the
	// pair check.
	DuplicateSourceTargetCaseInsensitive bool `json:"duplicate_source_target_case_insensitive" yaml:"duplicate_source_target_case_insensitive" mapstructure:"duplicate_source_target_case_insensitive"`

	// DuplicateSourceCaseSensitive removes units whose exact source text
	// appeared earlier, regardless of target.
	DuplicateSourceCaseSensitive bool `json:"duplicate_source_case_sensitive" yaml:"duplicate_source_case_sensitive" mapstructure:"duplicate_source_case_sensitive"`

	// DuplicateSourceCaseInsensitive is the case-folded variant of the
	// source-only check.
	DuplicateSourceCaseInsensitive bool `json:"duplicate_source_case_insensitive" yaml:"duplicate_source_case_insensitive" mapstructure:"duplicate_source_case_insensitive"`

	// === Content conditions ===

	// SourceSameAsTargetCaseSensitive removes units where the trimmed source
	// equals the trimmed target and both are non-empty.
	SourceSameAsTargetCaseSensitive bool `json:"source_same_as_target_case_sensitive" yaml:"source_same_as_target_case_sensitive" mapstructure:"source_same_as_target_case_sensitive"`

	// SourceEmpty removes units with an empty source after trimming.
	SourceEmpty bool `json:"source_empty" yaml:"source_empty" mapstructure:"source_empty"`

	// TargetEmpty removes units with an empty target after trimming.
	TargetEmpty bool `json:"target_empty" yaml:"target_empty" mapstructure:"target_empty"`

	// SourceEmptyTargetNot removes units with an empty source and a
	// non-empty target. When SourceEmpty is also enabled it wins the
	// tie-break, so this counter stays at zero.
	SourceEmptyTargetNot bool `json:"source_empty_target_not" yaml:"source_empty_target_not" mapstructure:"source_empty_target_not"`

	// TargetEmptySourceNot removes units with an empty target and a
	// non-empty source. Same tie-break relationship with TargetEmpty.
	TargetEmptySourceNot bool `json:"target_empty_source_not" yaml:"target_empty_source_not" mapstructure:"target_empty_source_not"`

	// BothEmpty removes units where source and target are both empty.
	BothEmpty bool `json:"both_empty" yaml:"both_empty" mapstructure:"both_empty"`

	// InlineCode removes units whose source or target contains inline code
	// (tags, entities, {word}, [..] or %word% placeholders), evaluated on
	// the trimmed raw text independent of markup stripping.
	InlineCode bool `json:"inline_code" yaml:"inline_code" mapstructure:"inline_code"`

	// === Cleaning operations ===

	// RemoveInlineTags strips inline markup from surviving segments, with
	// spacing repair so adjacent tokens are not fused.
	RemoveInlineTags bool `json:"remove_inline_tags" yaml:"remove_inline_tags" mapstructure:"remove_inline_tags"`

	// CleanWhitespace trims and collapses runs of whitespace in surviving
	// segments to single spaces.
	CleanWhitespace bool `json:"clean_whitespace" yaml:"clean_whitespace" mapstructure:"clean_whitespace"`
}

// DefaultOptions returns the standard cleaning preset: structural and
// emptiness filters, case-sensitive duplicate removal and text normalization
// on; case-insensitive matching and inline-code filtering off.
func DefaultOptions() Options {
	return Options{
		DuplicateSourceTargetCaseSensitive: true,
		DuplicateSourceCaseSensitive:       true,
		SourceSameAsTargetCaseSensitive:    true,
		SourceEmpty:                        true,
		TargetEmpty:                        true,
		SourceEmptyTargetNot:               true,
		TargetEmptySourceNot:               true,
		BothEmpty:                          true,
		RemoveInlineTags:                   true,
		CleanWhitespace:                    true,
	}
}

// ConservativeOptions returns a minimal preset: exact pair duplicates,
// fully empty units, and whitespace normalization only.
func ConservativeOptions() Options {
	return Options{
		DuplicateSourceTargetCaseSensitive: true,
		BothEmpty:                          true,
		CleanWhitespace:                    true,
	}
}

// AllOptions returns a preset with every toggle enabled.
func AllOptions() Options {
	return Options{
		DuplicateSourceTargetCaseSensitive:   true,
		DuplicateSourceTargetCaseInsensitive: true,
		DuplicateSourceCaseSensitive:         true,
		DuplicateSourceCaseInsensitive:       true,
		SourceSameAsTargetCaseSensitive:      true,
		SourceEmpty:                          true,
		TargetEmpty:                          true,
		SourceEmptyTargetNot:                 true,
		TargetEmptySourceNot:                 true,
		BothEmpty:                            true,
		InlineCode:                           true,
		RemoveInlineTags:                     true,
		CleanWhitespace:                      true,
	}
}

// EnabledNames returns the configuration names of the active toggles in
// evaluation order.
func (o Options) EnabledNames() []string {
	var names []string
	for _, t := range []struct {
		name string
		on   bool
	}{
		{"source_same_as_target_case_sensitive", o.SourceSameAsTargetCaseSensitive},
		{"source_empty", o.SourceEmpty},
		{"target_empty", o.TargetEmpty},
		{"source_empty_target_not", o.SourceEmptyTargetNot},
		{"target_empty_source_not", o.TargetEmptySourceNot},
		{"both_empty", o.BothEmpty},
		{"inline_code", o.InlineCode},
		{"duplicate_source_target_case_sensitive", o.DuplicateSourceTargetCaseSensitive},
		{"duplicate_source_target_case_insensitive", o.DuplicateSourceTargetCaseInsensitive},
		{"duplicate_source_case_sensitive", o.DuplicateSourceCaseSensitive},
		{"duplicate_source_case_insensitive", o.DuplicateSourceCaseInsensitive},
		{"remove_inline_tags", o.RemoveInlineTags},
		{"clean_whitespace", o.CleanWhitespace},
	} {
		if t.on {
			names = append(names, t.name)
		}
	}
	return names
}

// Enabled reports whether any toggle is active.
func (o Options) Enabled() bool {
	return o != Options{}
}

// rewrites reports whether surviving segments get their text rewritten.
func (o Options) rewrites() bool {
	return o.RemoveInlineTags || o.CleanWhitespace
}
