package cleaner

import (
	"strings"
	"testing"
)

// --- StripInlineMarkup Tests ---

func TestStripInlineMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty_string", "", ""},
		{"no_tags", "plain text stays", "plain text stays"},
		{"known_tag_between_words", "word<g id='1'>other", "word  other"},
		{"self_closing_known_tag", "a<x/>b", "a  b"},
		{"known_tag_case_insensitive", "a<PH type='1'>b", "a  b"},
		{"generic_tag_between_words", "word<custom>other", "word  other"},
		{"escaped_markup_pair", "Hello <b>world</b>", "Hello  world "},
		{"tag_after_punctuation", "end.<x/>Next", "end. Next"},
		{"tag_at_string_start", "<x/>word", " word"},
		{"tag_at_string_end", "word<x/>", "word "},
		{"tag_between_spaces", "word <x/> other", "word  other"},
		{"adjacent_tags", "a<bx i='1'/><ex i='1'/>b", "a  b"},
		{"unicode_neighbours", "déjà<x/>vu", "déjà  vu"},
		{"digits_need_space", "1<ph/>2", "1  2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripInlineMarkup(tt.input); got != tt.want {
				t.Errorf("StripInlineMarkup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripInlineMarkup_NoTokenFusion(t *testing.T) {
	// Tokens separated only by a tag must stay separated after stripping.
	inputs := []string{
		"word<g>other",
		"one<x/>two<x/>three",
		"first<mrk mtype='seg'>second</mrk>third",
		"a<unknown attr='v'>b",
	}

	for _, input := range inputs {
		got := StripInlineMarkup(input)
		if strings.Contains(got, "<") || strings.Contains(got, ">") {
			t.Errorf("StripInlineMarkup(%q) = %q, tag residue left", input, got)
		}
		for _, word := range []string{"wordother", "onetwo", "twothree", "firstsecond", "secondthird", "ab"} {
			if strings.Contains(got, word) {
				t.Errorf("StripInlineMarkup(%q) = %q, fused tokens %q", input, got, word)
			}
		}
	}
}

// --- NormalizeWhitespace Tests ---

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty_string", "", ""},
		{"already_clean", "a b c", "a b c"},
		{"leading_trailing", "  hello  ", "hello"},
		{"interior_run", "a   b", "a b"},
		{"tabs_and_newlines", "a\t\nb\r\nc", "a b c"},
		{"only_whitespace", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tt.input); got != tt.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhitespace_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"  a \t b\n\nc  ",
		"already clean",
		" \n ",
	}

	for _, input := range inputs {
		once := NormalizeWhitespace(input)
		twice := NormalizeWhitespace(once)
		if once != twice {
			t.Errorf("NormalizeWhitespace not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

// --- ContainsInlineCode Tests ---

func TestContainsInlineCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty_string", "", false},
		{"plain_text", "just a sentence", false},
		{"xml_tag", "click <b>here</b>", true},
		{"html_entity", "Tom &amp; Jerry", true},
		{"curly_placeholder", "Press {key} now", true},
		{"bracket_notation", "see [note] below", true},
		{"percent_placeholder", "value is %count%", true},
		{"lone_percent", "100% done", false},
		{"lone_braces", "empty {} braces", false},
		{"spaced_angle_pair", "a < b and b > c", true},
		{"unclosed_angle", "a < b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsInlineCode(tt.input); got != tt.want {
				t.Errorf("ContainsInlineCode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
