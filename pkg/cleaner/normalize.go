package cleaner

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// Known TMX/XLIFF inline tags, optionally self-closing.
	inlineTagRE = regexp.MustCompile(`(?i)<(?:g|x|bx|ex|ph|it|mrk|hi|sub|ut)[^>]*/?>`)

	// Any remaining angle-bracket tag.
	genericTagRE = regexp.MustCompile(`<[^>]+>`)

	whitespaceRE = regexp.MustCompile(`\s+`)

	// Inline-code detection patterns.
	entityRE      = regexp.MustCompile(`&[a-zA-Z]+;`)
	placeholderRE = regexp.MustCompile(`\{\w+\}`)
	bracketRE     = regexp.MustCompile(`\[[^\]]+\]`)
	percentVarRE  = regexp.MustCompile(`%\w+%`)
)

// StripInlineMarkup removes inline tags from text, repairing spacing so that
// tokens separated only by a tag are not fused together. Known inline tags
// are removed first, then any remaining generic tags, with identical spacing
// treatment in both passes. Spacing repair can leave double spaces; callers
// wanting single spaces normalize afterwards.
func StripInlineMarkup(text string) string {
	if text == "" {
		return text
	}
	text = stripTagSpans(text, inlineTagRE)
	return stripTagSpans(text, genericTagRE)
}

// stripTagSpans deletes every match of re from text. Matches are collected
// in one forward scan and spliced out in reverse position order so earlier
// offsets stay valid. A single space replaces the match on each side where
// the adjacent character exists and is alphanumeric; edges, punctuation and
// existing whitespace get no extra space.
func stripTagSpans(text string, re *regexp.Regexp) string {
	spans := re.FindAllStringIndex(text, -1)
	for i := len(spans) - 1; i >= 0; i-- {
		start, end := spans[i][0], spans[i][1]
		var repl string
		if start > 0 && isAlnumBefore(text, start) {
			repl = " "
		}
		if end < len(text) && isAlnumAt(text, end) {
			repl += " "
		}
		text = text[:start] + repl + text[end:]
	}
	return text
}

func isAlnumBefore(s string, index int) bool {
	r, size := utf8.DecodeLastRuneInString(s[:index])
	return size > 0 && isAlnum(r)
}

func isAlnumAt(s string, index int) bool {
	r, size := utf8.DecodeRuneInString(s[index:])
	return size > 0 && isAlnum(r)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// NormalizeWhitespace trims leading and trailing whitespace and collapses
// every interior run of whitespace (including tabs and newlines) to a single
// ASCII space. It is idempotent.
func NormalizeWhitespace(text string) string {
	if text == "" {
		return text
	}
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(text), " ")
}

// ContainsInlineCode reports whether text carries inline code: an XML-like
// tag, an HTML entity, a {word} placeholder, bracketed text, or a %word%
// placeholder. The check is independent of whether markup stripping ran.
func ContainsInlineCode(text string) bool {
	if text == "" {
		return false
	}
	return genericTagRE.MatchString(text) ||
		entityRE.MatchString(text) ||
		placeholderRE.MatchString(text) ||
		bracketRE.MatchString(text) ||
		percentVarRE.MatchString(text)
}
