// Package cleaner implements the TMX cleaning engine: segment text
// extraction, inline-markup stripping with spacing repair, whitespace
// normalization, and a single-pass filtering pipeline that removes units
// matching the configured conditions and reports per-condition statistics.
package cleaner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tmxtools/tmxclean/pkg/tmx"
)

// LogFunc receives human-readable progress and status lines.
type LogFunc func(msg string)

// ProgressFunc receives a 0-100 completion percentage. Values are monotonic
// within one run and reported at fixed checkpoints: after the structural
// scan, every 100 units during the pass, after removal, and after save.
type ProgressFunc func(percent float64)

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithLogFunc installs a log sink. Hooks are invoked synchronously.
func WithLogFunc(fn LogFunc) Option {
	return func(c *Cleaner) {
		c.logf = fn
	}
}

// WithProgressFunc installs a progress sink.
func WithProgressFunc(fn ProgressFunc) Option {
	return func(c *Cleaner) {
		c.progressf = fn
	}
}

// Cleaner runs cleaning passes over TMX documents. It is single-threaded;
// a pass owns its duplicate-tracking state and statistics exclusively.
type Cleaner struct {
	opts      Options
	stats     *Stats
	logf      LogFunc
	progressf ProgressFunc
}

// New creates a Cleaner with the given options.
func New(opts Options, options ...Option) *Cleaner {
	c := &Cleaner{
		opts:  opts,
		stats: NewStats(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Stats returns the statistics of the most recent pass.
func (c *Cleaner) Stats() *Stats {
	return c.stats
}

func (c *Cleaner) log(msg string) {
	if c.logf != nil {
		c.logf(msg)
	}
}

func (c *Cleaner) progress(percent float64) {
	if c.progressf != nil {
		c.progressf(percent)
	}
}

// extractText derives the plain text for one variant under the active
// options. With whitespace cleaning off the result is still trimmed, so
// markup removal never leaves edge artifacts. The whitespace-cleaned counter
// reflects every extraction that normalization changed, including those of
// units a later condition drops.
func (c *Cleaner) extractText(v *tmx.Variant) string {
	text := v.Text()
	if c.opts.RemoveInlineTags {
		text = StripInlineMarkup(text)
	}
	if c.opts.CleanWhitespace {
		normalized := NormalizeWhitespace(text)
		if normalized != text {
			c.stats.WhitespaceCleaned++
		}
		return normalized
	}
	return strings.TrimSpace(text)
}

// Clean runs one pass over the document: every unit is inspected once in
// document order, dropped units are detached in one batch afterwards, and
// survivors have their segments rewritten when a normalization option is
// active. Nothing inside the pass is fatal; malformed units degrade to
// "drop" or empty text.
func (c *Cleaner) Clean(doc *tmx.Document) *Stats {
	c.stats = NewStats()

	units := doc.Units()
	total := len(units)
	c.stats.OriginalSegments = total
	c.log(fmt.Sprintf("Found %s translation units", humanize.Comma(int64(total))))
	c.progress(10)

	state := newDedupState()
	var remove []*tmx.Unit

	for i, unit := range units {
		if i%100 == 0 && total > 0 {
			c.progress(10 + float64(i)/float64(total)*70)
		}

		variants := unit.Variants()
		if len(variants) < 2 {
			// Structurally invalid: dropped unconditionally, no named counter.
			remove = append(remove, unit)
			continue
		}

		sourceVariant, targetVariant := variants[0], variants[1]
		source := c.extractText(sourceVariant)
		target := c.extractText(targetVariant)

		if reason, drop := c.contentReason(source, target); drop {
			c.stats.inc(reason)
			remove = append(remove, unit)
			continue
		}

		if reason, drop := c.duplicateReason(state, source, target); drop {
			c.stats.inc(reason)
			remove = append(remove, unit)
			continue
		}

		state.insert(c.opts, source, target)

		if c.opts.rewrites() {
			sourceVariant.SetText(source)
			targetVariant.SetText(target)
		}
	}

	doc.RemoveUnits(remove)
	c.progress(85)

	c.stats.FinalSegments = len(doc.Units())
	return c.stats
}

// CleanFile loads inputPath, cleans the document, and writes the result to
// outputPath. Input errors are reported before the pipeline runs; write
// errors are reported after cleaning completed in memory, with the partial
// run's statistics still returned.
func (c *Cleaner) CleanFile(inputPath, outputPath string) (*Stats, error) {
	c.log("Loading TMX file: " + filepath.Base(inputPath))
	doc, err := tmx.Load(inputPath)
	if err != nil {
		return nil, err
	}

	stats := c.Clean(doc)

	c.log("Saving cleaned TMX file: " + filepath.Base(outputPath))
	if err := doc.Save(outputPath); err != nil {
		return stats, err
	}
	c.progress(100)
	return stats, nil
}
