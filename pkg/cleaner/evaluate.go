package cleaner

import "strings"

// pairKey is a (source, target) duplicate-tracking key.
type pairKey struct {
	source string
	target string
}

// dedupState holds the four duplicate-tracking sets for one pass. Each set
// backs exactly one toggle and only ever grows. State is created per run so
// independent runs cannot interfere.
type dedupState struct {
	pairCaseSensitive     map[pairKey]struct{}
	pairCaseInsensitive   map[pairKey]struct{}
	sourceCaseSensitive   map[string]struct{}
	sourceCaseInsensitive map[string]struct{}
}

func newDedupState() *dedupState {
	return &dedupState{
		pairCaseSensitive:     make(map[pairKey]struct{}),
		pairCaseInsensitive:   make(map[pairKey]struct{}),
		sourceCaseSensitive:   make(map[string]struct{}),
		sourceCaseInsensitive: make(map[string]struct{}),
	}
}

// insert records a kept unit's keys in every set whose toggle is active.
// Insertion happens only for survivors, so units dropped by any condition
// never pollute the duplicate sets.
func (st *dedupState) insert(opts Options, source, target string) {
	if opts.DuplicateSourceTargetCaseSensitive {
		st.pairCaseSensitive[pairKey{source, target}] = struct{}{}
	}
	if opts.DuplicateSourceTargetCaseInsensitive {
		st.pairCaseInsensitive[pairKey{strings.ToLower(source), strings.ToLower(target)}] = struct{}{}
	}
	if opts.DuplicateSourceCaseSensitive {
		st.sourceCaseSensitive[source] = struct{}{}
	}
	if opts.DuplicateSourceCaseInsensitive {
		st.sourceCaseInsensitive[strings.ToLower(source)] = struct{}{}
	}
}

// contentReason evaluates the content and emptiness conditions in fixed
// priority order, stopping at the first match. Disabled conditions are
// skipped entirely; they never short-circuit a later enabled one. Overlaps
// (source_empty also satisfies source_empty_target_not) are resolved by this
// order alone, so the first enabled match takes the counter.
func (c *Cleaner) contentReason(source, target string) (Reason, bool) {
	src := strings.TrimSpace(source)
	tgt := strings.TrimSpace(target)

	if c.opts.SourceSameAsTargetCaseSensitive && src == tgt && src != "" {
		return ReasonSourceSameAsTarget, true
	}
	if c.opts.SourceEmpty && src == "" {
		return ReasonSourceEmpty, true
	}
	if c.opts.TargetEmpty && tgt == "" {
		return ReasonTargetEmpty, true
	}
	if c.opts.SourceEmptyTargetNot && src == "" && tgt != "" {
		return ReasonSourceEmptyTargetNot, true
	}
	if c.opts.TargetEmptySourceNot && tgt == "" && src != "" {
		return ReasonTargetEmptySourceNot, true
	}
	if c.opts.BothEmpty && src == "" && tgt == "" {
		return ReasonBothEmpty, true
	}
	if c.opts.InlineCode && (ContainsInlineCode(src) || ContainsInlineCode(tgt)) {
		return ReasonInlineCode, true
	}
	return "", false
}

// duplicateReason tests the unit against the four duplicate sets in fixed
// order, each gated by its own toggle, first match wins.
func (c *Cleaner) duplicateReason(st *dedupState, source, target string) (Reason, bool) {
	if c.opts.DuplicateSourceTargetCaseSensitive {
		if _, seen := st.pairCaseSensitive[pairKey{source, target}]; seen {
			return ReasonDuplicateSourceTargetCaseSensitive, true
		}
	}
	if c.opts.DuplicateSourceTargetCaseInsensitive {
		if _, seen := st.pairCaseInsensitive[pairKey{strings.ToLower(source), strings.ToLower(target)}]; seen {
			return ReasonDuplicateSourceTargetCaseInsensitive, true
		}
	}
	if c.opts.DuplicateSourceCaseSensitive {
		if _, seen := st.sourceCaseSensitive[source]; seen {
			return ReasonDuplicateSourceCaseSensitive, true
		}
	}
	if c.opts.DuplicateSourceCaseInsensitive {
		if _, seen := st.sourceCaseInsensitive[strings.ToLower(source)]; seen {
			return ReasonDuplicateSourceCaseInsensitive, true
		}
	}
	return "", false
}
