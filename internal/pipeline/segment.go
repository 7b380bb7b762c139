package pipeline

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Splitter cuts a document into fragments at occurrences of one anchor
// pattern. Source decks differ in layout: some mark each company with a
// heading phrase, some put one company per page, some only start a fresh
// capitalized block. The anchor set is pluggable rather than a single
// fixed string.
type Splitter interface {
	Name() string
	Split(text string) []string
}

// SegmentOptions configures segmentation.
type SegmentOptions struct {
	// Splitters are tried in order; the first one that produces at least
	// one usable chunk wins.
	Splitters []Splitter
	// MinLines is the minimum number of non-blank lines a fragment needs
	// to count as a company chunk.
	MinLines int
}

// headingAnchor matches the profile heading phrases that typically open a
// company section in screening decks.
var headingAnchor = regexp.MustCompile(`(?i)company\s*(?:description|profile|overview)`)

// DefaultSegmentOptions returns the standard anchor chain: heading phrase,
// then page boundary, then capitalized block heuristic. extraAnchors are
// additional heading patterns (regular expressions) tried before the
// built-in heading anchor.
func DefaultSegmentOptions(minLines int, extraAnchors []string) SegmentOptions {
	if minLines <= 0 {
		minLines = 3
	}

	var splitters []Splitter
	for _, pat := range extraAnchors {
		re, err := regexp.Compile(pat)
		if err != nil {
			zap.L().Warn("segment: skipping invalid extra anchor",
				zap.String("pattern", pat),
				zap.Error(err),
			)
			continue
		}
		splitters = append(splitters, &PatternSplitter{name: "extra:" + pat, re: re})
	}

	splitters = append(splitters,
		&PatternSplitter{name: "heading", re: headingAnchor},
		PageSplitter{},
		BlockSplitter{},
	)

	return SegmentOptions{Splitters: splitters, MinLines: minLines}
}

// Segment splits raw document text into one chunk per candidate company.
// The fragment before the first anchor is discarded as preamble, and
// fragments with fewer than MinLines non-blank lines are dropped as too
// little information to be a company. An empty result is a valid outcome,
// not an error.
func Segment(text string, opts SegmentOptions) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	for _, s := range opts.Splitters {
		frags := s.Split(text)
		if len(frags) < 2 {
			// No anchor hit: everything is preamble.
			continue
		}

		var chunks []string
		for _, frag := range frags[1:] {
			if countNonBlankLines(frag) < opts.MinLines {
				continue
			}
			chunks = append(chunks, frag)
		}

		if len(chunks) > 0 {
			zap.L().Debug("segment: anchor matched",
				zap.String("anchor", s.Name()),
				zap.Int("fragments", len(frags)),
				zap.Int("chunks", len(chunks)),
			)
			return chunks
		}
	}

	return nil
}

// PatternSplitter splits at every occurrence of a phrase pattern. The
// matched phrase itself is dropped, so text on the same line after the
// anchor (commonly the company name) stays at the head of the chunk.
type PatternSplitter struct {
	name string
	re   *regexp.Regexp
}

func (p *PatternSplitter) Name() string { return p.name }

func (p *PatternSplitter) Split(text string) []string {
	return p.re.Split(text, -1)
}

// PageSplitter treats form feeds as anchors: one page, one candidate
// company. Both PDF text providers emit form feeds between pages.
type PageSplitter struct{}

func (PageSplitter) Name() string { return "page" }

func (PageSplitter) Split(text string) []string {
	return strings.Split(text, "\f")
}

// blockHeadingRe matches a short capitalized line: at most six words, each
// starting with an uppercase letter or digit, preceded only by whitespace.
var blockHeadingRe = regexp.MustCompile(`^\s*(?:[A-Z0-9][^\s]*\s+){0,5}[A-Z0-9][^\s]*\s*$`)

// BlockSplitter is the last-resort heuristic for decks with neither heading
// phrases nor page markers: a short capitalized line following a blank line
// starts a new block.
type BlockSplitter struct{}

func (BlockSplitter) Name() string { return "block" }

func (BlockSplitter) Split(text string) []string {
	lines := strings.Split(text, "\n")

	var frags []string
	var cur []string
	prevBlank := true

	for _, line := range lines {
		if prevBlank && blockHeadingRe.MatchString(line) && strings.TrimSpace(line) != "" {
			frags = append(frags, strings.Join(cur, "\n"))
			cur = nil
		}
		cur = append(cur, line)
		prevBlank = strings.TrimSpace(line) == ""
	}
	frags = append(frags, strings.Join(cur, "\n"))

	return frags
}

func countNonBlankLines(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
