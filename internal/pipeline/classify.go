package pipeline

import (
	"strings"

	"github.com/sells-group/screening-cli/internal/taxonomy"
)

// Classify maps chunk text to taxonomy labels by scanning for verbatim,
// case-insensitive occurrences of each label or one of its aliases. Matches
// are collected in taxonomy order, which downstream code treats as
// priority order (the first label is the record's primary industry).
//
// A record always leaves classification with at least one label: when
// nothing matches, the catch-all default is assigned.
func Classify(text string) []string {
	lower := strings.ToLower(text)

	var labels []string
	for _, ind := range taxonomy.All() {
		if matchesIndustry(lower, ind) {
			labels = append(labels, ind.Label)
		}
	}

	if len(labels) == 0 {
		return []string{taxonomy.DefaultLabel()}
	}
	return labels
}

func matchesIndustry(lowerText string, ind taxonomy.Industry) bool {
	if containsPhrase(lowerText, strings.ToLower(ind.Label)) {
		return true
	}
	for _, alias := range ind.Aliases {
		if containsPhrase(lowerText, alias) {
			return true
		}
	}
	return false
}

// containsPhrase reports whether phrase occurs in text on word boundaries.
// Plain strings.Contains is not enough: the alias "security" must not match
// inside "cybersecurity", nor "co" inside "colocation".
func containsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for from := 0; ; {
		idx := strings.Index(text[from:], phrase)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(phrase)

		startOK := start == 0 || !isWordByte(text[start-1])
		endOK := end == len(text) || !isWordByte(text[end])
		if startOK && endOK {
			return true
		}

		from = start + 1
		if from >= len(text) {
			return false
		}
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
