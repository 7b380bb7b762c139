package pipeline

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sells-group/screening-cli/internal/model"
)

// maxDescriptionLines bounds how much free text is kept as the company
// description.
const maxDescriptionLines = 5

// maxNameWords is the plausibility bound for a cleaned company name.
// Anything longer is body text that leaked into the name position.
const maxNameWords = 6

// financialHeadingRe recognizes the start of the financial section within a
// chunk. Description capture stops at the first such line.
var financialHeadingRe = regexp.MustCompile(`(?i)^\s*(?:revenue|ebitda|growth(?:\s+rate)?|employees|headcount|ownership|financials?)\b`)

// revenueRe and ebitdaRe capture a labeled currency amount with an optional
// magnitude suffix: "Revenue: $12.5M", "EBITDA - 4.5M", "Revenue $1.2B".
var (
	revenueRe = regexp.MustCompile(`(?i)\brevenue\b\s*:?\s*(-?)\$?(-?)\s*(\d[\d,]*(?:\.\d+)?)\s*([MmBb])?\b`)
	ebitdaRe  = regexp.MustCompile(`(?i)\bebitda\b\s*:?\s*(-?)\$?(-?)\s*(\d[\d,]*(?:\.\d+)?)\s*([MmBb])?\b`)
)

// growthRe captures "Growth: 25%" or "Growth Rate: 25".
var growthRe = regexp.MustCompile(`(?i)\bgrowth(?:\s+rate)?\b\s*:?\s*(-?\d[\d,]*)\s*%?`)

// employeesRe captures a dedicated employee line: "Employees: ~120",
// "Headcount: 85".
var employeesRe = regexp.MustCompile(`(?i)\b(?:employees|headcount)\b[\s:\-]*~?\s*(\d[\d,]*)`)

// employeesPhraseRe is the description fallback: "with ~120 employees",
// "has 85 employees", "employs 40 employees".
var employeesPhraseRe = regexp.MustCompile(`(?i)\b(?:with|has|employs)\s+~?\s*(\d[\d,]*)\s+employees\b`)

// Extract recovers a partial CompanyRecord from one segmented chunk.
// Missing or malformed fields stay absent; extraction never fails. Partial
// data is always acceptable and downstream enrichment fills the gaps.
func Extract(chunk string) model.CompanyRecord {
	lines := strings.Split(chunk, "\n")

	rec := model.CompanyRecord{
		Name: model.PlaceholderName,
	}

	// Name: first non-blank line, cleaned. A degenerate name (empty after
	// cleaning, or implausibly long) keeps the placeholder; the record is
	// retained either way since its financials may still be usable.
	nameIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		nameIdx = i
		if name := CleanName(line); name != "" && len(strings.Fields(name)) <= maxNameWords {
			rec.Name = name
		}
		break
	}

	// Description: lines between the name and the first financial heading,
	// capped to bound size.
	if nameIdx >= 0 {
		var desc []string
		for _, line := range lines[nameIdx+1:] {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if financialHeadingRe.MatchString(line) {
				break
			}
			desc = append(desc, trimmed)
			if len(desc) == maxDescriptionLines {
				break
			}
		}
		rec.Description = strings.Join(desc, " ")
	}

	rec.Revenue = parseMoney(chunk, revenueRe)
	rec.EBITDA = parseMoney(chunk, ebitdaRe)
	rec.GrowthRate = parseGrowth(chunk)
	rec.Employees = parseEmployees(chunk, rec.Description)

	return rec
}

// parseMoney finds a labeled currency amount and expands the magnitude
// suffix (M = millions, B = billions) to integer dollars. A malformed
// number is swallowed: the field stays absent rather than zero.
func parseMoney(text string, re *regexp.Regexp) *int64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	raw := strings.ReplaceAll(m[3], ",", "")
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	// Sign may precede or follow the dollar sign: "-$2M" or "$-2M".
	if m[1] == "-" || m[2] == "-" {
		val = -val
	}

	switch strings.ToUpper(m[4]) {
	case "M":
		val *= 1_000_000
	case "B":
		val *= 1_000_000_000
	}

	return model.Int64Ptr(int64(math.Round(val)))
}

func parseGrowth(text string) *int {
	m := growthRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return nil
	}
	return model.IntPtr(n)
}

func parseEmployees(text, description string) *int {
	m := employeesRe.FindStringSubmatch(text)
	if m == nil {
		m = employeesPhraseRe.FindStringSubmatch(description)
	}
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return nil
	}
	return model.IntPtr(n)
}

// namePrefixRe strips boilerplate labels left over from the anchor line.
var namePrefixRe = regexp.MustCompile(`(?i)^\s*(?:company\s*(?:description|profile|overview)|company|profile)\s*:?\s*`)

// nameURLRe removes URL fragments from a name line.
var nameURLRe = regexp.MustCompile(`(?i)\b(?:https?://\S+|www\.\S+|[a-z0-9-]+\.(?:com|net|org|io|co|ai)\b\S*)`)

// nameNoiseRe collapses anything that is not a letter, digit, ampersand, or
// space into whitespace.
var nameNoiseRe = regexp.MustCompile(`[^a-zA-Z0-9& ]+`)

// legalSuffixes are trailing legal-entity tokens stripped from names.
var legalSuffixes = map[string]bool{
	"inc":          true,
	"llc":          true,
	"ltd":          true,
	"corp":         true,
	"co":           true,
	"corporation":  true,
	"incorporated": true,
	"limited":      true,
	"group":        true,
	"holdings":     true,
}

// CleanName normalizes a raw name line: strips boilerplate labels, URL
// fragments, legal-entity suffixes, and punctuation noise, then collapses
// whitespace. Returns empty string when nothing usable remains.
func CleanName(raw string) string {
	s := namePrefixRe.ReplaceAllString(raw, "")
	s = nameURLRe.ReplaceAllString(s, " ")
	s = nameNoiseRe.ReplaceAllString(s, " ")

	words := strings.Fields(s)
	for len(words) > 1 && legalSuffixes[strings.ToLower(words[len(words)-1])] {
		words = words[:len(words)-1]
	}

	return strings.Join(words, " ")
}
