package pipeline

import (
	"math"

	"github.com/sells-group/screening-cli/internal/model"
)

// Sub-score caps. Each dimension's fit function returns at most its cap;
// the normalization denominator is the weighted sum of the caps.
const (
	revenueCap       = 40.0
	growthCap        = 30.0
	profitabilityCap = 20.0
	industryCap      = 10.0
	sizeCap          = 10.0
)

// industryFitPoints grades an industry match by label family. Labels not
// listed score the generic match value.
var industryFitPoints = map[string]float64{
	"Enterprise Software":  10, // premium
	"FinTech & Payments":   8,  // fintech family
	"Data & Analytics":     6,  // software family
	"Cybersecurity":        6,
	"Cloud Infrastructure": 6,
}

const genericIndustryFit = 5.0

// Score computes the weighted, normalized fitness score for one record.
// Deterministic given (record, weights), no side effects on the record or
// on other records. The result is raw/Σ(cap×weight) scaled to 0-100 and
// rounded to two decimals; this normalization is what keeps scores
// comparable across different weight configurations. All-zero weights
// yield 0.
func Score(rec model.CompanyRecord, w model.Weights) float64 {
	raw := revenueFit(rec)*w.Revenue +
		growthFit(rec)*w.Growth +
		profitabilityFit(rec)*w.Profitability +
		industryFit(rec, w)*w.Industry +
		sizeFit(rec)*w.Size

	denom := revenueCap*w.Revenue +
		growthCap*w.Growth +
		profitabilityCap*w.Profitability +
		industryCap*w.Industry +
		sizeCap*w.Size

	if denom == 0 {
		return 0
	}

	return math.Round(raw/denom*100*100) / 100
}

// revenueFit grades revenue by bracket. The ideal band is $10-30M; smaller
// companies in the $5-10M band still score well, oversized ones taper off.
func revenueFit(rec model.CompanyRecord) float64 {
	if rec.Revenue == nil {
		return 5
	}
	rev := *rec.Revenue
	switch {
	case rev >= 10_000_000 && rev <= 30_000_000:
		return 40
	case rev >= 5_000_000 && rev < 10_000_000:
		return 30
	case rev > 30_000_000 && rev <= 50_000_000:
		return 25
	case rev > 50_000_000:
		return 10
	default:
		return 5
	}
}

func growthFit(rec model.CompanyRecord) float64 {
	if rec.GrowthRate == nil {
		return 0
	}
	g := *rec.GrowthRate
	switch {
	case g >= 30:
		return 30
	case g >= 20:
		return 25
	case g >= 10:
		return 20
	case g >= 5:
		return 10
	default:
		return 5
	}
}

func profitabilityFit(rec model.CompanyRecord) float64 {
	if rec.EBITDA == nil {
		return 0
	}
	if margin, ok := rec.EBITDAMargin(); ok && margin > 0.20 {
		return 20
	}
	if *rec.EBITDA > 0 {
		return 15
	}
	return 5
}

// industryFit grades the intersection between the record's labels and the
// caller's selected industries. No selection configured, or no
// intersection, contributes nothing; otherwise the best-graded matching
// label wins.
func industryFit(rec model.CompanyRecord, w model.Weights) float64 {
	if len(w.SelectedIndustries) == 0 {
		return 0
	}

	best := 0.0
	for _, label := range rec.Industries {
		if !w.SelectsIndustry(label) {
			continue
		}
		pts := genericIndustryFit
		if p, ok := industryFitPoints[label]; ok {
			pts = p
		}
		if pts > best {
			best = pts
		}
	}
	return best
}

func sizeFit(rec model.CompanyRecord) float64 {
	if rec.Employees == nil {
		return 0
	}
	emp := *rec.Employees
	switch {
	case emp >= 50 && emp <= 200:
		return 10
	case emp < 50:
		return 5
	default:
		return 2
	}
}
