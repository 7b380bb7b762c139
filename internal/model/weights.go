package model

// Weights holds the investor-criteria multipliers for one screening run.
// All weights are non-negative; a zero weight removes that dimension from
// both the raw score and the normalization denominator. Supplied once per
// run and never mutated by the pipeline.
type Weights struct {
	Revenue       float64 `json:"revenue_weight"`
	Growth        float64 `json:"growth_weight"`
	Profitability float64 `json:"profitability_weight"`
	Industry      float64 `json:"industry_weight"`
	Size          float64 `json:"size_weight"`

	// SelectedIndustries is the set of taxonomy labels the caller cares
	// about. Empty means the industry dimension contributes nothing.
	SelectedIndustries []string `json:"selected_industries,omitempty"`
}

// DefaultWeights returns the neutral configuration: every numeric weight 1,
// no industry selection.
func DefaultWeights() Weights {
	return Weights{
		Revenue:       1,
		Growth:        1,
		Profitability: 1,
		Industry:      1,
		Size:          1,
	}
}

// Normalize clamps negative weights to zero. Callers pass user-supplied
// form values straight through; the pipeline only ever sees a normalized
// copy.
func (w Weights) Normalize() Weights {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}
	w.Revenue = clamp(w.Revenue)
	w.Growth = clamp(w.Growth)
	w.Profitability = clamp(w.Profitability)
	w.Industry = clamp(w.Industry)
	w.Size = clamp(w.Size)
	return w
}

// SelectsIndustry reports whether the given label is in the caller's
// selected set.
func (w Weights) SelectsIndustry(label string) bool {
	for _, s := range w.SelectedIndustries {
		if s == label {
			return true
		}
	}
	return false
}
