package model

// PlaceholderName is assigned when a chunk yields no usable company name.
// Records with a placeholder name are retained: their financials may still
// be extractable and downstream estimation depends only on the description.
const PlaceholderName = "Unnamed Company"

// CompanyRecord is the central entity of the screening pipeline. One record
// is created per detected company and mutated in place as it moves through
// extraction, classification, enrichment, and scoring.
//
// Financial fields are pointers: nil means the value was not found in the
// source text (and was not estimated yet). Absent is never conflated with
// zero — a company with EBITDA of 0 and a company with unknown EBITDA score
// differently.
type CompanyRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Revenue     *int64   `json:"revenue,omitempty"`     // annual revenue in dollars
	EBITDA      *int64   `json:"ebitda,omitempty"`      // dollars; may be negative
	GrowthRate  *int     `json:"growth_rate,omitempty"` // percent
	Employees   *int     `json:"employees,omitempty"`
	Industries  []string `json:"industries,omitempty"` // ordered taxonomy labels

	RevenueEstimated   bool `json:"revenue_estimated,omitempty"`
	EBITDAEstimated    bool `json:"ebitda_estimated,omitempty"`
	EmployeesEstimated bool `json:"employees_estimated,omitempty"`
	GrowthEstimated    bool `json:"growth_estimated,omitempty"`

	Score float64 `json:"score"` // 0-100, set by the scorer

	// SourceChunk locates the record in the segmented document, for report
	// provenance. Zero-based chunk index.
	SourceChunk int `json:"source_chunk"`

	// enriched latches after the first Enrich call so re-running enrichment
	// is a no-op.
	enriched bool
}

// Enriched reports whether the record has been through enrichment.
func (r *CompanyRecord) Enriched() bool { return r.enriched }

// MarkEnriched latches the enrichment-complete flag.
func (r *CompanyRecord) MarkEnriched() { r.enriched = true }

// PrimaryIndustry returns the first (highest-priority) industry label, or
// empty string if the record has not been classified.
func (r *CompanyRecord) PrimaryIndustry() string {
	if len(r.Industries) == 0 {
		return ""
	}
	return r.Industries[0]
}

// EBITDAMargin returns ebitda/revenue, or false when either side is absent
// or revenue is zero.
func (r *CompanyRecord) EBITDAMargin() (float64, bool) {
	if r.EBITDA == nil || r.Revenue == nil || *r.Revenue == 0 {
		return 0, false
	}
	return float64(*r.EBITDA) / float64(*r.Revenue), true
}

// HasIndustry reports whether the record carries the given taxonomy label.
func (r *CompanyRecord) HasIndustry(label string) bool {
	for _, ind := range r.Industries {
		if ind == label {
			return true
		}
	}
	return false
}

// Int64Ptr returns a pointer to v. Convenience for building records in
// tests and extraction code.
func Int64Ptr(v int64) *int64 { return &v }

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }
