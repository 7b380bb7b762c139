package pipeline

import "time"

// RunStats is a point-in-time view of one screening run, collected at
// stage boundaries. It exists for observability only: nothing in the
// scoring path reads it.
type RunStats struct {
	Chunks          int `json:"chunks"`
	Records         int `json:"records"`
	Ranked          int `json:"ranked"`
	FieldsExtracted int `json:"fields_extracted"`
	FieldsEstimated int `json:"fields_estimated"`

	SegmentDuration  time.Duration `json:"segment_duration_ns"`
	ExtractDuration  time.Duration `json:"extract_duration_ns"`
	ClassifyDuration time.Duration `json:"classify_duration_ns"`
	EnrichDuration   time.Duration `json:"enrich_duration_ns"`
	RankDuration     time.Duration `json:"rank_duration_ns"`

	CollectedAt time.Time `json:"collected_at"`
}

// stage runs fn and records its wall-clock duration into *dst.
func stage(dst *time.Duration, fn func()) {
	start := time.Now()
	fn()
	*dst = time.Since(start)
}
