// Package pipeline implements the extraction-and-scoring core: free-text
// segmentation into company records, regex-based financial-field recovery,
// industry classification, gap-filling estimation, and weighted scoring
// with normalization.
//
// Data flows strictly forward: raw text → records → classified records →
// enriched records → scored records → ranked subset. The core is CPU-bound
// text work with no I/O; it never returns an error for bad input, only
// smaller (possibly empty) results. Callers that need deadlines wrap the
// call — the core itself performs no cancellation checks.
package pipeline

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/screening-cli/internal/config"
	"github.com/sells-group/screening-cli/internal/model"
)

// Pipeline holds the run-independent configuration for screening runs.
// Safe for concurrent use: all state is read-only after construction.
type Pipeline struct {
	segOpts SegmentOptions
	limit   int
}

// New creates a Pipeline from config.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		segOpts: DefaultSegmentOptions(cfg.Segment.MinLines, cfg.Segment.ExtraAnchors),
		limit:   cfg.Pipeline.Limit,
	}
}

// Result is the outcome of one screening run.
type Result struct {
	RunID   string                `json:"run_id"`
	Records []model.CompanyRecord `json:"records"`
	Stats   RunStats              `json:"stats"`
}

// Run executes the full pipeline over extracted document text. A document
// with no recognizable company sections produces an empty record list, not
// an error; the caller decides whether that is a user-facing failure.
//
// limit <= 0 falls back to the configured limit.
func (p *Pipeline) Run(text string, weights model.Weights, limit int) *Result {
	if limit <= 0 {
		limit = p.limit
	}
	weights = weights.Normalize()

	result := &Result{RunID: uuid.New().String()}
	stats := &result.Stats
	log := zap.L().With(zap.String("run_id", result.RunID))

	var chunks []string
	stage(&stats.SegmentDuration, func() {
		chunks = Segment(text, p.segOpts)
	})
	stats.Chunks = len(chunks)

	if len(chunks) == 0 {
		log.Info("pipeline: no company sections found")
		stats.CollectedAt = time.Now().UTC()
		return result
	}

	records := make([]model.CompanyRecord, 0, len(chunks))
	stage(&stats.ExtractDuration, func() {
		for i, chunk := range chunks {
			rec := Extract(chunk)
			rec.SourceChunk = i
			records = append(records, rec)
		}
	})
	stats.Records = len(records)

	stage(&stats.ClassifyDuration, func() {
		for i := range records {
			records[i].Industries = Classify(chunks[records[i].SourceChunk])
		}
	})

	stats.FieldsExtracted = countPresentFields(records)
	stage(&stats.EnrichDuration, func() {
		for i := range records {
			Enrich(&records[i])
		}
	})
	stats.FieldsEstimated = countPresentFields(records) - stats.FieldsExtracted

	stage(&stats.RankDuration, func() {
		result.Records = Rank(records, weights, limit)
	})
	stats.Ranked = len(result.Records)
	stats.CollectedAt = time.Now().UTC()

	log.Info("pipeline: run complete",
		zap.Int("chunks", stats.Chunks),
		zap.Int("records", stats.Records),
		zap.Int("ranked", stats.Ranked),
		zap.Int("fields_extracted", stats.FieldsExtracted),
		zap.Int("fields_estimated", stats.FieldsEstimated),
		zap.Duration("segment", stats.SegmentDuration),
		zap.Duration("extract", stats.ExtractDuration),
		zap.Duration("classify", stats.ClassifyDuration),
		zap.Duration("enrich", stats.EnrichDuration),
		zap.Duration("rank", stats.RankDuration),
	)

	return result
}

// countPresentFields counts how many of the four financial metrics are
// present across all records.
func countPresentFields(records []model.CompanyRecord) int {
	n := 0
	for i := range records {
		if records[i].Revenue != nil {
			n++
		}
		if records[i].EBITDA != nil {
			n++
		}
		if records[i].GrowthRate != nil {
			n++
		}
		if records[i].Employees != nil {
			n++
		}
	}
	return n
}
