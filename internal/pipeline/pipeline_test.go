package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/screening-cli/internal/config"
	"github.com/sells-group/screening-cli/internal/model"
)

func testPipeline() *Pipeline {
	return New(&config.Config{
		Segment:  config.SegmentConfig{MinLines: 3},
		Pipeline: config.PipelineConfig{Limit: 10},
	})
}

const sampleDeck = `Deal Book, Q3. Internal use only.

Company Description: Acme Corp
A SaaS platform for mid-market logistics teams.
Revenue: $25M
EBITDA: $6M
Growth Rate: 22%
Employees: 120

Company Description: Beta Forge
A manufacturing automation startup.
Revenue: $4M

Company Description: Gamma Health
A clinical scheduling provider with ~85 employees.
Revenue: $12M
Growth Rate: 15%
`

func TestPipelineRunEndToEnd(t *testing.T) {
	result := testPipeline().Run(sampleDeck, model.DefaultWeights(), 10)

	require.NotNil(t, result)
	assert.NotEmpty(t, result.RunID)
	require.Len(t, result.Records, 3)

	names := make(map[string]model.CompanyRecord, 3)
	for _, rec := range result.Records {
		names[rec.Name] = rec
	}

	acme, ok := names["Acme"]
	require.True(t, ok)
	assert.Equal(t, []string{"Enterprise Software"}, acme.Industries)
	assert.Equal(t, int64(25_000_000), *acme.Revenue)
	assert.False(t, acme.RevenueEstimated)

	beta, ok := names["Beta Forge"]
	require.True(t, ok)
	assert.Equal(t, int64(4_000_000), *beta.Revenue)
	// Gaps were filled from benchmarks and flagged as such.
	require.NotNil(t, beta.Employees)
	assert.True(t, beta.EmployeesEstimated)
	require.NotNil(t, beta.EBITDA)
	assert.True(t, beta.EBITDAEstimated)

	gamma, ok := names["Gamma Health"]
	require.True(t, ok)
	assert.Contains(t, gamma.Industries, "Healthcare")
	require.NotNil(t, gamma.Employees)
	assert.Equal(t, 85, *gamma.Employees)
	assert.False(t, gamma.EmployeesEstimated)
}

func TestPipelineRunRankedDescending(t *testing.T) {
	result := testPipeline().Run(sampleDeck, model.DefaultWeights(), 10)
	require.NotEmpty(t, result.Records)
	for i := 1; i < len(result.Records); i++ {
		assert.GreaterOrEqual(t, result.Records[i-1].Score, result.Records[i].Score)
	}
}

func TestPipelineRunLimit(t *testing.T) {
	result := testPipeline().Run(sampleDeck, model.DefaultWeights(), 1)
	assert.Len(t, result.Records, 1)
}

func TestPipelineRunEmptyText(t *testing.T) {
	result := testPipeline().Run("", model.DefaultWeights(), 10)

	require.NotNil(t, result)
	assert.NotEmpty(t, result.RunID)
	assert.Empty(t, result.Records)
	assert.Zero(t, result.Stats.Chunks)
}

func TestPipelineRunStats(t *testing.T) {
	result := testPipeline().Run(sampleDeck, model.DefaultWeights(), 10)

	assert.Equal(t, 3, result.Stats.Chunks)
	assert.Equal(t, 3, result.Stats.Records)
	assert.Equal(t, 3, result.Stats.Ranked)
	// Acme 4 extracted, Beta 1, Gamma 3.
	assert.Equal(t, 8, result.Stats.FieldsExtracted)
	// Every record leaves enrichment with all four metrics present.
	assert.Equal(t, 4, result.Stats.FieldsEstimated)
	assert.False(t, result.Stats.CollectedAt.IsZero())
}

func TestPipelineRunSourceChunkProvenance(t *testing.T) {
	result := testPipeline().Run(sampleDeck, model.DefaultWeights(), 10)

	seen := make(map[int]bool)
	for _, rec := range result.Records {
		assert.GreaterOrEqual(t, rec.SourceChunk, 0)
		assert.Less(t, rec.SourceChunk, result.Stats.Chunks)
		seen[rec.SourceChunk] = true
	}
	assert.Len(t, seen, len(result.Records))
}

func TestPipelineRunFreshRunIDs(t *testing.T) {
	p := testPipeline()
	first := p.Run(sampleDeck, model.DefaultWeights(), 10)
	second := p.Run(sampleDeck, model.DefaultWeights(), 10)
	assert.NotEqual(t, first.RunID, second.RunID)
}
