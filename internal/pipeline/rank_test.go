package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/screening-cli/internal/model"
)

func TestRankOrdersByScoreDescending(t *testing.T) {
	records := []model.CompanyRecord{
		{Name: "Tiny", Revenue: model.Int64Ptr(1_000_000)},
		{Name: "Ideal", Revenue: model.Int64Ptr(20_000_000)},
		{Name: "Small", Revenue: model.Int64Ptr(7_000_000)},
	}

	ranked := Rank(records, model.Weights{Revenue: 1}, 10)

	require.Len(t, ranked, 3)
	assert.Equal(t, "Ideal", ranked[0].Name)
	assert.Equal(t, "Small", ranked[1].Name)
	assert.Equal(t, "Tiny", ranked[2].Name)
	assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
	assert.GreaterOrEqual(t, ranked[1].Score, ranked[2].Score)
}

func TestRankTruncatesToLimit(t *testing.T) {
	records := make([]model.CompanyRecord, 5)
	ranked := Rank(records, model.DefaultWeights(), 2)
	assert.Len(t, ranked, 2)
}

func TestRankDefaultsLimit(t *testing.T) {
	records := make([]model.CompanyRecord, DefaultLimit+5)
	ranked := Rank(records, model.DefaultWeights(), 0)
	assert.Len(t, ranked, DefaultLimit)

	records = make([]model.CompanyRecord, DefaultLimit+5)
	ranked = Rank(records, model.DefaultWeights(), -3)
	assert.Len(t, ranked, DefaultLimit)
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	// Identical records score identically; the stable sort keeps them in
	// processing order.
	records := []model.CompanyRecord{
		{Name: "First", SourceChunk: 0},
		{Name: "Second", SourceChunk: 1},
		{Name: "Third", SourceChunk: 2},
	}

	ranked := Rank(records, model.DefaultWeights(), 10)

	require.Len(t, ranked, 3)
	assert.Equal(t, "First", ranked[0].Name)
	assert.Equal(t, "Second", ranked[1].Name)
	assert.Equal(t, "Third", ranked[2].Name)
}

func TestRankWritesScores(t *testing.T) {
	records := []model.CompanyRecord{{Revenue: model.Int64Ptr(20_000_000)}}
	ranked := Rank(records, model.Weights{Revenue: 1}, 10)
	assert.InDelta(t, 100, ranked[0].Score, 0.001)
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil, model.DefaultWeights(), 10))
}
