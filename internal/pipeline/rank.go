package pipeline

import (
	"sort"

	"github.com/sells-group/screening-cli/internal/model"
)

// DefaultLimit is the ranked-result cutoff when the caller does not supply
// one.
const DefaultLimit = 10

// Rank scores every record in place, stable-sorts descending by score, and
// truncates to limit. Ties keep their original relative order; the sort
// has no secondary key, so processing order decides nothing except among
// equals.
func Rank(records []model.CompanyRecord, w model.Weights, limit int) []model.CompanyRecord {
	if limit <= 0 {
		limit = DefaultLimit
	}

	for i := range records {
		records[i].Score = Score(records[i], w)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})

	if len(records) > limit {
		records = records[:limit]
	}
	return records
}
