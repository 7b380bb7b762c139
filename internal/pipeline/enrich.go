package pipeline

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/screening-cli/internal/model"
	"github.com/sells-group/screening-cli/internal/taxonomy"
)

// Employee estimation heuristics. Keyword-driven base count plus a small
// bump for longer descriptions: verbose profiles tend to describe larger
// operations.
const (
	employeeBase           = 50
	employeeEnterpriseBump = 150
	employeeStartupCount   = 10
	descLenPerEmployee     = 200
)

// Enrich fills every absent metric with an industry-benchmark estimate and
// marks the corresponding _estimated flag. Rules run in dependency order
// (employees feed the revenue estimate, revenue feeds EBITDA) and each rule
// fires only when its field is absent, so extracted values are never
// overwritten.
//
// Enrichment is idempotent: a record that already carries the completion
// latch is returned untouched, making retries safe. A panic while enriching
// one record is recovered and the record restored to its pre-enrichment
// state; one bad record must not abort the batch.
func Enrich(rec *model.CompanyRecord) {
	if rec == nil || rec.Enriched() {
		return
	}

	snapshot := *rec
	defer func() {
		if r := recover(); r != nil {
			*rec = snapshot
			zap.L().Warn("enrich: recovered, record left unmodified",
				zap.String("company", snapshot.Name),
				zap.Any("panic", r),
			)
		}
	}()

	industry := rec.PrimaryIndustry()

	if rec.Employees == nil {
		rec.Employees = model.IntPtr(estimateEmployees(rec.Name, rec.Description))
		rec.EmployeesEstimated = true
	}

	if rec.Revenue == nil {
		perHead := taxonomy.RevenuePerEmployee(industry)
		rec.Revenue = model.Int64Ptr(int64(*rec.Employees) * perHead)
		rec.RevenueEstimated = true
	}

	if rec.EBITDA == nil {
		margin := taxonomy.EBITDAMargin(industry)
		rec.EBITDA = model.Int64Ptr(int64(math.Round(float64(*rec.Revenue) * margin)))
		rec.EBITDAEstimated = true
	}

	if rec.GrowthRate == nil {
		rec.GrowthRate = model.IntPtr(taxonomy.GrowthBenchmark(industry))
		rec.GrowthEstimated = true
	}

	rec.MarkEnriched()
}

// estimateEmployees derives a headcount from name and description keywords.
// "enterprise" suggests a larger vendor, "startup" overrides to a small
// team, and longer descriptions add a modest bump.
func estimateEmployees(name, description string) int {
	text := strings.ToLower(name + " " + description)

	est := employeeBase
	if strings.Contains(text, "enterprise") {
		est += employeeEnterpriseBump
	}
	if strings.Contains(text, "startup") {
		est = employeeStartupCount
	}
	est += len(description) / descLenPerEmployee

	return est
}
