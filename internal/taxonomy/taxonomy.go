// Package taxonomy holds the closed industry taxonomy and the per-industry
// benchmark tables used for gap-filling estimation. Both ship as embedded
// YAML, are parsed exactly once at process start, and are read-only
// afterwards, so lookups are safe from concurrent pipeline runs.
package taxonomy

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed benchmarks.yaml
var benchmarksYAML []byte

// Industry is one taxonomy entry with its estimation benchmarks.
type Industry struct {
	Label string `yaml:"label"`
	// Aliases are lowercase phrases whose verbatim occurrence in text
	// counts as a match for this label.
	Aliases            []string `yaml:"aliases"`
	RevenuePerEmployee int64    `yaml:"revenue_per_employee"`
	EBITDAMargin       float64  `yaml:"ebitda_margin"`
	GrowthRate         int      `yaml:"growth_rate"`
}

type catalog struct {
	DefaultLabel      string   `yaml:"default_label"`
	Industries        []Industry `yaml:"industries"`
	DefaultBenchmarks struct {
		RevenuePerEmployee int64   `yaml:"revenue_per_employee"`
		EBITDAMargin       float64 `yaml:"ebitda_margin"`
		GrowthRate         int     `yaml:"growth_rate"`
	} `yaml:"default_benchmarks"`
}

var (
	loaded  catalog
	byLabel map[string]*Industry
)

func init() {
	if err := yaml.Unmarshal(benchmarksYAML, &loaded); err != nil {
		panic(fmt.Sprintf("taxonomy: parse embedded benchmarks: %v", err))
	}
	byLabel = make(map[string]*Industry, len(loaded.Industries))
	for i := range loaded.Industries {
		byLabel[loaded.Industries[i].Label] = &loaded.Industries[i]
	}
}

// DefaultLabel is the catch-all label assigned when classification finds no
// taxonomy match.
func DefaultLabel() string { return loaded.DefaultLabel }

// All returns every taxonomy entry in priority order. Callers must not
// mutate the returned slice.
func All() []Industry { return loaded.Industries }

// Labels returns all taxonomy labels in priority order.
func Labels() []string {
	out := make([]string, len(loaded.Industries))
	for i, ind := range loaded.Industries {
		out[i] = ind.Label
	}
	return out
}

// Valid reports whether label is a taxonomy label (the default catch-all
// counts).
func Valid(label string) bool {
	if label == loaded.DefaultLabel {
		return true
	}
	_, ok := byLabel[label]
	return ok
}

// RevenuePerEmployee returns the dollars-per-employee benchmark for the
// label, or the default benchmark for unknown labels.
func RevenuePerEmployee(label string) int64 {
	if ind, ok := byLabel[label]; ok {
		return ind.RevenuePerEmployee
	}
	return loaded.DefaultBenchmarks.RevenuePerEmployee
}

// EBITDAMargin returns the margin benchmark (fraction of revenue) for the
// label, or the default for unknown labels.
func EBITDAMargin(label string) float64 {
	if ind, ok := byLabel[label]; ok {
		return ind.EBITDAMargin
	}
	return loaded.DefaultBenchmarks.EBITDAMargin
}

// GrowthBenchmark returns the growth-rate benchmark (percent) for the
// label, or the default for unknown labels.
func GrowthBenchmark(label string) int {
	if ind, ok := byLabel[label]; ok {
		return ind.GrowthRate
	}
	return loaded.DefaultBenchmarks.GrowthRate
}
