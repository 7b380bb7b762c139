package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/screening-cli/internal/model"
)

func TestExtractFullChunk(t *testing.T) {
	chunk := `Company Description: Acme Corp. - www.acme.com
A provider of enterprise software for logistics teams.
Serves mid-market customers across North America.
Revenue: $25M
EBITDA: $5M
Growth Rate: 22%
Employees: 120
`
	rec := Extract(chunk)

	assert.Equal(t, "Acme", rec.Name)
	assert.Equal(t, "A provider of enterprise software for logistics teams. Serves mid-market customers across North America.", rec.Description)

	require.NotNil(t, rec.Revenue)
	assert.Equal(t, int64(25_000_000), *rec.Revenue)
	require.NotNil(t, rec.EBITDA)
	assert.Equal(t, int64(5_000_000), *rec.EBITDA)
	require.NotNil(t, rec.GrowthRate)
	assert.Equal(t, 22, *rec.GrowthRate)
	require.NotNil(t, rec.Employees)
	assert.Equal(t, 120, *rec.Employees)
}

func TestExtractMissingFieldsStayAbsent(t *testing.T) {
	rec := Extract("Acme\nA small logistics software company.\nFounded a decade ago.\n")

	assert.Equal(t, "Acme", rec.Name)
	assert.Nil(t, rec.Revenue)
	assert.Nil(t, rec.EBITDA)
	assert.Nil(t, rec.GrowthRate)
	assert.Nil(t, rec.Employees)
	assert.False(t, rec.RevenueEstimated)
}

func TestExtractPlaceholderName(t *testing.T) {
	// A name line longer than the plausibility bound keeps the placeholder;
	// the financials are still captured.
	chunk := "the quick brown fox jumped over the lazy dog again today\nRevenue: $4M\nEmployees: 30\n"
	rec := Extract(chunk)

	assert.Equal(t, model.PlaceholderName, rec.Name)
	require.NotNil(t, rec.Revenue)
	assert.Equal(t, int64(4_000_000), *rec.Revenue)
}

func TestExtractDescriptionStopsAtFinancials(t *testing.T) {
	chunk := `Acme
First description line.
Revenue: $2M
This trailing line is not part of the description.
`
	rec := Extract(chunk)
	assert.Equal(t, "First description line.", rec.Description)
}

func TestExtractDescriptionCapped(t *testing.T) {
	chunk := "Acme\none\ntwo\nthree\nfour\nfive\nsix\nseven\n"
	rec := Extract(chunk)
	assert.Equal(t, "one two three four five", rec.Description)
}

func TestExtractEmployeesPhraseFallback(t *testing.T) {
	chunk := "Acme\nA regional services firm with ~85 employees across two offices.\n"
	rec := Extract(chunk)
	require.NotNil(t, rec.Employees)
	assert.Equal(t, 85, *rec.Employees)
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int64
	}{
		{"dollar millions", "Revenue: $25M", model.Int64Ptr(25_000_000)},
		{"decimal billions", "Revenue 3.5B", model.Int64Ptr(3_500_000_000)},
		{"lowercase suffix", "revenue: $7.5m", model.Int64Ptr(7_500_000)},
		{"plain dollars with commas", "Revenue: $1,250,000", model.Int64Ptr(1_250_000)},
		{"no suffix no dollar", "Revenue: 900000", model.Int64Ptr(900_000)},
		{"sign before dollar", "Revenue: -$2M", model.Int64Ptr(-2_000_000)},
		{"sign after dollar", "Revenue: $-2M", model.Int64Ptr(-2_000_000)},
		{"absent", "no financials disclosed", nil},
		{"label without number", "Revenue: undisclosed", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseMoney(tt.text, revenueRe)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseGrowth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{"with percent", "Growth Rate: 22%", model.IntPtr(22)},
		{"bare growth", "growth: 40", model.IntPtr(40)},
		{"negative", "Growth Rate: -5%", model.IntPtr(-5)},
		{"absent", "no growth figures", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseGrowth(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseEmployees(t *testing.T) {
	got := parseEmployees("Employees: 1,200", "")
	require.NotNil(t, got)
	assert.Equal(t, 1200, *got)

	got = parseEmployees("Headcount - 85", "")
	require.NotNil(t, got)
	assert.Equal(t, 85, *got)

	// Dedicated line wins over the description phrase.
	got = parseEmployees("Employees: 200", "a firm with 50 employees")
	require.NotNil(t, got)
	assert.Equal(t, 200, *got)

	assert.Nil(t, parseEmployees("no staffing data", ""))
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"heading remnant with url", "Company Description: Acme Corp. - www.acme.com", "Acme"},
		{"legal suffix", "TechFlow Solutions Inc.", "TechFlow Solutions"},
		{"stacked suffixes", "DataBridge Holdings LLC", "DataBridge"},
		{"ampersand kept", "Profile: Smith & Sons Holdings", "Smith & Sons"},
		{"bare url", "https://example.com/deck", ""},
		{"punctuation noise", "  Nova-Labs, Ltd.  ", "Nova Labs"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanName(tt.raw))
		})
	}
}
