// Package output renders estimation results for humans and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"archcost/core/types"
	"archcost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is a human-readable report
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Render writes the result to w in the requested format
func Render(w io.Writer, result *types.EstimationResult, format Format, symbol string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatText, "":
		return renderText(w, result, symbol)
	}
	return errors.Newf(errors.TypeInput, "unknown output format %q", format)
}

// money renders an amount rounded to two decimal places with the currency
// symbol, using decimal so display rounding is exact.
func money(symbol string, amount float64) string {
	return symbol + decimal.NewFromFloat(amount).Round(2).StringFixed(2)
}

func renderText(w io.Writer, r *types.EstimationResult, symbol string) error {
	p := func(format string, args ...interface{}) {
		fmt.Fprintf(w, format+"\n", args...)
	}

	p("Architecture: %s", r.Architecture)
	p("Currency:     %s", r.Currency)
	p("")
	p("Monthly Cost Breakdown")
	p("----------------------")

	rows := []struct {
		label string
		value float64
	}{
		{"Compute", r.MonthlyCost.Compute},
		{"Database", r.MonthlyCost.Database},
		{"Storage", r.MonthlyCost.Storage},
		{"Networking", r.MonthlyCost.Networking},
		{"CDN", r.MonthlyCost.CDN},
		{"Messaging", r.MonthlyCost.Messaging},
		{"Security", r.MonthlyCost.Security},
		{"Monitoring", r.MonthlyCost.Monitoring},
		{"CI/CD", r.MonthlyCost.CICD},
		{"Multi-Region", r.MonthlyCost.MultiRegion},
	}
	for _, row := range rows {
		if row.value == 0 {
			continue
		}
		p("  %-14s %s", row.label, money(symbol, row.value))
	}
	p("  %-14s %s", "Total", money(symbol, r.MonthlyCost.Total))
	p("")
	p("Yearly Cost: %s", money(symbol, r.YearlyCost))

	if len(r.ThreeYearProjection) > 0 {
		p("")
		p("Three Year Projection")
		p("---------------------")
		for _, year := range sortedKeys(r.ThreeYearProjection) {
			p("  %-8s %s", year, money(symbol, r.ThreeYearProjection[year]))
		}
	}

	if len(r.InfrastructureRequirements) > 0 {
		p("")
		p("Infrastructure Requirements")
		p("---------------------------")
		for _, name := range sortedKeys(r.InfrastructureRequirements) {
			p("  %-22s %s", name, r.InfrastructureRequirements[name])
		}
	}

	if len(r.MultiCloudCosts) > 0 {
		p("")
		p("Multi-Cloud Comparison (monthly)")
		p("--------------------------------")
		for _, provider := range sortedKeys(r.MultiCloudCosts) {
			p("  %-14s %s", provider, money(symbol, r.MultiCloudCosts[provider]))
		}
	}

	if len(r.ScalingScenarios) > 0 {
		p("")
		p("Scaling Scenarios (monthly)")
		p("---------------------------")
		for _, target := range sortedKeys(r.ScalingScenarios) {
			p("  %-16s %s", target, money(symbol, r.ScalingScenarios[target]))
		}
	}

	if len(r.OptimizationSuggestions) > 0 {
		p("")
		p("Optimization Suggestions")
		p("------------------------")
		for _, s := range r.OptimizationSuggestions {
			p("  %s (save %s)", s.Title, s.Saving)
			p("    %s", s.Description)
		}
	}

	if len(r.BusinessMetrics) > 0 {
		p("")
		p("Business Metrics")
		p("----------------")
		for _, name := range sortedKeys(r.BusinessMetrics) {
			p("  %-32s %s", name, r.BusinessMetrics[name])
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
