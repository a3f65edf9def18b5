// Package estimate - End-to-end estimation pipeline tests
package estimate

import (
	"math"
	"reflect"
	"testing"

	"archcost/core/pricing"
	"archcost/core/types"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func defaultTraffic(users int) types.TrafficInput {
	traffic := types.DefaultTraffic()
	traffic.DailyActiveUsers = users
	return traffic
}

func TestEstimateIsDeterministic(t *testing.T) {
	table := pricing.Defaults()
	traffic := defaultTraffic(25_000)
	traffic.Database.MultiAZ = true
	traffic.CDN.Enabled = true
	traffic.CDN.DataTransferGB = 500

	a := Estimate(table, types.ArchMicroservices, traffic, "EUR")
	b := Estimate(table, types.ArchMicroservices, traffic, "EUR")

	if !reflect.DeepEqual(a, b) {
		t.Error("same input against the same table must produce identical results")
	}
}

func TestTotalIsSumOfComponents(t *testing.T) {
	table := pricing.Defaults()
	traffic := defaultTraffic(50_000)
	traffic.Database.ReadReplicas = 2
	traffic.CDN.Enabled = true
	traffic.CDN.DataTransferGB = 1000
	traffic.Messaging.Enabled = true
	traffic.Messaging.Type = "kafka"
	traffic.Security.WAFEnabled = true
	traffic.CICD.Provider = "github_actions"
	traffic.CICD.BuildsPerMonth = 200
	traffic.MultiRegion.Enabled = true
	traffic.MultiRegion.Regions = 3

	result := Estimate(table, types.ArchMonolith, traffic, "USD")
	m := result.MonthlyCost

	sum := m.Compute + m.Database + m.Storage + m.Networking + m.CDN +
		m.Messaging + m.Security + m.Monitoring + m.CICD + m.MultiRegion
	if !almostEqual(sum, m.Total) {
		t.Errorf("total %f != component sum %f", m.Total, sum)
	}
	if !almostEqual(result.YearlyCost, m.Total*12) {
		t.Errorf("yearly %f != 12 * monthly total %f", result.YearlyCost, m.Total)
	}
}

func TestCurrencyConversionIsUniform(t *testing.T) {
	table := pricing.Defaults()
	traffic := defaultTraffic(100_000)
	traffic.CDN.Enabled = true
	traffic.CDN.DataTransferGB = 2000

	usd := Estimate(table, types.ArchHybrid, traffic, "USD")
	inr := Estimate(table, types.ArchHybrid, traffic, "INR")
	rate := table.Rate("INR")

	pairs := []struct {
		name     string
		usd, inr float64
	}{
		{"compute", usd.MonthlyCost.Compute, inr.MonthlyCost.Compute},
		{"database", usd.MonthlyCost.Database, inr.MonthlyCost.Database},
		{"storage", usd.MonthlyCost.Storage, inr.MonthlyCost.Storage},
		{"cdn", usd.MonthlyCost.CDN, inr.MonthlyCost.CDN},
		{"total", usd.MonthlyCost.Total, inr.MonthlyCost.Total},
		{"yearly", usd.YearlyCost, inr.YearlyCost},
	}
	for _, p := range pairs {
		if !almostEqual(p.usd*rate, p.inr) {
			t.Errorf("%s: %f USD * %f != %f INR", p.name, p.usd, rate, p.inr)
		}
	}

	// The total is the converted USD total, not the sum of converted parts
	m := inr.MonthlyCost
	sum := m.Compute + m.Database + m.Storage + m.Networking + m.CDN +
		m.Messaging + m.Security + m.Monitoring + m.CICD + m.MultiRegion
	if !almostEqual(sum, m.Total) {
		t.Errorf("converted total %f != converted component sum %f", m.Total, sum)
	}
}

func TestCurrencyCodeIsNormalized(t *testing.T) {
	table := pricing.Defaults()
	traffic := defaultTraffic(1000)

	lower := Estimate(table, types.ArchMonolith, traffic, " eur ")
	if lower.Currency != "EUR" {
		t.Errorf("currency must be normalized to upper case, got %q", lower.Currency)
	}

	empty := Estimate(table, types.ArchMonolith, traffic, "")
	if empty.Currency != "USD" {
		t.Errorf("empty currency must default to USD, got %q", empty.Currency)
	}
}

func TestDisabledBlocksCostNothing(t *testing.T) {
	table := pricing.Defaults()
	result := Estimate(table, types.ArchMonolith, defaultTraffic(10_000), "USD")

	m := result.MonthlyCost
	if m.CDN != 0 || m.Messaging != 0 || m.Security != 0 || m.CICD != 0 || m.MultiRegion != 0 {
		t.Errorf("disabled blocks must contribute zero cost: %+v", m)
	}
	for _, key := range []string{"Queue", "WAF", "CDN Transfer", "Regions", "CI/CD"} {
		if _, ok := result.InfrastructureRequirements[key]; ok {
			t.Errorf("disabled block must not emit requirement %q", key)
		}
	}
}

func TestMicroservicesWorkedExample(t *testing.T) {
	// DAU 10k with all defaults: 5 services * 1 instance of t3.micro,
	// RDS + DynamoDB, ~0.98 GB S3, one ALB, CloudWatch over 5 hosts.
	table := pricing.Defaults()
	result := Estimate(table, types.ArchMicroservices, defaultTraffic(10_000), "USD")
	m := result.MonthlyCost

	if !almostEqual(m.Compute, 5*7.50) {
		t.Errorf("compute: got %f, want %f", m.Compute, 5*7.50)
	}
	if !almostEqual(m.Database, 60.0+0.25*10) {
		t.Errorf("database: got %f, want %f", m.Database, 62.5)
	}
	storageGB := 10_000 * 0.1 / 1024
	if !almostEqual(m.Storage, storageGB*0.023) {
		t.Errorf("storage: got %f, want %f", m.Storage, storageGB*0.023)
	}
	if !almostEqual(m.Networking, 16.20) {
		t.Errorf("networking: got %f, want %f", m.Networking, 16.20)
	}
	// 5 hosts * (10 metrics * 0.30 + 1 GB logs * 0.50)
	if !almostEqual(m.Monitoring, 5*(10*0.30+0.50)) {
		t.Errorf("monitoring: got %f, want %f", m.Monitoring, 17.5)
	}

	want := 37.5 + 62.5 + storageGB*0.023 + 16.20 + 17.5
	if !almostEqual(m.Total, want) {
		t.Errorf("total: got %f, want %f", m.Total, want)
	}

	if result.InfrastructureRequirements["Compute"] != "5x t3.micro (across 5 services)" {
		t.Errorf("unexpected compute requirement: %q", result.InfrastructureRequirements["Compute"])
	}
}

func TestScalingScenarioAtBaseUsersIsFixedPoint(t *testing.T) {
	table := pricing.Defaults()
	result := Estimate(table, types.ArchMonolith, defaultTraffic(10_000), "USD")

	if !almostEqual(result.ScalingScenarios["10k Users"], result.MonthlyCost.Total) {
		t.Errorf("scenario at the base user count must equal the current total: %f != %f",
			result.ScalingScenarios["10k Users"], result.MonthlyCost.Total)
	}
}

func TestThreeYearProjectionCompoundsGrowth(t *testing.T) {
	table := pricing.Defaults()
	traffic := defaultTraffic(10_000)
	traffic.GrowthRateYoY = 0.5

	result := Estimate(table, types.ArchMonolith, traffic, "USD")
	proj := result.ThreeYearProjection

	if !almostEqual(proj["Year 1"], result.YearlyCost) {
		t.Errorf("year 1 must be the current yearly cost")
	}
	if !almostEqual(proj["Year 2"], result.YearlyCost*1.5) {
		t.Errorf("year 2: got %f, want %f", proj["Year 2"], result.YearlyCost*1.5)
	}
	if !almostEqual(proj["Year 3"], result.YearlyCost*2.25) {
		t.Errorf("year 3: got %f, want %f", proj["Year 3"], result.YearlyCost*2.25)
	}
}

func TestMultiCloudComparisonUsesMultipliers(t *testing.T) {
	table := pricing.Defaults()
	result := Estimate(table, types.ArchMonolith, defaultTraffic(10_000), "USD")

	total := result.MonthlyCost.Total
	if !almostEqual(result.MultiCloudCosts["AWS"], total) {
		t.Errorf("AWS cost must equal the total: %f != %f", result.MultiCloudCosts["AWS"], total)
	}
	if !almostEqual(result.MultiCloudCosts["GCP"], total*0.95) {
		t.Errorf("GCP cost must apply the 0.95 multiplier")
	}
	if !almostEqual(result.MultiCloudCosts["DigitalOcean"], total*0.60) {
		t.Errorf("DigitalOcean cost must apply the 0.60 multiplier")
	}
}

func TestMissingPricesDegradeToZeroNotFailure(t *testing.T) {
	// A table with no cdn or messaging categories at all
	sparse := pricing.NewTable(map[string]map[string]float64{
		"compute":    {"t3.medium": 30.0},
		"database":   {"rds_db.t3.medium": 60.0},
		"storage":    {"s3_gb": 0.023},
		"networking": {"load_balancer": 16.2},
	}, map[string]float64{"USD": 1.0}, nil, pricing.Meta{})

	traffic := defaultTraffic(10_000)
	traffic.CDN.Enabled = true
	traffic.CDN.DataTransferGB = 100
	traffic.Messaging.Enabled = true
	traffic.Messaging.Type = "rabbitmq"

	result := Estimate(sparse, types.ArchMonolith, traffic, "USD")
	if result.MonthlyCost.CDN != 0 || result.MonthlyCost.Messaging != 0 {
		t.Error("missing price entries must contribute zero cost")
	}
	if result.MonthlyCost.Total <= 0 {
		t.Error("priced components must still contribute")
	}
}
