// Package estimate - Feature block calculator tests
package estimate

import (
	"testing"

	"archcost/core/pricing"
	"archcost/core/types"
)

func TestCDNVideoMultiplierAppliesLast(t *testing.T) {
	table := pricing.Defaults()
	cfg := types.CDNConfig{
		Enabled:        true,
		Provider:       "cloudfront",
		DataTransferGB: 1024,
		EdgeFunctions:  true,
		VideoStreaming: true,
	}
	got := cdnCost(table, cfg, map[string]string{})

	transfer := 1024 * 0.085
	edge := (1024.0 * 100 / 1024) / 1e6 * 0.60
	want := (transfer + edge) * 1.5
	if !almostEqual(got, want) {
		t.Errorf("got %f, want %f (streaming multiplier after edge functions)", got, want)
	}
}

func TestCDNDisabledIgnoresOtherFields(t *testing.T) {
	table := pricing.Defaults()
	cfg := types.CDNConfig{Provider: "cloudfront", DataTransferGB: 99999}
	reqs := map[string]string{}
	if got := cdnCost(table, cfg, reqs); got != 0 {
		t.Errorf("disabled CDN must cost nothing, got %f", got)
	}
	if len(reqs) != 0 {
		t.Errorf("disabled CDN must not emit requirements: %v", reqs)
	}
}

func TestMessagingPerTechnology(t *testing.T) {
	table := pricing.Defaults()

	cases := []struct {
		name string
		cfg  types.MessagingConfig
		want float64
	}{
		{
			name: "sqs per million monthly messages",
			cfg:  types.MessagingConfig{Enabled: true, Type: "sqs", MessagesPerDay: 2_000_000},
			want: 2_000_000 * 30 / 1e6 * 0.40,
		},
		{
			name: "kafka floors at three brokers",
			cfg:  types.MessagingConfig{Enabled: true, Type: "kafka", MessagesPerDay: 100},
			want: 3 * 150.0,
		},
		{
			name: "kafka adds brokers per million daily messages",
			cfg:  types.MessagingConfig{Enabled: true, Type: "kafka", MessagesPerDay: 5_000_000},
			want: 6 * 150.0,
		},
		{
			name: "rabbitmq is a flat instance",
			cfg:  types.MessagingConfig{Enabled: true, Type: "rabbitmq", MessagesPerDay: 123},
			want: 70.0,
		},
		{
			name: "kinesis sizes shards from sustained rate",
			cfg:  types.MessagingConfig{Enabled: true, Type: "kinesis", MessagesPerDay: 172_800_000},
			want: 3 * 10.95, // 2000 msg/s over 1000/shard, plus one
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := messagingCost(table, tc.cfg, map[string]string{})
			if !almostEqual(got, tc.want) {
				t.Errorf("got %f, want %f", got, tc.want)
			}
		})
	}
}

func TestDLQAddsRequirementNotCost(t *testing.T) {
	table := pricing.Defaults()
	base := types.MessagingConfig{Enabled: true, Type: "rabbitmq"}
	withDLQ := base
	withDLQ.DLQEnabled = true

	reqs := map[string]string{}
	if messagingCost(table, base, map[string]string{}) != messagingCost(table, withDLQ, reqs) {
		t.Error("DLQ must not change the cost")
	}
	if reqs["DLQ"] != "Enabled" {
		t.Error("DLQ must emit its requirement line")
	}
}

func TestSecurityComplianceMatchingIsCaseInsensitive(t *testing.T) {
	table := pricing.Defaults()
	traffic := defaultTraffic(10_000)

	cfg := types.SecurityConfig{Compliance: []string{"SOC2", "hipaa", "unknown_standard"}}
	got := securityCost(table, cfg, traffic, map[string]string{})

	want := 1250.0 + 1500.0 // soc2 + hipaa; unknown ignored
	if !almostEqual(got, want) {
		t.Errorf("got %f, want %f", got, want)
	}
}

func TestSecurityWAFScalesWithRequests(t *testing.T) {
	table := pricing.Defaults()
	traffic := defaultTraffic(100_000) // 150M requests/mo

	cfg := types.SecurityConfig{WAFEnabled: true}
	got := securityCost(table, cfg, traffic, map[string]string{})

	want := 10*1.00 + 150.0*0.60
	if !almostEqual(got, want) {
		t.Errorf("got %f, want %f", got, want)
	}
}

func TestSSLCertificatesAreFree(t *testing.T) {
	table := pricing.Defaults()
	traffic := defaultTraffic(10_000)

	reqs := map[string]string{}
	got := securityCost(table, types.SecurityConfig{SSLCertificates: 3}, traffic, reqs)
	if got != 0 {
		t.Errorf("ACM certificates must be free, got %f", got)
	}
	if reqs["SSL"] != "3 certificates (ACM)" {
		t.Errorf("unexpected SSL requirement: %q", reqs["SSL"])
	}
}

func TestDatadogAPMIsFlatPerHost(t *testing.T) {
	table := pricing.Defaults()
	traffic := defaultTraffic(10_000)

	without := monitoringCost(table, types.MonitoringConfig{Provider: "datadog"}, 4, traffic, map[string]string{})
	with := monitoringCost(table, types.MonitoringConfig{Provider: "datadog", APMEnabled: true}, 4, traffic, map[string]string{})

	if !almostEqual(with-without, 4*datadogAPMPerHost) {
		t.Errorf("APM surcharge: got %f, want %f", with-without, 4*datadogAPMPerHost)
	}
}

func TestMonitoringScalesWithInstanceCount(t *testing.T) {
	table := pricing.Defaults()
	traffic := defaultTraffic(10_000)
	cfg := types.MonitoringConfig{Provider: "cloudwatch"}

	one := monitoringCost(table, cfg, 1, traffic, map[string]string{})
	ten := monitoringCost(table, cfg, 10, traffic, map[string]string{})
	if !almostEqual(ten, one*10) {
		t.Errorf("cloudwatch cost must be linear in hosts: %f vs %f", ten, one*10)
	}
}

func TestCICDAssumesTenMinuteBuilds(t *testing.T) {
	table := pricing.Defaults()
	cfg := types.CICDConfig{Provider: "github_actions", BuildsPerMonth: 300}
	got := cicdCost(table, cfg, map[string]string{})

	want := 300.0 * 10 * 0.008
	if !almostEqual(got, want) {
		t.Errorf("got %f, want %f", got, want)
	}
}

func TestCICDFixedSizeAddOns(t *testing.T) {
	table := pricing.Defaults()
	cfg := types.CICDConfig{ContainerRegistry: true, SecurityScanning: true, ArtifactStorageGB: 100}
	got := cicdCost(table, cfg, map[string]string{})

	want := 50*0.10 + 5*21.0 + 100*0.023
	if !almostEqual(got, want) {
		t.Errorf("got %f, want %f", got, want)
	}
}

func TestMultiRegionPricesAgainstBaseTotal(t *testing.T) {
	table := pricing.Defaults()

	cfg := types.MultiRegionConfig{Enabled: true, Regions: 3, ReplicationType: "active_passive", CrossRegionTransferGB: 100}
	got := multiRegionCost(table, cfg, 1000.0, map[string]string{})

	want := 1000.0*0.75*2 + 100*0.02
	if !almostEqual(got, want) {
		t.Errorf("got %f, want %f", got, want)
	}
}

func TestActiveActiveAddsOverheadToWholeBlock(t *testing.T) {
	table := pricing.Defaults()

	cfg := types.MultiRegionConfig{Enabled: true, Regions: 2, ReplicationType: "active_active", CrossRegionTransferGB: 50}
	got := multiRegionCost(table, cfg, 1000.0, map[string]string{})

	// Overhead multiplies replication and transfer alike
	want := (1000.0*0.75 + 50*0.02) * 1.3
	if !almostEqual(got, want) {
		t.Errorf("got %f, want %f", got, want)
	}
}

func TestSingleRegionCostsNothing(t *testing.T) {
	table := pricing.Defaults()
	for _, cfg := range []types.MultiRegionConfig{
		{Enabled: false, Regions: 5},
		{Enabled: true, Regions: 1},
		{Enabled: true, Regions: 0},
	} {
		if got := multiRegionCost(table, cfg, 1000.0, map[string]string{}); got != 0 {
			t.Errorf("config %+v must cost nothing, got %f", cfg, got)
		}
	}
}
