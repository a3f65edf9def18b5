// Package estimate - Architecture sizing tests
package estimate

import (
	"strings"
	"testing"

	"archcost/core/pricing"
	"archcost/core/types"
)

func TestMonolithSizingUsesFloorPlusOne(t *testing.T) {
	table := pricing.Defaults()

	// DAU chosen so peak RPS is exactly 80.0: 80/40 = 2.0, which sizes to
	// 3 instances (floor + 1 headroom), not 2.
	traffic := defaultTraffic(92_160)
	reqs := map[string]string{}
	base := sizeArchitecture(table, types.ArchMonolith, traffic, reqs)

	wantInstances := 3
	if !almostEqual(base.computeCost, float64(wantInstances)*30.40) {
		t.Errorf("compute: got %f, want %f", base.computeCost, float64(wantInstances)*30.40)
	}
	if base.instances != wantInstances {
		t.Errorf("instances: got %d, want %d", base.instances, wantInstances)
	}
	if reqs["Compute"] != "3x t3.medium EC2 (Peak RPS: 80.0)" {
		t.Errorf("unexpected compute requirement: %q", reqs["Compute"])
	}
}

func TestMonolithSizingIsMonotoneInUsers(t *testing.T) {
	table := pricing.Defaults()
	prev := 0.0
	for _, users := range []int{100, 10_000, 100_000, 1_000_000, 10_000_000} {
		base := sizeArchitecture(table, types.ArchMonolith, defaultTraffic(users), map[string]string{})
		if base.computeCost < prev {
			t.Errorf("compute cost decreased at %d users: %f < %f", users, base.computeCost, prev)
		}
		prev = base.computeCost
	}
}

func TestMonolithMinimumIsOneInstance(t *testing.T) {
	table := pricing.Defaults()
	base := sizeArchitecture(table, types.ArchMonolith, defaultTraffic(1), map[string]string{})
	if base.instances != 1 {
		t.Errorf("tiny workloads must still get one instance, got %d", base.instances)
	}
}

func TestMicroservicesScaleInStepsOfFiveServices(t *testing.T) {
	table := pricing.Defaults()

	small := sizeArchitecture(table, types.ArchMicroservices, defaultTraffic(40_000), map[string]string{})
	if small.instances != 5 {
		t.Errorf("below 50k users each service runs one instance, got %d", small.instances)
	}

	big := sizeArchitecture(table, types.ArchMicroservices, defaultTraffic(150_000), map[string]string{})
	if big.instances != 15 {
		t.Errorf("150k users must size to 5 services * 3 instances, got %d", big.instances)
	}
}

func TestServerlessPricesPerMillionInvocations(t *testing.T) {
	table := pricing.Defaults()
	traffic := defaultTraffic(100_000) // 100k * 50 * 30 = 150M invocations/mo

	reqs := map[string]string{}
	base := sizeArchitecture(table, types.ArchServerless, traffic, reqs)

	if !almostEqual(base.computeCost, 150.0*0.20) {
		t.Errorf("compute: got %f, want %f", base.computeCost, 150.0*0.20)
	}
	if base.instances != 150 {
		t.Errorf("instance equivalents must be millions of invocations, got %d", base.instances)
	}
	if !strings.Contains(reqs["Compute"], "150,000,000") {
		t.Errorf("invocation count must be grouped with thousands separators: %q", reqs["Compute"])
	}
}

func TestServerlessMinimumInstanceEquivalentIsOne(t *testing.T) {
	table := pricing.Defaults()
	traffic := defaultTraffic(10) // 15k invocations/mo, well under a million
	base := sizeArchitecture(table, types.ArchServerless, traffic, map[string]string{})
	if base.instances != 1 {
		t.Errorf("instance equivalents must floor at 1, got %d", base.instances)
	}
}

func TestHybridSizesByUsers(t *testing.T) {
	table := pricing.Defaults()
	base := sizeArchitecture(table, types.ArchHybrid, defaultTraffic(100_000), map[string]string{})
	if base.instances != 5 {
		t.Errorf("100k users / 20k per instance = 5, got %d", base.instances)
	}
	if !almostEqual(base.computeCost, 5*30.40) {
		t.Errorf("compute: got %f, want %f", base.computeCost, 5*30.40)
	}
}
