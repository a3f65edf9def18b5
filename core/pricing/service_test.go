// Package pricing - Service publication tests
package pricing

import (
	"sync"
	"testing"
)

func TestApplyPublishesNewTableAtomically(t *testing.T) {
	service := NewService()
	before := service.Current()

	snap := &Snapshot{
		Categories: map[string]map[string]float64{"compute": {"t3.medium": 42.0}},
	}
	after := service.Apply(snap)

	if service.Current() != after {
		t.Error("Apply must publish the returned table")
	}
	if after.Price("compute", "t3.medium") != 42.0 {
		t.Error("applied snapshot not visible in the new table")
	}
	if before.Price("compute", "t3.medium") == 42.0 {
		t.Error("previously published table must stay unchanged")
	}
}

func TestApplyNilSnapshotIsNoOp(t *testing.T) {
	service := NewService()
	before := service.Current()
	if got := service.Apply(nil); got != before {
		t.Error("nil snapshot must not publish a new table")
	}
}

func TestResetToDefaultsDiscardsRefreshedData(t *testing.T) {
	service := NewService()
	service.Apply(&Snapshot{
		Categories: map[string]map[string]float64{"compute": {"t3.medium": 42.0}},
	})

	reset := service.ResetToDefaults()
	if reset.Price("compute", "t3.medium") != Defaults().Price("compute", "t3.medium") {
		t.Error("reset table must match the compiled-in defaults")
	}
}

func TestConcurrentReadersSeeConsistentTables(t *testing.T) {
	service := NewService()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				table := service.Current()
				// A table always has both or neither of an update's items
				a := table.Price("compute", "t3.medium")
				b := table.Price("compute", "t3.micro")
				if (a == 1.0) != (b == 2.0) {
					t.Error("observed a partially applied snapshot")
					return
				}
			}
		}()
	}
	for j := 0; j < 50; j++ {
		service.Apply(&Snapshot{
			Categories: map[string]map[string]float64{
				"compute": {"t3.medium": 1.0, "t3.micro": 2.0},
			},
		})
		service.ResetToDefaults()
	}
	wg.Wait()
}
