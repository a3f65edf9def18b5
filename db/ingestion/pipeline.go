// Package ingestion - Refresh pipeline.
// fetch → build snapshot → archive previous → commit → publish. Failure at
// any phase leaves the active price table untouched and is recorded in the
// job status, never raised into in-flight estimations.
package ingestion

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"archcost/core/pricing"
	"archcost/internal/errors"
	"archcost/internal/logging"
)

// hoursPerMonth converts hourly list prices to monthly SKU prices
const hoursPerMonth = 730

// fallbackBaselineHourly is the assumed t3.medium hourly price when the AWS
// feed is unavailable
const fallbackBaselineHourly = 0.0416

// fallbackCurrencyRates covers the majors when the rates feed is unavailable
var fallbackCurrencyRates = map[string]float64{
	"USD": 1.0, "INR": 84.0, "EUR": 0.92, "GBP": 0.79,
	"JPY": 150.0, "CNY": 7.2, "AUD": 1.52,
}

// JobStatus records the outcome of the last refresh run for observability
type JobStatus struct {
	// RunID identifies the run
	RunID string `json:"run_id,omitempty"`

	// LastRun is when the run finished
	LastRun time.Time `json:"last_run"`

	// Status is "success", "failed" or "never_run"
	Status string `json:"status"`

	// Error holds the failure reason when Status is "failed"
	Error string `json:"error,omitempty"`

	// DurationSeconds is the wall time of the run
	DurationSeconds float64 `json:"duration_seconds"`

	// SourcesFetched counts upstream feeds that answered
	SourcesFetched int `json:"sources_fetched"`

	// CurrenciesUpdated counts currency rates in the applied snapshot
	CurrenciesUpdated int `json:"currencies_updated"`

	// ComputeItems and DatabaseItems count refreshed SKU prices
	ComputeItems  int `json:"compute_items"`
	DatabaseItems int `json:"database_items"`
}

// Notifier receives refresh failure notifications. Optional.
type Notifier interface {
	RefreshFailed(ctx context.Context, runErr error)
}

// Pipeline runs one refresh end to end
type Pipeline struct {
	fetcher  *Fetcher
	service  *pricing.Service
	store    *pricing.Store
	notifier Notifier

	mu     sync.Mutex
	status JobStatus
}

// NewPipeline creates a refresh pipeline. store and notifier may be nil
// (no archival, no failure mail).
func NewPipeline(fetcher *Fetcher, service *pricing.Service, store *pricing.Store) *Pipeline {
	return &Pipeline{
		fetcher: fetcher,
		service: service,
		store:   store,
		status:  JobStatus{Status: "never_run"},
	}
}

// WithNotifier attaches a failure notifier
func (p *Pipeline) WithNotifier(n Notifier) *Pipeline {
	p.notifier = n
	return p
}

// Status returns the last recorded job status
func (p *Pipeline) Status() JobStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Run executes one refresh. Per-source fetch failures degrade to fallback
// values; the run only fails when the snapshot cannot be committed.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	runID := uuid.NewString()
	logging.Info("starting scheduled multi-cloud price fetch", zap.String("run_id", runID))

	snap, sourcesFetched, fetchErrs := p.buildSnapshot(ctx)
	if fetchErrs != nil {
		logging.Warn("some pricing sources failed, using fallbacks",
			zap.String("run_id", runID),
			zap.Error(fetchErrs),
		)
	}

	if err := p.commit(snap); err != nil {
		p.record(JobStatus{
			RunID:           runID,
			LastRun:         time.Now().UTC(),
			Status:          "failed",
			Error:           err.Error(),
			DurationSeconds: time.Since(start).Seconds(),
			SourcesFetched:  sourcesFetched,
		})
		logging.Error("price refresh failed", zap.String("run_id", runID), zap.Error(err))
		if p.notifier != nil {
			p.notifier.RefreshFailed(ctx, err)
		}
		return err
	}

	p.service.Apply(snap)

	status := JobStatus{
		RunID:             runID,
		LastRun:           time.Now().UTC(),
		Status:            "success",
		DurationSeconds:   time.Since(start).Seconds(),
		SourcesFetched:    sourcesFetched,
		CurrenciesUpdated: len(snap.CurrencyRates),
		ComputeItems:      len(snap.Categories["compute"]),
		DatabaseItems:     len(snap.Categories["database"]),
	}
	p.record(status)

	logging.Info("price refresh completed",
		zap.String("run_id", runID),
		zap.Int("sources_fetched", sourcesFetched),
		zap.Int("currencies_updated", status.CurrenciesUpdated),
		zap.Float64("duration_seconds", status.DurationSeconds),
	)
	return nil
}

// buildSnapshot fetches all sources and derives the snapshot. Each failed
// source contributes its fallback and an aggregated error for the log.
func (p *Pipeline) buildSnapshot(ctx context.Context) (*pricing.Snapshot, int, error) {
	var fetchErrs error
	sources := []string{}

	baseline, err := p.fetcher.AWSBaselineHourly(ctx)
	if err != nil || baseline <= 0 {
		fetchErrs = multierr.Append(fetchErrs, err)
		baseline = fallbackBaselineHourly
	} else {
		sources = append(sources, "AWS")
	}

	azureMultiplier := 1.05
	if azureHourly, err := p.fetcher.AzureHourly(ctx); err != nil {
		fetchErrs = multierr.Append(fetchErrs, err)
	} else if azureHourly > 0 {
		azureMultiplier = azureHourly / baseline
		sources = append(sources, "Azure")
	}

	gcpMultiplier := 0.95
	if gcpHourly, err := p.fetcher.GCPHourly(ctx); err == nil && gcpHourly > 0 {
		gcpMultiplier = gcpHourly / baseline
	}

	rates, err := p.fetcher.CurrencyRates(ctx)
	if err != nil || len(rates) == 0 {
		fetchErrs = multierr.Append(fetchErrs, err)
		rates = fallbackCurrencyRates
	} else {
		sources = append(sources, "ExchangeRate-API")
	}

	snap := &pricing.Snapshot{
		Categories: map[string]map[string]float64{
			"compute": {
				"t3.micro":  baseline * 0.25 * hoursPerMonth,
				"t3.medium": baseline * hoursPerMonth,
				"t3.large":  baseline * 2 * hoursPerMonth,
			},
			"database": {
				"rds_db.t3.micro":  baseline * 0.3 * hoursPerMonth,
				"rds_db.t3.medium": baseline * 1.5 * hoursPerMonth,
			},
		},
		CurrencyRates: rates,
		CloudMultipliers: map[string]float64{
			"AWS":          1.0,
			"Azure":        azureMultiplier,
			"GCP":          gcpMultiplier,
			"DigitalOcean": 0.60,
		},
		Meta: pricing.Meta{
			UpdatedAt: time.Now().UTC(),
			Sources:   sources,
		},
	}

	return snap, len(sources), fetchErrs
}

// commit archives the previous snapshot and persists the new one
func (p *Pipeline) commit(snap *pricing.Snapshot) error {
	if p.store == nil {
		return nil
	}
	if err := p.store.Commit(snap); err != nil {
		return errors.Wrap(errors.TypePricing, "snapshot commit failed", err)
	}
	return nil
}

func (p *Pipeline) record(status JobStatus) {
	p.mu.Lock()
	p.status = status
	p.mu.Unlock()
}
