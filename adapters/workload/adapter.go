// Package workload loads workload definition files: an HCL description of the
// architecture, expected traffic and optional feature blocks, used by the CLI
// so estimates can live next to the infrastructure code they describe.
package workload

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"archcost/core/types"
	"archcost/internal/errors"
)

// Definition is a parsed workload file
type Definition struct {
	Architecture types.Architecture
	Traffic      types.TrafficInput
	Currency     string
}

type workloadFile struct {
	Workload workloadBlock `hcl:"workload,block"`
}

type workloadBlock struct {
	Architecture string  `hcl:"architecture"`
	Currency     *string `hcl:"currency"`

	Traffic     *trafficBlock     `hcl:"traffic,block"`
	Database    *databaseBlock    `hcl:"database,block"`
	CDN         *cdnBlock         `hcl:"cdn,block"`
	Messaging   *messagingBlock   `hcl:"messaging,block"`
	Security    *securityBlock    `hcl:"security,block"`
	Monitoring  *monitoringBlock  `hcl:"monitoring,block"`
	CICD        *cicdBlock        `hcl:"cicd,block"`
	MultiRegion *multiRegionBlock `hcl:"multi_region,block"`
}

type trafficBlock struct {
	DailyActiveUsers      int      `hcl:"daily_active_users"`
	APIRequestsPerUser    *int     `hcl:"api_requests_per_user"`
	StoragePerUserMB      *float64 `hcl:"storage_per_user_mb"`
	PeakTrafficMultiplier *float64 `hcl:"peak_traffic_multiplier"`
	GrowthRateYoY         *float64 `hcl:"growth_rate_yoy"`
	RevenuePerUserMonthly *float64 `hcl:"revenue_per_user_monthly"`
	FundingAvailable      *float64 `hcl:"funding_available"`
}

type databaseBlock struct {
	ReadReplicas  *int     `hcl:"read_replicas"`
	MultiAZ       *bool    `hcl:"multi_az"`
	BackupEnabled *bool    `hcl:"backup_enabled"`
	CacheType     *string  `hcl:"cache_type"`
	CacheSizeGB   *float64 `hcl:"cache_size_gb"`
}

type cdnBlock struct {
	Enabled        bool     `hcl:"enabled"`
	Provider       *string  `hcl:"provider"`
	DataTransferGB *float64 `hcl:"data_transfer_gb"`
	EdgeFunctions  *bool    `hcl:"edge_functions"`
	VideoStreaming *bool    `hcl:"video_streaming"`
}

type messagingBlock struct {
	Enabled        bool    `hcl:"enabled"`
	Type           *string `hcl:"type"`
	MessagesPerDay *int    `hcl:"messages_per_day"`
	DLQEnabled     *bool   `hcl:"dlq_enabled"`
}

type securityBlock struct {
	WAFEnabled      *bool     `hcl:"waf_enabled"`
	VPNEnabled      *bool     `hcl:"vpn_enabled"`
	DDoSProtection  *bool     `hcl:"ddos_protection"`
	SSLCertificates *int      `hcl:"ssl_certificates"`
	SecretsManager  *bool     `hcl:"secrets_manager"`
	Compliance      *[]string `hcl:"compliance"`
}

type monitoringBlock struct {
	Provider           *string `hcl:"provider"`
	APMEnabled         *bool   `hcl:"apm_enabled"`
	DistributedTracing *bool   `hcl:"distributed_tracing"`
}

type cicdBlock struct {
	Provider          *string  `hcl:"provider"`
	BuildsPerMonth    *int     `hcl:"builds_per_month"`
	ContainerRegistry *bool    `hcl:"container_registry"`
	SecurityScanning  *bool    `hcl:"security_scanning"`
	ArtifactStorageGB *float64 `hcl:"artifact_storage_gb"`
}

type multiRegionBlock struct {
	Enabled               bool     `hcl:"enabled"`
	Regions               *int     `hcl:"regions"`
	ReplicationType       *string  `hcl:"replication_type"`
	CrossRegionTransferGB *float64 `hcl:"cross_region_transfer_gb"`
}

// Load reads and parses a workload definition file. Omitted attributes take
// the documented defaults, same as a partial API request.
func Load(path string) (*Definition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "failed to read workload file", err)
	}
	return Parse(src, path)
}

// Parse parses workload HCL source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeInput, "invalid workload file", diags)
	}

	var raw workloadFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeInput, "invalid workload definition", diags)
	}

	arch := types.Architecture(raw.Workload.Architecture)
	if !arch.Valid() {
		return nil, errors.Newf(errors.TypeInput,
			"unknown architecture %q, expected one of: monolith, microservices, serverless, hybrid",
			raw.Workload.Architecture)
	}

	def := &Definition{
		Architecture: arch,
		Traffic:      types.DefaultTraffic(),
		Currency:     "USD",
	}
	if raw.Workload.Currency != nil {
		def.Currency = *raw.Workload.Currency
	}
	applyBlocks(&def.Traffic, &raw.Workload)

	if def.Traffic.DailyActiveUsers <= 0 {
		return nil, errors.Input("traffic block with daily_active_users > 0 is required")
	}
	return def, nil
}

// applyBlocks overlays the parsed blocks onto the default traffic input
func applyBlocks(t *types.TrafficInput, w *workloadBlock) {
	if tb := w.Traffic; tb != nil {
		t.DailyActiveUsers = tb.DailyActiveUsers
		setInt(&t.APIRequestsPerUser, tb.APIRequestsPerUser)
		setFloat(&t.StoragePerUserMB, tb.StoragePerUserMB)
		setFloat(&t.PeakTrafficMultiplier, tb.PeakTrafficMultiplier)
		setFloat(&t.GrowthRateYoY, tb.GrowthRateYoY)
		setFloat(&t.RevenuePerUserMonthly, tb.RevenuePerUserMonthly)
		setFloat(&t.FundingAvailable, tb.FundingAvailable)
	}
	if db := w.Database; db != nil {
		setInt(&t.Database.ReadReplicas, db.ReadReplicas)
		setBool(&t.Database.MultiAZ, db.MultiAZ)
		setBool(&t.Database.BackupEnabled, db.BackupEnabled)
		setString(&t.Database.CacheType, db.CacheType)
		setFloat(&t.Database.CacheSizeGB, db.CacheSizeGB)
	}
	if c := w.CDN; c != nil {
		t.CDN.Enabled = c.Enabled
		setString(&t.CDN.Provider, c.Provider)
		setFloat(&t.CDN.DataTransferGB, c.DataTransferGB)
		setBool(&t.CDN.EdgeFunctions, c.EdgeFunctions)
		setBool(&t.CDN.VideoStreaming, c.VideoStreaming)
	}
	if m := w.Messaging; m != nil {
		t.Messaging.Enabled = m.Enabled
		setString(&t.Messaging.Type, m.Type)
		setInt(&t.Messaging.MessagesPerDay, m.MessagesPerDay)
		setBool(&t.Messaging.DLQEnabled, m.DLQEnabled)
	}
	if sec := w.Security; sec != nil {
		setBool(&t.Security.WAFEnabled, sec.WAFEnabled)
		setBool(&t.Security.VPNEnabled, sec.VPNEnabled)
		setBool(&t.Security.DDoSProtection, sec.DDoSProtection)
		setInt(&t.Security.SSLCertificates, sec.SSLCertificates)
		setBool(&t.Security.SecretsManager, sec.SecretsManager)
		if sec.Compliance != nil {
			t.Security.Compliance = *sec.Compliance
		}
	}
	if mon := w.Monitoring; mon != nil {
		setString(&t.Monitoring.Provider, mon.Provider)
		setBool(&t.Monitoring.APMEnabled, mon.APMEnabled)
		setBool(&t.Monitoring.DistributedTracing, mon.DistributedTracing)
	}
	if ci := w.CICD; ci != nil {
		setString(&t.CICD.Provider, ci.Provider)
		setInt(&t.CICD.BuildsPerMonth, ci.BuildsPerMonth)
		setBool(&t.CICD.ContainerRegistry, ci.ContainerRegistry)
		setBool(&t.CICD.SecurityScanning, ci.SecurityScanning)
		setFloat(&t.CICD.ArtifactStorageGB, ci.ArtifactStorageGB)
	}
	if mr := w.MultiRegion; mr != nil {
		t.MultiRegion.Enabled = mr.Enabled
		setInt(&t.MultiRegion.Regions, mr.Regions)
		setString(&t.MultiRegion.ReplicationType, mr.ReplicationType)
		setFloat(&t.MultiRegion.CrossRegionTransferGB, mr.CrossRegionTransferGB)
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
