// Package types holds the domain model for cost estimation:
// architecture selection, traffic input and the optional feature blocks.
package types

// Architecture selects the deployment model being priced
type Architecture string

const (
	// ArchMonolith is a single scaled application tier
	ArchMonolith Architecture = "monolith"

	// ArchMicroservices is a fixed set of independently scaled services
	ArchMicroservices Architecture = "microservices"

	// ArchServerless is function-per-request pricing
	ArchServerless Architecture = "serverless"

	// ArchHybrid mixes monolith and service workloads
	ArchHybrid Architecture = "hybrid"
)

// String returns the string representation
func (a Architecture) String() string {
	return string(a)
}

// Valid reports whether the architecture is one of the known values
func (a Architecture) Valid() bool {
	switch a {
	case ArchMonolith, ArchMicroservices, ArchServerless, ArchHybrid:
		return true
	}
	return false
}

// TrafficInput describes the expected application traffic and the optional
// infrastructure feature blocks. Immutable once validated.
type TrafficInput struct {
	// DailyActiveUsers is the primary scale driver
	DailyActiveUsers int `json:"daily_active_users" validate:"gt=0,lte=1000000000"`

	// APIRequestsPerUser is the average requests per user per day
	APIRequestsPerUser int `json:"api_requests_per_user" validate:"gte=0"`

	// StoragePerUserMB is stored data per user in MB
	StoragePerUserMB float64 `json:"storage_per_user_mb" validate:"gte=0"`

	// PeakTrafficMultiplier scales average RPS to peak RPS
	PeakTrafficMultiplier float64 `json:"peak_traffic_multiplier" validate:"gte=1,lte=10"`

	// GrowthRateYoY is the year-over-year traffic growth rate
	GrowthRateYoY float64 `json:"growth_rate_yoy" validate:"gte=-1,lte=10"`

	// RevenuePerUserMonthly is optional revenue input, USD
	RevenuePerUserMonthly float64 `json:"revenue_per_user_monthly" validate:"gte=0"`

	// FundingAvailable is optional total funding, USD
	FundingAvailable float64 `json:"funding_available" validate:"gte=0"`

	Database    DatabaseConfig    `json:"database"`
	CDN         CDNConfig         `json:"cdn"`
	Messaging   MessagingConfig   `json:"messaging"`
	Security    SecurityConfig    `json:"security"`
	Monitoring  MonitoringConfig  `json:"monitoring"`
	CICD        CICDConfig        `json:"cicd"`
	MultiRegion MultiRegionConfig `json:"multi_region"`
}

// DatabaseConfig describes database add-ons layered onto the
// architecture-derived base database cost.
type DatabaseConfig struct {
	// ReadReplicas is the number of read replicas
	ReadReplicas int `json:"read_replicas" validate:"gte=0,lte=15"`

	// MultiAZ doubles the database cost for HA
	MultiAZ bool `json:"multi_az"`

	// BackupEnabled adds backup storage sized at 20% of total data
	BackupEnabled bool `json:"backup_enabled"`

	// CacheType is the cache engine (redis, memcached); empty disables caching
	CacheType string `json:"cache_type" validate:"omitempty,oneof=redis memcached"`

	// CacheSizeGB selects the cache node size bucket
	CacheSizeGB float64 `json:"cache_size_gb" validate:"gte=0"`
}

// CDNConfig describes the content delivery feature block
type CDNConfig struct {
	Enabled bool `json:"enabled"`

	// Provider is the CDN vendor
	Provider string `json:"provider" validate:"omitempty,oneof=cloudfront cloudflare fastly"`

	// DataTransferGB is monthly CDN egress
	DataTransferGB float64 `json:"data_transfer_gb" validate:"gte=0"`

	// EdgeFunctions enables edge compute pricing
	EdgeFunctions bool `json:"edge_functions"`

	// VideoStreaming applies the streaming cost multiplier
	VideoStreaming bool `json:"video_streaming"`
}

// MessagingConfig describes the message queue feature block
type MessagingConfig struct {
	Enabled bool `json:"enabled"`

	// Type is the queue technology
	Type string `json:"type" validate:"omitempty,oneof=sqs kafka rabbitmq kinesis"`

	// MessagesPerDay is the expected daily message volume
	MessagesPerDay int `json:"messages_per_day" validate:"gte=0"`

	// DLQEnabled adds a dead letter queue (no cost, requirement only)
	DLQEnabled bool `json:"dlq_enabled"`
}

// SecurityConfig describes the security feature block
type SecurityConfig struct {
	WAFEnabled     bool `json:"waf_enabled"`
	VPNEnabled     bool `json:"vpn_enabled"`
	DDoSProtection bool `json:"ddos_protection"`

	// SSLCertificates is the certificate count (free via ACM, annotated only)
	SSLCertificates int `json:"ssl_certificates" validate:"gte=0"`

	// SecretsManager assumes a fixed fleet of 20 secrets
	SecretsManager bool `json:"secrets_manager"`

	// Compliance lists standards; recognized: soc2, iso27001, hipaa, pci_dss
	Compliance []string `json:"compliance"`
}

// MonitoringConfig describes the observability feature block
type MonitoringConfig struct {
	// Provider is the monitoring vendor
	Provider string `json:"provider" validate:"omitempty,oneof=cloudwatch datadog newrelic"`

	// APMEnabled adds application performance monitoring
	APMEnabled bool `json:"apm_enabled"`

	// DistributedTracing adds request-volume-scaled tracing cost
	DistributedTracing bool `json:"distributed_tracing"`
}

// CICDConfig describes the build pipeline feature block
type CICDConfig struct {
	// Provider is the CI/CD vendor
	Provider string `json:"provider" validate:"omitempty,oneof=github_actions gitlab_ci jenkins"`

	// BuildsPerMonth at an assumed 10 minutes per build
	BuildsPerMonth int `json:"builds_per_month" validate:"gte=0"`

	// ContainerRegistry assumes a fixed 50 GB image footprint
	ContainerRegistry bool `json:"container_registry"`

	// SecurityScanning assumes 5 active users
	SecurityScanning bool `json:"security_scanning"`

	// ArtifactStorageGB is linear artifact storage
	ArtifactStorageGB float64 `json:"artifact_storage_gb" validate:"gte=0"`
}

// MultiRegionConfig describes the multi-region feature block
type MultiRegionConfig struct {
	Enabled bool `json:"enabled"`

	// Regions is the total region count including the primary
	Regions int `json:"regions" validate:"gte=0,lte=25"`

	// ReplicationType is active_passive or active_active
	ReplicationType string `json:"replication_type" validate:"omitempty,oneof=active_passive active_active"`

	// CrossRegionTransferGB is monthly cross-region egress
	CrossRegionTransferGB float64 `json:"cross_region_transfer_gb" validate:"gte=0"`
}

// DefaultTraffic returns a TrafficInput pre-populated with the documented
// field defaults. JSON decoding on top of it leaves omitted fields at these
// values, so partial requests behave like the original API.
func DefaultTraffic() TrafficInput {
	return TrafficInput{
		APIRequestsPerUser:    50,
		StoragePerUserMB:      0.1,
		PeakTrafficMultiplier: 1.5,
		GrowthRateYoY:         0.2,
		Monitoring:            MonitoringConfig{Provider: "cloudwatch"},
		CDN:                   CDNConfig{Provider: "cloudfront"},
		MultiRegion:           MultiRegionConfig{Regions: 1, ReplicationType: "active_passive"},
	}
}
