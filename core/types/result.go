// Package types - Estimation result types
package types

// CostComponent is the monthly cost breakdown by category, expressed in the
// requested display currency. Total is the converted USD grand total, not the
// sum of the converted parts, so per-field rounding never drifts the total.
type CostComponent struct {
	Compute     float64 `json:"compute"`
	Database    float64 `json:"database"`
	Storage     float64 `json:"storage"`
	Networking  float64 `json:"networking"`
	CDN         float64 `json:"cdn"`
	Messaging   float64 `json:"messaging"`
	Security    float64 `json:"security"`
	Monitoring  float64 `json:"monitoring"`
	CICD        float64 `json:"cicd"`
	MultiRegion float64 `json:"multi_region"`
	Total       float64 `json:"total"`
}

// Suggestion is a single cost optimization recommendation
type Suggestion struct {
	// Title names the optimization
	Title string `json:"title"`

	// Saving is the currency-formatted estimated monthly saving
	Saving string `json:"saving"`

	// Description explains the tradeoff
	Description string `json:"description"`
}

// EstimationResult is the full output of one estimation run.
// Created fresh per request; never persisted.
type EstimationResult struct {
	// Architecture echoes the requested architecture
	Architecture Architecture `json:"architecture"`

	// TrafficInput echoes the validated input
	TrafficInput TrafficInput `json:"traffic_input"`

	// Currency is the display currency of all monetary fields
	Currency string `json:"currency"`

	// MonthlyCost is the per-category breakdown
	MonthlyCost CostComponent `json:"monthly_cost"`

	// YearlyCost is MonthlyCost.Total * 12
	YearlyCost float64 `json:"yearly_cost"`

	// ThreeYearProjection compounds YearlyCost by the growth rate
	ThreeYearProjection map[string]float64 `json:"three_year_projection"`

	// InfrastructureRequirements maps requirement labels to sizing strings
	InfrastructureRequirements map[string]string `json:"infrastructure_requirements"`

	// MultiCloudCosts maps provider name to the equivalent monthly total
	MultiCloudCosts map[string]float64 `json:"multi_cloud_costs"`

	// ScalingScenarios maps target user counts to projected monthly totals
	ScalingScenarios map[string]float64 `json:"scaling_scenarios"`

	// OptimizationSuggestions lists triggered savings recommendations
	OptimizationSuggestions []Suggestion `json:"optimization_suggestions"`

	// BusinessMetrics holds formatted cost-per-user, runway and revenue ratios
	BusinessMetrics map[string]string `json:"business_metrics"`
}
