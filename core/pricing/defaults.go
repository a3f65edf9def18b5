// Package pricing - Compiled-in default prices.
// Real-world approximations (AWS us-east-1, 2025). These are the baseline a
// refresh overlays onto; the system never runs with an empty table.
package pricing

// defaultPrices is the static USD price table
var defaultPrices = map[string]map[string]float64{
	"compute": {
		"t3.micro":           7.50,  // ~$0.0104/hr * 730
		"t3.medium":          30.40, // ~$0.0416/hr * 730
		"t3.large":           60.80, // ~$0.0832/hr * 730
		"lambda_1m_requests": 0.20,
		"fargate_vcpu":       29.0, // ~$0.04/vCPU/hr
	},
	"database": {
		"rds_db.t3.micro":  12.0, // instance + storage
		"rds_db.t3.medium": 60.0, // ~$0.082/hr
		"dynamodb_unit":    0.25, // WCU/RCU blended estimate
		"read_replica":     30.0,
		"backup_gb":        0.095,
	},
	"storage": {
		"s3_gb":  0.023,
		"ebs_gb": 0.10,
	},
	"networking": {
		"load_balancer":    16.20, // ALB minimum ~$0.0225/hr
		"data_transfer_gb": 0.09,
	},
	"cache": {
		"redis_t4g_micro":      11.50,
		"redis_t4g_small":      23.00,
		"redis_t4g_medium":     46.00,
		"memcached_t4g_micro":  11.50,
		"memcached_t4g_small":  23.00,
		"memcached_t4g_medium": 46.00,
	},
	"cdn": {
		"cloudfront_gb":               0.085,
		"cloudflare_gb":               0.045,
		"fastly_gb":                   0.12,
		"cloudfront_edge_function_1m": 0.60,
		"cloudflare_edge_function_1m": 0.50,
		"fastly_edge_function_1m":     0.75,
		"video_streaming_multiplier":  1.5,
	},
	"messaging": {
		"sqs_1m_requests":   0.40,
		"kafka_broker":      150.0, // MSK kafka.m5.large equivalent
		"rabbitmq_m5_large": 70.0,
		"kinesis_shard":     10.95, // $0.015/shard-hr
	},
	"security": {
		"waf_rule":               1.00,
		"waf_request_1m":         0.60,
		"vpn_connection":         36.00, // $0.05/hr site-to-site
		"shield_advanced":        3000.0,
		"secrets_manager_secret": 0.40,
		"soc2_monthly":           1250.0, // audit cost amortized
		"iso27001_monthly":       1000.0,
		"hipaa_monthly":          1500.0,
		"pci_dss_monthly":        2000.0,
	},
	"monitoring": {
		"cloudwatch_metric": 0.30,
		"cloudwatch_log_gb": 0.50,
		"datadog_host":      15.0,
		"newrelic_host":     25.0,
		"newrelic_apm_host": 75.0,
		"xray_trace_1m":     5.00,
	},
	"cicd": {
		"github_actions_linux_minute": 0.008,
		"gitlab_ci_minute":            0.01,
		"jenkins_m5_large":            70.0, // self-hosted controller
		"ecr_storage_gb":              0.10,
		"code_scanning_user":          21.0,
		"artifact_storage_gb":         0.023,
	},
	"replication": {
		"region_multiplier": 0.75, // fraction of base infra per extra region
		"cross_region_gb":   0.02,
	},
}

// defaultCurrencyRates maps currency code to the multiplier against USD
var defaultCurrencyRates = map[string]float64{
	// Americas
	"USD": 1.0,
	"CAD": 1.35,
	"MXN": 17.0,
	"BRL": 5.0,
	"ARS": 350.0,
	"CLP": 900.0,
	"COP": 4000.0,
	"PEN": 3.7,

	// Europe
	"EUR": 0.92,
	"GBP": 0.79,
	"CHF": 0.88,
	"SEK": 10.5,
	"NOK": 10.8,
	"DKK": 6.9,
	"PLN": 4.0,
	"CZK": 23.0,
	"HUF": 360.0,
	"RON": 4.6,
	"BGN": 1.8,
	"HRK": 6.9,
	"TRY": 32.0,
	"RUB": 92.0,

	// Asia-Pacific
	"INR": 84.0,
	"JPY": 150.0,
	"CNY": 7.2,
	"KRW": 1320.0,
	"SGD": 1.34,
	"HKD": 7.8,
	"TWD": 31.5,
	"THB": 35.0,
	"MYR": 4.5,
	"IDR": 15700.0,
	"PHP": 56.0,
	"VND": 24500.0,
	"PKR": 278.0,
	"BDT": 110.0,
	"LKR": 305.0,
	"AUD": 1.52,
	"NZD": 1.68,

	// Middle East & Africa
	"AED": 3.67,
	"SAR": 3.75,
	"QAR": 3.64,
	"KWD": 0.31,
	"BHD": 0.38,
	"ILS": 3.65,
	"EGP": 49.0,
	"ZAR": 18.5,
	"NGN": 1550.0,
	"KES": 129.0,
}

// currencySymbols maps currency code to its display symbol
var currencySymbols = map[string]string{
	// Americas
	"USD": "$",
	"CAD": "C$",
	"MXN": "Mex$",
	"BRL": "R$",
	"ARS": "ARS$",
	"CLP": "CLP$",
	"COP": "COL$",
	"PEN": "S/",

	// Europe
	"EUR": "€",
	"GBP": "£",
	"CHF": "CHF",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"PLN": "zł",
	"CZK": "Kč",
	"HUF": "Ft",
	"RON": "lei",
	"BGN": "лв",
	"HRK": "kn",
	"TRY": "₺",
	"RUB": "₽",

	// Asia-Pacific
	"INR": "₹",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"SGD": "S$",
	"HKD": "HK$",
	"TWD": "NT$",
	"THB": "฿",
	"MYR": "RM",
	"IDR": "Rp",
	"PHP": "₱",
	"VND": "₫",
	"PKR": "₨",
	"BDT": "৳",
	"LKR": "Rs",
	"AUD": "A$",
	"NZD": "NZ$",

	// Middle East & Africa
	"AED": "د.إ",
	"SAR": "﷼",
	"QAR": "ر.ق",
	"KWD": "د.ك",
	"BHD": "د.ب",
	"ILS": "₪",
	"EGP": "£",
	"ZAR": "R",
	"NGN": "₦",
	"KES": "KSh",
}

// defaultCloudMultipliers maps provider name to the ratio of its equivalent
// cost against the AWS baseline
var defaultCloudMultipliers = map[string]float64{
	"AWS":          1.0,
	"Azure":        1.05, // slightly more expensive generally
	"GCP":          0.95, // sustained use discounts
	"DigitalOcean": 0.60, // much cheaper compute/bandwidth
	"Vercel":       1.20, // premium for the managed experience
}

// Defaults returns a table populated with the compiled-in baseline
func Defaults() *Table {
	return NewTable(defaultPrices, defaultCurrencyRates, defaultCloudMultipliers, Meta{Sources: []string{"static"}})
}
