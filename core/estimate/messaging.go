// Package estimate - Message queue costs
package estimate

import (
	"fmt"

	"archcost/core/pricing"
	"archcost/core/types"
)

// messagingCost prices the configured queue technology
func messagingCost(t *pricing.Table, cfg types.MessagingConfig, reqs map[string]string) float64 {
	if !cfg.Enabled {
		return 0.0
	}

	var cost float64

	switch cfg.Type {
	case "sqs":
		monthlyMessages := cfg.MessagesPerDay * 30
		cost = float64(monthlyMessages) / 1e6 * t.Price("messaging", "sqs_1m_requests")
		reqs["Queue"] = grouped.Sprintf("SQS - %d msgs/mo", monthlyMessages)

	case "kafka":
		// At least 3 brokers for HA
		brokers := max(3, cfg.MessagesPerDay/1000000+1)
		cost = float64(brokers) * t.Price("messaging", "kafka_broker")
		reqs["Queue"] = fmt.Sprintf("Kafka - %d brokers", brokers)

	case "rabbitmq":
		cost = t.Price("messaging", "rabbitmq_m5_large")
		reqs["Queue"] = "RabbitMQ m5.large"

	case "kinesis":
		shards := max(1, cfg.MessagesPerDay/86400/1000+1)
		cost = float64(shards) * t.Price("messaging", "kinesis_shard")
		reqs["Queue"] = fmt.Sprintf("Kinesis - %d shards", shards)
	}

	// DLQ adds no cost, only the requirement line
	if cfg.DLQEnabled {
		reqs["DLQ"] = "Enabled"
	}

	return cost
}
