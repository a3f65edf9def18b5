// Package pricing provides the refreshable price table: USD unit prices by
// category and item, currency conversion rates and cloud provider multipliers.
//
// A Table is immutable after construction. The Service publishes a new Table
// atomically on refresh, so concurrent estimations always read a consistent
// snapshot and never observe a partially updated category.
package pricing

import (
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"archcost/internal/logging"
)

// Categories is the fixed set of price table categories. Snapshot data for
// anything outside this set is ignored on refresh.
var Categories = []string{
	"compute",
	"database",
	"storage",
	"networking",
	"cache",
	"cdn",
	"messaging",
	"security",
	"monitoring",
	"cicd",
	"replication",
}

// Meta describes where a table's prices came from
type Meta struct {
	// UpdatedAt is when the snapshot was produced
	UpdatedAt time.Time `json:"last_updated"`

	// Sources lists the upstream feeds that contributed
	Sources []string `json:"sources,omitempty"`
}

// Table is an immutable point-in-time price table
type Table struct {
	prices      map[string]map[string]float64
	rates       map[string]float64
	multipliers map[string]float64
	meta        Meta
}

// NewTable builds a Table from the given maps. The inputs are deep-copied so
// the table cannot be mutated through retained references.
func NewTable(prices map[string]map[string]float64, rates, multipliers map[string]float64, meta Meta) *Table {
	t := &Table{
		prices:      make(map[string]map[string]float64, len(prices)),
		rates:       make(map[string]float64, len(rates)),
		multipliers: make(map[string]float64, len(multipliers)),
		meta:        meta,
	}
	for category, items := range prices {
		copied := make(map[string]float64, len(items))
		for item, price := range items {
			copied[item] = price
		}
		t.prices[category] = copied
	}
	for code, rate := range rates {
		t.rates[strings.ToUpper(code)] = rate
	}
	for provider, m := range multipliers {
		t.multipliers[provider] = m
	}
	return t
}

// Price returns the USD unit price for category/item, or 0.0 when either is
// unknown. Missing prices never fail: optional and unrecognized line items
// contribute zero cost. Each miss is logged at debug level since a silent
// zero is a correctness risk worth seeing in the logs.
func (t *Table) Price(category, item string) float64 {
	items, ok := t.prices[category]
	if !ok {
		logging.Debug("price table miss", zap.String("category", category), zap.String("item", item))
		return 0.0
	}
	price, ok := items[item]
	if !ok {
		logging.Debug("price table miss", zap.String("category", category), zap.String("item", item))
		return 0.0
	}
	return price
}

// Convert converts a USD amount into the target currency. Currency codes are
// case-insensitive; unknown codes fall back to rate 1.0 and are treated as USD.
func (t *Table) Convert(amountUSD float64, currency string) float64 {
	rate, ok := t.rates[strings.ToUpper(currency)]
	if !ok {
		rate = 1.0
	}
	return amountUSD * rate
}

// Rate returns the conversion rate for a currency (1.0 when unknown)
func (t *Table) Rate(currency string) float64 {
	rate, ok := t.rates[strings.ToUpper(currency)]
	if !ok {
		return 1.0
	}
	return rate
}

// Symbol returns the display symbol for a currency, "$" when unknown
func (t *Table) Symbol(currency string) string {
	if sym, ok := currencySymbols[strings.ToUpper(currency)]; ok {
		return sym
	}
	return "$"
}

// CloudMultipliers returns a copy of the provider multiplier map
func (t *Table) CloudMultipliers() map[string]float64 {
	out := make(map[string]float64, len(t.multipliers))
	for provider, m := range t.multipliers {
		out[provider] = m
	}
	return out
}

// CurrencyRates returns a copy of the currency rate map
func (t *Table) CurrencyRates() map[string]float64 {
	out := make(map[string]float64, len(t.rates))
	for code, rate := range t.rates {
		out[code] = rate
	}
	return out
}

// Category returns a copy of one category's item prices
func (t *Table) Category(name string) map[string]float64 {
	items, ok := t.prices[name]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(items))
	for item, price := range items {
		out[item] = price
	}
	return out
}

// Meta returns the table's source metadata
func (t *Table) Meta() Meta {
	return t.meta
}

// Snapshot is the wire format of a price table update: a flat JSON object
// whose keys are either known category names, the two special blocks
// "currency_rates" and "multi_cloud", or "meta". Unrecognized keys are
// dropped during decoding.
type Snapshot struct {
	Categories       map[string]map[string]float64
	CurrencyRates    map[string]float64
	CloudMultipliers map[string]float64
	Meta             Meta
}

// knownCategories is Categories as a set, for O(1) membership checks
var knownCategories = func() map[string]bool {
	set := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		set[c] = true
	}
	return set
}()

// UnmarshalJSON decodes the flat wire format, ignoring unknown keys
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Categories = make(map[string]map[string]float64)
	for key, val := range raw {
		switch {
		case key == "currency_rates":
			if err := json.Unmarshal(val, &s.CurrencyRates); err != nil {
				return err
			}
		case key == "multi_cloud":
			if err := json.Unmarshal(val, &s.CloudMultipliers); err != nil {
				return err
			}
		case key == "meta":
			if err := json.Unmarshal(val, &s.Meta); err != nil {
				return err
			}
		case knownCategories[key]:
			var items map[string]float64
			if err := json.Unmarshal(val, &items); err != nil {
				return err
			}
			s.Categories[key] = items
		default:
			logging.Debug("ignoring unknown snapshot key", zap.String("key", key))
		}
	}
	return nil
}

// MarshalJSON encodes the flat wire format
func (s Snapshot) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(s.Categories)+3)
	for category, items := range s.Categories {
		flat[category] = items
	}
	if len(s.CurrencyRates) > 0 {
		flat["currency_rates"] = s.CurrencyRates
	}
	if len(s.CloudMultipliers) > 0 {
		flat["multi_cloud"] = s.CloudMultipliers
	}
	flat["meta"] = s.Meta
	return json.Marshal(flat)
}

// Merge overlays a snapshot onto a base table and returns the resulting new
// table. Known categories are merge-updated key by key; categories absent
// from the snapshot keep the base values; currency rates and cloud
// multipliers extend the base maps. The base table is never modified.
func Merge(base *Table, snap *Snapshot) *Table {
	prices := make(map[string]map[string]float64, len(base.prices))
	for category, items := range base.prices {
		copied := make(map[string]float64, len(items))
		for item, price := range items {
			copied[item] = price
		}
		prices[category] = copied
	}
	for category, items := range snap.Categories {
		if !knownCategories[category] {
			continue
		}
		if prices[category] == nil {
			prices[category] = make(map[string]float64, len(items))
		}
		for item, price := range items {
			prices[category][item] = price
		}
	}

	rates := base.CurrencyRates()
	for code, rate := range snap.CurrencyRates {
		rates[strings.ToUpper(code)] = rate
	}

	multipliers := base.CloudMultipliers()
	for provider, m := range snap.CloudMultipliers {
		multipliers[provider] = m
	}

	meta := base.meta
	if !snap.Meta.UpdatedAt.IsZero() {
		meta = snap.Meta
	}

	return NewTable(prices, rates, multipliers, meta)
}
