// Package ingestion implements the scheduled price refresh job: fetch fresh
// prices from the external feeds, derive a pricing snapshot, archive the
// previous one and publish the new table atomically. A failed fetch falls
// back per source and never disturbs the active table.
package ingestion

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"archcost/internal/errors"
	"archcost/internal/logging"
)

const (
	awsInstancesURL  = "https://www.ec2instances.info/instances.json"
	azureRetailURL   = "https://prices.azure.com/api/retail/prices"
	exchangeRatesURL = "https://api.exchangerate-api.com/v4/latest/USD"
	fetchTimeout     = 30 * time.Second
)

// supportedCurrencies is the subset of live rates we accept on refresh
var supportedCurrencies = []string{
	"USD", "CAD", "MXN", "BRL", "ARS", "EUR", "GBP", "CHF",
	"INR", "JPY", "CNY", "KRW", "SGD", "HKD", "AUD", "NZD",
	"AED", "SAR", "ZAR",
}

// Fetcher pulls raw prices from the external pricing feeds
type Fetcher struct {
	client   *resty.Client
	awsURL   string
	azureURL string
	ratesURL string
}

// NewFetcher creates a fetcher with production timeouts
func NewFetcher() *Fetcher {
	client := resty.New().
		SetTimeout(fetchTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "archcost/1.0")
	return &Fetcher{
		client:   client,
		awsURL:   awsInstancesURL,
		azureURL: azureRetailURL,
		ratesURL: exchangeRatesURL,
	}
}

// AWSBaselineHourly fetches the t3.medium Linux on-demand hourly price for
// us-east-1 from the Vantage public instances feed.
func (f *Fetcher) AWSBaselineHourly(ctx context.Context) (float64, error) {
	logging.Info("fetching AWS prices from Vantage")

	var instances []struct {
		InstanceType string `json:"instance_type"`
		Pricing      map[string]struct {
			Linux struct {
				OnDemand string `json:"ondemand"`
			} `json:"linux"`
		} `json:"pricing"`
	}

	resp, err := f.client.R().SetContext(ctx).SetResult(&instances).Get(f.awsURL)
	if err != nil {
		return 0, errors.Fetch("aws", err)
	}
	if resp.IsError() {
		return 0, errors.Fetch("aws", fmt.Errorf("status %d", resp.StatusCode()))
	}

	for _, inst := range instances {
		if inst.InstanceType != "t3.medium" {
			continue
		}
		regional, ok := inst.Pricing["us-east-1"]
		if !ok || regional.Linux.OnDemand == "" {
			continue
		}
		price, err := decimal.NewFromString(regional.Linux.OnDemand)
		if err != nil {
			return 0, errors.Fetch("aws", fmt.Errorf("unparseable on-demand price %q: %w", regional.Linux.OnDemand, err))
		}
		hourly, _ := price.Float64()
		return hourly, nil
	}

	return 0, errors.Fetch("aws", fmt.Errorf("t3.medium us-east-1 price not present in feed"))
}

// AzureHourly fetches the D2s v3 eastus consumption price from the Azure
// Retail Prices API.
func (f *Fetcher) AzureHourly(ctx context.Context) (float64, error) {
	logging.Info("fetching Azure prices")

	var result struct {
		Items []struct {
			RetailPrice float64 `json:"retailPrice"`
		} `json:"Items"`
	}

	filter := "armRegionName eq 'eastus' and serviceName eq 'Virtual Machines' and skuName eq 'D2s v3' and priceType eq 'Consumption'"
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("$filter", filter).
		SetResult(&result).
		Get(f.azureURL)
	if err != nil {
		return 0, errors.Fetch("azure", err)
	}
	if resp.IsError() {
		return 0, errors.Fetch("azure", fmt.Errorf("status %d", resp.StatusCode()))
	}
	if len(result.Items) == 0 {
		return 0, errors.Fetch("azure", fmt.Errorf("empty result set"))
	}

	return result.Items[0].RetailPrice, nil
}

// GCPHourly returns a simulated e2-medium hourly price. GCP has no public
// unauthenticated price feed; the constant tracks published list pricing.
func (f *Fetcher) GCPHourly(ctx context.Context) (float64, error) {
	return 0.045, nil
}

// DigitalOceanHourly returns a simulated basic droplet hourly price
func (f *Fetcher) DigitalOceanHourly(ctx context.Context) (float64, error) {
	return 0.02, nil
}

// CurrencyRates fetches live exchange rates against USD, filtered to the
// supported currency set.
func (f *Fetcher) CurrencyRates(ctx context.Context) (map[string]float64, error) {
	logging.Info("fetching currency exchange rates")

	var result struct {
		Rates map[string]float64 `json:"rates"`
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(f.ratesURL)
	if err != nil {
		return nil, errors.Fetch("exchangerate", err)
	}
	if resp.IsError() {
		return nil, errors.Fetch("exchangerate", fmt.Errorf("status %d", resp.StatusCode()))
	}
	if len(result.Rates) == 0 {
		return nil, errors.Fetch("exchangerate", fmt.Errorf("no rates in response"))
	}

	rates := map[string]float64{"USD": 1.0}
	for _, code := range supportedCurrencies {
		if code == "USD" {
			continue
		}
		if rate, ok := result.Rates[code]; ok {
			rates[code] = rate
		}
	}

	logging.Info("fetched currency rates", zap.Int("count", len(rates)))
	return rates, nil
}
