package ozon

import "market-sync/core/sync"

// Config holds configuration for the Ozon seller API target.
type Config struct {
	// Enabled toggles this target for sync runs.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// BaseURL is the seller API endpoint.
	BaseURL string `mapstructure:"base_url" default:"https://api-seller.ozon.ru"`
	// ClientID is the seller account client identifier.
	ClientID string `mapstructure:"client_id" default:""`
	// ApiKey is the seller API key.
	ApiKey string `mapstructure:"api_key" default:""`
	// Currency is the price currency code sent with price updates.
	Currency string `mapstructure:"currency" default:"RUB"`
	// PageLimit is the product-list page size.
	PageLimit int `mapstructure:"page_limit" default:"1000"`
	// StockBatchLimit caps stock updates per import request.
	StockBatchLimit int `mapstructure:"stock_batch_limit" default:"100"`
	// PriceBatchLimit caps price updates per import request.
	PriceBatchLimit int `mapstructure:"price_batch_limit" default:"900"`
	// TimeoutSeconds bounds every API call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Limits returns the batch caps in the orchestrator's terms.
func (c Config) Limits() sync.Limits {
	return sync.Limits{StockBatch: c.StockBatchLimit, PriceBatch: c.PriceBatchLimit}
}
