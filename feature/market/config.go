package market

import "market-sync/core/sync"

// Config holds configuration shared by both Yandex.Market campaigns.
type Config struct {
	// Enabled toggles the whole marketplace for sync runs.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// BaseURL is the partner API endpoint.
	BaseURL string `mapstructure:"base_url" default:"https://api.partner.market.yandex.ru"`
	// Token is the partner API OAuth token.
	Token string `mapstructure:"token" default:""`
	// Currency is the price currency code sent with price updates.
	Currency string `mapstructure:"currency" default:"RUR"`
	// PageLimit is the offer-mapping-entries page size.
	PageLimit int `mapstructure:"page_limit" default:"200"`
	// StockBatchLimit caps stock updates per request.
	StockBatchLimit int `mapstructure:"stock_batch_limit" default:"2000"`
	// PriceBatchLimit caps price updates per request.
	PriceBatchLimit int `mapstructure:"price_batch_limit" default:"500"`
	// TimeoutSeconds bounds every API call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// FBS is the "fulfillment by seller" campaign.
	FBS CampaignConfig `mapstructure:"fbs"`
	// DBS is the "delivery by seller" campaign.
	DBS CampaignConfig `mapstructure:"dbs"`
}

// CampaignConfig identifies one campaign within the partner account.
type CampaignConfig struct {
	// CampaignID is the store identifier used in API paths.
	CampaignID string `mapstructure:"campaign_id" default:""`
	// WarehouseID scopes stock updates to one warehouse.
	WarehouseID int64 `mapstructure:"warehouse_id" default:"0"`
}

// Configured reports whether the campaign has an identifier assigned.
func (c CampaignConfig) Configured() bool {
	return c.CampaignID != ""
}

// Limits returns the batch caps in the orchestrator's terms.
func (c Config) Limits() sync.Limits {
	return sync.Limits{StockBatch: c.StockBatchLimit, PriceBatch: c.PriceBatchLimit}
}
