package market

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"market-sync/core/reconcile"
)

// stockItemType is the only stock kind this integration publishes.
const stockItemType = "FIT"

// Client talks to the Yandex.Market partner API for one campaign. It
// satisfies core/sync.Client.
type Client struct {
	cfg      Config
	campaign CampaignConfig
	label    string
	http     *http.Client
}

// NewClient creates a partner API client for one campaign. The label
// distinguishes campaigns in logs and run records (e.g. "market-fbs").
func NewClient(cfg Config, campaign CampaignConfig, label string) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		TLSHandshakeTimeout:   timeoutDuration,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &Client{
		cfg:      cfg,
		campaign: campaign,
		label:    label,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

// Name identifies this campaign in logs and run records.
func (c *Client) Name() string {
	return c.label
}

type offerMappingsResponse struct {
	Result struct {
		OfferMappingEntries []struct {
			Offer struct {
				ShopSku string `json:"shopSku"`
			} `json:"offer"`
		} `json:"offerMappingEntries"`
		Paging struct {
			NextPageToken string `json:"nextPageToken"`
		} `json:"paging"`
	} `json:"result"`
}

// FetchCatalogPage returns one page of listed shop SKUs; the next cursor is
// the paging token, empty on the last page.
func (c *Client) FetchCatalogPage(ctx context.Context, cursor string) ([]string, string, error) {
	query := url.Values{"limit": {strconv.Itoa(c.cfg.PageLimit)}}
	if cursor != "" {
		query.Set("page_token", cursor)
	}
	path := fmt.Sprintf("/campaigns/%s/offer-mapping-entries?%s", c.campaign.CampaignID, query.Encode())

	var resp offerMappingsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, "", err
	}

	ids := make([]string, 0, len(resp.Result.OfferMappingEntries))
	for _, entry := range resp.Result.OfferMappingEntries {
		ids = append(ids, entry.Offer.ShopSku)
	}
	return ids, resp.Result.Paging.NextPageToken, nil
}

type stockUpdateRequest struct {
	Skus []skuStocks `json:"skus"`
}

type skuStocks struct {
	Sku         string      `json:"sku"`
	WarehouseID int64       `json:"warehouseId"`
	Items       []stockItem `json:"items"`
}

type stockItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

// SubmitStockBatch publishes one batch of warehouse-scoped stock updates.
func (c *Client) SubmitStockBatch(ctx context.Context, batch []reconcile.StockUpdate) error {
	req := stockUpdateRequest{Skus: make([]skuStocks, 0, len(batch))}
	for _, update := range batch {
		req.Skus = append(req.Skus, skuStocks{
			Sku:         update.OfferID,
			WarehouseID: c.campaign.WarehouseID,
			Items: []stockItem{{
				Count:     update.Count,
				Type:      stockItemType,
				UpdatedAt: update.UpdatedAt.UTC().Format(time.RFC3339),
			}},
		})
	}
	path := fmt.Sprintf("/campaigns/%s/offers/stocks", c.campaign.CampaignID)
	return c.do(ctx, http.MethodPut, path, req, nil)
}

type priceUpdateRequest struct {
	Offers []offerPrice `json:"offers"`
}

type offerPrice struct {
	ID    string     `json:"id"`
	Price priceValue `json:"price"`
}

type priceValue struct {
	Value      int    `json:"value"`
	CurrencyID string `json:"currencyId"`
}

// SubmitPriceBatch publishes one batch of price updates.
func (c *Client) SubmitPriceBatch(ctx context.Context, batch []reconcile.PriceUpdate) error {
	req := priceUpdateRequest{Offers: make([]offerPrice, 0, len(batch))}
	for _, update := range batch {
		req.Offers = append(req.Offers, offerPrice{
			ID:    update.OfferID,
			Price: priceValue{Value: update.Value, CurrencyID: update.Currency},
		})
	}
	path := fmt.Sprintf("/campaigns/%s/offer-prices/updates", c.campaign.CampaignID)
	return c.do(ctx, http.MethodPost, path, req, nil)
}

// do sends an authenticated JSON request and decodes the response into out
// when out is non-nil. Any non-2xx status is a hard failure.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode %s request: %w", c.label, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to build %s request: %w", c.label, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %s request failed: %w", c.label, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: %s returned status %d: %s", c.label, path, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode %s response: %w", c.label, path, err)
	}
	return nil
}
