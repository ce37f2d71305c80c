package ozon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"market-sync/core/reconcile"
)

// Client talks to the Ozon seller API. It satisfies core/sync.Client.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates an Ozon API client with strict transport timeouts.
func NewClient(cfg Config) *Client {
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
		cfg: cfg,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

// Name identifies this target in logs and run records.
func (c *Client) Name() string {
	return "ozon"
}

type productListRequest struct {
	Filter productListFilter `json:"filter"`
	LastID string            `json:"last_id"`
	Limit  int               `json:"limit"`
}

type productListFilter struct {
	Visibility string `json:"visibility"`
}

type productListResponse struct {
	Result struct {
		Items []struct {
			OfferID string `json:"offer_id"`
		} `json:"items"`
		Total  int    `json:"total"`
		LastID string `json:"last_id"`
	} `json:"result"`
}

// FetchCatalogPage returns one page of listed offer IDs. Ozon reports
// exhaustion via the total count, so a short or empty page maps onto an
// empty next cursor.
func (c *Client) FetchCatalogPage(ctx context.Context, cursor string) ([]string, string, error) {
	req := productListRequest{
		Filter: productListFilter{Visibility: "ALL"},
		LastID: cursor,
		Limit:  c.cfg.PageLimit,
	}

	var resp productListResponse
	if err := c.post(ctx, "/v2/product/list", req, &resp); err != nil {
		return nil, "", err
	}

	ids := make([]string, 0, len(resp.Result.Items))
	for _, item := range resp.Result.Items {
		ids = append(ids, item.OfferID)
	}

	next := resp.Result.LastID
	if len(ids) == 0 || len(ids) < c.cfg.PageLimit {
		next = ""
	}
	return ids, next, nil
}

type stockImportRequest struct {
	Stocks []stockItem `json:"stocks"`
}

type stockItem struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

// SubmitStockBatch publishes one batch of stock updates.
func (c *Client) SubmitStockBatch(ctx context.Context, batch []reconcile.StockUpdate) error {
	req := stockImportRequest{Stocks: make([]stockItem, 0, len(batch))}
	for _, update := range batch {
		req.Stocks = append(req.Stocks, stockItem{OfferID: update.OfferID, Stock: update.Count})
	}
	return c.post(ctx, "/v1/product/import/stocks", req, nil)
}

type priceImportRequest struct {
	Prices []priceItem `json:"prices"`
}

type priceItem struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

// SubmitPriceBatch publishes one batch of price updates.
func (c *Client) SubmitPriceBatch(ctx context.Context, batch []reconcile.PriceUpdate) error {
	req := priceImportRequest{Prices: make([]priceItem, 0, len(batch))}
	for _, update := range batch {
		req.Prices = append(req.Prices, priceItem{
			AutoActionEnabled: "UNKNOWN",
			CurrencyCode:      update.Currency,
			OfferID:           update.OfferID,
			OldPrice:          "0",
			Price:             strconv.Itoa(update.Value),
		})
	}
	return c.post(ctx, "/v1/product/import/prices", req, nil)
}

// post sends an authenticated JSON request and decodes the response into
// out when out is non-nil. Any non-2xx status is a hard failure.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("ozon: failed to encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("ozon: failed to build %s request: %w", path, err)
	}
	req.Header.Set("Client-Id", c.cfg.ClientID)
	req.Header.Set("Api-Key", c.cfg.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ozon: %s request failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("ozon: %s returned status %d: %s", path, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ozon: failed to decode %s response: %w", path, err)
	}
	return nil
}
