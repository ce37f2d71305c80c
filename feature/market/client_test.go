package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"market-sync/core/reconcile"
	"market-sync/core/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ sync.Client = (*Client)(nil)

func testClient(serverURL string) *Client {
	cfg := Config{
		BaseURL:        serverURL,
		Token:          "token-1",
		Currency:       "RUR",
		PageLimit:      200,
		TimeoutSeconds: 5,
	}
	campaign := CampaignConfig{CampaignID: "12345", WarehouseID: 777}
	return NewClient(cfg, campaign, "market-fbs")
}

func TestClient_Name(t *testing.T) {
	assert.Equal(t, "market-fbs", testClient("http://example.invalid").Name())
}

func TestClient_FetchCatalogPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/campaigns/12345/offer-mapping-entries", r.URL.Path)
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))
		assert.Equal(t, "200", r.URL.Query().Get("limit"))

		if r.URL.Query().Get("page_token") == "" {
			fmt.Fprint(w, `{"result":{"offerMappingEntries":[{"offer":{"shopSku":"A"}},{"offer":{"shopSku":"B"}}],"paging":{"nextPageToken":"next-1"}}}`)
			return
		}
		assert.Equal(t, "next-1", r.URL.Query().Get("page_token"))
		fmt.Fprint(w, `{"result":{"offerMappingEntries":[{"offer":{"shopSku":"C"}}],"paging":{}}}`)
	}))
	defer server.Close()

	client := testClient(server.URL)

	ids, next, err := client.FetchCatalogPage(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids)
	assert.Equal(t, "next-1", next)

	ids, next, err = client.FetchCatalogPage(context.Background(), "next-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, ids)
	assert.Empty(t, next)
}

func TestClient_SubmitStockBatch(t *testing.T) {
	updatedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	var body map[string][]map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/campaigns/12345/offers/stocks", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		fmt.Fprint(w, `{"status":"OK"}`)
	}))
	defer server.Close()

	batch := []reconcile.StockUpdate{
		{OfferID: "48852", Count: 3, UpdatedAt: updatedAt},
		{OfferID: "99999", Count: 0, UpdatedAt: updatedAt},
	}
	require.NoError(t, testClient(server.URL).SubmitStockBatch(context.Background(), batch))

	require.Len(t, body["skus"], 2)
	first := body["skus"][0]
	assert.Equal(t, "48852", first["sku"])
	assert.Equal(t, float64(777), first["warehouseId"])

	items := first["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, float64(3), item["count"])
	assert.Equal(t, "FIT", item["type"])
	assert.Equal(t, "2024-06-01T12:00:00Z", item["updatedAt"])

	// Every entry in the batch carries the shared as-of marker.
	second := body["skus"][1]
	secondItem := second["items"].([]any)[0].(map[string]any)
	assert.Equal(t, item["updatedAt"], secondItem["updatedAt"])
}

func TestClient_SubmitPriceBatch(t *testing.T) {
	var body map[string][]map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/campaigns/12345/offer-prices/updates", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		fmt.Fprint(w, `{"status":"OK"}`)
	}))
	defer server.Close()

	batch := []reconcile.PriceUpdate{{OfferID: "48852", Value: 24570, Currency: "RUR"}}
	require.NoError(t, testClient(server.URL).SubmitPriceBatch(context.Background(), batch))

	require.Len(t, body["offers"], 1)
	offer := body["offers"][0]
	assert.Equal(t, "48852", offer["id"])

	price := offer["price"].(map[string]any)
	assert.Equal(t, float64(24570), price["value"])
	assert.Equal(t, "RUR", price["currencyId"])
}

func TestClient_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"code":"UNAUTHORIZED"}]}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, _, err := client.FetchCatalogPage(context.Background(), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")

	err = client.SubmitPriceBatch(context.Background(), []reconcile.PriceUpdate{{OfferID: "A"}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "market-fbs")
}

func TestCampaignConfig_Configured(t *testing.T) {
	assert.False(t, CampaignConfig{}.Configured())
	assert.True(t, CampaignConfig{CampaignID: "1"}.Configured())
}
