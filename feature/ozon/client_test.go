package ozon

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
	return NewClient(Config{
		BaseURL:        serverURL,
		ClientID:       "client-1",
		ApiKey:         "key-1",
		Currency:       "RUB",
		PageLimit:      2,
		TimeoutSeconds: 5,
	})
}

func TestClient_FetchCatalogPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/product/list", r.URL.Path)
		assert.Equal(t, "client-1", r.Header.Get("Client-Id"))
		assert.Equal(t, "key-1", r.Header.Get("Api-Key"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, map[string]any{"visibility": "ALL"}, req["filter"])

		// Full first page, short second page.
		if req["last_id"] == "" {
			fmt.Fprint(w, `{"result":{"items":[{"offer_id":"A"},{"offer_id":"B"}],"total":3,"last_id":"cursor-1"}}`)
			return
		}
		assert.Equal(t, "cursor-1", req["last_id"])
		fmt.Fprint(w, `{"result":{"items":[{"offer_id":"C"}],"total":3,"last_id":"cursor-2"}}`)
	}))
	defer server.Close()

	client := testClient(server.URL)

	ids, next, err := client.FetchCatalogPage(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, ids)
	assert.Equal(t, "cursor-1", next)

	// Short page ends pagination even though Ozon still returns a cursor.
	ids, next, err = client.FetchCatalogPage(context.Background(), "cursor-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, ids)
	assert.Empty(t, next)
}

func TestClient_FetchCatalogPage_ThroughOrchestrator(t *testing.T) {
	pages := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		switch pages {
		case 1:
			fmt.Fprint(w, `{"result":{"items":[{"offer_id":"A"},{"offer_id":"B"}],"total":3,"last_id":"c1"}}`)
		default:
			fmt.Fprint(w, `{"result":{"items":[{"offer_id":"C"}],"total":3,"last_id":"c2"}}`)
		}
	}))
	defer server.Close()

	ids, err := sync.FetchOfferIDs(context.Background(), testClient(server.URL))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, ids)
	assert.Equal(t, 2, pages)
}

func TestClient_SubmitStockBatch(t *testing.T) {
	var body map[string][]map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/product/import/stocks", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		fmt.Fprint(w, `{"result":[]}`)
	}))
	defer server.Close()

	batch := []reconcile.StockUpdate{
		{OfferID: "48852", Count: 3, UpdatedAt: time.Now()},
		{OfferID: "99999", Count: 0, UpdatedAt: time.Now()},
	}
	require.NoError(t, testClient(server.URL).SubmitStockBatch(context.Background(), batch))

	require.Len(t, body["stocks"], 2)
	assert.Equal(t, "48852", body["stocks"][0]["offer_id"])
	assert.Equal(t, float64(3), body["stocks"][0]["stock"])
	assert.Equal(t, float64(0), body["stocks"][1]["stock"])
}

func TestClient_SubmitPriceBatch(t *testing.T) {
	var body map[string][]map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/product/import/prices", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		fmt.Fprint(w, `{"result":[]}`)
	}))
	defer server.Close()

	batch := []reconcile.PriceUpdate{{OfferID: "48852", Value: 24570, Currency: "RUB"}}
	require.NoError(t, testClient(server.URL).SubmitPriceBatch(context.Background(), batch))

	require.Len(t, body["prices"], 1)
	price := body["prices"][0]
	assert.Equal(t, "48852", price["offer_id"])
	assert.Equal(t, "24570", price["price"], "price is serialized as a digit string")
	assert.Equal(t, "0", price["old_price"])
	assert.Equal(t, "RUB", price["currency_code"])
	assert.Equal(t, "UNKNOWN", price["auto_action_enabled"])
}

func TestClient_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusForbidden)
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, _, err := client.FetchCatalogPage(context.Background(), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "invalid api key")

	err = client.SubmitStockBatch(context.Background(), []reconcile.StockUpdate{{OfferID: "A"}})
	assert.Error(t, err)
}
