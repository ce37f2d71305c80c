package mocks

import (
	"context"

	"market-sync/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of sync.Client
type Client struct {
	mock.Mock
}

func (m *Client) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *Client) FetchCatalogPage(ctx context.Context, cursor string) ([]string, string, error) {
	args := m.Called(ctx, cursor)
	var ids []string
	if v, ok := args.Get(0).([]string); ok {
		ids = v
	}
	return ids, args.String(1), args.Error(2)
}

func (m *Client) SubmitStockBatch(ctx context.Context, batch []reconcile.StockUpdate) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *Client) SubmitPriceBatch(ctx context.Context, batch []reconcile.PriceUpdate) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}
