package reconcile

import "time"

// FeedRecord is one supplier-reported product, exactly as read from the
// remnants workbook. Quantity and price stay raw text until classification;
// the code is compared as text against marketplace offer IDs, so leading
// zeros and formatting are preserved.
type FeedRecord struct {
	// Code is the supplier product code, the join key against marketplace
	// offer identifiers.
	Code string `json:"code"`

	// RawQuantity is the free-text quantity token, e.g. "3", ">10", "1".
	RawQuantity string `json:"raw_quantity"`

	// RawPrice is the free-text price string, e.g. "24'570.00 руб.".
	RawPrice string `json:"raw_price"`
}

// StockUpdate is a canonical stock count for one marketplace offer.
type StockUpdate struct {
	// OfferID is the marketplace offer identifier.
	OfferID string `json:"offer_id"`

	// Count is the stock count to publish. Zero means the offer is no
	// longer carried by the supplier.
	Count int `json:"count"`

	// UpdatedAt is the as-of marker for this reconciliation pass. All
	// updates from one pass share the same timestamp.
	UpdatedAt time.Time `json:"updated_at"`
}

// PriceUpdate is a canonical price for one marketplace offer.
type PriceUpdate struct {
	// OfferID is the marketplace offer identifier.
	OfferID string `json:"offer_id"`

	// Value is the integer price, fractional part truncated.
	Value int `json:"value"`

	// Currency is the marketplace currency code (e.g. "RUB", "RUR").
	Currency string `json:"currency"`
}
