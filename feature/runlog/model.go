package runlog

import "time"

// Run statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Run is one marketplace target's outcome within a sync run.
type Run struct {
	// ID is the auto-increment primary key.
	ID uint `gorm:"primaryKey" json:"id"`

	// RunID groups the targets of one pipeline invocation.
	RunID string `gorm:"size:36;index" json:"run_id"`

	// Target is the marketplace target name (ozon, market-fbs, market-dbs).
	Target string `gorm:"size:32;index" json:"target"`

	// TotalOffers is the size of the full stock-update list.
	TotalOffers int `json:"total_offers"`

	// ActiveOffers counts updates with a non-zero stock count.
	ActiveOffers int `json:"active_offers"`

	// StockBatches and PriceBatches count dispatched requests.
	StockBatches int `json:"stock_batches"`
	PriceBatches int `json:"price_batches"`

	// Status is "ok" or "failed".
	Status string `gorm:"size:16" json:"status"`

	// Error holds the failure message for failed targets.
	Error string `gorm:"type:text" json:"error,omitempty"`

	// StartedAt is when the target's sync began.
	StartedAt time.Time `json:"started_at"`

	// DurationMs is the target's sync duration in milliseconds.
	DurationMs int64 `json:"duration_ms"`
}

// TableName pins the table name independent of GORM pluralization.
func (Run) TableName() string {
	return "sync_runs"
}
