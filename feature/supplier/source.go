package supplier

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"market-sync/core/reconcile"
	"market-sync/core/storage"
)

// Source produces the ordered feed-record sequence for one sync run.
type Source interface {
	Fetch(ctx context.Context) ([]reconcile.FeedRecord, error)
}

// NewSource builds the configured feed source. The storage client is only
// required for the s3 source and may be nil otherwise.
func NewSource(cfg Config, store storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceHTTP:
		return NewHTTPSource(cfg), nil
	case SourceS3:
		if store == nil {
			return nil, fmt.Errorf("feed source %q requires a storage client", cfg.Source)
		}
		return NewS3Source(cfg, store, bucket), nil
	default:
		return nil, fmt.Errorf("unknown feed source %q", cfg.Source)
	}
}

// HTTPSource downloads the feed archive from the supplier's URL.
type HTTPSource struct {
	cfg    Config
	client *http.Client
}

// NewHTTPSource creates an HTTP feed source with strict transport timeouts.
func NewHTTPSource(cfg Config) *HTTPSource {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		TLSHandshakeTimeout: timeoutDuration,
	}

	return &HTTPSource{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}
}

// Fetch downloads, unpacks, and parses the feed archive.
func (s *HTTPSource) Fetch(ctx context.Context) ([]reconcile.FeedRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed download returned status %d", resp.StatusCode)
	}

	archive, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read feed archive: %w", err)
	}

	workbook, err := extractWorkbook(archive, s.cfg.Workbook)
	if err != nil {
		return nil, err
	}
	return ParseWorkbook(workbook, s.cfg)
}
