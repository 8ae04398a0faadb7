// Package openflights downloads the four dataset files over HTTP into a
// local data directory.
package openflights

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/couchcryptid/air-traffic-analysis/internal/dataset"
)

// Client fetches dataset files from a base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a dataset fetch client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Download fetches one dataset file into dir, writing to a temporary file
// first so a failed transfer never leaves a truncated dataset behind.
func (c *Client) Download(ctx context.Context, name, dir string) error {
	u := c.baseURL + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", name, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	dest := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("move %s into place: %w", name, err)
	}

	c.logger.Info("dataset file downloaded", "file", name, "bytes", n, "dest", dest)
	return nil
}

// FetchAll downloads every required dataset file into dir, creating the
// directory if needed. It stops at the first failure.
func (c *Client) FetchAll(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	for _, name := range dataset.RequiredFiles {
		if err := c.Download(ctx, name, dir); err != nil {
			return err
		}
	}
	return nil
}
