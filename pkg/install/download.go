// Package install holds the download, checksum, and archive-extraction
// machinery shared by every backend: a single retrying HTTP client
// (hashicorp/go-retryablehttp) plus gzip/xz/zip extraction, replacing the
// teacher's hand-rolled RobustDownload with the ecosystem equivalents the
// rest of the retrieval corpus reaches for.
package install

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/forgeware/forge/pkg/settings"
)

// Downloader wraps a retryablehttp.Client configured from Settings.
type Downloader struct {
	client *retryablehttp.Client
}

// NewDownloader builds a Downloader from the current process Settings
// (timeouts, retry count/backoff) — see pkg/settings.
func NewDownloader() *Downloader {
	s := settings.Get()
	client := retryablehttp.NewClient()
	client.RetryMax = s.MaxRetries
	client.RetryWaitMin = s.RetryDelay
	client.RetryWaitMax = s.RetryDelay * 8
	client.HTTPClient.Timeout = s.DownloadTimeout
	client.Logger = nil // no retry logging
	return &Downloader{client: client}
}

// Download fetches url into destPath, creating parent directories as
// needed. Response size is checked against Settings.MinFileSize /
// MaxFileSize once the body is known, rejecting obviously-truncated or
// suspiciously-huge payloads before they're written to disk.
func (d *Downloader) Download(url, destPath string) error {
	resp, err := d.client.Get(url)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading %s: unexpected status %s", url, resp.Status)
	}

	s := settings.Get()
	if resp.ContentLength > 0 {
		if resp.ContentLength < s.MinFileSize {
			return fmt.Errorf("downloading %s: response too small (%d bytes)", url, resp.ContentLength)
		}
		if s.MaxFileSize > 0 && resp.ContentLength > s.MaxFileSize {
			return fmt.Errorf("downloading %s: response too large (%d bytes)", url, resp.ContentLength)
		}
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("creating download directory: %w", err)
	}
	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", destPath, err)
	}
	defer out.Close()

	written, err := io.Copy(out, resp.Body)
	if err != nil {
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	if written < s.MinFileSize {
		return fmt.Errorf("downloading %s: wrote only %d bytes", url, written)
	}
	return nil
}

// Get performs a GET and returns the body, for small payloads like
// version index JSON that callers want to parse in-memory rather than
// stage to disk.
func (d *Downloader) Get(url string) ([]byte, error) {
	resp, err := d.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
