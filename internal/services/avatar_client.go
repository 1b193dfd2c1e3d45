package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// maxAvatarBytes bounds a single download
const maxAvatarBytes = 10 << 20

// AvatarClient downloads placeholder images for the logo and banner uploads
type AvatarClient interface {
	Download(ctx context.Context) (string, error)
	Dir() string
	Cleanup() error
}

// HTTPAvatarClient implements AvatarClient over HTTP, writing into a temp dir
type HTTPAvatarClient struct {
	baseURL    string
	dir        string
	httpClient *http.Client
	logger     *log.Logger

	mu    sync.Mutex
	files []string
}

// NewAvatarClient creates the client and its temp directory
func NewAvatarClient(baseURL string, logger *log.Logger) (AvatarClient, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid avatar url: %w", err)
	}

	dir, err := os.MkdirTemp("", "dashboard-e2e-avatars-")
	if err != nil {
		return nil, fmt.Errorf("failed to create avatar directory: %w", err)
	}

	return &HTTPAvatarClient{
		baseURL:    baseURL,
		dir:        dir,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}, nil
}

// Download fetches a fresh avatar and returns the local file path
func (c *HTTPAvatarClient) Download(ctx context.Context) (string, error) {
	id := uuid.New().String()

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid avatar url: %w", err)
	}
	// a distinct seed per download avoids the image cache
	q := u.Query()
	q.Set("u", id)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download avatar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("avatar service returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("avatar service returned %q, want an image", contentType)
	}

	path := filepath.Join(c.dir, id+extensionFor(contentType))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create avatar file: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(resp.Body, maxAvatarBytes))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write avatar file: %w", err)
	}
	if n == 0 {
		os.Remove(path)
		return "", fmt.Errorf("avatar service returned an empty body")
	}

	c.mu.Lock()
	c.files = append(c.files, path)
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Debug("avatar downloaded", "path", path, "bytes", n)
	}

	return path, nil
}

// Dir returns the temp directory holding the downloads
func (c *HTTPAvatarClient) Dir() string {
	return c.dir
}

// Cleanup removes the temp directory and every downloaded file
func (c *HTTPAvatarClient) Cleanup() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.RemoveAll(c.dir); err != nil {
		return fmt.Errorf("failed to remove avatar directory: %w", err)
	}
	if c.logger != nil {
		c.logger.Debug("avatars removed", "count", len(c.files), "dir", c.dir)
	}
	c.files = nil
	return nil
}

func extensionFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/png"):
		return ".png"
	case strings.HasPrefix(contentType, "image/webp"):
		return ".webp"
	case strings.HasPrefix(contentType, "image/gif"):
		return ".gif"
	default:
		return ".jpg"
	}
}
