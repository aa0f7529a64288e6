package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tengjizhang/demarcate/internal/config"
)

const maxBodyBytes = 8 << 20

type Loader struct {
	client    *http.Client
	userAgent string
	stdin     io.Reader
}

func NewLoader(cfg config.Config, stdin io.Reader) *Loader {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2: true,
		IdleConnTimeout:   30 * time.Second,
	}
	return &Loader{
		client: &http.Client{
			Timeout:   cfg.HTTPTimeout,
			Transport: transport,
		},
		userAgent: cfg.UserAgent,
		stdin:     stdin,
	}
}

// Load reads a document from stdin ("-"), an http(s) URL, or a file path.
func (l *Loader) Load(ctx context.Context, source string) (*Document, error) {
	source = strings.TrimSpace(source)
	switch {
	case source == "":
		return nil, fmt.Errorf("%w: source is required", ErrInvalidInput)
	case source == "-":
		if l.stdin == nil {
			return nil, fmt.Errorf("%w: stdin is not available", ErrInvalidInput)
		}
		return Parse("stdin", l.stdin)
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return l.loadURL(ctx, source)
	default:
		return loadFile(source)
	}
}

func (l *Loader) loadURL(ctx context.Context, rawURL string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(l.userAgent) != "" {
		req.Header.Set("User-Agent", l.userAgent)
	}
	req.Header.Set("Accept", "text/html, application/xhtml+xml, */*;q=0.8")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", rawURL, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: unexpected status %s", rawURL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rawURL, err)
	}
	return Parse(rawURL, bytes.NewReader(body))
}

func loadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}
