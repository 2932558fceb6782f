package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

var (
	driveQueryID = regexp.MustCompile(`id=([a-zA-Z0-9_-]+)`)
	drivePathID  = regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`)
)

// ObjectReader loads object bytes by key.
type ObjectReader interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// FetcherConfig bounds remote template downloads.
type FetcherConfig struct {
	Timeout      time.Duration
	MaxRedirects int
	MaxBytes     int64
}

// Fetcher loads template packages from the object store or from http(s) URLs.
type Fetcher struct {
	objects  ObjectReader
	client   *http.Client
	maxBytes int64
}

// NewFetcher builds a Fetcher. Remote downloads go through an instrumented
// client that gives up after cfg.Timeout or cfg.MaxRedirects redirects.
func NewFetcher(objects ObjectReader, cfg FetcherConfig) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRedirects < 0 {
		cfg.MaxRedirects = 0
	}
	maxRedirects := cfg.MaxRedirects
	return &Fetcher{
		objects:  objects,
		maxBytes: cfg.MaxBytes,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) > maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}
}

// IsRemote reports whether ref is an http(s) URL rather than an object key.
func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// CheckExtension rejects references whose path carries an extension other than .docx.
// References without an extension (share links) are checked by signature after download.
func CheckExtension(ref string) error {
	p := ref
	if IsRemote(ref) {
		u, err := url.Parse(ref)
		if err != nil {
			return &RenderError{Kind: ErrUnsupportedFormat, Cause: err}
		}
		p = u.Path
	}
	ext := strings.ToLower(path.Ext(p))
	if ext == "" || ext == ".docx" {
		return nil
	}
	return &RenderError{Kind: ErrUnsupportedFormat, Part: path.Base(p)}
}

// Fetch returns the full template bytes for ref. Partial downloads are never returned.
func (f *Fetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: empty file reference", ErrTemplateFetch)
	}
	if !IsRemote(ref) {
		if f.objects == nil {
			return nil, fmt.Errorf("%w: no object store configured", ErrTemplateFetch)
		}
		data, err := f.objects.Fetch(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTemplateFetch, err)
		}
		return data, nil
	}

	target := directDownloadURL(ref)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateFetch, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrTemplateFetch, resp.StatusCode)
	}

	body := io.Reader(resp.Body)
	if f.maxBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrTemplateFetch, err)
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("%w: template exceeds %d bytes", ErrTemplateFetch, f.maxBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrTemplateFetch, errors.New("empty response body"))
	}
	return data, nil
}

// directDownloadURL rewrites Google Drive share links to their binary download form.
func directDownloadURL(ref string) string {
	if !strings.Contains(ref, "drive.google.com") {
		return ref
	}
	m := driveQueryID.FindStringSubmatch(ref)
	if m == nil {
		m = drivePathID.FindStringSubmatch(ref)
	}
	if m == nil {
		return ref
	}
	return "https://drive.google.com/uc?export=download&id=" + m[1] + "&confirm=t"
}
