package results

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Fetcher loads a results artifact from a location.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]Sequence, error)
}

// Ensure Source implements Fetcher at compile time.
var _ Fetcher = (*Source)(nil)

const (
	defaultUserAgent = "lrrview/0.1"
	requestTimeout   = 15 * time.Second
	maxPayloadBytes  = 256 << 20
)

// Source reads results from local files or http(s) URLs.
type Source struct {
	http      *http.Client
	userAgent string
}

// NewSource builds a Source with the default request timeout.
func NewSource() *Source {
	return &Source{
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
}

// IsRemote reports whether location should be fetched over HTTP.
func IsRemote(location string) bool {
	lower := strings.ToLower(strings.TrimSpace(location))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Fetch loads and decodes the artifact at location.
func (s *Source) Fetch(ctx context.Context, location string) ([]Sequence, error) {
	if s == nil {
		return nil, fmt.Errorf("source is nil")
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("results location is empty")
	}

	var (
		data []byte
		err  error
	)
	if IsRemote(location) {
		data, err = s.fetchURL(ctx, location)
	} else {
		data, err = readFile(location)
	}
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func (s *Source) fetchURL(ctx context.Context, location string) ([]byte, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("parse results url %q: %w", location, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/javascript, text/plain")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s returned status %d", u.Redacted(), resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("results file %s does not exist", path)
		}
		return nil, fmt.Errorf("stat results: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("results path %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}
	return data, nil
}
