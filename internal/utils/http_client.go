package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client shared by the
// report and speed-test adapters.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client, err := utils.NewHTTPClient("https://collect.example.com", 30*time.Second)
//	resp, err := client.R().Get("/health")
type HTTPClient struct {
	*resty.Client
}

// UserAgent is sent with every outbound request. It is overwritten at
// startup with the build version.
var UserAgent = "node-reporter"

// NewHTTPClient creates and returns a new HTTPClient bound to baseURL.
//
// The base URL is normalised (scheme defaulted to http, trailing slash
// removed) and every request is bounded by timeout. Each call returns an
// independent client instance with its own connection pool.
//
// Returns an error if baseURL is empty or cannot be parsed.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(normalized).
		SetHeader("User-Agent", UserAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}, nil
}

// NormalizeBaseURL trims raw, adds an http scheme when none is present and
// strips the trailing slash.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
