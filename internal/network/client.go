package network

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ProxyProvider provides proxy configuration.
// This interface is defined here to avoid import cycles with service package.
type ProxyProvider interface {
	GetProxyURL(ctx context.Context) string
}

// ClientFactory creates HTTP clients with proxy configuration.
type ClientFactory struct {
	proxyProvider  ProxyProvider
	testHTTPClient *http.Client // For testing only
}

// NewClientFactory creates a new client factory.
func NewClientFactory(proxyProvider ProxyProvider) *ClientFactory {
	if proxyProvider == nil {
		proxyProvider = &noopProxyProvider{}
	}
	return &ClientFactory{proxyProvider: proxyProvider}
}

// NewClientFactoryForTest creates a client factory that uses the given
// http.Client. This is only for use in tests.
func NewClientFactoryForTest(client *http.Client) *ClientFactory {
	return &ClientFactory{
		proxyProvider:  &noopProxyProvider{},
		testHTTPClient: client,
	}
}

// noopProxyProvider returns empty proxy URL.
type noopProxyProvider struct{}

func (p *noopProxyProvider) GetProxyURL(ctx context.Context) string {
	return ""
}

// StaticProxyProvider always returns the same proxy URL.
type StaticProxyProvider struct {
	URL string
}

func (p *StaticProxyProvider) GetProxyURL(ctx context.Context) string {
	return p.URL
}

// NewHTTPClient creates an http.Client with proxy configuration applied.
func (f *ClientFactory) NewHTTPClient(ctx context.Context, timeout time.Duration) *http.Client {
	if f.testHTTPClient != nil {
		return f.testHTTPClient
	}

	client := &http.Client{Timeout: timeout}

	proxyURL := f.proxyProvider.GetProxyURL(ctx)
	if proxyURL != "" {
		if parsed, err := url.Parse(proxyURL); err == nil {
			client.Transport = &http.Transport{
				Proxy: http.ProxyURL(parsed),
			}
		}
	}

	return client
}

// ExtractHost returns the lowercase host of a URL, or "" when it has none.
func ExtractHost(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}
