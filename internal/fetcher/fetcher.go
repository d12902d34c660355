//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"risible/backend/internal/model"
	"risible/backend/internal/network"
	"risible/backend/internal/parser"
	"risible/backend/pkg/logger"
)

const defaultUserAgent = "Risible/1.0 (+https://risible.app)"

// connectivityRetryDelay is how long a fetch waits before retrying once when
// the network looks down, instead of failing the feed instantly offline.
const connectivityRetryDelay = 2 * time.Second

// Fetcher retrieves one feed URL and returns its parsed, normalized form.
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) (*model.ParsedFeed, error)
}

// Options tune a single fetch. Zero values fall back to the defaults below.
type Options struct {
	RequestTimeout  time.Duration // per HTTP request, default 20s
	OverallTimeout  time.Duration // whole fetch including retry, default 30s
	HostMinInterval time.Duration // politeness gap between hits on one host
	UserAgent       string
}

type httpFetcher struct {
	clients *network.ClientFactory
	parser  *parser.Parser
	opts    Options

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func New(clients *network.ClientFactory, opts Options) Fetcher {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 20 * time.Second
	}
	if opts.OverallTimeout <= 0 {
		opts.OverallTimeout = 30 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	return &httpFetcher{
		clients:  clients,
		parser:   parser.New(),
		opts:     opts,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, feedURL string) (*model.ParsedFeed, error) {
	trimmedURL := strings.TrimSpace(feedURL)
	if !isValidURL(trimmedURL) {
		return nil, ErrInvalidURL
	}

	ctx, cancel := context.WithTimeout(ctx, f.opts.OverallTimeout)
	defer cancel()

	if err := f.waitForHost(ctx, trimmedURL); err != nil {
		return nil, classify(err)
	}

	body, err := f.get(ctx, trimmedURL)
	if err != nil {
		// One short grace period when connectivity looks down.
		if !errors.Is(err, ErrNoConnection) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, classify(ctx.Err())
		case <-time.After(connectivityRetryDelay):
		}
		logger.Debug("retrying fetch after connectivity wait", "module", "fetcher", "url", trimmedURL)
		if body, err = f.get(ctx, trimmedURL); err != nil {
			return nil, err
		}
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, ErrNoData
	}

	parsed, parseErr := f.parser.Parse(body)
	if parseErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsing, parseErr)
	}
	return parsed, nil
}

func (f *httpFetcher) get(ctx context.Context, feedURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, ErrInvalidURL
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	client := f.clients.NewHTTPClient(ctx, f.opts.RequestTimeout)
	resp, err := client.Do(req)
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &NetworkError{Cause: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(err)
	}
	return body, nil
}

// waitForHost spaces out requests to the same host. Each host gets its own
// limiter; hosts never block each other.
func (f *httpFetcher) waitForHost(ctx context.Context, feedURL string) error {
	if f.opts.HostMinInterval <= 0 {
		return nil
	}
	host := network.ExtractHost(feedURL)
	if host == "" {
		return nil
	}

	f.mu.Lock()
	limiter, ok := f.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(f.opts.HostMinInterval), 1)
		f.limiters[host] = limiter
	}
	f.mu.Unlock()

	return limiter.Wait(ctx)
}

// classify maps a raw transport error onto the closed error set.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return ErrCancelled
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ErrNoConnection
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) || errors.Is(err, syscall.ENETDOWN) {
		return ErrNoConnection
	}

	return &NetworkError{Cause: err}
}

func isValidURL(value string) bool {
	parsed, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}
