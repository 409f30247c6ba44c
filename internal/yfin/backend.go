package yfin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/url"
	"time"

	"resty.dev/v3"

	"forexquote/internal/forex"
	"forexquote/internal/metrics"
	"forexquote/internal/ratelimit"
	"forexquote/internal/transport"
)

// DefaultBaseURL is the production quote API
const DefaultBaseURL = "https://query1.finance.yahoo.com"

const providerName = "yfin"

type quoteResult struct {
	Result []forex.ForexPair    `json:"result"`
	Error  *forex.ProviderError `json:"error"`
}

// quoteEnvelope is the wire shape of a quote response. Requests rejected
// before reaching the quote service (bad crumb, unknown endpoint) come back
// under "finance" instead of "quoteResponse".
type quoteEnvelope struct {
	QuoteResponse *quoteResult `json:"quoteResponse"`
	Finance       *quoteResult `json:"finance"`
}

// errMissingEnvelope is the decode cause for a body with neither envelope
var errMissingEnvelope = errors.New("response has no quoteResponse object")

// result picks the populated envelope. A finance envelope only counts when it
// carries an error; its result is never a quote list.
func (e *quoteEnvelope) result() (*quoteResult, error) {
	switch {
	case e.QuoteResponse != nil:
		return e.QuoteResponse, nil
	case e.Finance != nil && e.Finance.Error != nil:
		return &quoteResult{Error: e.Finance.Error}, nil
	default:
		return nil, errMissingEnvelope
	}
}

// Backend calls the Yahoo Finance quote API. It keeps no per-call state and
// is safe to share between clients and goroutines.
type Backend struct {
	client  *resty.Client
	limiter *ratelimit.Limiter
}

// Option configures a Backend
type Option func(*Backend)

// WithLimiter makes every call wait on l before it is sent
func WithLimiter(l *ratelimit.Limiter) Option {
	return func(b *Backend) {
		b.limiter = l
	}
}

// WithRetryCount overrides the number of retries for failed requests
func WithRetryCount(n int) Option {
	return func(b *Backend) {
		b.client.SetRetryCount(n)
	}
}

// WithTimeout sets a per-request timeout on the underlying HTTP client
func WithTimeout(d time.Duration) Option {
	return func(b *Backend) {
		b.client.SetTimeout(d)
	}
}

// New creates a backend that talks to baseURL
func New(baseURL string, opts ...Option) *Backend {
	b := &Backend{
		client: transport.NewHTTPClient(baseURL),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Call sends body as the query of a GET to endpoint and decodes the quote
// envelope. Every failure is returned as a *transport.TransportError.
func (b *Backend) Call(ctx context.Context, endpoint string, body url.Values, session *forex.Session) (*forex.Response, error) {
	startedAt := time.Now()

	if b.limiter != nil {
		if err := b.limiter.Wait(ctx, ratelimit.APIYahooFinance); err != nil {
			return nil, b.fail(transport.FromRequestError(err), startedAt)
		}
	}

	req := b.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(body)

	if session != nil {
		if session.Crumb != "" {
			req.SetQueryParam("crumb", session.Crumb)
		}
		if session.Cookie != "" {
			req.SetHeader("Cookie", session.Cookie)
		}
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		return nil, b.fail(transport.FromRequestError(err), startedAt)
	}

	slog.Debug("quote response received",
		"endpoint", endpoint,
		"symbols", body.Get("sym"),
		"status_code", resp.StatusCode())

	if !resp.IsSuccess() {
		return nil, b.fail(transport.ClassifyHTTPError(resp.StatusCode()), startedAt)
	}

	var envelope quoteEnvelope
	if err := json.Unmarshal(resp.Bytes(), &envelope); err != nil {
		return nil, b.fail(transport.NewDecodeError(err), startedAt)
	}

	quotes, err := envelope.result()
	if err != nil {
		return nil, b.fail(transport.NewDecodeError(err), startedAt)
	}

	outcome := metrics.OutcomeOK
	if quotes.Error != nil {
		outcome = metrics.OutcomeProviderError
		slog.Warn("quote provider reported an error",
			"code", quotes.Error.Code,
			"description", quotes.Error.Description)
	}
	metrics.ObserveBackendCall(providerName, outcome, startedAt)

	return &forex.Response{
		Result: quotes.Result,
		Error:  quotes.Error,
	}, nil
}

func (b *Backend) fail(err *transport.TransportError, startedAt time.Time) error {
	metrics.ObserveBackendCall(providerName, string(err.Type), startedAt)
	slog.Debug("quote request failed", "type", err.Type, "error", err.Error())
	return err
}
