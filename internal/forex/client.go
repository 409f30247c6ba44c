package forex

import (
	"context"
	"errors"
)

// QuoteEndpoint is the provider path for batch quote lookups
const QuoteEndpoint = "/v7/finance/quote"

// ErrNoBackend is returned by the package-level List before SetBackend is called
var ErrNoBackend = errors.New("forex: no backend configured")

// Client lists forex quotes through a Backend.
// A Client holds no per-call state and may be copied and shared freely.
type Client struct {
	B Backend
}

// NewClient creates a client that issues calls through b
func NewClient(b Backend) Client {
	return Client{B: b}
}

// List fetches quotes for params.Symbols with exactly one backend call.
//
// An empty symbol list fails with an error matching ErrEmptySymbols before
// anything is sent.
// Errors from the backend are returned unchanged. Errors reported by the
// provider are not failures; they are available from the returned Iter.
func (c Client) List(ctx context.Context, params *Params) (*Iter, error) {
	if params == nil || len(params.Symbols) == 0 {
		return nil, newEmptySymbolsError()
	}
	if c.B == nil {
		return nil, ErrNoBackend
	}

	body, err := params.encode()
	if err != nil {
		return nil, err
	}

	resp, err := c.B.Call(ctx, QuoteEndpoint, body, params.Session)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return newIter(nil, nil), nil
	}

	records := make([]Record, len(resp.Result))
	for i := range resp.Result {
		pair := resp.Result[i]
		records[i] = forexPairRecord(&pair)
	}

	return newIter(records, resp.Error), nil
}

var defaultClient Client

// SetBackend sets the backend used by the package-level List.
// It must be called before List is used from multiple goroutines.
func SetBackend(b Backend) {
	defaultClient.B = b
}

// List fetches quotes using the backend set with SetBackend
func List(ctx context.Context, params *Params) (*Iter, error) {
	return defaultClient.List(ctx, params)
}
