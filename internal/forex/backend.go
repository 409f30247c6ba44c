package forex

import (
	"context"
	"net/url"
)

// Session is an externally acquired handle used to authenticate calls.
// The client never inspects it; it is passed to the Backend unchanged.
type Session struct {
	Crumb  string
	Cookie string
}

// Response is the decoded provider envelope for one call
type Response struct {
	Result []ForexPair
	Error  *ProviderError
}

// Backend performs a single network call against the quote provider.
//
// Implementations must be safe for concurrent use and must report every
// failure to reach the provider or decode its reply as a returned error.
// Retries, timeouts and connection pooling belong to the implementation.
type Backend interface {
	Call(ctx context.Context, endpoint string, body url.Values, session *Session) (*Response, error)
}
