package forex

import (
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
)

// symbolField is the form field that carries the comma-joined symbol list
const symbolField = "sym"

// Params holds the input for a batch quote lookup.
//
// Symbols and Session are never form-encoded directly. Symbols is joined into
// the sym field and Session is handed to the backend unchanged. The remaining
// fields are optional and encoded by their url tags.
type Params struct {
	Session *Session `url:"-"`
	Symbols []string `url:"-"`

	Fields []string `url:"fields,comma,omitempty"`
	Region string   `url:"region,omitempty"`
	Lang   string   `url:"lang,omitempty"`
}

// NewParams creates parameters for the given currency-pair symbols.
// Nothing is validated until the params are used in a call.
func NewParams(symbols []string) *Params {
	return &Params{Symbols: symbols}
}

// encode builds a fresh form body from p. The generic encoding runs first,
// then sym is always overwritten with the comma-joined symbols.
func (p *Params) encode() (url.Values, error) {
	body, err := query.Values(p)
	if err != nil {
		return nil, &EncodingError{Cause: err}
	}

	body.Set(symbolField, strings.Join(p.Symbols, ","))
	return body, nil
}
