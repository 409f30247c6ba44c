package forex

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind tags the concrete type held by a Record
type RecordKind int

const (
	// KindUnknown is the zero value and never produced by List
	KindUnknown RecordKind = iota
	// KindForexPair marks a currency-pair quote
	KindForexPair
)

// String returns the name of the kind
func (k RecordKind) String() string {
	switch k {
	case KindForexPair:
		return "forex_pair"
	default:
		return "unknown"
	}
}

// Record is one result item. Exactly one payload field is set, selected by Kind.
type Record struct {
	Kind      RecordKind
	ForexPair *ForexPair
}

func forexPairRecord(p *ForexPair) Record {
	return Record{Kind: KindForexPair, ForexPair: p}
}

// ForexPair is a quote for a single currency pair, e.g. EURUSD=X
type ForexPair struct {
	Symbol           string `json:"symbol"`
	ShortName        string `json:"shortName"`
	Currency         string `json:"currency"`
	QuoteType        string `json:"quoteType"`
	MarketState      string `json:"marketState"`
	Exchange         string `json:"exchange"`
	FullExchangeName string `json:"fullExchangeName"`

	Bid decimal.Decimal `json:"bid"`
	Ask decimal.Decimal `json:"ask"`

	RegularMarketPrice         decimal.Decimal `json:"regularMarketPrice"`
	RegularMarketChange        decimal.Decimal `json:"regularMarketChange"`
	RegularMarketChangePercent decimal.Decimal `json:"regularMarketChangePercent"`
	RegularMarketDayHigh       decimal.Decimal `json:"regularMarketDayHigh"`
	RegularMarketDayLow        decimal.Decimal `json:"regularMarketDayLow"`
	RegularMarketOpen          decimal.Decimal `json:"regularMarketOpen"`
	RegularMarketPreviousClose decimal.Decimal `json:"regularMarketPreviousClose"`
	RegularMarketTime          int64           `json:"regularMarketTime"`

	FiftyTwoWeekHigh decimal.Decimal `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  decimal.Decimal `json:"fiftyTwoWeekLow"`
}

// MarketTime returns RegularMarketTime as a time.Time in UTC
func (p *ForexPair) MarketTime() time.Time {
	return time.Unix(p.RegularMarketTime, 0).UTC()
}

// Spread returns Ask minus Bid
func (p *ForexPair) Spread() decimal.Decimal {
	return p.Ask.Sub(p.Bid)
}
