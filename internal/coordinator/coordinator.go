package coordinator

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"forexquote/internal/forex"
)

// Coordinator splits a symbol list into batches, quotes every batch
// concurrently through one shared client and prints the results.
type Coordinator struct {
	client    forex.Client
	symbols   []string
	batchSize int
	session   *forex.Session
	out       io.Writer
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithSession passes session to every List call
func WithSession(session *forex.Session) Option {
	return func(c *Coordinator) {
		c.session = session
	}
}

// WithOutput redirects printed results to w
func WithOutput(w io.Writer) Option {
	return func(c *Coordinator) {
		c.out = w
	}
}

// New creates a new Coordinator. A batchSize below 1 puts every symbol in one batch.
func New(client forex.Client, symbols []string, batchSize int, opts ...Option) *Coordinator {
	c := &Coordinator{
		client:    client,
		symbols:   symbols,
		batchSize: batchSize,
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// batchResult is the outcome of one List call
type batchResult struct {
	symbols     []string
	pairs       []*forex.ForexPair
	providerErr *forex.ProviderError
	err         error
}

// Run quotes all batches concurrently and prints results as they arrive:
//   - Pair: "SYMBOL: price P (bid B / ask A, spread S) at TIME"
//     with " at TIME" left out when the quote carries no market time
//   - Provider error: "[S1,S2]: PROVIDER ERROR - message"
//   - Failure: "[S1,S2]: ERROR - message"
//
// Failed batches are reported per batch and do not fail the run.
func (c *Coordinator) Run(ctx context.Context) error {
	if len(c.symbols) == 0 {
		return fmt.Errorf("no symbols configured")
	}

	batches := Batches(c.symbols, c.batchSize)
	resultChan := make(chan batchResult, len(batches))

	var wg sync.WaitGroup
	for _, batch := range batches {
		wg.Add(1)
		go func(symbols []string) {
			defer wg.Done()
			resultChan <- c.quote(ctx, symbols)
		}(batch)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	for result := range resultChan {
		c.print(result)
	}

	return nil
}

func (c *Coordinator) quote(ctx context.Context, symbols []string) batchResult {
	params := forex.NewParams(symbols)
	params.Session = c.session

	iter, err := c.client.List(ctx, params)
	if err != nil {
		return batchResult{symbols: symbols, err: err}
	}

	result := batchResult{symbols: symbols, providerErr: iter.Err()}
	for rec, ok := iter.Next(); ok; rec, ok = iter.Next() {
		if rec.Kind == forex.KindForexPair {
			result.pairs = append(result.pairs, rec.ForexPair)
		}
	}
	return result
}

func (c *Coordinator) print(result batchResult) {
	batch := "[" + strings.Join(result.symbols, ",") + "]"

	if result.err != nil {
		fmt.Fprintf(c.out, "%s: ERROR - %v\n", batch, result.err)
		return
	}
	if result.providerErr != nil {
		fmt.Fprintf(c.out, "%s: PROVIDER ERROR - %v\n", batch, result.providerErr)
	}
	for _, p := range result.pairs {
		fmt.Fprintf(c.out, "%s: price %s (bid %s / ask %s, spread %s)",
			p.Symbol, p.RegularMarketPrice, p.Bid, p.Ask, p.Spread())
		if p.RegularMarketTime > 0 {
			fmt.Fprintf(c.out, " at %s", p.MarketTime().Format(time.RFC3339))
		}
		fmt.Fprintln(c.out)
	}
}

// Batches splits symbols into consecutive chunks of at most size entries
func Batches(symbols []string, size int) [][]string {
	if len(symbols) == 0 {
		return nil
	}
	if size < 1 {
		size = len(symbols)
	}

	batches := make([][]string, 0, (len(symbols)+size-1)/size)
	for start := 0; start < len(symbols); start += size {
		end := min(start+size, len(symbols))
		batches = append(batches, symbols[start:end])
	}
	return batches
}
