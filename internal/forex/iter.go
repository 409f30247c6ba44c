package forex

// Iter holds the records and provider error returned by one List call.
//
// Next hands records back last-in-first-out, so callers must not rely on
// arrival order. An Iter is meant for a single consumer.
type Iter struct {
	records []Record
	err     *ProviderError
}

func newIter(records []Record, err *ProviderError) *Iter {
	return &Iter{records: records, err: err}
}

// ForexPair returns the first-inserted remaining record as a forex pair.
// It returns nil when the iterator is empty or that record is another kind.
// It does not advance the iterator.
func (it *Iter) ForexPair() *ForexPair {
	if len(it.records) == 0 {
		return nil
	}
	first := it.records[0]
	if first.Kind != KindForexPair {
		return nil
	}
	return first.ForexPair
}

// Next removes and returns the most recently inserted remaining record.
// The second result is false once the iterator is exhausted, and stays false.
func (it *Iter) Next() (Record, bool) {
	n := len(it.records)
	if n == 0 {
		return Record{}, false
	}

	rec := it.records[n-1]
	it.records[n-1] = Record{}
	it.records = it.records[:n-1]
	return rec, true
}

// Err returns the error reported by the provider, if any
func (it *Iter) Err() *ProviderError {
	return it.err
}

// Len returns the number of records not yet consumed by Next
func (it *Iter) Len() int {
	return len(it.records)
}
