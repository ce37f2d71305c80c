package reconcile

import "fmt"

// Partition splits items into ordered contiguous batches of at most
// maxBatchSize elements. Concatenating the batches reproduces the input in
// its original order; only the last batch may be shorter. Empty input
// yields zero batches. A non-positive maxBatchSize is a caller error and
// returns ErrInvalidBatchSize.
func Partition[T any](items []T, maxBatchSize int) ([][]T, error) {
	if maxBatchSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBatchSize, maxBatchSize)
	}

	if len(items) == 0 {
		return nil, nil
	}

	batches := make([][]T, 0, (len(items)+maxBatchSize-1)/maxBatchSize)
	for start := 0; start < len(items); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches, nil
}
