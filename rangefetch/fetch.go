package rangefetch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/amitpendharkar/segy/errs"
	"github.com/amitpendharkar/segy/rangeplan"
)

// Fetch issues one concurrent RangeRead per range, in request order, and
// returns their bytes in that same order regardless of completion order.
// If any range fails or ctx is cancelled, Fetch cancels the remaining
// in-flight reads and returns the first-observed error; no partial result
// is ever returned.
func Fetch(ctx context.Context, f Fetcher, url string, ranges []rangeplan.ByteRange) ([][]byte, error) {
	out := make([][]byte, len(ranges))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		group.Go(func() error {
			data, err := f.RangeRead(groupCtx, url, r.Start, r.End)
			if err != nil {
				return classifyFetchError(r, err)
			}
			if int64(len(data)) != r.Len() {
				return &errs.TruncatedBufferError{Expected: int(r.Len()), Actual: len(data)}
			}
			out[i] = data
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, errs.ErrCancelled
		}
		return nil, err
	}

	return out, nil
}

// classifyFetchError wraps a Fetcher-reported failure as errs.TransportError
// unless it is already a structured segy error (e.g. TruncatedBufferError
// surfaced by a Fetcher implementation that detected its own short read).
func classifyFetchError(r rangeplan.ByteRange, err error) error {
	var alreadyStructured *errs.TruncatedBufferError
	if errors.As(err, &alreadyStructured) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return errs.ErrCancelled
	}

	return &errs.TransportError{
		Kind:      errs.TransportFailure,
		Retriable: false,
		Cause:     fmt.Errorf("range [%d, %d): %w", r.Start, r.End, err),
	}
}
