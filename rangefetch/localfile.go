package rangefetch

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/amitpendharkar/segy/errs"
	"github.com/amitpendharkar/segy/internal/pool"
)

// Option configures the reference fetchers in this package.
type Option func(*config)

type config struct {
	log *zap.Logger
}

// WithLogger attaches a logger for per-range read diagnostics at Debug
// level. The default is a no-op logger; pure computation elsewhere in the
// module never logs.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) { c.log = log }
}

func buildConfig(opts []Option) config {
	c := config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LocalFileFetcher is a reference Fetcher reading byte ranges from local
// files on disk, keyed by path (the "url" argument is a filesystem path).
// It is provided so tests and examples can exercise the indexer family
// against a real file without an HTTP or object-storage dependency; the
// actual backend for a given deployment is supplied by the embedder.
type LocalFileFetcher struct {
	log *zap.Logger
}

// NewLocalFileFetcher returns a Fetcher over the local filesystem.
func NewLocalFileFetcher(opts ...Option) *LocalFileFetcher {
	c := buildConfig(opts)
	return &LocalFileFetcher{log: c.log}
}

func (l *LocalFileFetcher) Size(_ context.Context, path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, translateOSError(path, err)
	}
	return info.Size(), nil
}

func (l *LocalFileFetcher) RangeRead(_ context.Context, path string, start, end int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, translateOSError(path, err)
	}
	defer f.Close()

	want := int(end - start)

	buf := pool.GetRangeBuffer()
	defer pool.PutRangeBuffer(buf)
	buf.Reset()
	buf.ExtendOrGrow(want)

	n, err := io.ReadFull(io.NewSectionReader(f, start, end-start), buf.Bytes())
	if err != nil {
		return nil, &errs.TruncatedBufferError{Expected: want, Actual: n}
	}

	l.log.Debug("rangefetch: local range read",
		zap.String("path", path),
		zap.Int64("start", start),
		zap.Int64("end", end),
	)

	out := make([]byte, want)
	copy(out, buf.Bytes())
	return out, nil
}

func translateOSError(path string, err error) error {
	if os.IsNotExist(err) {
		return &errs.TransportError{Kind: errs.TransportNotFound, Retriable: false, Cause: err}
	}
	if os.IsPermission(err) {
		return &errs.TransportError{Kind: errs.TransportPermissionDenied, Retriable: false, Cause: err}
	}
	return &errs.TransportError{Kind: errs.TransportFailure, Retriable: true, Cause: fmt.Errorf("%s: %w", path, err)}
}
