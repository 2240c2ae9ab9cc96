package segy

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amitpendharkar/segy/descriptor"
	"github.com/amitpendharkar/segy/format"
)

// writeFixtureFile writes a minimal Rev0 SEG-Y file to disk: EBCDIC text
// header, binary header declaring 3 int16 samples per trace, and 4 traces.
func writeFixtureFile(t *testing.T) string {
	t.Helper()

	text := descriptor.TextHeaderDescriptor{Rows: 40, Cols: 80, Offset: 0, Encoding: format.EBCDIC}
	textBytes, err := text.Encode("C 1 CLIENT ROUND TRIP")
	require.NoError(t, err)

	binHeader := make([]byte, 400)
	binary.BigEndian.PutUint16(binHeader[20:22], 3) // samples_per_trace
	binary.BigEndian.PutUint16(binHeader[24:26], 3) // data_sample_format: int16

	var raw []byte
	raw = append(raw, textBytes...)
	raw = append(raw, binHeader...)
	for i := range 4 {
		trace := make([]byte, 240+3*2)
		binary.BigEndian.PutUint32(trace[0:4], uint32(i+1))
		for s := range 3 {
			binary.BigEndian.PutUint16(trace[240+2*s:242+2*s], uint16(int16(100*i+s)))
		}
		raw = append(raw, trace...)
	}

	path := filepath.Join(t.TempDir(), "line001.sgy")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestOpenLocalFileEndToEnd(t *testing.T) {
	path := writeFixtureFile(t)
	ctx := context.Background()

	f, err := Open(ctx, NewLocalFileFetcher(), path, WithStandard(Rev0))
	require.NoError(t, err)

	require.Equal(t, Standard(Rev0), f.Standard())
	require.Equal(t, 4, f.TraceCount())

	rec, err := f.Traces().At(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, int64(3), rec.Header["trace_seq_line"])
	require.Equal(t, []int16{200, 201, 202}, rec.Data.Int16)
}

func TestOpenLocalFileWithCache(t *testing.T) {
	path := writeFixtureFile(t)
	ctx := context.Background()

	f, err := Open(ctx, NewLocalFileFetcher(), path,
		WithStandard(Rev0),
		WithCache(NewCache()),
	)
	require.NoError(t, err)

	first, err := f.Data().At(ctx, 1)
	require.NoError(t, err)
	second, err := f.Data().At(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, first.Int16, second.Int16)
}

func TestNewRegistryIsIndependent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	specA, err := a.Get(descriptor.Rev0)
	require.NoError(t, err)
	specA.Trace.Data.Samples = 42

	specB, err := b.Get(descriptor.Rev0)
	require.NoError(t, err)
	require.Equal(t, 0, specB.Trace.Data.Samples)
}
