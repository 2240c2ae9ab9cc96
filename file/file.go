// Package file implements the reader's top-level entry point: opening a
// SEG-Y object over an injected rangefetch.Fetcher, decoding its text and
// binary file headers, specializing a descriptor.SegyDescriptor from the
// registry, and exposing the trace/header/data indexers over it.
package file

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/amitpendharkar/segy/descriptor"
	"github.com/amitpendharkar/segy/errs"
	"github.com/amitpendharkar/segy/format"
	"github.com/amitpendharkar/segy/indexer"
	"github.com/amitpendharkar/segy/rangefetch"
	"github.com/amitpendharkar/segy/registry"
)

const (
	textHeaderSize         = 3200
	binaryHeaderOffset     = 3200
	binaryHeaderSize       = 400
	traceRegionStart       = binaryHeaderOffset + binaryHeaderSize
	extTextHeaderSize      = 3200
	maxExtHeaderCandidates = 64
)

// File is one opened SEG-Y object: its decoded headers, specialized
// descriptor, and the three region-scoped indexers over its trace region.
type File struct {
	url        string
	fetcher    rangefetch.Fetcher
	descriptor *descriptor.SegyDescriptor
	textHeader string
	binHeader  indexer.Header
	traceCount int
	warnings   []error

	traces  *indexer.TraceIndexer
	headers *indexer.HeaderIndexer
	data    *indexer.DataIndexer
}

// Open reads url's text and binary file headers through fetcher,
// specializes a descriptor for the detected (or explicitly supplied) SEG-Y
// revision, and computes the file's trace count and byte layout.
func Open(ctx context.Context, fetcher rangefetch.Fetcher, url string, opts ...Option) (*File, error) {
	c := buildConfig(opts)

	reg := c.registry
	if reg == nil {
		reg = registry.New()
	}

	size, err := fetcher.Size(ctx, url)
	if err != nil {
		return nil, err
	}

	rawText, err := fetcher.RangeRead(ctx, url, 0, textHeaderSize)
	if err != nil {
		return nil, err
	}

	rawBinary, err := fetcher.RangeRead(ctx, url, binaryHeaderOffset, binaryHeaderOffset+binaryHeaderSize)
	if err != nil {
		return nil, err
	}

	standard := c.standard
	if standard == 0 {
		detected, ok := peekRevision(rawBinary)
		if !ok {
			return nil, errs.ErrNoRevisionField
		}
		standard = detected
	}

	desc, err := reg.Get(standard)
	if err != nil {
		return nil, err
	}

	textHeader, err := desc.TextFileHeader.Decode(rawText)
	if err != nil {
		return nil, err
	}

	binHeader := indexer.DecodeHeader(rawBinary, desc.BinaryFileHeader.Layout())

	fileEndianness := detectByteOrder(standard, rawBinary)
	if fileEndianness == format.LittleEndian {
		desc, err = desc.Customize(descriptor.CustomizeOptions{
			BinaryHeaderFields: withEndianness(desc.BinaryFileHeader.Fields(), format.LittleEndian),
			TraceHeaderFields:  withEndianness(desc.Trace.Header.Fields(), format.LittleEndian),
		})
		if err != nil {
			return nil, err
		}
		// Customize marks the result Custom; the file is still the detected
		// revision, only its byte order differs.
		desc.Standard = standard
		binHeader = indexer.DecodeHeader(rawBinary, desc.BinaryFileHeader.Layout())
	} else {
		fileEndianness = format.BigEndian
	}

	samplesPerTrace, ok := asInt(binHeader["samples_per_trace"])
	if !ok {
		return nil, fmt.Errorf("file: binary header missing samples_per_trace")
	}

	formatCode, ok := asInt(binHeader["data_sample_format"])
	if !ok {
		return nil, fmt.Errorf("file: binary header missing data_sample_format")
	}
	sampleFormat, err := sampleFormatFromCode(formatCode)
	if err != nil {
		return nil, err
	}

	declaredExt := 0
	if v, ok := binHeader["num_extended_text_headers"]; ok {
		n, _ := asInt(v)
		declaredExt = int(n)
	}

	desc.Trace.Data.Samples = int(samplesPerTrace)
	desc.Trace.Data.Format = sampleFormat
	desc.Trace.Data.Endianness = fileEndianness
	desc.Trace.Offset = int64(traceRegionStart) + int64(declaredExt)*extTextHeaderSize

	stride := int64(desc.Trace.Stride())
	if stride <= 0 {
		return nil, fmt.Errorf("file: descriptor produced a non-positive trace stride")
	}

	traceRegionSize := size - desc.Trace.Offset
	if traceRegionSize < 0 {
		return nil, fmt.Errorf("file: trace region offset %d exceeds file size %d", desc.Trace.Offset, size)
	}

	traceCount := int(traceRegionSize / stride)
	remainder := traceRegionSize % stride

	var warnings []error
	if remainder != 0 {
		warnings = append(warnings, &errs.MisalignedFileError{Remainder: remainder})
	}
	if implied, ok := inferExtTextHeaderCount(size, stride, maxExtHeaderCandidates); ok && implied != declaredExt {
		warnings = append(warnings, &errs.ExtTextHeaderCountMismatchError{Declared: declaredExt, Implied: implied})
	}

	activeFetcher := c.wrapFetcher(fetcher, url)

	f := &File{
		url:        url,
		fetcher:    activeFetcher,
		descriptor: desc,
		textHeader: textHeader,
		binHeader:  binHeader,
		traceCount: traceCount,
		warnings:   warnings,
	}

	indexerOpts := []indexer.Option{indexer.WithMaxBlock(c.maxBlock)}
	f.traces = indexer.NewTraceIndexer(desc.Trace, activeFetcher, url, traceCount, indexerOpts...)
	f.headers = indexer.NewHeaderIndexer(desc.Trace, activeFetcher, url, traceCount, indexerOpts...)
	f.data = indexer.NewDataIndexer(desc.Trace, activeFetcher, url, traceCount, indexerOpts...)

	return f, nil
}

// Standard returns the SEG-Y revision this file was opened against.
func (f *File) Standard() descriptor.SegyStandard { return f.descriptor.Standard }

// TraceCount returns the number of complete trace records in the file.
func (f *File) TraceCount() int { return f.traceCount }

// TextHeader returns the decoded 3200-byte textual file header.
func (f *File) TextHeader() string { return f.textHeader }

// BinaryHeader returns the decoded binary file header fields.
func (f *File) BinaryHeader() indexer.Header { return f.binHeader }

// Warnings returns the advisory (non-fatal) conditions detected while
// opening the file: a misaligned trailing trace region, or an extended
// -text-header count that disagrees with what the file's byte layout
// implies. Open never fails for these; the caller decides whether to act
// on them.
func (f *File) Warnings() []error { return f.warnings }

// Descriptor returns the specialized descriptor this file was opened
// against, for callers that want to inspect or further Customize it (e.g.
// to open a second File sharing schema but not state).
func (f *File) Descriptor() *descriptor.SegyDescriptor { return f.descriptor }

// Traces returns the whole-trace (header + data) indexer.
func (f *File) Traces() *indexer.TraceIndexer { return f.traces }

// Headers returns the header-only indexer.
func (f *File) Headers() *indexer.HeaderIndexer { return f.headers }

// Data returns the sample-data-only indexer.
func (f *File) Data() *indexer.DataIndexer { return f.data }

// peekRevision reads the binary header's revision field directly,
// bypassing descriptor resolution (which does not exist yet at this point
// in Open), to choose which registry template to specialize.
func peekRevision(rawBinary []byte) (descriptor.SegyStandard, bool) {
	raw := binary.BigEndian.Uint16(rawBinary[300:302])
	switch {
	case raw == 0:
		return 0, false
	case raw == 1 || raw == 0x0100:
		return descriptor.Rev1, true
	case raw == 2 || raw == 0x0200:
		return descriptor.Rev2, true
	case raw == 0x0201:
		return descriptor.Rev21, true
	default:
		return descriptor.Rev1, true
	}
}

// detectByteOrder reads the Rev2 byte-order-verification marker directly
// from the raw bytes, independent of any field decode: the marker's
// purpose is precisely to reveal whether the declared-BigEndian field
// layout was wrong, so it must be read without trusting that layout.
// Rev0/Rev1 files have no such field and are always BigEndian.
func detectByteOrder(standard descriptor.SegyStandard, rawBinary []byte) format.Endianness {
	if standard != descriptor.Rev2 && standard != descriptor.Rev21 {
		return format.BigEndian
	}

	marker := rawBinary[96:100]
	switch {
	case marker[0] == 0x01 && marker[1] == 0x02 && marker[2] == 0x03 && marker[3] == 0x04:
		return format.BigEndian
	case marker[0] == 0x04 && marker[1] == 0x03 && marker[2] == 0x02 && marker[3] == 0x01:
		return format.LittleEndian
	default:
		return format.BigEndian
	}
}

// withEndianness returns a copy of fields with every field's declared
// Endianness overridden to e, for Customize-ing a descriptor whose byte
// order was only discoverable after the fact (see detectByteOrder).
func withEndianness(fields []descriptor.StructuredFieldDescriptor, e format.Endianness) []descriptor.StructuredFieldDescriptor {
	out := make([]descriptor.StructuredFieldDescriptor, len(fields))
	for i, f := range fields {
		f.Endianness = e
		out[i] = f
	}
	return out
}

// inferExtTextHeaderCount searches small candidate counts for the one that
// makes the trace region divide evenly by stride, to cross-check the
// binary header's declared count. It reports ok=false if no candidate in
// [0, maxCandidates] fits, in which case no mismatch warning is raised
// (the declared count is used as-is and any misalignment already surfaces
// via MisalignedFileError).
func inferExtTextHeaderCount(size, stride int64, maxCandidates int) (int, bool) {
	for d := 0; d <= maxCandidates; d++ {
		offset := int64(traceRegionStart) + int64(d)*extTextHeaderSize
		if offset > size {
			break
		}
		if (size-offset)%stride == 0 {
			return d, true
		}
	}
	return 0, false
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}
