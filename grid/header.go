// SPDX-License-Identifier: MIT

// Package grid - optional self-describing dump.
//
// DumpWithHeader prefixes the raw body with a fixed 26-byte header so that a
// reader can restore the shape without out-of-band knowledge. It is an
// opt-in extension; Dump/Load keep the headerless format.
//
//	offset  size  field
//	0       4     magic "CNGR"
//	4       1     version (1)
//	5       1     body byte order (0 little-endian, 1 big-endian)
//	6       4     element size in bytes   (big-endian uint32)
//	10      8     width                   (big-endian uint64)
//	18      8     height                  (big-endian uint64)
//	26      ...   raw body, as written by Dump

package grid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	ctxDumpHeader = "DumpWithHeader"
	ctxLoadHeader = "LoadWithHeader"
)

const (
	headerMagic   = "CNGR"
	headerVersion = 1
	headerSize    = 26

	orderLittle byte = 0
	orderBig    byte = 1
)

// orderTag reports which of the two portable byte orders order behaves like.
func orderTag(order binary.ByteOrder) byte {
	if order.Uint16([]byte{0x00, 0x01}) == 1 {
		return orderBig
	}

	return orderLittle
}

// DumpWithHeader writes the header described above followed by the raw body.
// Errors are those of Dump.
func (g *Grid[T]) DumpWithHeader(w io.Writer) error {
	size := g.ElemSize()
	if size < 0 {
		return ioErrorf(ctxDumpHeader, ErrNotFixedSize, nil)
	}
	hdr := make([]byte, 0, headerSize)
	hdr = append(hdr, headerMagic...)
	hdr = append(hdr, headerVersion, orderTag(g.opts.order))
	hdr = binary.BigEndian.AppendUint32(hdr, uint32(size))
	hdr = binary.BigEndian.AppendUint64(hdr, uint64(g.w))
	hdr = binary.BigEndian.AppendUint64(hdr, uint64(g.h))
	if err := writeFull(w, hdr); err != nil {
		return classifyWrite(ctxDumpHeader, err)
	}

	return g.dumpBody(w, g.opts.order, ctxDumpHeader)
}

// LoadWithHeader reads a header, resizes the grid to the recorded shape and
// loads the body using the recorded byte order.
//
// Errors:
//   - ErrBadHeader for a wrong magic, an unknown version or byte order tag,
//     an element size that differs from ElemSize(), or an unrepresentable shape.
//   - ErrIOTruncated / ErrIO as in Load.
//
// The body is read in full before the grid is resized, so a header that
// claims more cells than the stream carries fails with ErrIOTruncated and
// leaves the grid untouched.
func (g *Grid[T]) LoadWithHeader(r io.Reader) error {
	size := g.ElemSize()
	if size < 0 {
		return ioErrorf(ctxLoadHeader, ErrNotFixedSize, nil)
	}
	hdr := make([]byte, headerSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ioErrorf(ctxLoadHeader, ErrIOTruncated, err)
		}
		return ioErrorf(ctxLoadHeader, ErrIO, err)
	}

	w, h, order, err := parseHeader(hdr, size)
	if err != nil {
		return ioErrorf(ctxLoadHeader, ErrBadHeader, err)
	}
	body, err := readBounded(r, int64(w)*int64(h)*int64(size), ctxLoadHeader)
	if err != nil {
		return err
	}
	if err = g.Resize(w, h); err != nil {
		return ioErrorf(ctxLoadHeader, ErrBadHeader, err)
	}

	return g.decodeBody(body, order, ctxLoadHeader)
}

// parseHeader validates hdr and returns the recorded shape and byte order.
func parseHeader(hdr []byte, elemSize int) (w, h int, order binary.ByteOrder, err error) {
	if !bytes.Equal(hdr[:4], []byte(headerMagic)) {
		return 0, 0, nil, fmt.Errorf("magic %q", hdr[:4])
	}
	if hdr[4] != headerVersion {
		return 0, 0, nil, fmt.Errorf("version %d", hdr[4])
	}
	switch hdr[5] {
	case orderLittle:
		order = binary.LittleEndian
	case orderBig:
		order = binary.BigEndian
	default:
		return 0, 0, nil, fmt.Errorf("byte order tag %d", hdr[5])
	}
	if got := binary.BigEndian.Uint32(hdr[6:10]); uint64(got) != uint64(elemSize) {
		return 0, 0, nil, fmt.Errorf("element size %d, want %d", got, elemSize)
	}
	uw := binary.BigEndian.Uint64(hdr[10:18])
	uh := binary.BigEndian.Uint64(hdr[18:26])
	if uw > math.MaxInt || uh > math.MaxInt {
		return 0, 0, nil, fmt.Errorf("shape %dx%d", uw, uh)
	}
	n, cerr := cellCount(int(uw), int(uh))
	if cerr != nil || (elemSize > 0 && n > math.MaxInt/elemSize) {
		return 0, 0, nil, fmt.Errorf("shape %dx%d", uw, uh)
	}

	return int(uw), int(uh), order, nil
}
