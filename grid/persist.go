// SPDX-License-Identifier: MIT

// Package grid - raw binary persistence.
//
// Format: the cells of the store, data[0] through data[Size()-1], each in
// its fixed binary representation (encoding/binary rules) and the grid's
// byte order. No magic, no version, no shape. A Load must target a grid that
// already has the shape used at Dump time; a different cell count surfaces
// as ErrIOTruncated or as silently misplaced cells, never as a shape error.
//
// int, uint and uintptr cells (and named types over them) are written at the
// platform word size, strconv.IntSize bits. Structs are packed field by field
// as encoding/binary does, so alignment padding is not written:
// struct{ A uint8; B uint32 } takes 5 bytes per cell, not 8.

package grid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"unsafe"
)

const (
	ctxDump     = "Dump"
	ctxLoad     = "Load"
	ctxDumpFile = "DumpFile"
	ctxLoadFile = "LoadFile"
)

// flusher is implemented by buffered sinks such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// ElemSize returns the encoded size of one T in bytes, or -1 when T has no
// fixed size and cannot be persisted.
func (g *Grid[T]) ElemSize() int {
	var zero T
	if t := reflect.TypeOf(zero); t != nil {
		switch t.Kind() {
		case reflect.Int, reflect.Uint, reflect.Uintptr:
			return int(t.Size())
		}
	}

	return binary.Size(zero)
}

// wireView returns the store in a form encoding/binary accepts. Word-sized
// integer kinds are reinterpreted, without copying, as the fixed-width
// integer of the same size; every other T is returned as is.
func (g *Grid[T]) wireView() any {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil || len(g.data) == 0 {
		return g.data
	}
	p, n := unsafe.Pointer(unsafe.SliceData(g.data)), len(g.data)
	switch t.Kind() {
	case reflect.Int:
		if t.Size() == 8 {
			return unsafe.Slice((*int64)(p), n)
		}
		return unsafe.Slice((*int32)(p), n)
	case reflect.Uint, reflect.Uintptr:
		if t.Size() == 8 {
			return unsafe.Slice((*uint64)(p), n)
		}
		return unsafe.Slice((*uint32)(p), n)
	}

	return g.data
}

// Dump writes the raw store to w.
// MAIN DESCRIPTION:
//   - Emit Size()*ElemSize() bytes in offset order; no header.
//
// Implementation:
//   - Stage 1: reject element types without a fixed size.
//   - Stage 2: encode the whole store with the grid's byte order.
//   - Stage 3: write once, classify short writes, flush buffered sinks.
//
// Errors:
//   - ErrNotFixedSize when T cannot be encoded.
//   - ErrIOTruncated when the sink accepted some but fewer bytes than offered,
//     whether or not it also returned an error.
//   - ErrIO for any other write or flush failure (the cause stays wrapped).
//
// Complexity:
//   - Time O(w*h), one temporary buffer of Size()*ElemSize() bytes.
func (g *Grid[T]) Dump(w io.Writer) error {
	return g.dumpBody(w, g.opts.order, ctxDump)
}

func (g *Grid[T]) dumpBody(w io.Writer, order binary.ByteOrder, method string) error {
	if g.ElemSize() < 0 {
		return ioErrorf(method, ErrNotFixedSize, nil)
	}
	if len(g.data) > 0 {
		buf, err := binary.Append(nil, order, g.wireView())
		if err != nil {
			return ioErrorf(method, ErrNotFixedSize, err)
		}
		if err = writeFull(w, buf); err != nil {
			return classifyWrite(method, err)
		}
	}
	if f, ok := w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return classifyWrite(method, err)
		}
	}

	return nil
}

// writeFull writes buf. A write that stored some but not all of buf is
// reported as io.ErrShortWrite, with the sink's own error wrapped alongside.
// A write that stored nothing and failed keeps the sink's error alone.
func writeFull(w io.Writer, buf []byte) error {
	n, err := w.Write(buf)
	switch {
	case n < len(buf) && (n > 0 || err == nil):
		if err != nil {
			return fmt.Errorf("%w after %d of %d bytes: %w", io.ErrShortWrite, n, len(buf), err)
		}
		return io.ErrShortWrite
	case err != nil:
		return err
	}

	return nil
}

func classifyWrite(method string, err error) error {
	if errors.Is(err, io.ErrShortWrite) {
		return ioErrorf(method, ErrIOTruncated, err)
	}

	return ioErrorf(method, ErrIO, err)
}

// Load overwrites the store with exactly Size()*ElemSize() bytes read from r.
// The grid must already have the shape that was dumped; Load does not and
// cannot verify it.
//
// Errors:
//   - ErrNotFixedSize when T cannot be decoded.
//   - ErrIOTruncated when r ends before the store is full.
//   - ErrIO for any other read failure.
//
// The store is only written after the full payload has been read, so a
// failed Load leaves the cells as they were.
func (g *Grid[T]) Load(r io.Reader) error {
	return g.loadBody(r, g.opts.order, ctxLoad)
}

func (g *Grid[T]) loadBody(r io.Reader, order binary.ByteOrder, method string) error {
	size := g.ElemSize()
	if size < 0 {
		return ioErrorf(method, ErrNotFixedSize, nil)
	}
	if len(g.data) == 0 {
		return nil
	}
	buf := make([]byte, size*len(g.data))
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ioErrorf(method, ErrIOTruncated, err)
		}
		return ioErrorf(method, ErrIO, err)
	}

	return g.decodeBody(buf, order, method)
}

// decodeBody overwrites the store from buf, which holds exactly one body.
func (g *Grid[T]) decodeBody(buf []byte, order binary.ByteOrder, method string) error {
	if len(g.data) == 0 {
		return nil
	}
	if _, err := binary.Decode(buf, order, g.wireView()); err != nil {
		return ioErrorf(method, ErrIO, err)
	}

	return nil
}

// readBounded reads exactly n bytes from r. The buffer grows with the bytes
// actually received, so a length taken from untrusted input costs no more
// memory than the input really holds.
func readBounded(r io.Reader, n int64, method string) ([]byte, error) {
	var buf bytes.Buffer
	got, err := buf.ReadFrom(io.LimitReader(r, n))
	if err != nil {
		return nil, ioErrorf(method, ErrIO, err)
	}
	if got < n {
		return nil, ioErrorf(method, ErrIOTruncated, io.ErrUnexpectedEOF)
	}

	return buf.Bytes(), nil
}

// DumpFile creates (or truncates) path and writes the raw store to it.
// Create and close failures report ErrIO.
func (g *Grid[T]) DumpFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return ioErrorf(ctxDumpFile, ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = ioErrorf(ctxDumpFile, ErrIO, cerr)
		}
	}()

	return g.dumpBody(f, g.opts.order, ctxDumpFile)
}

// LoadFile reads the raw store from path. Open failures report ErrIO.
func (g *Grid[T]) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return ioErrorf(ctxLoadFile, ErrIO, err)
	}
	defer f.Close()

	return g.loadBody(f, g.opts.order, ctxLoadFile)
}
