// SPDX-License-Identifier: MIT

package gradient

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/gridkit/grid"
)

const (
	pgmMagic  = "P5"
	pgmMaxval = 255
)

// WritePGM writes g as a binary PGM: header "P5\n<cols> <rows>\n255\n"
// followed by the raw store. cols is g.Height(), rows is g.Width().
func WritePGM(w io.Writer, g *grid.Grid[uint8]) error {
	if _, err := fmt.Fprintf(w, "%s\n%d %d\n%d\n", pgmMagic, g.Height(), g.Width(), pgmMaxval); err != nil {
		return fmt.Errorf("gradient: write pgm header: %w", err)
	}
	if err := g.Dump(w); err != nil {
		return fmt.Errorf("gradient: write pgm body: %w", err)
	}

	return nil
}

// WritePGMFile writes g to path through a buffered writer.
func WritePGMFile(path string, g *grid.Grid[uint8]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gradient: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("gradient: %w", cerr)
		}
	}()

	// Dump flushes the buffered writer once the body is written.
	return WritePGM(bufio.NewWriter(f), g)
}

// ReadPGM parses a binary PGM with maxval 255 into a grid whose outer extent
// is the image height (rows) and inner extent the image width (columns).
// Header comments ('#' to end of line) are skipped.
func ReadPGM(r io.Reader) (*grid.Grid[uint8], error) {
	br := bufio.NewReader(r)

	magic, err := pgmToken(br)
	if err != nil {
		return nil, err
	}
	if magic != pgmMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadPGM, magic)
	}
	var dims [3]int
	for i, name := range []string{"width", "height", "maxval"} {
		tok, err := pgmToken(br)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %s %q", ErrBadPGM, name, tok)
		}
		dims[i] = n
	}
	if dims[2] != pgmMaxval {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedMaxval, dims[2])
	}
	if dims[0] > 0 && dims[1] > math.MaxInt/dims[0] {
		return nil, fmt.Errorf("%w: %dx%d pixels", ErrBadPGM, dims[0], dims[1])
	}
	// pgmToken consumed the single whitespace byte after maxval.

	// The body is buffered as it arrives, so the header's claimed size is
	// never allocated up front.
	want := int64(dims[0]) * int64(dims[1])
	var body bytes.Buffer
	got, err := body.ReadFrom(io.LimitReader(br, want))
	if err != nil {
		return nil, fmt.Errorf("gradient: read pgm body: %w", err)
	}
	if got < want {
		return nil, fmt.Errorf("gradient: read pgm body: %w: %d of %d bytes", grid.ErrIOTruncated, got, want)
	}

	g, err := grid.New[uint8](dims[1], dims[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPGM, err)
	}
	if err = g.Load(&body); err != nil {
		return nil, fmt.Errorf("gradient: read pgm body: %w", err)
	}

	return g, nil
}

// ReadPGMFile opens path and parses it with ReadPGM.
func ReadPGMFile(path string) (*grid.Grid[uint8], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gradient: %w", err)
	}
	defer f.Close()

	return ReadPGM(f)
}

// pgmToken returns the next whitespace-delimited header token and consumes
// exactly one whitespace byte after it.
func pgmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("%w: header ends early", ErrBadPGM)
			}
			return "", fmt.Errorf("gradient: read pgm header: %w", err)
		}
		switch {
		case c == '#' && len(tok) == 0:
			if _, err = br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: unterminated comment", ErrBadPGM)
			}
		case isSpace(c):
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, c)
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
