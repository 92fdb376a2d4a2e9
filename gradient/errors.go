// SPDX-License-Identifier: MIT

package gradient

import "errors"

var (
	// ErrBadPGM indicates a malformed or non-P5 PGM header.
	ErrBadPGM = errors.New("gradient: malformed pgm")
	// ErrUnsupportedMaxval indicates a PGM whose maxval is not 255.
	ErrUnsupportedMaxval = errors.New("gradient: only 8-bit pgm (maxval 255) is supported")
)
