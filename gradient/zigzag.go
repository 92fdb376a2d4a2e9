// SPDX-License-Identifier: MIT

package gradient

import (
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
)

const (
	// period is the length of one full inversion cycle, in cells.
	period = 512
	// halfPeriod marks the lane (and cell) that gets inverted in every period.
	halfPeriod = period / 2
)

// ZigZag returns a width×height zig-zag texture.
//
// Lane y=a is seeded with a gray level that climbs from 0 to 256 and back as
// a grows. Along the lane the level walks up or down by one per cell and
// turns around every time it wraps through zero; the turn direction carries
// over from one lane to the next. Lanes with a%512 == 256 are inverted, and
// the cell with both a%512 == 256 and x%512 == 256 is inverted once more.
//
// Complexity: O(width*height).
func ZigZag(width, height int) (*grid.Grid[uint8], error) {
	g, err := grid.New[uint8](width, height)
	if err != nil {
		return nil, fmt.Errorf("gradient: zigzag %dx%d: %w", width, height, err)
	}

	var xdir, ydir bool
	var seed uint
	for a := 0; a < height; a++ {
		v := uint8(seed)
		band := a%period == halfPeriod
		for b := 0; b < width; b++ {
			c := v
			if band || (xdir && v == 0) {
				c = 255 - v
			}
			if band && b%period == halfPeriod {
				c = 255 - c
			}
			g.UncheckedLane(b).Set(a, c)

			if v == 0 {
				xdir = !xdir
			}
			if xdir {
				v++
			} else {
				v--
			}
		}
		if seed%256 == 0 {
			ydir = !ydir
		}
		if ydir {
			seed++
		} else {
			seed--
		}
	}

	return g, nil
}
