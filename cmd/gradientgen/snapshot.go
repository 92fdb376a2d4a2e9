// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/katalvlaran/gridkit/grid"
)

// writeSnapshot stores g with its shape header so it can be restored
// without knowing the texture size.
func writeSnapshot(path string, g *grid.Grid[uint8]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("snapshot: %w", cerr)
		}
	}()

	return g.DumpWithHeader(bufio.NewWriter(f))
}

// readSnapshot restores a grid written by writeSnapshot.
func readSnapshot(path string) (*grid.Grid[uint8], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()

	g, err := grid.New[uint8](0, 0)
	if err != nil {
		return nil, err
	}
	if err = g.LoadWithHeader(bufio.NewReader(f)); err != nil {
		return nil, err
	}

	return g, nil
}
