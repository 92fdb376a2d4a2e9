// SPDX-License-Identifier: MIT

// Command gradientgen writes a zig-zag test texture as a binary PGM.
//
// Usage:
//
//	gradientgen [-rows 1024] [-cols 1024] [-out tex.pgm] [-heatmap heat.png]
//	            [-snapshot tex.grid] [-verify]
//
// -rows is the image height and the grid's outer extent; -cols is the image
// width and the grid's inner extent.
// -snapshot additionally stores the grid with its self-describing header,
// and -verify reads every written file back and compares it with the
// generated grid.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/katalvlaran/gridkit/gradient"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/heatmap"
)

type config struct {
	rows, cols int
	out        string
	heatmap    string
	snapshot   string
	verify     bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.rows, "rows", 1024, "image height in pixels (grid outer extent)")
	flag.IntVar(&cfg.cols, "cols", 1024, "image width in pixels (grid inner extent)")
	flag.StringVar(&cfg.out, "out", "tex.pgm", "PGM output path")
	flag.StringVar(&cfg.heatmap, "heatmap", "", "optional heat map image path (.png, .svg, .pdf)")
	flag.StringVar(&cfg.snapshot, "snapshot", "", "optional path for a header-bearing grid dump")
	flag.BoolVar(&cfg.verify, "verify", false, "read outputs back and compare with the generated grid")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("gradientgen: %v", err)
	}
}

func run(cfg config) error {
	img, err := gradient.ZigZag(cfg.rows, cfg.cols)
	if err != nil {
		return err
	}
	log.Printf("generated %dx%d texture (%d bytes)", img.Height(), img.Width(), img.Size())

	if err = gradient.WritePGMFile(cfg.out, img); err != nil {
		return err
	}
	log.Printf("wrote %s", cfg.out)

	if cfg.snapshot != "" {
		if err = writeSnapshot(cfg.snapshot, img); err != nil {
			return err
		}
		log.Printf("wrote snapshot %s", cfg.snapshot)
	}

	if cfg.heatmap != "" {
		if err = heatmap.Save(cfg.heatmap, img, heatmap.WithTitle("zig-zag texture")); err != nil {
			return err
		}
		log.Printf("wrote heat map %s", cfg.heatmap)
	}

	if cfg.verify {
		if err = verify(cfg, img); err != nil {
			return err
		}
		log.Printf("verified round trip")
	}

	return nil
}

func verify(cfg config, want *grid.Grid[uint8]) error {
	got, err := gradient.ReadPGMFile(cfg.out)
	if err != nil {
		return err
	}
	if !grid.Equal(want, got) {
		return fmt.Errorf("verify %s: contents differ", cfg.out)
	}

	if cfg.snapshot != "" {
		snap, err := readSnapshot(cfg.snapshot)
		if err != nil {
			return err
		}
		if !grid.Equal(want, snap) {
			return fmt.Errorf("verify %s: contents differ", cfg.snapshot)
		}
	}

	return nil
}
