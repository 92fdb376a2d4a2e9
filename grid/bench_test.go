// Package grid_test provides benchmarks for grid access, resize and
// persistence paths.
package grid_test

import (
	"fmt"
	"io"
	"testing"
)

// benchSizes are the square grid extents to benchmark.
var benchSizes = []int{128, 512, 1024}

// sinks to defeat dead-code elimination
var (
	sinkV uint8
	sinkE error
)

func BenchmarkAt(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := mustGrid[uint8](b, n, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV, sinkE = g.At(i%n, (i/n)%n)
			}
		})
	}
}

func BenchmarkUncheckedLane(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := mustGrid[uint8](b, n, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = g.UncheckedLane(i % n).At((i / n) % n)
			}
		})
	}
}

func BenchmarkResizeHeight(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := mustGrid[uint8](b, n, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if i%2 == 0 {
					sinkE = g.ResizeHeight(n + 1)
				} else {
					sinkE = g.ResizeHeight(n)
				}
			}
		})
	}
}

func BenchmarkDump(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := mustGrid[uint8](b, n, n)
			b.SetBytes(int64(n * n))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkE = g.Dump(io.Discard)
			}
		})
	}
}
