package sweep_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathcost/grid"
	"github.com/katalvlaran/pathcost/sweep"
)

// benchmarkFind runs Find on a random rows×cols grid with the given workers.
func benchmarkFind(b *testing.B, rows, cols, workers int) {
	rng := rand.New(rand.NewSource(42))
	table := make([][]int, rows)
	for r := range table {
		table[r] = make([]int, cols)
		for c := range table[r] {
			table[r][c] = rng.Intn(10)
		}
	}
	g, err := grid.New(table)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sweep.Find(g, sweep.WithWorkers(workers)); err != nil {
			b.Fatalf("Find failed: %v", err)
		}
	}
}

// BenchmarkFind_Small benchmarks a 10×100 grid.
func BenchmarkFind_Small(b *testing.B) { benchmarkFind(b, 10, 100, 1) }

// BenchmarkFind_Tall benchmarks a 1000×100 grid sequentially.
func BenchmarkFind_Tall(b *testing.B) { benchmarkFind(b, 1000, 100, 1) }

// BenchmarkFind_TallParallel benchmarks the same grid with 4 workers.
func BenchmarkFind_TallParallel(b *testing.B) { benchmarkFind(b, 1000, 100, 4) }
