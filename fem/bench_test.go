package fem_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/modalcorr/fem"
)

// benchModes returns modes×(3·nodes) random shapes over nodes n0..n{nodes-1}.
func benchModes(b *testing.B, modes, nodes int, seed int64) *fem.ModeSet {
	b.Helper()
	s, err := fem.NewModeSet(modes, nodes)
	if err != nil {
		b.Fatal(err)
	}
	for k := 0; k < nodes; k++ {
		_ = s.SetNodeName(k, fmt.Sprintf("n%d", k))
	}
	rng := rand.New(rand.NewSource(seed))
	shape := make([]float64, s.Dim())
	for i := 0; i < modes; i++ {
		for k := range shape {
			shape[k] = rng.NormFloat64()
		}
		if err = s.SetMode(i, fmt.Sprintf("m%d", i), float64(i+1), shape); err != nil {
			b.Fatal(err)
		}
	}

	return s
}

// BenchmarkMAC compares sequential and parallel scoring of 60 modes over 500 nodes.
func BenchmarkMAC(b *testing.B) {
	first := benchModes(b, 60, 500, 1)
	last := benchModes(b, 60, 500, 2)
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = first.MAC(last, fem.WithWorkers(w))
			}
		})
	}
}

// BenchmarkOrthogonality includes the packed M·b products.
func BenchmarkOrthogonality(b *testing.B) {
	const nodes = 100
	first := benchModes(b, 20, nodes, 3)
	last := benchModes(b, 20, nodes, 4)
	mass, err := fem.NewMassMatrix(nodes)
	if err != nil {
		b.Fatal(err)
	}
	for k := 0; k < nodes; k++ {
		_ = mass.SetNodeName(k, fmt.Sprintf("n%d", k))
	}
	for k := 0; k < mass.Dim(); k++ {
		_ = mass.Set(k, k, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = first.Orthogonality(last, mass)
	}
}
