package benchmarks

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/hsranjan/matburn/internal/compute"
	"github.com/hsranjan/matburn/internal/linalg"
)

// Multiply-step benchmarks across operand sizes, for sizing burn
// configurations against a target iteration rate.

func BenchmarkPairMultiply(b *testing.B) {
	for _, size := range []int{64, 256, 512} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			pair, err := linalg.NewPair(size, rand.New(rand.NewSource(1)))
			if err != nil {
				b.Fatal(err)
			}
			dst := pair.NewResult()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pair.Multiply(dst)
			}
		})
	}
}

func BenchmarkTensorMulStep(b *testing.B) {
	for _, size := range []int{64, 256, 512} {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			backend := compute.NewTensorBackend(rand.New(rand.NewSource(1)))
			if err := backend.Prepare(size); err != nil {
				b.Fatal(err)
			}
			defer func() { _ = backend.Release() }()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := backend.MulStep(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
