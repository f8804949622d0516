// Package linalg holds the dense float64 operands the CPU burners grind on.
package linalg

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Pair is a fixed set of square matrix operands. Both matrices are filled
// once at construction and only read afterwards, so a Pair is safe to share
// with exactly one worker and must not be shared across workers.
type Pair struct {
	size int
	a    *mat.Dense
	b    *mat.Dense
}

// NewPair allocates two size x size matrices filled with random values drawn
// from rng. size must be positive.
func NewPair(size int, rng *rand.Rand) (*Pair, error) {
	if size <= 0 {
		return nil, fmt.Errorf("linalg: matrix size must be positive, got %d", size)
	}

	return &Pair{
		size: size,
		a:    randomDense(size, rng),
		b:    randomDense(size, rng),
	}, nil
}

// Size returns the side length of the operand matrices.
func (p *Pair) Size() int {
	return p.size
}

// Multiply computes a*b into dst. dst is reused across calls so the hot loop
// does not allocate; an empty dst is resized to size x size on first use.
func (p *Pair) Multiply(dst *mat.Dense) {
	dst.Mul(p.a, p.b)
}

// NewResult allocates a destination matrix suitable for Multiply.
func (p *Pair) NewResult() *mat.Dense {
	return mat.NewDense(p.size, p.size, nil)
}

func randomDense(size int, rng *rand.Rand) *mat.Dense {
	data := make([]float64, size*size)
	for i := range data {
		data[i] = rng.Float64()
	}
	return mat.NewDense(size, size, data)
}
