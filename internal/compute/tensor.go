package compute

import (
	"errors"
	"fmt"
	"math/rand"

	"gorgonia.org/tensor"
)

// ErrNotPrepared is returned by MulStep when Prepare has not run.
var ErrNotPrepared = errors.New("compute: backend not prepared")

// TensorBackend runs the multiply on float32 tensors through the tensor
// package's standard engine. It is the fallback engine when no GPU build is
// in play; an accelerated build swaps the engine, not the loop.
type TensorBackend struct {
	rng *rand.Rand

	a   *tensor.Dense
	b   *tensor.Dense
	out *tensor.Dense
}

// NewTensorBackend returns an unprepared backend drawing operand values
// from rng.
func NewTensorBackend(rng *rand.Rand) *TensorBackend {
	return &TensorBackend{rng: rng}
}

func (t *TensorBackend) Name() string {
	return "tensor/cpu"
}

// Prepare allocates the operand and result tensors. size must be positive.
func (t *TensorBackend) Prepare(size int) error {
	if size <= 0 {
		return fmt.Errorf("compute: tensor size must be positive, got %d", size)
	}

	t.a = tensor.New(tensor.WithShape(size, size), tensor.WithBacking(t.randomBacking(size)))
	t.b = tensor.New(tensor.WithShape(size, size), tensor.WithBacking(t.randomBacking(size)))
	t.out = tensor.New(tensor.Of(tensor.Float32), tensor.WithShape(size, size))
	return nil
}

// MulStep multiplies the prepared operands into the preallocated result.
func (t *TensorBackend) MulStep() error {
	if t.a == nil || t.b == nil || t.out == nil {
		return ErrNotPrepared
	}

	if _, err := tensor.MatMul(t.a, t.b, tensor.WithReuse(t.out)); err != nil {
		return fmt.Errorf("compute: matmul step: %w", err)
	}
	return nil
}

// Release drops the tensors so their backing arrays can be collected.
func (t *TensorBackend) Release() error {
	t.a, t.b, t.out = nil, nil, nil
	return nil
}

func (t *TensorBackend) randomBacking(size int) []float32 {
	data := make([]float32, size*size)
	for i := range data {
		data[i] = t.rng.Float32()
	}
	return data
}
