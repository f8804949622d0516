package compute

import (
	"errors"
	"math/rand"
	"testing"

	"gorgonia.org/tensor"
)

func TestTensorBackendPrepare(t *testing.T) {
	t.Run("rejects non-positive size", func(t *testing.T) {
		b := NewTensorBackend(rand.New(rand.NewSource(1)))
		for _, size := range []int{0, -1} {
			if err := b.Prepare(size); err == nil {
				t.Errorf("size %d: expected error", size)
			}
		}
	})

	t.Run("allocates square operands and result", func(t *testing.T) {
		b := NewTensorBackend(rand.New(rand.NewSource(1)))
		if err := b.Prepare(32); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer func() { _ = b.Release() }()

		for name, d := range map[string]*tensor.Dense{"a": b.a, "b": b.b, "out": b.out} {
			s := d.Shape()
			if len(s) != 2 || s[0] != 32 || s[1] != 32 {
				t.Errorf("%s: expected shape (32, 32), got %v", name, s)
			}
		}
	})
}

func TestTensorBackendMulStep(t *testing.T) {
	t.Run("fails before prepare", func(t *testing.T) {
		b := NewTensorBackend(rand.New(rand.NewSource(1)))
		if err := b.MulStep(); !errors.Is(err, ErrNotPrepared) {
			t.Fatalf("expected ErrNotPrepared, got %v", err)
		}
	})

	t.Run("runs repeatedly after prepare", func(t *testing.T) {
		b := NewTensorBackend(rand.New(rand.NewSource(3)))
		if err := b.Prepare(16); err != nil {
			t.Fatal(err)
		}
		defer func() { _ = b.Release() }()

		for i := 0; i < 10; i++ {
			if err := b.MulStep(); err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
		}
	})

	t.Run("fails again after release", func(t *testing.T) {
		b := NewTensorBackend(rand.New(rand.NewSource(3)))
		if err := b.Prepare(8); err != nil {
			t.Fatal(err)
		}
		if err := b.Release(); err != nil {
			t.Fatal(err)
		}
		if err := b.MulStep(); !errors.Is(err, ErrNotPrepared) {
			t.Fatalf("expected ErrNotPrepared, got %v", err)
		}
	})
}

func TestTensorBackendName(t *testing.T) {
	b := NewTensorBackend(rand.New(rand.NewSource(1)))
	if b.Name() != "tensor/cpu" {
		t.Errorf("unexpected backend name %q", b.Name())
	}
}
