// Package device enumerates GPU hardware so worker placement is an explicit,
// logged decision instead of a silent library fallback.
package device

import (
	"errors"
	"fmt"
)

// ErrNoDevice is returned by Probe when no usable GPU is present, either
// because none is installed or because the binary was built without GPU
// support.
var ErrNoDevice = errors.New("device: no gpu available")

// Info describes a single selected GPU.
type Info struct {
	Index     int
	Name      string
	MemoryMiB uint64
}

func (i *Info) String() string {
	return fmt.Sprintf("%s (index %d, %d MiB)", i.Name, i.Index, i.MemoryMiB)
}
