//go:build gpu

package device

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// Probe initializes NVML, selects the first enumerated device, and shuts
// NVML back down. A missing driver or an empty device list maps to
// ErrNoDevice; anything else is a real probe failure.
func Probe() (*Info, error) {
	ret := nvml.Init()
	if ret == nvml.ERROR_LIBRARY_NOT_FOUND || ret == nvml.ERROR_DRIVER_NOT_LOADED {
		return nil, ErrNoDevice
	}
	if ret != nvml.SUCCESS {
		return nil, fmt.Errorf("device: nvml init: %s", nvml.ErrorString(ret))
	}
	defer func() { _ = nvml.Shutdown() }()

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return nil, fmt.Errorf("device: nvml device count: %s", nvml.ErrorString(ret))
	}
	if count == 0 {
		return nil, ErrNoDevice
	}

	dev, ret := nvml.DeviceGetHandleByIndex(0)
	if ret != nvml.SUCCESS {
		return nil, fmt.Errorf("device: nvml device handle: %s", nvml.ErrorString(ret))
	}

	name, ret := dev.GetName()
	if ret != nvml.SUCCESS {
		return nil, fmt.Errorf("device: nvml device name: %s", nvml.ErrorString(ret))
	}

	info := &Info{Index: 0, Name: name}
	if mem, ret := dev.GetMemoryInfo(); ret == nvml.SUCCESS {
		info.MemoryMiB = mem.Total / (1024 * 1024)
	}
	return info, nil
}
