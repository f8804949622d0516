//go:build !gpu

package device

// Probe always reports ErrNoDevice in builds without the gpu tag, keeping
// NVML out of the default binary. Callers treat ErrNoDevice as "run the CPU
// fallback engine".
func Probe() (*Info, error) {
	return nil, ErrNoDevice
}
