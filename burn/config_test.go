package burn

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Duration:   time.Second,
		MatrixSize: 64,
		CPUWorkers: 2,
		GPUWorkers: 1,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("accepts a sane config", func(t *testing.T) {
		if err := validConfig().Validate(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("rejects bad fields", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*Config)
		}{
			{"zero duration", func(c *Config) { c.Duration = 0 }},
			{"negative duration", func(c *Config) { c.Duration = -time.Second }},
			{"zero matrix size", func(c *Config) { c.MatrixSize = 0 }},
			{"negative matrix size", func(c *Config) { c.MatrixSize = -2048 }},
			{"negative cpu workers", func(c *Config) { c.CPUWorkers = -1 }},
			{"negative gpu workers", func(c *Config) { c.GPUWorkers = -1 }},
			{"no workers at all", func(c *Config) { c.CPUWorkers = 0; c.GPUWorkers = 0 }},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				cfg := validConfig()
				tc.mutate(&cfg)
				if err := cfg.Validate(); err == nil {
					t.Error("expected validation error")
				}
			})
		}
	})

	t.Run("cpu-only and gpu-only are both valid", func(t *testing.T) {
		cpuOnly := validConfig()
		cpuOnly.GPUWorkers = 0
		if err := cpuOnly.Validate(); err != nil {
			t.Errorf("cpu-only: %v", err)
		}

		gpuOnly := validConfig()
		gpuOnly.CPUWorkers = 0
		if err := gpuOnly.Validate(); err != nil {
			t.Errorf("gpu-only: %v", err)
		}
	})
}

func TestWorkerKindString(t *testing.T) {
	if KindCPU.String() != "cpu" {
		t.Errorf("KindCPU = %q", KindCPU.String())
	}
	if KindAccelerator.String() != "accelerator" {
		t.Errorf("KindAccelerator = %q", KindAccelerator.String())
	}
	if WorkerKind(99).String() != "unknown" {
		t.Errorf("unknown kind = %q", WorkerKind(99).String())
	}
}
