package bitpattern

import (
	"os"
	"strings"
)

// Kernel identifies the implementation used for whole-word popcounts.
type Kernel uint8

const (
	// TableKernel sums sub-word table entries.
	TableKernel Kernel = iota
	// Hardware uses the CPU population count instruction via math/bits.
	Hardware
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case TableKernel:
		return "table"
	case Hardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table":
		return TableKernel, true
	case "hardware":
		return Hardware, true
	default:
		return TableKernel, false
	}
}

// Package-level state, initialized once by the platform-specific init.
var (
	activeKernel Kernel

	// hasOverride is true if RS01DICT_KERNEL selected the kernel.
	hasOverride bool

	// hasPopcount is set by platform-specific init.
	hasPopcount bool
)

func initKernel() {
	if override := os.Getenv("RS01DICT_KERNEL"); override != "" {
		if k, ok := ParseKernel(override); ok && isKernelAvailable(k) {
			hasOverride = true
			activeKernel = k
			return
		}
		// Unknown or unsupported value: fall through to auto-detection.
	}

	if hasPopcount {
		activeKernel = Hardware
	} else {
		activeKernel = TableKernel
	}
}

// isKernelAvailable checks if a kernel can run on this CPU.
func isKernelAvailable(k Kernel) bool {
	switch k {
	case TableKernel:
		return true
	case Hardware:
		return HasHardwarePopcount()
	default:
		return false
	}
}

// ActiveKernel returns the kernel used by PopCount64.
func ActiveKernel() Kernel {
	return activeKernel
}

// IsOverridden returns true if RS01DICT_KERNEL was set to a known kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasHardwarePopcount returns true if the CPU reports a popcount instruction.
func HasHardwarePopcount() bool {
	return hasPopcount
}
