//go:build arm64

package bitpattern

import "golang.org/x/sys/cpu"

func init() {
	// CNT is part of ASIMD.
	hasPopcount = cpu.ARM64.HasASIMD
	initKernel()
}
