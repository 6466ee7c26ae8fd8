//go:build amd64

package bitpattern

import "golang.org/x/sys/cpu"

func init() {
	hasPopcount = cpu.X86.HasPOPCNT
	initKernel()
}
