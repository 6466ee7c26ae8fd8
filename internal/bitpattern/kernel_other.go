//go:build !amd64 && !arm64

package bitpattern

func init() {
	initKernel()
}
