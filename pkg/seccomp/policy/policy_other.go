//go:build linux && !amd64 && !arm64
// +build linux,!amd64,!arm64

package policy

// No dual-architecture seccomp filter on this platform.
const (
	supported = false

	nativeArch uint32 = 0
	compatArch uint32 = 0
)

var (
	nativeAllow Block
	compatAllow Block
)
