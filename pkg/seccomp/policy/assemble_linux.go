package policy

import (
	"fmt"
	"runtime"

	"github.com/crofft/go-syscallgate/pkg/seccomp"
)

// ErrUnsupported is returned by Assemble on platforms without a native
// 64-bit plus 32-bit compatibility syscall convention
var ErrUnsupported = fmt.Errorf("policy: no dual-architecture filter for %s", runtime.GOARCH)

// Supported reports whether the built-in policy covers this platform
func Supported() bool {
	return supported
}

// Assemble builds the complete filter program: architecture gate, native
// allow-list, compat allow-list, each sub-policy terminated by a trap so
// a syscall the allow-list did not match is denied rather than silently
// permitted.
//
// On success the program is self-contained: every jump is strictly
// forward and lands inside the program.
func Assemble() (seccomp.Filter, error) {
	if !supported {
		return nil, ErrUnsupported
	}
	return assemble(nativeArch, compatArch, nativeAllow, compatAllow)
}

func assemble(native, compat uint32, nativeBlock, compatBlock Block) (seccomp.Filter, error) {
	var p Program

	// The compat jump cannot be finished yet: its target is the start of
	// the compat sub-policy, which does not exist until the native one
	// is complete. 32-bit syscalls never reach the instructions between
	// the gate and the patch below.
	pending := p.validateArch(native, compat)

	p.LoadNr()
	p.AppendBlock(nativeBlock)
	p.Trap()

	if err := p.setArchJumpTarget(pending, compat); err != nil {
		return nil, err
	}

	p.LoadNr()
	p.AppendBlock(compatBlock)
	p.Trap()

	return seccomp.Filter(p), nil
}
