package seccomp

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

var errEmptyFilter = errors.New("seccomp: empty filter")

// Load attaches the filter to every thread of the current process. The
// kernel keeps its own copy of the program; there is no handle to query
// or remove an installed filter afterwards.
//
// PR_SET_NO_NEW_PRIVS is applied first so the filter can be installed
// without CAP_SYS_ADMIN, and TSYNC extends it to threads the Go runtime
// has already started.
func Load(filter Filter) error {
	if len(filter) == 0 {
		return errEmptyFilter
	}
	if err := unix.Prctl(unix.PR_SET_NO_NEW_PRIVS, 1, 0, 0, 0); err != nil {
		return fmt.Errorf("seccomp: prctl(PR_SET_NO_NEW_PRIVS) failed: %v", err)
	}
	prog := filter.SockFprog()
	ret, _, errno := syscall.RawSyscall(unix.SYS_SECCOMP, SECCOMP_SET_MODE_FILTER,
		SECCOMP_FILTER_FLAG_TSYNC, uintptr(unsafe.Pointer(prog)))
	if errno != 0 {
		return fmt.Errorf("seccomp: seccomp(SET_MODE_FILTER) failed: %v", errno)
	}
	// with TSYNC the kernel reports a diverging sibling thread by id
	if ret != 0 {
		return fmt.Errorf("seccomp: seccomp(SET_MODE_FILTER) could not synchronize thread %d", ret)
	}
	return nil
}
