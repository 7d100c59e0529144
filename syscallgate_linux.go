package syscallgate

import (
	"github.com/sirupsen/logrus"

	"github.com/crofft/go-syscallgate/pkg/seccomp"
	"github.com/crofft/go-syscallgate/pkg/seccomp/policy"
)

// Install assembles the built-in dual-architecture syscall policy and
// attaches it to every thread of the current process. On platforms
// without a 32-bit compatibility mode it is a no-op reporting success.
//
// Installation is one-shot: there is no second filter, no retry and no
// way back. An error means the process is running unconfined; callers
// that need the confinement must terminate (see MustInstall).
func Install() error {
	if !policy.Supported() {
		return nil
	}
	filter, err := policy.Assemble()
	if err != nil {
		return err
	}
	if err := seccomp.Load(filter); err != nil {
		return err
	}
	logrus.Debugf("syscallgate: installed syscall filter of %d instructions", len(filter))
	return nil
}
