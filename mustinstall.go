package syscallgate

import (
	"github.com/sirupsen/logrus"
)

// MustInstall installs the policy and terminates the process if that
// fails. Continuing without the intended confinement is the one outcome
// this package must never allow.
func MustInstall() {
	if err := Install(); err != nil {
		logrus.WithError(err).Fatal("syscallgate: could not install syscall policy")
	}
}
