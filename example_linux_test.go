package syscallgate_test

import (
	syscallgate "github.com/crofft/go-syscallgate"
)

func Example() {
	// Confine the process before it touches untrusted input. There is
	// no way back out: on failure MustInstall terminates the process
	// rather than let it run unconfined.
	syscallgate.MustInstall()
}
