//go:build !linux
// +build !linux

package syscallgate

// Install is a no-op on systems without seccomp
func Install() error {
	return nil
}
