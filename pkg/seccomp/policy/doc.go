// Package policy assembles the process-wide dual-architecture seccomp
// filter program.
//
// The assembled program validates the audit architecture of every
// syscall, dispatches to the allow-list for that architecture and traps
// anything the list does not match. The allow-list blocks themselves are
// pre-encoded data produced by cmd/genpolicy; this package splices them
// into the instruction stream without interpreting them.
package policy

//go:generate go run github.com/crofft/go-syscallgate/cmd/genpolicy -native x86_64 -compat i386 -out policy_amd64.go
//go:generate go run github.com/crofft/go-syscallgate/cmd/genpolicy -native aarch64 -compat arm -out policy_arm64.go
