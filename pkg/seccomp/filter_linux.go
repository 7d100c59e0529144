package seccomp

import (
	"syscall"
)

// Filter is a complete BPF seccomp filter program, one SockFilter per
// classifier instruction
type Filter []syscall.SockFilter

// SockFprog converts Filter to SockFprog for seccomp syscall
func (f Filter) SockFprog() *syscall.SockFprog {
	b := []syscall.SockFilter(f)
	return &syscall.SockFprog{
		Len:    uint16(len(b)),
		Filter: &b[0],
	}
}
