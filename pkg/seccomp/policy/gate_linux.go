package policy

import (
	"errors"
	"syscall"
)

// ErrJumpTooLarge reports that the native sub-policy outgrew the 8-bit
// jump-offset field of the instruction set. Not retryable: only a
// smaller allow-list can fix it.
var ErrJumpTooLarge = errors.New("policy: jump offset exceeds 255 instructions")

// validateArch emits the architecture gate: load the audit architecture,
// skip two instructions on the native id, one on the compat id, and trap
// any other value. A syscall number is only meaningful relative to its
// architecture, so an unrecognized id must never fall through to either
// sub-policy.
//
// The returned index is the compat jump. It initially falls through to
// the native sub-policy and must be re-targeted with setArchJumpTarget
// once the native sub-policy is in place.
func (p *Program) validateArch(native, compat uint32) int {
	p.LoadArch()
	p.jump(syscall.BPF_JMP|syscall.BPF_JEQ|syscall.BPF_K, native, 2, 0)
	p.jump(syscall.BPF_JMP|syscall.BPF_JEQ|syscall.BPF_K, compat, 1, 0)
	p.Trap()
	return len(*p) - 2
}

// setArchJumpTarget rewrites the placeholder at idx to jump to the
// current end of the program on a compat architecture match. The
// no-match branch stays 0: unknown architectures were already trapped by
// the gate before this instruction.
func (p *Program) setArchJumpTarget(idx int, compat uint32) error {
	distance := len(*p) - idx - 1
	if distance != int(uint8(distance)) {
		return ErrJumpTooLarge
	}
	(*p)[idx] = syscall.SockFilter{
		Code: syscall.BPF_JMP | syscall.BPF_JEQ | syscall.BPF_K,
		Jt:   uint8(distance),
		K:    compat,
	}
	return nil
}
