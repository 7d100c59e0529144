package policy

import (
	"syscall"

	"github.com/crofft/go-syscallgate/pkg/seccomp"
)

// struct seccomp_data field offsets
const (
	seccompDataOffsetNR   = 0
	seccompDataOffsetArch = 4
)

// Program is an append-only stream of BPF classifier instructions in the
// form consumed by seccomp(2). Jump offsets are relative instruction
// counts, so append order is part of the program's meaning. Instructions
// are never rewritten once appended, except for the single architecture
// jump re-targeted by setArchJumpTarget.
type Program []syscall.SockFilter

// Block is a pre-encoded run of instructions permitting specific syscall
// numbers for one audit architecture.
type Block []syscall.SockFilter

func (p *Program) stmt(code int, k uint32) {
	*p = append(*p, syscall.SockFilter{Code: uint16(code), K: k})
}

func (p *Program) jump(code int, k uint32, jt, jf uint8) {
	*p = append(*p, syscall.SockFilter{Code: uint16(code), Jt: jt, Jf: jf, K: k})
}

// Ret appends a return instruction terminating evaluation with action a
func (p *Program) Ret(a seccomp.Action) {
	p.stmt(syscall.BPF_RET|syscall.BPF_K, retValue(a))
}

// Kill appends a return killing the calling thread
func (p *Program) Kill() { p.Ret(seccomp.ActionKill) }

// Trap appends a return delivering SIGSYS, denying the syscall while
// keeping the process debuggable
func (p *Program) Trap() { p.Ret(seccomp.ActionTrap) }

// Trace appends a return handing the syscall to an attached tracer
func (p *Program) Trace() { p.Ret(seccomp.ActionTrace) }

// Allow appends a return permitting the syscall
func (p *Program) Allow() { p.Ret(seccomp.ActionAllow) }

// Errno appends a return failing the syscall with the given errno
func (p *Program) Errno(code int16) { p.Ret(seccomp.ActionErrno.WithReturnCode(code)) }

// LoadNr loads the syscall number into the accumulator
func (p *Program) LoadNr() {
	p.stmt(syscall.BPF_LD|syscall.BPF_W|syscall.BPF_ABS, seccompDataOffsetNR)
}

// LoadArch loads the audit architecture under which the syscall was made
func (p *Program) LoadArch() {
	p.stmt(syscall.BPF_LD|syscall.BPF_W|syscall.BPF_ABS, seccompDataOffsetArch)
}

// AppendBlock splices a pre-encoded allow-list block onto the program
// verbatim
func (p *Program) AppendBlock(b Block) {
	*p = append(*p, b...)
}

func retValue(a seccomp.Action) uint32 {
	data := uint32(uint16(a.ReturnCode())) & seccomp.SECCOMP_RET_DATA
	switch a.Action() {
	case seccomp.ActionAllow:
		return seccomp.SECCOMP_RET_ALLOW
	case seccomp.ActionErrno:
		return seccomp.SECCOMP_RET_ERRNO | data
	case seccomp.ActionTrace:
		return seccomp.SECCOMP_RET_TRACE | data
	case seccomp.ActionTrap:
		return seccomp.SECCOMP_RET_TRAP
	default:
		return seccomp.SECCOMP_RET_KILL
	}
}
