// Package seccomp provides the in-memory form of a seccomp-BPF filter
// program and its attachment to the current process.
package seccomp

// Action is the decision a seccomp filter returns for a syscall
type Action uint32

// Action defines seccomp action to the syscall
// default value 0 is invalid
const (
	ActionAllow Action = iota + 1
	ActionErrno
	ActionTrace
	ActionTrap
	ActionKill
)

// WithReturnCode set the 16-bit data delivered together with errno and
// trace decisions
func (a Action) WithReturnCode(code int16) Action {
	return a.Action() | Action(code)<<16
}

// ReturnCode get the return code
func (a Action) ReturnCode() int16 {
	return int16(a >> 16)
}

// Action get the basic action
func (a Action) Action() Action {
	return Action(a & 0xffff)
}
