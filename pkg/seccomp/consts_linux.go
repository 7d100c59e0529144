package seccomp

// defines missing consts from syscall package
const (
	SECCOMP_SET_MODE_FILTER   = 1
	SECCOMP_FILTER_FLAG_TSYNC = 1

	// seccomp filter return values, from linux/seccomp.h
	SECCOMP_RET_KILL  = 0x00000000
	SECCOMP_RET_TRAP  = 0x00030000
	SECCOMP_RET_ERRNO = 0x00050000
	SECCOMP_RET_TRACE = 0x7ff00000
	SECCOMP_RET_ALLOW = 0x7fff0000

	// mask of the value bits passed along with errno and trace
	SECCOMP_RET_DATA = 0x0000ffff
)
