// Package syscallgate installs a fixed seccomp-BPF syscall policy for
// the current process.
//
// The policy is irrevocable: once installed the kernel keeps it for the
// lifetime of the process and no handle is retained, so there is no way
// to query, update or remove it. Install before handling untrusted
// input; a process that cannot install its policy should not keep
// running.
package syscallgate
