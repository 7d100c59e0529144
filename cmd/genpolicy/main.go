// Command genpolicy regenerates the pre-encoded allow-list blocks that
// pkg/seccomp/policy splices into the syscall filter. Policy content
// lives here as data; the filter assembly mechanism never interprets it.
//
// Usage:
//
//	genpolicy -native x86_64 -compat i386 -out policy_amd64.go
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/elastic/go-seccomp-bpf/arch"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/bpf"
)

const retAllow = 0x7fff0000 // SECCOMP_RET_ALLOW

// auditArch maps the architecture names understood by the arch package
// to their AUDIT_ARCH_* identifiers.
var auditArch = map[string]uint32{
	"x86_64":  0xc000003e,
	"i386":    0x40000003,
	"aarch64": 0xc00000b7,
	"arm":     0x40000028,
}

// defaultAllow is the baked-in policy: syscalls a confined process may
// always make. Spelled in their 64-bit form; 32-bit equivalents are
// resolved through the alias table.
var defaultAllow = []string{
	"read", "write", "readv", "writev", "close", "fstat", "lseek", "dup", "dup3", "ioctl", "fcntl",
	"mmap", "mprotect", "munmap", "brk", "mremap", "madvise",
	"rt_sigaction", "rt_sigprocmask", "rt_sigreturn", "sigaltstack",
	"getpid", "gettid", "sched_yield", "futex", "exit", "exit_group", "restart_syscall",
	"nanosleep", "clock_gettime", "clock_nanosleep", "gettimeofday", "getrusage",
	"getrandom",
}

// alias maps 64-bit syscall spellings to their 32-bit equivalents
var alias = map[string]string{
	"fstat": "fstat64",
	"fcntl": "fcntl64",
	"mmap":  "mmap2",
}

func main() {
	var (
		nativeName = flag.String("native", "", "audit architecture of the native 64-bit mode (e.g. x86_64)")
		compatName = flag.String("compat", "", "audit architecture of the 32-bit compatibility mode (e.g. i386)")
		outPath    = flag.String("out", "", "output file (policy_GOARCH.go)")
		listPath   = flag.String("syscalls", "", "optional file with one syscall name per line, overriding the built-in list")
	)
	flag.Parse()
	if *nativeName == "" || *compatName == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	names := defaultAllow
	if *listPath != "" {
		var err error
		if names, err = readNames(*listPath); err != nil {
			logrus.Fatalf("genpolicy: %v", err)
		}
	}

	src, err := generate(*nativeName, *compatName, filepath.Base(*outPath), names)
	if err != nil {
		logrus.Fatalf("genpolicy: %v", err)
	}
	if err := ioutil.WriteFile(*outPath, src, 0644); err != nil {
		logrus.Fatalf("genpolicy: %v", err)
	}
	logrus.Infof("genpolicy: wrote %s", *outPath)
}

type allowed struct {
	name string
	nr   int
}

func generate(native, compat, outName string, names []string) ([]byte, error) {
	nativeID, ok := auditArch[native]
	if !ok {
		return nil, fmt.Errorf("unknown audit architecture %q", native)
	}
	compatID, ok := auditArch[compat]
	if !ok {
		return nil, fmt.Errorf("unknown audit architecture %q", compat)
	}

	nativeList, err := resolve(native, names)
	if err != nil {
		return nil, err
	}
	compatList, err := resolve(compat, names)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by genpolicy -native %s -compat %s -out %s; DO NOT EDIT.\n\n", native, compat, outName)
	fmt.Fprintf(&buf, "//go:build linux\n// +build linux\n\n")
	fmt.Fprintf(&buf, "package policy\n\n")
	fmt.Fprintf(&buf, "const (\n")
	fmt.Fprintf(&buf, "\tsupported = true\n\n")
	fmt.Fprintf(&buf, "\tnativeArch uint32 = %#x // AUDIT_ARCH_%s\n", nativeID, strings.ToUpper(native))
	fmt.Fprintf(&buf, "\tcompatArch uint32 = %#x // AUDIT_ARCH_%s\n", compatID, strings.ToUpper(compat))
	fmt.Fprintf(&buf, ")\n\n")
	if err := renderBlock(&buf, "nativeAllow", native, nativeList); err != nil {
		return nil, err
	}
	fmt.Fprintf(&buf, "\n")
	if err := renderBlock(&buf, "compatAllow", compat, compatList); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// resolve maps syscall names to their numbers for one architecture,
// trying the 32-bit alias when the 64-bit spelling does not exist there.
func resolve(archName string, names []string) ([]allowed, error) {
	info, err := arch.GetInfo(archName)
	if err != nil {
		return nil, fmt.Errorf("arch info for %s: %v", archName, err)
	}
	out := make([]allowed, 0, len(names))
	for _, name := range names {
		nr, ok := info.SyscallNames[name]
		if !ok {
			if alt, okAlias := alias[name]; okAlias {
				name = alt
				nr, ok = info.SyscallNames[alt]
			}
		}
		if !ok {
			logrus.Warnf("genpolicy: %s has no syscall %q, skipped", archName, name)
			continue
		}
		out = append(out, allowed{name: name, nr: nr})
	}
	return out, nil
}

// renderBlock emits one jeq/ret-allow instruction pair per syscall. The
// pairs are position independent, so the block can be spliced anywhere
// in a larger program.
func renderBlock(buf *bytes.Buffer, varName, archName string, list []allowed) error {
	fmt.Fprintf(buf, "// %s permits %d syscalls for %s.\n", varName, len(list), archName)
	fmt.Fprintf(buf, "var %s = Block{\n", varName)
	for _, s := range list {
		raw, err := bpf.Assemble([]bpf.Instruction{
			bpf.JumpIf{Cond: bpf.JumpEqual, Val: uint32(s.nr), SkipFalse: 1},
			bpf.RetConstant{Val: retAllow},
		})
		if err != nil {
			return fmt.Errorf("assemble %s: %v", s.name, err)
		}
		fmt.Fprintf(buf, "\t{Code: %#x, Jt: %#x, Jf: %#x, K: %#x}, // %s\n", raw[0].Op, raw[0].Jt, raw[0].Jf, raw[0].K, s.name)
		fmt.Fprintf(buf, "\t{Code: %#x, Jt: %#x, Jf: %#x, K: %#x},\n", raw[1].Op, raw[1].Jt, raw[1].Jf, raw[1].K)
	}
	fmt.Fprintf(buf, "}\n")
	return nil
}

func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
