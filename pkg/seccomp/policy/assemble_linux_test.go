package policy

import (
	"testing"

	"golang.org/x/net/bpf"
	"golang.org/x/sys/unix"

	"github.com/crofft/go-syscallgate/pkg/seccomp"
)

const (
	testNative  uint32 = 0xc000003e // AUDIT_ARCH_X86_64
	testCompat  uint32 = 0x40000003 // AUDIT_ARCH_I386
	testUnknown uint32 = 0x8        // AUDIT_ARCH_MIPS
)

// decode disassembles the filter and runs it through the x/net/bpf
// verifier, rejecting programs the kernel would refuse to attach
// (out-of-range jumps, missing return terminator).
func decode(t *testing.T, f seccomp.Filter) []bpf.Instruction {
	t.Helper()

	raw := make([]bpf.RawInstruction, 0, len(f))
	for _, ins := range f {
		raw = append(raw, bpf.RawInstruction{Op: ins.Code, Jt: ins.Jt, Jf: ins.Jf, K: ins.K})
	}
	insns, allDecoded := bpf.Disassemble(raw)
	if !allDecoded {
		t.Fatal("program contains undecodable instructions")
	}
	if _, err := bpf.NewVM(insns); err != nil {
		t.Fatalf("verifier rejected program: %v", err)
	}
	return insns
}

// simulate evaluates the filter against one syscall the way the kernel
// would, with a reference interpreter over the decoded program, and
// returns the filter's decision.
func simulate(t *testing.T, f seccomp.Filter, archID, nr uint32) uint32 {
	t.Helper()

	insns := decode(t, f)
	var acc uint32
	pc := 0
	for steps := 0; steps <= len(insns); steps++ {
		switch ins := insns[pc].(type) {
		case bpf.LoadAbsolute:
			if ins.Size != 4 {
				t.Fatalf("at %d: load of %d bytes from seccomp_data", pc, ins.Size)
			}
			// struct seccomp_data: nr at 0, arch at 4
			switch ins.Off {
			case 0:
				acc = nr
			case 4:
				acc = archID
			default:
				t.Fatalf("at %d: load from unexpected seccomp_data offset %d", pc, ins.Off)
			}
			pc++
		case bpf.JumpIf:
			if ins.Cond != bpf.JumpEqual {
				t.Fatalf("at %d: unexpected jump condition %v", pc, ins.Cond)
			}
			if acc == ins.Val {
				pc += 1 + int(ins.SkipTrue)
			} else {
				pc += 1 + int(ins.SkipFalse)
			}
		case bpf.RetConstant:
			return ins.Val
		default:
			t.Fatalf("at %d: unexpected instruction %v", pc, ins)
		}
	}
	t.Fatal("program did not terminate")
	return 0
}

func TestAssembleSemantics(t *testing.T) {
	f, err := assemble(testNative, testCompat, allowBlock(42), allowBlock(7))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	for _, tc := range []struct {
		name string
		arch uint32
		nr   uint32
		want uint32
	}{
		{"native allowed", testNative, 42, seccomp.SECCOMP_RET_ALLOW},
		{"native not listed", testNative, 1, seccomp.SECCOMP_RET_TRAP},
		{"native nr from compat list", testNative, 7, seccomp.SECCOMP_RET_TRAP},
		{"compat allowed", testCompat, 7, seccomp.SECCOMP_RET_ALLOW},
		{"compat not listed", testCompat, 1, seccomp.SECCOMP_RET_TRAP},
		{"compat nr from native list", testCompat, 42, seccomp.SECCOMP_RET_TRAP},
	} {
		if got := simulate(t, f, tc.arch, tc.nr); got != tc.want {
			t.Errorf("%s: decision %#x, want %#x", tc.name, got, tc.want)
		}
	}
}

// An unrecognized architecture must hit the gate's trap before any
// syscall number is interpreted, even when the number is present in both
// allow-lists.
func TestUnknownArchSeesGateTrapFirst(t *testing.T) {
	f, err := assemble(testNative, testCompat, allowBlock(42), allowBlock(42))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if got := simulate(t, f, testUnknown, 42); got != seccomp.SECCOMP_RET_TRAP {
		t.Errorf("unknown arch decision %#x, want trap", got)
	}
	if got := simulate(t, f, 0, 42); got != seccomp.SECCOMP_RET_TRAP {
		t.Errorf("zero arch decision %#x, want trap", got)
	}
}

func TestEmptyBlocksDenyEverything(t *testing.T) {
	f, err := assemble(testNative, testCompat, nil, nil)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(f) != 8 {
		t.Fatalf("got %d instructions, want 8", len(f))
	}
	for _, archID := range []uint32{testNative, testCompat, testUnknown} {
		for _, nr := range []uint32{0, 1, 60, 231, 0xffffffff} {
			if got := simulate(t, f, archID, nr); got != seccomp.SECCOMP_RET_TRAP {
				t.Errorf("arch %#x nr %d: decision %#x, want trap", archID, nr, got)
			}
		}
	}
}

func TestAssembleDefaultPolicy(t *testing.T) {
	if !Supported() {
		t.Skipf("no dual-architecture policy for this platform")
	}
	f, err := Assemble()
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if want := 8 + len(nativeAllow) + len(compatAllow); len(f) != want {
		t.Errorf("got %d instructions, want %d", len(f), want)
	}

	// exit_group is allowed on every supported platform; openat is
	// deliberately not in the default policy
	if got := simulate(t, f, nativeArch, uint32(unix.SYS_EXIT_GROUP)); got != seccomp.SECCOMP_RET_ALLOW {
		t.Errorf("native exit_group: decision %#x, want allow", got)
	}
	if got := simulate(t, f, nativeArch, uint32(unix.SYS_OPENAT)); got != seccomp.SECCOMP_RET_TRAP {
		t.Errorf("native openat: decision %#x, want trap", got)
	}
	for _, archID := range []uint32{nativeArch, compatArch} {
		if got := simulate(t, f, archID, 0xffffffff); got != seccomp.SECCOMP_RET_TRAP {
			t.Errorf("arch %#x nr -1: decision %#x, want trap", archID, got)
		}
	}
}

// BenchmarkAssemble is a few microseconds per op
func BenchmarkAssemble(b *testing.B) {
	if !Supported() {
		b.Skipf("no dual-architecture policy for this platform")
	}
	for i := 0; i < b.N; i++ {
		if _, err := Assemble(); err != nil {
			b.Fatal(err)
		}
	}
}
