package seccomp

import (
	"testing"
)

func TestSockFprog(t *testing.T) {
	f := Filter{
		{Code: 0x20, K: 0},
		{Code: 0x06, K: 0x7fff0000},
	}
	prog := f.SockFprog()
	if prog.Len != 2 {
		t.Errorf("length %d, want 2", prog.Len)
	}
	if prog.Filter != &f[0] {
		t.Error("program does not point at the first instruction")
	}
}
