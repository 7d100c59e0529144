package seccomp

import (
	"testing"
)

func TestActionReturnCode(t *testing.T) {
	a := ActionErrno.WithReturnCode(1)
	if a.Action() != ActionErrno {
		t.Error("WithReturnCode changed the basic action")
	}
	if a.ReturnCode() != 1 {
		t.Errorf("return code %d, want 1", a.ReturnCode())
	}
	if ActionTrace.ReturnCode() != 0 {
		t.Error("plain action carries a return code")
	}
}

func TestActionOverwriteReturnCode(t *testing.T) {
	a := ActionTrace.WithReturnCode(2).WithReturnCode(3)
	if a.ReturnCode() != 3 {
		t.Errorf("return code %d, want 3", a.ReturnCode())
	}
	if a.Action() != ActionTrace {
		t.Error("WithReturnCode changed the basic action")
	}
}
