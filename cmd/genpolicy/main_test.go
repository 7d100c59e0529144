package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderBlock(t *testing.T) {
	var buf bytes.Buffer
	err := renderBlock(&buf, "nativeAllow", "x86_64", []allowed{
		{name: "read", nr: 0},
		{name: "write", nr: 1},
	})
	if err != nil {
		t.Fatalf("renderBlock: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"var nativeAllow = Block{",
		"{Code: 0x15, Jt: 0x0, Jf: 0x1, K: 0x0}, // read",
		"{Code: 0x15, Jt: 0x0, Jf: 0x1, K: 0x1}, // write",
		"{Code: 0x6, Jt: 0x0, Jf: 0x0, K: 0x7fff0000},",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateUnknownArch(t *testing.T) {
	if _, err := generate("m68k", "i386", "policy_m68k.go", defaultAllow); err == nil {
		t.Error("generate accepted an unknown architecture")
	}
}

func TestResolveAlias(t *testing.T) {
	list, err := resolve("i386", []string{"fstat", "exit"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("resolved %d syscalls, want 2", len(list))
	}
	if list[0].name != "fstat64" {
		t.Errorf("fstat resolved to %q, want fstat64", list[0].name)
	}
	if list[1].name != "exit" {
		t.Errorf("exit resolved to %q", list[1].name)
	}
}
