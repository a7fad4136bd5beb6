package compiler

import "testing"

func TestEmitterInstructions(t *testing.T) {
	e := NewEmitter()
	e.WriteFunction("Main.main", 2)
	e.WritePush(SegConstant, 7)
	e.WritePop(SegLocal, 0)
	e.WriteArithmetic(OpAdd)
	e.WriteLabel("WHILE_0")
	e.WriteGoto("WHILE_0")
	e.WriteIf("WHILE_1")
	e.WriteCall("Math.multiply", 2)
	e.WriteReturn()

	want := []string{
		"function Main.main 2",
		"push constant 7",
		"pop local 0",
		"add",
		"label WHILE_0",
		"goto WHILE_0",
		"if-goto WHILE_1",
		"call Math.multiply 2",
		"return",
	}

	if e.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", e.Len(), len(want))
	}
	got := e.Instructions()
	if len(got) != len(want) {
		t.Fatalf("instruction count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("instruction[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEmitterFreshLabels(t *testing.T) {
	e := NewEmitter()

	labels := []struct {
		kind string
		want string
	}{
		{"IF", "IF_0"},
		{"IF", "IF_1"},
		{"WHILE", "WHILE_0"},
		{"IF", "IF_2"},
		{"WHILE", "WHILE_1"},
	}
	for _, tc := range labels {
		if got := e.FreshLabel(tc.kind); got != tc.want {
			t.Errorf("FreshLabel(%q) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestEmitterString(t *testing.T) {
	e := NewEmitter()
	if s := e.String(); s != "" {
		t.Errorf("empty emitter String() = %q, want empty", s)
	}

	e.WritePush(SegConstant, 1)
	e.WriteArithmetic(OpNeg)
	want := "push constant 1\nneg\n"
	if s := e.String(); s != want {
		t.Errorf("String() = %q, want %q", s, want)
	}
}

func TestEmitterInstructionsIsACopy(t *testing.T) {
	e := NewEmitter()
	e.WriteReturn()

	got := e.Instructions()
	got[0] = "clobbered"
	if e.Instructions()[0] != "return" {
		t.Error("Instructions() exposed internal state")
	}
}
