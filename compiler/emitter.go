package compiler

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Emitter: virtual machine instruction output
// ---------------------------------------------------------------------------

// Segment is a named addressable region of the target virtual machine.
type Segment string

const (
	SegConstant Segment = "constant"
	SegArgument Segment = "argument"
	SegLocal    Segment = "local"
	SegStatic   Segment = "static"
	SegThis     Segment = "this"
	SegThat     Segment = "that"
	SegPointer  Segment = "pointer"
	SegTemp     Segment = "temp"
)

// Arithmetic and logical commands of the target virtual machine.
const (
	OpAdd = "add"
	OpSub = "sub"
	OpNeg = "neg"
	OpEq  = "eq"
	OpGt  = "gt"
	OpLt  = "lt"
	OpAnd = "and"
	OpOr  = "or"
	OpNot = "not"
)

// Emitter buffers the instructions of one class module, in exactly the order
// they are issued, and owns the class's label counters. One Emitter instance
// per compiled class keeps label numbering deterministic regardless of how
// many classes a process compiles.
type Emitter struct {
	instructions []string
	labelCounts  map[string]int
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{
		labelCounts: make(map[string]int),
	}
}

func (e *Emitter) emit(instruction string) {
	e.instructions = append(e.instructions, instruction)
}

// WritePush emits push SEG i.
func (e *Emitter) WritePush(seg Segment, index int) {
	e.emit(fmt.Sprintf("push %s %d", seg, index))
}

// WritePop emits pop SEG i.
func (e *Emitter) WritePop(seg Segment, index int) {
	e.emit(fmt.Sprintf("pop %s %d", seg, index))
}

// WriteArithmetic emits one of the arithmetic/logical commands.
func (e *Emitter) WriteArithmetic(op string) {
	e.emit(op)
}

// WriteLabel emits label L.
func (e *Emitter) WriteLabel(label string) {
	e.emit("label " + label)
}

// WriteGoto emits goto L.
func (e *Emitter) WriteGoto(label string) {
	e.emit("goto " + label)
}

// WriteIf emits if-goto L.
func (e *Emitter) WriteIf(label string) {
	e.emit("if-goto " + label)
}

// WriteCall emits call NAME n.
func (e *Emitter) WriteCall(name string, nArgs int) {
	e.emit(fmt.Sprintf("call %s %d", name, nArgs))
}

// WriteFunction emits function NAME n.
func (e *Emitter) WriteFunction(name string, nLocals int) {
	e.emit(fmt.Sprintf("function %s %d", name, nLocals))
}

// WriteReturn emits return.
func (e *Emitter) WriteReturn() {
	e.emit("return")
}

// FreshLabel manufactures a branch label unique within this class's module.
// Labels of one kind number upward from 0 and are never reused, even across
// sibling constructs.
func (e *Emitter) FreshLabel(kind string) string {
	n := e.labelCounts[kind]
	e.labelCounts[kind]++
	return fmt.Sprintf("%s_%d", kind, n)
}

// Len returns the number of instructions emitted so far.
func (e *Emitter) Len() int {
	return len(e.instructions)
}

// Instructions returns the emitted instructions in issue order.
func (e *Emitter) Instructions() []string {
	out := make([]string, len(e.instructions))
	copy(out, e.instructions)
	return out
}

// String renders the module as text, one instruction per line.
func (e *Emitter) String() string {
	if len(e.instructions) == 0 {
		return ""
	}
	return strings.Join(e.instructions, "\n") + "\n"
}
