package boolexpr

import (
	"fmt"
	"strconv"
)

// Ref identifies where an operand value came from: either a prior trace
// record (StepRef) or a variable in the assignment (NameRef). Following
// refs from the last record reconstructs the dependency chain of the
// whole computation.
type Ref interface {
	fmt.Stringer
	isRef()
}

// StepRef is the index of the trace record that produced the value.
type StepRef int

func (StepRef) isRef() {}

func (r StepRef) String() string {
	return "#" + strconv.Itoa(int(r))
}

// NameRef is the name of the variable the value was read from.
type NameRef string

func (NameRef) isRef() {}

func (r NameRef) String() string {
	return string(r)
}

// Operand is one input to a recorded operation.
type Operand struct {
	Value Bit
	Ref   Ref
}

func (o Operand) String() string {
	return fmt.Sprintf("%s(%s)", o.Ref, o.Value)
}

// CalcProcess is one completed sub-computation in the trace. Records are
// appended when an operation node finishes, so the trace follows
// post-order completion rather than the tree's left-to-right reading
// order. Records are never mutated or removed; Index is the record's
// position in the trace, contiguous from 0 per evaluator instance.
type CalcProcess struct {
	Index    int
	Operator Operator
	// Left is nil for unary operations.
	Left   *Operand
	Right  Operand
	Result Bit
}

func (p CalcProcess) String() string {
	if p.Left == nil {
		return fmt.Sprintf("#%d: %s %s = %s", p.Index, p.Operator, p.Right, p.Result)
	}
	return fmt.Sprintf("#%d: %s %s %s = %s", p.Index, p.Left, p.Operator, p.Right, p.Result)
}
