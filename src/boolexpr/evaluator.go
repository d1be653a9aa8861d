package boolexpr

import (
	"log/slog"

	"github.com/samber/lo"
)

// Evaluator computes the value of expression trees under one variable
// assignment, keeping a flat trace of every operation it performs. Trace
// and Errors accumulate across Calculate calls and are never reset;
// construct a fresh Evaluator per assignment when isolation matters.
//
// Example usage:
//
//	expr := &BinaryOperation{
//		Operator: OR,
//		Left:     &Variable{Name: "X"},
//		Right:    &UnaryOperation{Operator: NOT, Operand: &Variable{Name: "Y"}},
//	}
//	e := NewEvaluator(Variables{"X": One, "Y": Zero})
//	result, ok := e.Calculate(expr)
//	fmt.Println(result, ok, len(e.Trace)) // Output: 1 true 2
type Evaluator struct {
	vars Variables

	// Trace holds one record per completed binary or unary operation, in
	// post-order completion order. Variable leaves produce no records.
	Trace []CalcProcess

	// Errors holds one *UnknownVariableError per failed variable lookup,
	// in the order the lookups happened. Duplicates occur when the same
	// missing variable appears in the tree more than once.
	Errors []error

	nextIndex int
}

// NewEvaluator creates an evaluator for the given assignment. vars is
// read, never written.
func NewEvaluator(vars Variables) *Evaluator {
	return &Evaluator{vars: vars}
}

// outcome carries a sub-expression's value upward together with its
// provenance. ok is false when the sub-expression could not be resolved.
type outcome struct {
	value Bit
	ref   Ref
	ok    bool
}

// Calculate evaluates expr bottom-up, appending a trace record for every
// operation node. It returns the expression's value, or ok=false when any
// referenced variable is missing from the assignment; lookup failures are
// recorded in Errors rather than returned. Both children of a binary node
// are always evaluated, even when the left one has already failed, so
// every missing variable in the tree gets reported.
func (e *Evaluator) Calculate(expr Expression) (Bit, bool) {
	result := e.eval(expr)
	return result.value, result.ok
}

// ErrorMessages returns the error log as plain message strings.
func (e *Evaluator) ErrorMessages() []string {
	return lo.Map(e.Errors, func(err error, _ int) string {
		return err.Error()
	})
}

func (e *Evaluator) eval(expr Expression) outcome {
	switch n := expr.(type) {
	case *Variable:
		value, ok := e.vars[n.Name]
		if !ok {
			slog.Warn("variable not found in assignment", "name", n.Name)
			e.Errors = append(e.Errors, NewUnknownVariableError(n.Name))
			return outcome{}
		}
		return outcome{value: value, ref: NameRef(n.Name), ok: true}

	case *UnaryOperation:
		operand := e.eval(n.Operand)
		if !operand.ok {
			// an unresolved subtree completes no operations, so there is
			// nothing to record
			return outcome{}
		}

		result := operand.value.Not()
		ref := e.record(CalcProcess{
			Operator: n.Operator,
			Right:    Operand{Value: operand.value, Ref: operand.ref},
			Result:   result,
		})
		return outcome{value: result, ref: ref, ok: true}

	case *BinaryOperation:
		left := e.eval(n.Left)
		right := e.eval(n.Right)
		if !left.ok || !right.ok {
			return outcome{}
		}

		result := apply(n.Operator, left.value, right.value)
		ref := e.record(CalcProcess{
			Operator: n.Operator,
			Left:     &Operand{Value: left.value, Ref: left.ref},
			Right:    Operand{Value: right.value, Ref: right.ref},
			Result:   result,
		})
		return outcome{value: result, ref: ref, ok: true}
	}

	return outcome{}
}

// record assigns the next trace index to p, appends it, and returns a
// reference for the parent's operand descriptor.
func (e *Evaluator) record(p CalcProcess) Ref {
	p.Index = e.nextIndex
	e.nextIndex++
	e.Trace = append(e.Trace, p)

	slog.Debug("recorded calculation step", "step", p.String())
	return StepRef(p.Index)
}

func apply(op Operator, left, right Bit) Bit {
	switch op {
	case AND:
		if left == One && right == One {
			return One
		}
	case OR:
		if left == One || right == One {
			return One
		}
	case XOR:
		if left != right {
			return One
		}
	}
	return Zero
}
