package boolexpr

import (
	"fmt"
)

// ToString renders an expression in parenthesized infix notation, one
// level of parentheses per operation node. When vars is non-nil, variables
// bound in it render as their value ("0" or "1") and unbound variables
// render as their name. Presence in the map decides, not the value: a
// variable bound to Zero renders as "0".
//
// Recursion depth equals tree depth, so pathologically deep trees are
// limited only by the call stack.
//
// Example usage:
//
//	expr := &BinaryOperation{
//		Operator: AND,
//		Left:     &Variable{Name: "X"},
//		Right:    &Variable{Name: "Y"},
//	}
//	fmt.Println(ToString(expr, nil)) // Output: (X AND Y)
func ToString(expr Expression, vars Variables) string {
	switch e := expr.(type) {
	case *BinaryOperation:
		return fmt.Sprintf("(%s %s %s)", ToString(e.Left, vars), e.Operator, ToString(e.Right, vars))
	case *UnaryOperation:
		return fmt.Sprintf("(%s %s)", e.Operator, ToString(e.Operand, vars))
	case *Variable:
		if value, ok := vars[e.Name]; ok {
			return value.String()
		}
		return e.Name
	}
	return ""
}
