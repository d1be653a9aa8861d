package boolexpr

import (
	"fmt"
)

// UnknownVariableError is recorded when an expression references a
// variable that has no value in the assignment.
type UnknownVariableError struct {
	VariableName string
}

// NewUnknownVariableError creates a new UnknownVariableError with the given variable name.
func NewUnknownVariableError(variableName string) error {
	return &UnknownVariableError{VariableName: variableName}
}

func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("Variable %s not found", e.VariableName)
}
