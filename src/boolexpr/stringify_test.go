package boolexpr_test

import (
	"testing"

	"github.com/eriklarko/logic-tracer/src/boolexpr"
	"github.com/stretchr/testify/assert"
)

func TestToStringWithoutAssignment(t *testing.T) {
	tests := map[string]struct {
		expr     boolexpr.Expression
		expected string
	}{
		"variable":  {v("X"), "X"},
		"negation":  {not(v("X")), "(NOT X)"},
		"and":       {and(v("X"), v("Y")), "(X AND Y)"},
		"or":        {or(v("X"), v("Y")), "(X OR Y)"},
		"xor":       {xor(v("X"), v("Y")), "(X XOR Y)"},
		"nested":    {or(v("X"), not(v("Y"))), "(X OR (NOT Y))"},
		"deep left": {and(and(v("A"), v("B")), v("C")), "((A AND B) AND C)"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, boolexpr.ToString(tc.expr, nil))
		})
	}
}

func TestToStringSubstitutesBoundVariables(t *testing.T) {
	vars := boolexpr.Variables{
		"X": boolexpr.One,
		"Y": boolexpr.Zero,
	}

	tests := map[string]struct {
		expr     boolexpr.Expression
		expected string
	}{
		"bound one":     {v("X"), "1"},
		"unbound":       {v("Z"), "Z"},
		"mixed":         {and(v("X"), v("Z")), "(1 AND Z)"},
		"nested":        {or(v("X"), not(v("Y"))), "(1 OR (NOT 0))"},
		// a Zero binding is a value, not a missing variable
		"bound zero": {v("Y"), "0"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, boolexpr.ToString(tc.expr, vars))
		})
	}
}
