package boolexpr

// Bit is a two-valued logical quantity. All evaluation results and
// variable assignments use Bit rather than bool to keep the domain
// vocabulary explicit.
type Bit int

const (
	Zero Bit = iota
	One
)

// Not flips Zero to One and One to Zero.
func (b Bit) Not() Bit {
	if b == Zero {
		return One
	}
	return Zero
}

func (b Bit) String() string {
	if b == One {
		return "1"
	}
	return "0"
}

type Operator int

const (
	AND Operator = iota
	OR
	XOR
	NOT
)

func (o Operator) String() string {
	switch o {
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case NOT:
		return "NOT"
	}
	return "?"
}

// Variables is the assignment an expression is evaluated under. It is
// owned by the caller and only read during evaluation.
type Variables map[string]Bit

// Expression is a boolean expression tree. The three implementations,
// BinaryOperation, UnaryOperation and Variable, form a closed set: the
// unexported marker method keeps other packages from adding shapes, so
// type switches over Expression stay exhaustive.
//
// An Expression owns its children exclusively. Sharing a node between two
// trees, or introducing a cycle, is not supported.
type Expression interface {
	isExpression()
}

// BinaryOperation applies AND, OR or XOR to two sub-expressions.
type BinaryOperation struct {
	Operator Operator
	Left     Expression
	Right    Expression
}

func (*BinaryOperation) isExpression() {}

// UnaryOperation applies NOT to a single sub-expression.
type UnaryOperation struct {
	Operator Operator
	Operand  Expression
}

func (*UnaryOperation) isExpression() {}

// Variable is a named leaf, resolved against a Variables assignment at
// evaluation time.
type Variable struct {
	Name string
}

func (*Variable) isExpression() {}
