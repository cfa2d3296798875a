package evalex

import (
	"io"
	"math"
	"strings"
)

// Expr is a compiled expression. It is safe to evaluate an Expr any number of
// times, including concurrently.
type Expr struct {
	// n is the root of the expression tree. It is nil for an empty
	// expression.
	n *Node
	// postfix is the postfix token sequence the tree was built from.
	postfix []Token
}

// Compile runs every stage of the pipeline except evaluation. Under Strict,
// parentheses are checked with CheckParens before tokenizing.
func Compile(src string, opts ...Option) (*Expr, error) {
	cfg := configure(opts)
	if cfg.strict {
		if err := CheckParens(src); err != nil {
			return nil, err
		}
	}
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	postfix := ToPostfix(toks, opts...)
	n, err := BuildTree(postfix, opts...)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n, postfix: postfix}, nil
}

// Eval evaluates the compiled expression.
func (e *Expr) Eval() (float64, error) {
	return Evaluate(e.n)
}

// Tree returns the root of the expression tree. The tree is shared with e and
// must not be modified.
func (e *Expr) Tree() *Node {
	return e.n
}

// Postfix returns a copy of the postfix token sequence of the expression.
func (e *Expr) Postfix() []Token {
	return append(([]Token)(nil), e.postfix...)
}

// String formats the expression tree. See Node.String.
func (e *Expr) String() string {
	return e.n.String()
}

// Evaluate computes the value of an expression tree by evaluating both
// operands of each operator, left first, then combining them. A nil tree or
// operand evaluates to 0.
//
// Division by exactly zero, including -0, is a *DivisionByZeroError. The %
// operator truncates both operands toward zero before taking the remainder, so
// its result is always integral and has the sign of the left operand; a right
// operand that truncates to zero is also a *DivisionByZeroError. The ^
// operator follows math.Pow, so e.g. a negative base with a fractional
// exponent gives NaN rather than an error.
func Evaluate(n *Node) (float64, error) {
	if n == nil {
		return 0, nil
	}
	if n.Tok.Kind == TokenNumber {
		return n.Tok.Value, nil
	}
	l, err := Evaluate(n.Left)
	if err != nil {
		return 0, err
	}
	r, err := Evaluate(n.Right)
	if err != nil {
		return 0, err
	}
	var sym byte
	if n.Tok.Kind == TokenOperator {
		sym = n.Tok.Sym
	}
	switch sym {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 {
			return 0, &DivisionByZeroError{Col: n.Tok.Pos, Op: '/'}
		}
		return l / r, nil
	case '%':
		d := math.Trunc(r)
		if d == 0 {
			return 0, &DivisionByZeroError{Col: n.Tok.Pos, Op: '%'}
		}
		return math.Mod(math.Trunc(l), d), nil
	case '^':
		return math.Pow(l, r), nil
	default:
		return 0, &OperatorError{Col: n.Tok.Pos, Operator: n.Tok.Text()}
	}
}

// Eval is a shortcut to read an expression from src and evaluate it.
func Eval(src io.RuneScanner, opts ...Option) (float64, error) {
	var b strings.Builder
	for {
		r, _, err := src.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		b.WriteRune(r)
	}
	return EvalString(b.String(), opts...)
}

// EvalString is a shortcut to compile and evaluate a string expression.
func EvalString(src string, opts ...Option) (float64, error) {
	e, err := Compile(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}
