package evalex

import "strconv"

// CharError is an error indicating a character that cannot appear in an
// expression. It implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the offending character.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "invalid character in expression: "+string(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a numeric literal that does not parse as
// a finite float64. It implements InputError.
type NumberError struct {
	// Col is the position of the first character of the literal, including
	// its sign.
	Col int
	// Text is the literal as written.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating a division or modulo whose right
// operand is zero. It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the operator.
	Col int
	// Op is '/' or '%'.
	Op byte
}

func (err *DivisionByZeroError) Error() string {
	if err.Op == '%' {
		return errpos(err.Col, "division by zero in modulo")
	}
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating a tree node whose token is not one of
// the six operators. Trees built by BuildTree never produce it. It implements
// InputError.
type OperatorError struct {
	// Col is the position of the token.
	Col int
	// Operator is the token text.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "invalid operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is "(" if an open parenthesis was never closed, otherwise "".
	Left string
	// Right is ")" if a close parenthesis had no open parenthesis, otherwise
	// "".
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "unmatched parentheses: close "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "unmatched parentheses: open "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperandError is an error from strict tree building indicating an operator
// without two operands or an operand without an operator. It implements
// InputError.
type OperandError struct {
	// Col is the position of the operator missing an operand, or of the
	// operand that has no operator.
	Col int
	// Operator is the operator missing an operand. It is empty when Extra is
	// set.
	Operator string
	// Extra indicates an operand left over after building the tree.
	Extra bool
}

func (err *OperandError) Error() string {
	if err.Extra {
		return errpos(err.Col, "operand with no operator")
	}
	return errpos(err.Col, "missing operand for "+strconv.Quote(err.Operator))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error from strict tree building indicating an
// expression with no operands or operators.
type EmptyExpressionError struct {
	// Col is the position just past the end of the input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the character that caused the error.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
