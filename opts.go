package evalex

// Option is an option for converting and building expressions.
type Option interface {
	option(config) config
}

type (
	strictopt struct{}
	rpowopt   struct{}
)

// config holds the pipeline settings chosen by options. The zero value is the
// default, permissive behavior.
type config struct {
	// strict makes malformed expressions errors instead of treating missing
	// operands as 0.
	strict bool
	// rpow makes ^ right-associative.
	rpow bool
}

// Strict makes the pipeline reject malformed expressions. Unbalanced
// parentheses are reported as a *BracketError before tokenizing, and BuildTree
// reports an operator without two operands or an operand without an operator
// as an *OperandError and an empty expression as an *EmptyExpressionError.
//
// Without Strict, a missing operand evaluates to 0. Note that this is what
// gives meaning to a sign applied to a parenthesized term, so "-(5 - 2)" is an
// error under Strict.
func Strict() Option {
	return strictopt{}
}

func (strictopt) option(c config) config {
	c.strict = true
	return c
}

// RightAssocPow makes ^ right-associative, so that "2^3^2" is 2^(3^2) = 512
// rather than the default (2^3)^2 = 64. The other operators are always
// left-associative.
func RightAssocPow() Option {
	return rpowopt{}
}

func (rpowopt) option(c config) config {
	c.rpow = true
	return c
}

// configure applies options in order. Nil options are ignored.
func configure(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}
