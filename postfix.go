package evalex

// ToPostfix reorders tokens from infix to postfix order using the
// shunting-yard algorithm. Numbers go straight to the output. An operator
// first moves every stacked operator that binds at least as tightly to the
// output, which makes all operators left-associative unless RightAssocPow is
// given. A ) moves operators up to the matching ( and discards it; a ) with no
// ( is ignored. Whatever remains on the stack at the end, including unclosed
// parentheses, is appended to the output.
//
// ToPostfix never fails. Malformed input produces malformed output, which
// BuildTree and Evaluate deal with.
func ToPostfix(tokens []Token, opts ...Option) []Token {
	cfg := configure(opts)
	out := make([]Token, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber:
			out = append(out, tok)
		case TokenOperator:
			in := cfg.binop(tok.Sym)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOperator || !cfg.binop(top.Sym).popsBefore(in) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case TokenParen:
			if tok.Sym == '(' {
				stack = append(stack, tok)
				continue
			}
			for len(stack) > 0 && !isOpen(stack[len(stack)-1]) {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	for len(stack) > 0 {
		out = append(out, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}
	return out
}

func isOpen(tok Token) bool {
	return tok.Kind == TokenParen && tok.Sym == '('
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// popsBefore reports whether a stacked operator p must be output before
// pushing the incoming operator in.
func (p operator) popsBefore(in operator) bool {
	if p.prec != in.prec {
		return p.prec > in.prec
	}
	return !in.right
}

// binop gets the operator for a symbol. Unknown symbols get a precedence below
// every real operator.
func (c config) binop(sym byte) operator {
	switch sym {
	case '+', '-':
		return operator{1, false}
	case '*', '/', '%':
		return operator{2, false}
	case '^':
		return operator{3, c.rpow}
	default:
		return operator{-1, false}
	}
}
