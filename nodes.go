package evalex

import (
	"strings"
)

// Node is a node in the binary tree of an expression. A number node is a leaf.
// An operator node has a left and right operand, either of which may be nil
// in a tree built from malformed input. Parentheses never appear in a tree.
type Node struct {
	Tok Token

	Left  *Node
	Right *Node
}

// BuildTree builds an expression tree from a postfix token sequence. Each
// number becomes a leaf. Each operator takes the most recent subtree as its
// right operand and the one before that as its left; when there are not
// enough, the operand is left nil. Parenthesis tokens are skipped. The result
// is the last subtree built, or nil if there is none.
//
// Without Strict, the error is always nil.
func BuildTree(postfix []Token, opts ...Option) (*Node, error) {
	cfg := configure(opts)
	var stack []*Node
	end := 1
	for _, tok := range postfix {
		if tok.Pos >= end {
			end = tok.Pos + 1
		}
		switch tok.Kind {
		case TokenNumber:
			stack = append(stack, &Node{Tok: tok})
		case TokenOperator:
			n := &Node{Tok: tok}
			// Right operand was pushed last.
			if len(stack) > 0 {
				n.Right = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
			if len(stack) > 0 {
				n.Left = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
			if cfg.strict && (n.Left == nil || n.Right == nil) {
				return nil, &OperandError{Col: tok.Pos, Operator: tok.Text()}
			}
			stack = append(stack, n)
		case TokenParen:
			if cfg.strict {
				if tok.Sym == '(' {
					return nil, &BracketError{Col: tok.Pos, Left: "("}
				}
				return nil, &BracketError{Col: tok.Pos, Right: ")"}
			}
		default:
			if cfg.strict {
				return nil, &OperatorError{Col: tok.Pos, Operator: tok.Text()}
			}
		}
	}
	switch {
	case len(stack) == 0:
		if cfg.strict {
			return nil, &EmptyExpressionError{Col: end}
		}
		return nil, nil
	case len(stack) > 1 && cfg.strict:
		return nil, &OperandError{Col: stack[len(stack)-2].Tok.Pos, Extra: true}
	}
	return stack[len(stack)-1], nil
}

// Depth returns the number of nodes on the longest path from n to a leaf.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	l, r := n.Left.Depth(), n.Right.Depth()
	if r > l {
		l = r
	}
	return l + 1
}

// String formats the tree with alternating round and square brackets grouping
// each subtree. A missing operand is written as _.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	if n == nil {
		b.WriteByte('_')
		return
	}
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	if n.Tok.Kind == TokenNumber {
		b.WriteString(n.Tok.Text())
		return
	}
	n.Left.fmt(b, !square)
	b.WriteByte(' ')
	b.WriteString(n.Tok.Text())
	b.WriteByte(' ')
	n.Right.fmt(b, !square)
}
