package evalex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diff finds the first in-order node of n that differs from m, or nil, nil if
// the two trees are equal. Positions are ignored.
func (n *Node) diff(m *Node) (*Node, *Node) {
	if n == nil || m == nil {
		if n != m {
			return n, m
		}
		return nil, nil
	}
	if n.Tok.Kind != m.Tok.Kind || n.Tok.Value != m.Tok.Value || n.Tok.Sym != m.Tok.Sym {
		return n, m
	}
	if d, e := n.Left.diff(m.Left); d != nil || e != nil {
		return d, e
	}
	return n.Right.diff(m.Right)
}

func leaf(v float64) *Node {
	return &Node{Tok: Num(v)}
}

func bin(sym byte, l, r *Node) *Node {
	return &Node{Tok: Op(sym), Left: l, Right: r}
}

func TestBuildTree(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want *Node
	}{
		{"empty", "", nil},
		{"num", "7", leaf(7)},
		{"add", "1 + 2", bin('+', leaf(1), leaf(2))},
		{"prec", "2 + 3 * 4", bin('+', leaf(2), bin('*', leaf(3), leaf(4)))},
		{"left", "8 - 5 - 2", bin('-', bin('-', leaf(8), leaf(5)), leaf(2))},
		{"pow", "2 ^ 3 ^ 2", bin('^', bin('^', leaf(2), leaf(3)), leaf(2))},
		{"unary", "-(5 - 2)", bin('-', nil, bin('-', leaf(5), leaf(2)))},
		{"lone-op", "*", bin('*', nil, nil)},
		{"two-nums", "1 2", leaf(2)},
		{"unclosed", "(1 + 2", bin('+', leaf(1), leaf(2))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Tokenize(c.src)
			require.NoError(t, err)
			got, err := BuildTree(ToPostfix(toks))
			require.NoError(t, err)
			if d, e := got.diff(c.want); d != nil || e != nil {
				t.Errorf("%q built wrong tree:\n\twant %v\n\tgot  %v\n\tfirst difference: want %v, got %v", c.src, c.want, got, e, d)
			}
		})
	}
}

func TestBuildTreeRightAssocPow(t *testing.T) {
	toks, err := Tokenize("2 ^ 3 ^ 2")
	require.NoError(t, err)
	opts := []Option{RightAssocPow()}
	got, err := BuildTree(ToPostfix(toks, opts...), opts...)
	require.NoError(t, err)
	want := bin('^', leaf(2), bin('^', leaf(3), leaf(2)))
	d, e := got.diff(want)
	assert.Nil(t, d)
	assert.Nil(t, e)
}

func TestBuildTreeStrict(t *testing.T) {
	cases := []struct {
		name string
		post []Token
		err  InputError
	}{
		{"empty", nil, &EmptyExpressionError{Col: 1}},
		{"unary", []Token{{Kind: TokenNumber, Value: 1, Pos: 3}, {Kind: TokenOperator, Sym: '-', Pos: 1}}, &OperandError{Col: 1, Operator: "-"}},
		{"lone", []Token{{Kind: TokenOperator, Sym: '*', Pos: 1}}, &OperandError{Col: 1, Operator: "*"}},
		{"extra", []Token{{Kind: TokenNumber, Value: 1, Pos: 1}, {Kind: TokenNumber, Value: 2, Pos: 3}}, &OperandError{Col: 1, Extra: true}},
		{"open", []Token{{Kind: TokenNumber, Value: 1, Pos: 2}, {Kind: TokenParen, Sym: '(', Pos: 1}}, &BracketError{Col: 1, Left: "("}},
		{"close", []Token{{Kind: TokenParen, Sym: ')', Pos: 2}}, &BracketError{Col: 2, Right: ")"}},
		{"none", []Token{{Pos: 4}}, &OperatorError{Col: 4, Operator: "\x00"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := BuildTree(c.post, Strict())
			assert.Nil(t, got)
			assert.Equal(t, c.err, err)
		})
	}
}

func TestBuildTreeStrictValid(t *testing.T) {
	toks, err := Tokenize("(2 + 3) * -4")
	require.NoError(t, err)
	got, err := BuildTree(ToPostfix(toks), Strict())
	require.NoError(t, err)
	d, e := got.diff(bin('*', bin('+', leaf(2), leaf(3)), leaf(-4)))
	assert.Nil(t, d)
	assert.Nil(t, e)
}

func TestBuildTreePermissiveSkipsParens(t *testing.T) {
	got, err := BuildTree([]Token{Num(1), Paren('('), Num(2), Op('+'), Paren(')')})
	require.NoError(t, err)
	d, e := got.diff(bin('+', leaf(1), leaf(2)))
	assert.Nil(t, d)
	assert.Nil(t, e)
}

func TestNodeString(t *testing.T) {
	cases := []struct {
		name string
		n    *Node
		want string
	}{
		{"nil", nil, "_"},
		{"leaf", leaf(1.5), "(1.5)"},
		{"add", bin('+', leaf(1), leaf(2)), "([1] + [2])"},
		{"nested", bin('+', leaf(2), bin('*', leaf(3), leaf(4))), "([2] + [(3) * (4)])"},
		{"missing", bin('-', nil, leaf(3)), "(_ - [3])"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.n.String())
		})
	}
}

func TestNodeDepth(t *testing.T) {
	assert.Equal(t, 0, (*Node)(nil).Depth())
	assert.Equal(t, 1, leaf(1).Depth())
	assert.Equal(t, 3, bin('+', leaf(2), bin('*', leaf(3), leaf(4))).Depth())
	assert.Equal(t, 2, bin('-', nil, leaf(3)).Depth())
}
