package evalex

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a single element of an expression: a number, an operator, or a
// parenthesis. Tokens are values and are never modified once produced.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Value is the value of a number token, including its sign.
	Value float64
	// Sym is the symbol of an operator or parenthesis token.
	Sym byte
	// Pos is the 1-based rune column of the token in its source, or 0 for
	// tokens not produced by Tokenize. For a signed literal it is the column
	// of the sign.
	Pos int
}

// Num creates a number token with no position.
func Num(v float64) Token {
	return Token{Kind: TokenNumber, Value: v}
}

// Op creates an operator token with no position.
func Op(sym byte) Token {
	return Token{Kind: TokenOperator, Sym: sym}
}

// Paren creates a parenthesis token with no position.
func Paren(sym byte) Token {
	return Token{Kind: TokenParen, Sym: sym}
}

// Text returns the token as it would be written in an expression.
func (t Token) Text() string {
	if t.Kind == TokenNumber {
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return string(rune(t.Sym))
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text() + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNumber is a numeric literal.
	TokenNumber
	// TokenOperator is one of the binary operators in Operators.
	TokenOperator
	// TokenParen is ( or ).
	TokenParen
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenOperator:
		return "Operator"
	case TokenParen:
		return "Paren"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the characters which are considered to be operators.
const Operators = "+-*/%^"

// FormatTokens writes a token sequence separated by spaces, e.g. "2 3 4 * +"
// for the postfix form of 2 + 3 * 4.
func FormatTokens(toks []Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text())
	}
	return b.String()
}

type lexer struct {
	src io.RuneScanner
	// buf holds the literal being scanned, starting at column start.
	buf   strings.Builder
	start int
	// rune is the column of the last rune read.
	rune int
	// expect is whether the next token should be a number, so that a sign
	// immediately before a digit belongs to the literal.
	expect bool
	toks   []Token
}

// Tokenize splits an expression into tokens. A + or - is folded into the
// following literal as its sign when a number is expected, i.e. at the start,
// after ( and after an operator, and the next character is a digit or '.'.
// Otherwise it is an operator token. Whitespace separates tokens and is
// otherwise ignored.
func Tokenize(src string) ([]Token, error) {
	return tokenize(strings.NewReader(src))
}

func tokenize(src io.RuneScanner) ([]Token, error) {
	l := lexer{src: src, expect: true}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

func (l *lexer) run() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return l.flush()
			}
			return err
		}
		if isNumRune(r) {
			if l.buf.Len() == 0 {
				l.start = l.rune
			}
			l.buf.WriteRune(r)
			l.expect = false
			continue
		}
		if (r == '+' || r == '-') && l.expect {
			ok, err := l.peekNum()
			if err != nil {
				return err
			}
			if ok {
				// A number is expected, so the buffer is empty.
				l.start = l.rune
				l.buf.WriteRune(r)
				continue
			}
		}
		if err := l.flush(); err != nil {
			return err
		}
		switch {
		case unicode.IsSpace(r):
			// do nothing
		case strings.ContainsRune(Operators, r):
			l.toks = append(l.toks, Token{Kind: TokenOperator, Sym: byte(r), Pos: l.rune})
			l.expect = true
		case r == '(':
			l.toks = append(l.toks, Token{Kind: TokenParen, Sym: '(', Pos: l.rune})
			l.expect = true
		case r == ')':
			l.toks = append(l.toks, Token{Kind: TokenParen, Sym: ')', Pos: l.rune})
			l.expect = false
		default:
			return &CharError{Col: l.rune, Char: r}
		}
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// peekNum reports whether the next rune can start a literal without consuming
// it.
func (l *lexer) peekNum() (bool, error) {
	r, _, err := l.src.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	if err := l.src.UnreadRune(); err != nil {
		return false, err
	}
	return isNumRune(r), nil
}

// flush emits the buffered literal, if any.
func (l *lexer) flush() error {
	if l.buf.Len() == 0 {
		return nil
	}
	text := l.buf.String()
	l.buf.Reset()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Covers both malformed literals like "1.2.3" and ones too large for
		// a float64.
		return &NumberError{Col: l.start, Text: text}
	}
	l.toks = append(l.toks, Token{Kind: TokenNumber, Value: v, Pos: l.start})
	return nil
}

func isNumRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}
