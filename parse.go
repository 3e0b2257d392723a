package gocalc

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenInt
	TokenPlus
	TokenMult
	TokenOpen
	TokenClose
	TokenInvalid
)

var tokenNames = [...]string{
	TokenEOF:     "EOF",
	TokenInt:     "INT",
	TokenPlus:    "+",
	TokenMult:    "*",
	TokenOpen:    "(",
	TokenClose:   ")",
	TokenInvalid: "INVALID",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "UNKNOWN"
	}
	return tokenNames[t]
}

type Token struct {
	t TokenType
	v int
}

func (tok Token) Type() TokenType {
	return tok.t
}

func (tok Token) String() string {
	if tok.t == TokenInt {
		return strconv.Itoa(tok.v)
	}
	return tok.t.String()
}

// Parse parses a complete expression from input.
func Parse(input string) Option[Expr] {
	return NewParser(strings.NewReader(input)).Parse()
}

func NewParser(r io.Reader) *Parser {
	return &Parser{
		buf: bufio.NewReader(r),
	}
}

// Parser is a recursive descent parser reading one token ahead.
type Parser struct {
	buf  *bufio.Reader
	pos  int
	last int
	tok  Token
}

func (p *Parser) Pos() int {
	return p.pos
}

func (p *Parser) readRune() (rune, error) {
	r, n, err := p.buf.ReadRune()
	p.pos += n
	p.last = n
	return r, err
}

func (p *Parser) unreadRune() error {
	err := p.buf.UnreadRune()
	if err == nil {
		p.pos -= p.last
	}
	return err
}

func (p *Parser) SkipWhite() error {
	for {
		r, err := p.readRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(r) {
			return p.unreadRune()
		}
	}
}

// Next reads the token following the current one. Once an EOF or invalid
// token has been read, it stays current.
func (p *Parser) Next() Token {
	if p.tok.t == TokenInvalid {
		return p.tok
	}
	p.tok = p.scan()
	return p.tok
}

func (p *Parser) scan() Token {
	if err := p.SkipWhite(); err != nil {
		if err == io.EOF {
			return Token{t: TokenEOF}
		}
		return Token{t: TokenInvalid}
	}
	r, err := p.readRune()
	if err != nil {
		return Token{t: TokenInvalid}
	}
	switch r {
	case '+':
		return Token{t: TokenPlus}
	case '*':
		return Token{t: TokenMult}
	case '(':
		return Token{t: TokenOpen}
	case ')':
		return Token{t: TokenClose}
	}
	if isDigit(r) {
		if err := p.unreadRune(); err != nil {
			return Token{t: TokenInvalid}
		}
		return p.scanInt()
	}
	return Token{t: TokenInvalid}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func (p *Parser) scanInt() Token {
	var buf bytes.Buffer
	for {
		r, err := p.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Token{t: TokenInvalid}
		}
		if !isDigit(r) {
			p.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	i, err := strconv.Atoi(buf.String())
	if err != nil {
		return Token{t: TokenInvalid}
	}
	return Token{t: TokenInt, v: i}
}

// Parse reads the whole input as one expression. Anything left after the
// expression makes the parse fail.
func (p *Parser) Parse() Option[Expr] {
	p.Next()
	e := p.parseExpr()
	if e.IsNothing() || p.tok.t != TokenEOF {
		return Nothing[Expr]()
	}
	return e
}

// expr := term ('+' term)*
func (p *Parser) parseExpr() Option[Expr] {
	left, ok := p.parseTerm().Get()
	if !ok {
		return Nothing[Expr]()
	}
	for p.tok.t == TokenPlus {
		p.Next()
		right, ok := p.parseTerm().Get()
		if !ok {
			return Nothing[Expr]()
		}
		left = NewAdd(left, right)
	}
	return Just(left)
}

// term := factor ('*' factor)*
func (p *Parser) parseTerm() Option[Expr] {
	left, ok := p.parseFactor().Get()
	if !ok {
		return Nothing[Expr]()
	}
	for p.tok.t == TokenMult {
		p.Next()
		right, ok := p.parseFactor().Get()
		if !ok {
			return Nothing[Expr]()
		}
		left = NewMul(left, right)
	}
	return Just(left)
}

// factor := INT | '(' expr ')'
func (p *Parser) parseFactor() Option[Expr] {
	switch p.tok.t {
	case TokenInt:
		v := p.tok.v
		p.Next()
		return Just(NewInt(v))
	case TokenOpen:
		p.Next()
		e := p.parseExpr()
		if e.IsNothing() || p.tok.t != TokenClose {
			return Nothing[Expr]()
		}
		p.Next()
		return e
	}
	return Nothing[Expr]()
}
