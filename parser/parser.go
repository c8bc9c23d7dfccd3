package parser

import (
	"fmt"
	"strings"

	"github.com/endive-xyz/go-endive/object"
)

// parser is a recursive-descent parser over a token slice. Precedence,
// loosest first: composition "|", alphanumeric infix rules ("A gives B"),
// special-character infix rules ("A => B"), additive, multiplicative,
// primaries. All infix operators are right-associative.
type parser struct {
	tokens []Token
	pos    int
}

// ParseLine parses "Directive arg1, arg2, ...". Empty lines and lines
// starting with '#' yield an empty directive and no error.
func ParseLine(line string) (string, []object.Object, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil, nil
	}
	tokens, err := Tokenize(line)
	if err != nil {
		return "", nil, err
	}
	p := &parser{tokens: tokens}

	directive := p.current()
	if directive == nil || directive.Type != TokenSymbol {
		return "", nil, fmt.Errorf("%w: line must start with a directive name", ErrParse)
	}
	p.advance()

	if p.current() == nil {
		return directive.Value, nil, nil
	}
	args, err := p.parseArgList()
	if err != nil {
		return "", nil, err
	}
	if tok := p.current(); tok != nil {
		return "", nil, fmt.Errorf("%w: unexpected token %q at position %d", ErrParse, tok.Value, tok.Pos)
	}
	return directive.Value, args, nil
}

// ParseObject parses a single object from its surface syntax.
func ParseObject(s string) (object.Object, error) {
	tokens, err := Tokenize(s)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	o, err := p.parseArg()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok != nil {
		return nil, fmt.Errorf("%w: unexpected token %q at position %d", ErrParse, tok.Value, tok.Pos)
	}
	return o, nil
}

func (p *parser) current() *Token {
	if p.pos < len(p.tokens) {
		return &p.tokens[p.pos]
	}
	return nil
}

func (p *parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *parser) expect(tt TokenType, what string) (*Token, error) {
	tok := p.current()
	if tok == nil || tok.Type != tt {
		got := "end of input"
		if tok != nil {
			got = fmt.Sprintf("%q", tok.Value)
		}
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrParse, what, got)
	}
	p.advance()
	return tok, nil
}

func (p *parser) parseArgList() ([]object.Object, error) {
	var args []object.Object
	arg, err := p.parseArg()
	if err != nil {
		return nil, err
	}
	args = append(args, arg)
	for p.current() != nil && p.current().Type == TokenComma {
		p.advance()
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

// parseArg parses a composition, the loosest level: arg | arg.
func (p *parser) parseArg() (object.Object, error) {
	left, err := p.parseWordRules()
	if err != nil {
		return nil, err
	}
	if p.current() != nil && p.current().Type == TokenPipe {
		p.advance()
		right, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		return object.NewComposition(left, right), nil
	}
	return left, nil
}

// parseWordRules parses alphanumeric infix rule operators: "A gives B"
// builds the rule A [gives] B.
func (p *parser) parseWordRules() (object.Object, error) {
	left, err := p.parseSpecialRules()
	if err != nil {
		return nil, err
	}
	// Two adjacent objects with no operator between them are an error.
	if tok := p.current(); tok != nil && (tok.Type == TokenLParen || tok.Type == TokenHole) {
		return nil, fmt.Errorf("%w: unexpected %q after expression at position %d", ErrParse, tok.Value, tok.Pos)
	}
	for p.current() != nil && p.current().Type == TokenSymbol {
		symbol := p.current().Value
		if isSpecialSymbol(symbol) {
			break
		}
		p.advance()
		right, err := p.parseWordRules()
		if err != nil {
			return nil, err
		}
		left = object.NewRewrite(symbol, left, right)
	}
	return left, nil
}

// parseSpecialRules parses special-character infix rule operators:
// "A => B", "A --> B".
func (p *parser) parseSpecialRules() (object.Object, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.current() != nil && p.current().Type == TokenSymbol {
		symbol := p.current().Value
		if !isSpecialSymbol(symbol) {
			break
		}
		p.advance()
		right, err := p.parseSpecialRules()
		if err != nil {
			return nil, err
		}
		left = object.NewRewrite(symbol, left, right)
	}
	return left, nil
}

// parseAdditive desugars "+" and "-" into plus/minus terms.
func (p *parser) parseAdditive() (object.Object, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.current() != nil && p.current().Type == TokenOp &&
		(p.current().Value == "+" || p.current().Value == "-") {
		op := p.current().Value
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		name := "plus"
		if op == "-" {
			name = "minus"
		}
		left = object.NewTerm(name, left, right)
	}
	return left, nil
}

// parseMultiplicative desugars "*" into mult terms.
func (p *parser) parseMultiplicative() (object.Object, error) {
	left, err := p.parseDivision()
	if err != nil {
		return nil, err
	}
	for p.current() != nil && p.current().Type == TokenOp && p.current().Value == "*" {
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = object.NewTerm("mult", left, right)
	}
	return left, nil
}

// parseDivision desugars "/" into div terms.
func (p *parser) parseDivision() (object.Object, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.current() != nil && p.current().Type == TokenOp && p.current().Value == "/" {
		p.advance()
		right, err := p.parseDivision()
		if err != nil {
			return nil, err
		}
		left = object.NewTerm("div", left, right)
	}
	return left, nil
}

// parsePrimary parses a symbol, a call symbol(args), a hole, or a
// parenthesized argument.
func (p *parser) parsePrimary() (object.Object, error) {
	tok := p.current()
	if tok == nil {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrParse)
	}
	switch tok.Type {
	case TokenSymbol:
		p.advance()
		if next := p.current(); next != nil && next.Type == TokenLParen {
			p.advance()
			args, err := p.parseArgList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenRParen, ")"); err != nil {
				return nil, err
			}
			return object.NewTerm(tok.Value, args...), nil
		}
		return object.NewTerm(tok.Value), nil
	case TokenHole:
		p.advance()
		return object.NewHole(tok.Value), nil
	case TokenLParen:
		p.advance()
		inner, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen, ")"); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return nil, fmt.Errorf("%w: unexpected token %q at position %d", ErrParse, tok.Value, tok.Pos)
}
