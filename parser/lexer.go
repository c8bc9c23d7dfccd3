// Package parser reads the surface syntax of proof scripts into objects.
// A line is a directive name followed by comma-separated object
// arguments: terms f(a, b), holes [x], infix rewrite rules A => B,
// compositions A | B and arithmetic sugar (+ - * /).
package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse is returned for any tokenizer or parser failure.
var ErrParse = errors.New("parse error")

// TokenType classifies lexed tokens.
type TokenType int

const (
	// TokenSymbol is an identifier, numeral, or special-character
	// operator symbol such as "=>".
	TokenSymbol TokenType = iota
	// TokenHole is a hole literal "[name]".
	TokenHole
	// TokenPipe is the composition operator "|".
	TokenPipe
	// TokenOp is a single arithmetic operator: + - * /.
	TokenOp
	// TokenLParen, TokenRParen and TokenComma punctuate argument lists.
	TokenLParen
	TokenRParen
	TokenComma
)

// Token is one lexed unit with its byte position in the line.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

const specialChars = "=><-+*/!@#$%^&~`\\"

func isWordChar(c byte) bool {
	return c == '_' || c == '.' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isSpecialChar(c byte) bool {
	return strings.IndexByte(specialChars, c) >= 0
}

// Tokenize splits a line into tokens. Runs of special characters lex as
// one symbol ("=>", "-->"), except the four single arithmetic operators
// which lex as TokenOp.
func Tokenize(line string) ([]Token, error) {
	line = strings.TrimSpace(line)
	var tokens []Token
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case isWordChar(c):
			start := i
			for i < len(line) && isWordChar(line[i]) {
				i++
			}
			tokens = append(tokens, Token{TokenSymbol, line[start:i], start})
		case c == '[':
			start := i
			i++
			nameStart := i
			for i < len(line) && line[i] != ']' {
				i++
			}
			if i >= len(line) {
				return nil, fmt.Errorf("%w: unclosed hole at position %d", ErrParse, start)
			}
			tokens = append(tokens, Token{TokenHole, line[nameStart:i], start})
			i++
		case c == '|':
			tokens = append(tokens, Token{TokenPipe, "|", i})
			i++
		case isSpecialChar(c):
			start := i
			for i < len(line) && isSpecialChar(line[i]) {
				i++
			}
			text := line[start:i]
			if text == "+" || text == "-" || text == "*" || text == "/" {
				tokens = append(tokens, Token{TokenOp, text, start})
			} else {
				tokens = append(tokens, Token{TokenSymbol, text, start})
			}
		case c == '(':
			tokens = append(tokens, Token{TokenLParen, "(", i})
			i++
		case c == ')':
			tokens = append(tokens, Token{TokenRParen, ")", i})
			i++
		case c == ',':
			tokens = append(tokens, Token{TokenComma, ",", i})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrParse, c, i)
		}
	}
	return tokens, nil
}

// isSpecialSymbol reports whether a symbol consists only of special
// characters, making it an infix rule operator like "=>" rather than an
// identifier.
func isSpecialSymbol(symbol string) bool {
	if symbol == "" {
		return false
	}
	for i := 0; i < len(symbol); i++ {
		if isWordChar(symbol[i]) {
			return false
		}
	}
	return true
}
