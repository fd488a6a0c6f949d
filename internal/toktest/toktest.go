// Copyright 2024-2026 The Tokenparse Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package toktest provides a small token vocabulary shared by the
// combinator tests: a kind enum, a span-carrying wrapper, and leaf
// parsers for each kind.
package toktest

import (
	"github.com/tokenparse/tokenparse"
)

// Kind is the raw lexical category a [Token] wraps.
type Kind int

const (
	KindDigit Kind = iota + 1
	KindComma
	KindLParen
	KindRParen
	KindIdent
)

func (k Kind) String() string {
	switch k {
	case KindDigit:
		return "Digit"
	case KindComma:
		return "Comma"
	case KindLParen:
		return "LParen"
	case KindRParen:
		return "RParen"
	case KindIdent:
		return "Ident"
	default:
		return "Unknown"
	}
}

// Span records where a token sat in the source text.
type Span struct {
	Start, End int
}

// Token is the wrapper stored in test input slices: a kind plus metadata
// the matching logic never inspects, demonstrating that spans ride along
// with the tokens rather than through the engine.
type Token struct {
	Kind  Kind
	Text  string
	Value int
	Span  Span
}

func kindOf(tok Token) Kind { return tok.Kind }

// Digit matches one Digit token and yields its numeric value.
func Digit() tokenparse.Parser[Token, Kind, int] {
	return tokenparse.Leaf("digit", kindOf, func(tok Token) (int, bool) {
		if tok.Kind != KindDigit {
			return 0, false
		}
		return tok.Value, true
	})
}

// Ident matches one Ident token and yields its text.
func Ident() tokenparse.Parser[Token, Kind, string] {
	return tokenparse.Leaf("identifier", kindOf, func(tok Token) (string, bool) {
		if tok.Kind != KindIdent {
			return "", false
		}
		return tok.Text, true
	})
}

// Comma matches one Comma token and yields it.
func Comma() tokenparse.Parser[Token, Kind, Token] {
	return exactly("comma", KindComma)
}

// LParen matches one LParen token and yields it.
func LParen() tokenparse.Parser[Token, Kind, Token] {
	return exactly("opening paren", KindLParen)
}

// RParen matches one RParen token and yields it.
func RParen() tokenparse.Parser[Token, Kind, Token] {
	return exactly("closing paren", KindRParen)
}

func exactly(expects string, kind Kind) tokenparse.Parser[Token, Kind, Token] {
	return tokenparse.Leaf(expects, kindOf, func(tok Token) (Token, bool) {
		if tok.Kind != kind {
			return Token{}, false
		}
		return tok, true
	})
}

// FromText lexes a compact notation into a token slice: ASCII digits
// become Digit tokens, ',' and parens their respective kinds, and any
// other rune a one-rune Ident. Spaces are skipped.
func FromText(text string) []Token {
	var toks []Token
	for i, r := range text {
		if r == ' ' {
			continue
		}
		tok := Token{Text: string(r), Span: Span{Start: i, End: i + 1}}
		switch {
		case r >= '0' && r <= '9':
			tok.Kind = KindDigit
			tok.Value = int(r - '0')
		case r == ',':
			tok.Kind = KindComma
		case r == '(':
			tok.Kind = KindLParen
		case r == ')':
			tok.Kind = KindRParen
		default:
			tok.Kind = KindIdent
		}
		toks = append(toks, tok)
	}
	return toks
}
