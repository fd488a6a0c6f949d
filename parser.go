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

package tokenparse

import (
	"github.com/tokenparse/tokenparse/internal/ext/slicesx"
)

// Parser is a unit of parsing logic: given the remaining input, it returns
// the narrowed remainder and a typed output, or a non-nil *Error. Any
// function or closure with this signature is a Parser; no adapter type is
// needed.
//
// On failure the returned remainder is nil and must not be used. On
// success rest is always a suffix of tokens; the difference in length is
// what the parser consumed.
//
// A Parser value is not safe for concurrent or reentrant invocation; see
// the package documentation.
type Parser[W, T, O any] func(tokens []W) (rest []W, out O, err *Error[T])

// Leaf builds a parser that matches exactly one token.
//
// match inspects the next token and, if it is acceptable, produces the
// output; kindOf converts a token to its raw kind for diagnostics only.
// On a match the parser consumes exactly one token. On a non-match it
// fails with [Expects]{expects, kindOf(next)} and a consumption count of
// zero; on empty input it fails with [NotEnoughToken].
//
// This is also the contract code-generated leaf parsers satisfy: anything
// with the same behavior composes with the combinators in this package.
func Leaf[W, T, O any](expects string, kindOf func(W) T, match func(W) (O, bool)) Parser[W, T, O] {
	return func(tokens []W) ([]W, O, *Error[T]) {
		var zero O
		next, ok := slicesx.Get(tokens, 0)
		if !ok {
			return nil, zero, NewError[T](NotEnoughToken[T]{})
		}
		out, ok := match(next)
		if !ok {
			return nil, zero, NewError[T](Expects[T]{Expects: expects, Found: kindOf(next)})
		}
		return tokens[1:], out, nil
	}
}

// Optional is the output of [Opt]: a value that may be absent.
type Optional[O any] struct {
	value   O
	present bool
}

// Some returns an Optional holding value.
func Some[O any](value O) Optional[O] {
	return Optional[O]{value: value, present: true}
}

// None returns an absent Optional.
func None[O any]() Optional[O] {
	return Optional[O]{}
}

// Get returns the held value and whether it is present.
func (o Optional[O]) Get() (O, bool) { return o.value, o.present }

// Present reports whether a value is held.
func (o Optional[O]) Present() bool { return o.present }
