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
	"fmt"
	"strings"
)

// ErrorKind is one diagnostic entry in a failed parse attempt.
//
// The concrete kinds are [Expects], [NotEnoughToken], and [Context]. The
// set is closed; callers that need to distinguish them should type-switch.
type ErrorKind[T any] interface {
	fmt.Stringer

	errorKind()
}

// Expects reports that a specific token kind was required and a different
// one was found.
type Expects[T any] struct {
	// Expects is a static description of the expected kind.
	Expects string
	// Found is the kind of the token actually present.
	Found T
}

func (Expects[T]) errorKind() {}

func (k Expects[T]) String() string {
	return fmt.Sprintf("expected %s, found %v", k.Expects, k.Found)
}

// NotEnoughToken reports that the input ended before a required token.
type NotEnoughToken[T any] struct{}

func (NotEnoughToken[T]) errorKind() {}

func (NotEnoughToken[T]) String() string { return "not enough tokens" }

// Context is a human-readable stage name wrapping a nested failure, used
// by applications to record which grammar rule was being attempted. See
// [WithContext].
type Context[T any] struct {
	Label string
}

func (Context[T]) errorKind() {}

func (k Context[T]) String() string { return "while parsing " + k.Label }

// Error describes why a parse attempt failed and how much input it
// consumed before failing.
type Error[T any] struct {
	// Kinds holds the accumulated diagnostics, innermost first. Context
	// entries pushed by enclosing rules follow the failure they wrap.
	Kinds []ErrorKind[T]
	// TokensConsumed counts tokens consumed before the fatal point. [Alt]
	// uses it to pick the most informative failure among alternatives.
	TokensConsumed int
}

// NewError returns an Error holding a single diagnostic and no consumed
// tokens.
func NewError[T any](kind ErrorKind[T]) *Error[T] {
	return &Error[T]{Kinds: []ErrorKind[T]{kind}}
}

// WithTokensConsumed overrides the consumption count and returns the
// receiver, for use when an enclosing combinator knows better than the
// failing sub-parser how far the parse had advanced.
func (e *Error[T]) WithTokensConsumed(n int) *Error[T] {
	e.TokensConsumed = n
	return e
}

func (e *Error[T]) push(kind ErrorKind[T]) {
	e.Kinds = append(e.Kinds, kind)
}

// Error renders the diagnostic trail, outermost context first. Callers
// wanting richer output (source excerpts, positions carried by their
// wrapper type) should walk Kinds themselves.
func (e *Error[T]) Error() string {
	if len(e.Kinds) == 0 {
		return "parse failed"
	}
	parts := make([]string, 0, len(e.Kinds))
	for i := len(e.Kinds) - 1; i >= 0; i-- {
		parts = append(parts, e.Kinds[i].String())
	}
	return strings.Join(parts, ": ")
}

var _ error = (*Error[int])(nil)
