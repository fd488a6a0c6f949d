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

// Map applies mapper to parser's output on success, leaving the remainder
// untouched. Failures are propagated unchanged. This is how raw combinator
// output becomes application-level values such as AST nodes.
func Map[W, T, A, B any](parser Parser[W, T, A], mapper func(A) B) Parser[W, T, B] {
	return func(tokens []W) ([]W, B, *Error[T]) {
		rest, out, err := parser(tokens)
		if err != nil {
			var zero B
			return nil, zero, err
		}
		return rest, mapper(out), nil
	}
}

// WithContext pushes a [Context] diagnostic labeled label onto any failure
// of parser, building the breadcrumb trail of grammar rules that were in
// progress when the parse died. Successes pass through untouched.
func WithContext[W, T, O any](label string, parser Parser[W, T, O]) Parser[W, T, O] {
	return func(tokens []W) ([]W, O, *Error[T]) {
		rest, out, err := parser(tokens)
		if err != nil {
			err.push(Context[T]{Label: label})
			var zero O
			return nil, zero, err
		}
		return rest, out, nil
	}
}
