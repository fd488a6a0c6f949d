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

// Alt tries each parser in order against the same input and returns the
// first success as-is. Alternatives that fail do not advance the input.
//
// When every alternative fails, Alt reports the failure that consumed the
// most tokens, the closest near-miss; ties keep the earliest alternative's
// error. The other failures are discarded.
//
// Alt panics if called with no parsers.
func Alt[W, T, O any](parsers ...Parser[W, T, O]) Parser[W, T, O] {
	if len(parsers) == 0 {
		panic("tokenparse: Alt requires at least one parser")
	}
	return func(tokens []W) ([]W, O, *Error[T]) {
		var furthest *Error[T]
		for _, parser := range parsers {
			rest, out, err := parser(tokens)
			if err == nil {
				return rest, out, nil
			}
			if furthest == nil || err.TokensConsumed > furthest.TokensConsumed {
				furthest = err
			}
		}
		var zero O
		return nil, zero, furthest
	}
}
