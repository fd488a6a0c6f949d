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

// SeparatedList0 parses zero or more items separated by separator,
// collecting the item outputs and discarding the separator outputs.
//
// A failing item attempt ends the list: whatever was collected so far is
// returned with the remainder as of just before the attempt, so the empty
// match is valid and a trailing separator with no following item is
// absorbed. SeparatedList0 never fails.
func SeparatedList0[W, T, O, S any](separator Parser[W, T, S], item Parser[W, T, O]) Parser[W, T, []O] {
	return func(tokens []W) ([]W, []O, *Error[T]) {
		if len(tokens) == 0 {
			return tokens, nil, nil
		}
		var items []O
		rest := tokens
		for {
			next, out, err := item(rest)
			if err != nil {
				return rest, items, nil
			}
			rest = next
			items = append(items, out)
			if len(rest) == 0 {
				return rest, items, nil
			}
			next, _, sepErr := separator(rest)
			if sepErr != nil {
				return rest, items, nil
			}
			rest = next
		}
	}
}

// SeparatedList1 is [SeparatedList0] but requires at least one item.
//
// An empty input fails with [NotEnoughToken] and zero tokens consumed. A
// failure on the first item attempt is propagated with the consumption
// count set to how far the list had advanced (zero, for the first
// attempt). After one item has been collected, later item or separator
// failures end the list as in SeparatedList0 rather than failing.
func SeparatedList1[W, T, O, S any](separator Parser[W, T, S], item Parser[W, T, O]) Parser[W, T, []O] {
	return func(tokens []W) ([]W, []O, *Error[T]) {
		if len(tokens) == 0 {
			return nil, nil, NewError[T](NotEnoughToken[T]{})
		}
		var items []O
		rest := tokens
		for {
			next, out, err := item(rest)
			if err != nil {
				if len(items) > 0 {
					return rest, items, nil
				}
				return nil, nil, err.WithTokensConsumed(slicesx.Consumed(tokens, rest))
			}
			rest = next
			items = append(items, out)
			if len(rest) == 0 {
				return rest, items, nil
			}
			next, _, sepErr := separator(rest)
			if sepErr != nil {
				return rest, items, nil
			}
			rest = next
		}
	}
}
