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

// Opt wraps parser so that failure becomes a non-fatal empty result.
//
// On inner success the result is Some(output) and the advanced remainder.
// On inner failure the result is None, the input is not advanced, and the
// inner error is discarded. Opt never fails.
func Opt[W, T, O any](parser Parser[W, T, O]) Parser[W, T, Optional[O]] {
	return func(tokens []W) ([]W, Optional[O], *Error[T]) {
		rest, out, err := parser(tokens)
		if err != nil {
			return tokens, None[O](), nil
		}
		return rest, Some(out), nil
	}
}

// Many0 applies parser zero or more times, collecting the outputs until
// the first failure. The failure is discarded; the remainder is whatever
// was left just before the failing attempt. Many0 never fails, and an
// empty input yields an empty sequence with the input unchanged.
func Many0[W, T, O any](parser Parser[W, T, O]) Parser[W, T, []O] {
	return func(tokens []W) ([]W, []O, *Error[T]) {
		var outs []O
		rest := tokens
		for len(rest) > 0 {
			next, out, err := parser(rest)
			if err != nil {
				break
			}
			rest = next
			outs = append(outs, out)
		}
		return rest, outs, nil
	}
}

// Many1 is [Many0] but requires at least one success. If the very first
// attempt fails, that failure is propagated unchanged; afterwards failures
// terminate the loop as in Many0. On success the collected sequence has
// length >= 1.
func Many1[W, T, O any](parser Parser[W, T, O]) Parser[W, T, []O] {
	return func(tokens []W) ([]W, []O, *Error[T]) {
		rest, first, err := parser(tokens)
		if err != nil {
			return nil, nil, err
		}
		outs := []O{first}
		for len(rest) > 0 {
			next, out, err := parser(rest)
			if err != nil {
				break
			}
			rest = next
			outs = append(outs, out)
		}
		return rest, outs, nil
	}
}
