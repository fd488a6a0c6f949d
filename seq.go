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

// Pair is the output of [Tuple2].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the output of [Tuple3].
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad is the output of [Tuple4].
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Tuple2 applies two parsers in order, threading the remainder between
// them, and returns both outputs. The first sub-parser failure is
// propagated unchanged.
//
// Higher arities nest: Tuple2(a, Tuple2(b, c)) parses the same input as
// [Tuple3](a, b, c) with a differently shaped output.
func Tuple2[W, T, A, B any](first Parser[W, T, A], second Parser[W, T, B]) Parser[W, T, Pair[A, B]] {
	return func(tokens []W) ([]W, Pair[A, B], *Error[T]) {
		rest, a, err := first(tokens)
		if err != nil {
			return nil, Pair[A, B]{}, err
		}
		rest, b, err := second(rest)
		if err != nil {
			return nil, Pair[A, B]{}, err
		}
		return rest, Pair[A, B]{First: a, Second: b}, nil
	}
}

// Tuple3 is [Tuple2] for three parsers.
func Tuple3[W, T, A, B, C any](
	first Parser[W, T, A],
	second Parser[W, T, B],
	third Parser[W, T, C],
) Parser[W, T, Triple[A, B, C]] {
	return func(tokens []W) ([]W, Triple[A, B, C], *Error[T]) {
		rest, a, err := first(tokens)
		if err != nil {
			return nil, Triple[A, B, C]{}, err
		}
		rest, b, err := second(rest)
		if err != nil {
			return nil, Triple[A, B, C]{}, err
		}
		rest, c, err := third(rest)
		if err != nil {
			return nil, Triple[A, B, C]{}, err
		}
		return rest, Triple[A, B, C]{First: a, Second: b, Third: c}, nil
	}
}

// Tuple4 is [Tuple2] for four parsers.
func Tuple4[W, T, A, B, C, D any](
	first Parser[W, T, A],
	second Parser[W, T, B],
	third Parser[W, T, C],
	fourth Parser[W, T, D],
) Parser[W, T, Quad[A, B, C, D]] {
	return func(tokens []W) ([]W, Quad[A, B, C, D], *Error[T]) {
		rest, a, err := first(tokens)
		if err != nil {
			return nil, Quad[A, B, C, D]{}, err
		}
		rest, b, err := second(rest)
		if err != nil {
			return nil, Quad[A, B, C, D]{}, err
		}
		rest, c, err := third(rest)
		if err != nil {
			return nil, Quad[A, B, C, D]{}, err
		}
		rest, d, err := fourth(rest)
		if err != nil {
			return nil, Quad[A, B, C, D]{}, err
		}
		return rest, Quad[A, B, C, D]{First: a, Second: b, Third: c, Fourth: d}, nil
	}
}

// Delimited applies left, main, and right in order and returns only
// main's output, for "open X close" patterns where the delimiters carry
// no semantic payload. The first of the three to fail has its error
// propagated unchanged.
func Delimited[W, T, A, B, C any](
	left Parser[W, T, A],
	main Parser[W, T, B],
	right Parser[W, T, C],
) Parser[W, T, B] {
	return func(tokens []W) ([]W, B, *Error[T]) {
		var zero B
		rest, _, err := left(tokens)
		if err != nil {
			return nil, zero, err
		}
		rest, out, err := main(rest)
		if err != nil {
			return nil, zero, err
		}
		rest, _, err = right(rest)
		if err != nil {
			return nil, zero, err
		}
		return rest, out, nil
	}
}
