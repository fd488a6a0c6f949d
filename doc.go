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

// Package tokenparse provides combinators for building recursive-descent
// parsers over pre-tokenized input.
//
// Unlike text-oriented combinator libraries, the input here is a slice of
// typed tokens produced by an external lexer. A [Parser] is any function
// from a remaining-input slice to a narrowed slice plus a typed output, or
// a [*Error] describing the failure. Combinators such as [Many0], [Tuple2],
// [SeparatedList1], [Alt], and [Map] assemble leaf parsers into grammar
// rules without hand-written iteration or backtracking logic.
//
// A grammar is built bottom-up and invoked once on the full token slice:
//
//	digits := tokenparse.SeparatedList1(comma, digit)
//	rest, values, err := digits(tokens)
//
// The engine never copies or mutates token storage; every step narrows the
// input to a suffix of the slice it was given, so the caller retains
// ownership of the token buffer for the entire parse.
//
// Three type parameters thread through the package: W is the element type
// actually stored in the input slice (it may carry spans or other metadata),
// T is the raw token kind W converts to, used only inside diagnostics, and
// O is the output a successful parse produces.
//
// # Concurrency
//
// A Parser value must not be invoked reentrantly or from two goroutines at
// once: leaf matchers and [Map] transforms supplied by the application may
// capture mutable state. Independently constructed parsers share nothing
// and can run fully in parallel.
package tokenparse
