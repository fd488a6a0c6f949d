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

package tokenparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenparse/tokenparse"
	"github.com/tokenparse/tokenparse/internal/toktest"
)

func TestAltFirstSuccessWins(t *testing.T) {
	t.Parallel()

	group := tokenparse.Delimited(toktest.LParen(), toktest.Digit(), toktest.RParen())
	alt := tokenparse.Alt(group, toktest.Digit())

	rest, out, err := alt(toktest.FromText("7,"))
	require.Nil(t, err)
	assert.Equal(t, 7, out)
	assert.Len(t, rest, 1)

	rest, out, err = alt(toktest.FromText("(5)"))
	require.Nil(t, err)
	assert.Equal(t, 5, out)
	assert.Empty(t, rest)
}

func TestAltDoesNotAdvanceOnFailedVariant(t *testing.T) {
	t.Parallel()

	// The first variant consumes the paren before failing; the second
	// must still see the original input.
	group := tokenparse.Delimited(toktest.LParen(), toktest.Digit(), toktest.RParen())
	parenAsToken := tokenparse.Map(toktest.LParen(), func(tok toktest.Token) int { return -1 })
	alt := tokenparse.Alt(group, parenAsToken)

	rest, out, err := alt(toktest.FromText("(x"))
	require.Nil(t, err)
	assert.Equal(t, -1, out)
	assert.Len(t, rest, 1)
}

func TestAltReportsFurthestFailure(t *testing.T) {
	t.Parallel()

	fails := func(consumed int, kind tokenparse.ErrorKind[toktest.Kind]) tokenparse.Parser[toktest.Token, toktest.Kind, int] {
		return func(tokens []toktest.Token) ([]toktest.Token, int, *tokenparse.Error[toktest.Kind]) {
			return nil, 0, tokenparse.NewError[toktest.Kind](kind).WithTokensConsumed(consumed)
		}
	}

	far := tokenparse.Expects[toktest.Kind]{Expects: "digit", Found: toktest.KindComma}
	near := tokenparse.NotEnoughToken[toktest.Kind]{}

	alt := tokenparse.Alt(fails(2, far), fails(0, near))
	_, _, err := alt(toktest.FromText("x"))
	require.NotNil(t, err)
	assert.Equal(t, 2, err.TokensConsumed)
	require.Len(t, err.Kinds, 1)
	assert.Equal(t, far, err.Kinds[0])

	// Same distances the other way around: order of variants must not
	// matter when consumption differs.
	alt = tokenparse.Alt(fails(0, near), fails(2, far))
	_, _, err = alt(toktest.FromText("x"))
	require.NotNil(t, err)
	assert.Equal(t, 2, err.TokensConsumed)
	require.Len(t, err.Kinds, 1)
	assert.Equal(t, far, err.Kinds[0])
}

func TestAltTieKeepsEarliestVariant(t *testing.T) {
	t.Parallel()

	group := tokenparse.Delimited(toktest.LParen(), toktest.Digit(), toktest.RParen())
	alt := tokenparse.Alt(group, toktest.Digit())

	// Both variants fail without consuming; the first variant's error
	// (digit inside the group) is the one reported.
	_, _, err := alt(toktest.FromText("(x"))
	require.NotNil(t, err)
	assert.EqualError(t, err, "expected digit, found Ident")
	assert.Equal(t, 0, err.TokensConsumed)
}

func TestAltNoParsersPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		tokenparse.Alt[toktest.Token, toktest.Kind, int]()
	})
}
