// Copyright 2024 The sol2ink-go Authors
// This file is part of the sol2ink-go library.
//
// The sol2ink-go library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The sol2ink-go library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the sol2ink-go library. If not, see <http://www.gnu.org/licenses/>.

package casing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueSnakeCases(t *testing.T) {
	cases := map[string]string{
		"balanceOf":    "balance_of",
		"tokenId":      "token_id",
		"TransferFrom": "transfer_from",
		"amount":       "amount",
	}
	for in, want := range cases {
		got, err := Value(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestValueIsIdempotent(t *testing.T) {
	for _, in := range []string{"balanceOf", "token_id", "TransferFrom", "x"} {
		once, err := Value(in)
		require.NoError(t, err)
		twice, err := Value(once)
		require.NoError(t, err)
		require.Equal(t, once, twice)
	}
}

func TestValueRejectsEmpty(t *testing.T) {
	_, err := Value("")
	require.ErrorIs(t, err, ErrEmptyIdentifier)
}

func TestTypePreservesCasing(t *testing.T) {
	for _, in := range []string{"IERC721", "Transfer", "Empty", "ERC721"} {
		got, err := Type(in)
		require.NoError(t, err)
		require.Equal(t, in, got)
	}
}

func TestTypeRejectsEmpty(t *testing.T) {
	_, err := Type("")
	require.ErrorIs(t, err, ErrEmptyIdentifier)
}
