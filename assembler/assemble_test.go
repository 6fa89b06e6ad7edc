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

package assembler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sol2ink/assembler/cir"
	"github.com/sol2ink/assembler/render"
	"github.com/sol2ink/assembler/token"
)

// Scenario 1: Empty contract (spec.md §8).
func TestAssembleContractEmpty(t *testing.T) {
	contract := cir.Contract{
		Name:    "Empty",
		Imports: map[string]struct{}{},
		Constructor: cir.Function{
			Header: cir.FunctionHeader{Name: "new", External: true},
		},
	}

	stream, err := AssembleContract(contract)
	require.NoError(t, err)
	out := render.String(stream)

	require.Contains(t, out, "pub mod empty {")
	require.Contains(t, out, "pub struct Empty { }")
	require.Contains(t, out, "pub fn new() -> Self {")
	require.NotContains(t, out, "#[ink(event)]")
	require.NotContains(t, out, "pub enum")
	require.False(t, strings.Contains(out, "\n\n\n"), "no extraneous blank lines")
}

// Scenario 2: indexed event fields (spec.md §8).
func TestAssembleEventsIndexedFields(t *testing.T) {
	var s token.Stream
	err := events(&s, []cir.Event{{
		Name: "Transfer",
		Fields: []cir.EventField{
			{Name: "from", Type: "AccountId", Indexed: true},
			{Name: "to", Type: "AccountId", Indexed: true},
			{Name: "value", Type: "u128", Indexed: false},
		},
	}})
	require.NoError(t, err)

	out := render.String(s)
	require.Contains(t, out, "#[ink(event)]")
	require.Contains(t, out, "pub struct Transfer {")
	require.Contains(t, out, "#[ink(topic)] from: AccountId,")
	require.Contains(t, out, "#[ink(topic)] to: AccountId,")
	require.Contains(t, out, "value: u128,")
	require.NotContains(t, out, "#[ink(topic)] value")
}

// Scenario 3: view/mutating split (spec.md §8).
func TestAssembleFunctionsViewAndMutating(t *testing.T) {
	fns := []cir.Function{
		{Header: cir.FunctionHeader{
			Name: "balanceOf", External: true, View: true,
			ReturnParams: []cir.Param{{Type: "u128"}},
		}},
		{Header: cir.FunctionHeader{
			Name: "transfer", External: true, View: false,
			Params: []cir.Param{{Name: "to", Type: "AccountId"}, {Name: "amount", Type: "u128"}},
		}},
	}

	var s token.Stream
	require.NoError(t, functions(&s, fns))
	out := render.String(s)

	require.Contains(t, out, "#[ink(message)] pub fn balance_of(&self) -> u128 { todo!() }")
	require.Contains(t, out, "#[ink(message)] pub fn transfer(&mut self, to: AccountId, amount: u128) { todo!() }")
}

// Scenario 4: multi-return vs single-return (spec.md §8).
func TestReturnArrow(t *testing.T) {
	require.Equal(t, "", returnArrow(nil))
	require.Equal(t, "-> u128", returnArrow([]cir.Param{{Type: "u128"}}))
	require.Equal(t, "-> (u128, bool)", returnArrow([]cir.Param{{Type: "u128"}, {Type: "bool"}}))
}

// Scenario 5: private function (spec.md §8).
func TestAssembleFunctionsPrivate(t *testing.T) {
	fns := []cir.Function{{Header: cir.FunctionHeader{Name: "foo", External: false, View: true}}}

	var s token.Stream
	require.NoError(t, functions(&s, fns))
	out := render.String(s)

	require.Contains(t, out, "fn _foo(&self) { todo!() }")
	require.NotContains(t, out, "#[ink(message)]")
}

// Scenario 6: interface alias and trait (spec.md §8).
func TestAssembleInterfaceAliasAndTrait(t *testing.T) {
	iface := cir.Interface{
		Name: "IERC721",
		FunctionHeaders: []cir.FunctionHeader{
			{Name: "balanceOf", External: true, View: true, ReturnParams: []cir.Param{{Type: "u128"}}},
		},
	}

	stream, err := AssembleInterface(iface)
	require.NoError(t, err)
	out := render.String(stream)

	require.Contains(t, out, "pub type IERC721Ref = dyn IERC721;")
	require.Contains(t, out, "pub trait IERC721 {")
	require.Contains(t, out, "#[ink(message)] fn balance_of(&self) -> u128;")
	require.NotContains(t, out, "todo!()")
}

func TestImportsAreSortedAndDeduplicated(t *testing.T) {
	var s token.Stream
	err := imports(&s, map[string]struct{}{
		"use z::Z;": {},
		"use a::A;": {},
		"use m::M;": {},
	})
	require.NoError(t, err)

	var raws []string
	for _, tok := range s.Tokens() {
		if tok.Kind == token.Raw {
			raws = append(raws, tok.Text)
		}
	}
	require.Equal(t, []string{"use a::A;", "use m::M;", "use z::Z;"}, raws)
}

func TestAssembleContractRejectsInvalidFragment(t *testing.T) {
	contract := cir.Contract{
		Name: "Bad",
		Fields: []cir.ContractField{
			{Name: "balance", Type: "Vec<u8>)"}, // unbalanced paren
		},
		Constructor: cir.Function{Header: cir.FunctionHeader{Name: "new", External: true}},
	}

	_, err := AssembleContract(contract)
	require.Error(t, err)
}

func TestAssembleContractDeterministic(t *testing.T) {
	contract := cir.Contract{
		Name:    "Token",
		Imports: map[string]struct{}{"use brush::traits::AccountId;": {}},
		Fields:  []cir.ContractField{{Name: "totalSupply", Type: "u128"}},
		Constructor: cir.Function{
			Header: cir.FunctionHeader{Name: "new", External: true},
			Body:   []cir.Statement{{Content: "instance.total_supply = 0", Comment: false}},
		},
		Functions: []cir.Function{
			{Header: cir.FunctionHeader{Name: "totalSupply", External: true, View: true, ReturnParams: []cir.Param{{Type: "u128"}}}},
		},
	}

	s1, err := AssembleContract(contract)
	require.NoError(t, err)
	s2, err := AssembleContract(contract)
	require.NoError(t, err)

	require.Equal(t, render.String(s1), render.String(s2))
}

func TestWithVersionOverridesBanner(t *testing.T) {
	contract := cir.Contract{
		Name:        "Empty",
		Constructor: cir.Function{Header: cir.FunctionHeader{Name: "new", External: true}},
	}

	stream, err := AssembleContract(contract, WithVersion("9.9.9"))
	require.NoError(t, err)
	out := render.String(stream)

	require.Contains(t, out, "// Generated with Sol2Ink v9.9.9")
	require.NotContains(t, out, "v"+Version)
}

func TestWithVersionEmptyKeepsDefault(t *testing.T) {
	contract := cir.Contract{
		Name:        "Empty",
		Constructor: cir.Function{Header: cir.FunctionHeader{Name: "new", External: true}},
	}

	stream, err := AssembleContract(contract, WithVersion(""))
	require.NoError(t, err)
	out := render.String(stream)

	require.Contains(t, out, "// Generated with Sol2Ink v"+Version)
}

func TestConstructorCommentsEveryStatementRegardlessOfFlag(t *testing.T) {
	fn := cir.Function{
		Header: cir.FunctionHeader{Name: "new", External: true},
		Body: []cir.Statement{
			{Content: "instance.owner = Self::env().caller()", Comment: false},
			{Content: "already a note", Comment: true},
		},
	}

	var s token.Stream
	require.NoError(t, constructor(&s, fn))

	var commentaries int
	for _, tok := range s.Tokens() {
		if tok.Kind == token.Commentary {
			commentaries++
		}
	}
	require.Equal(t, 2, commentaries)
}
