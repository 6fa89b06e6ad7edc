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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sol2ink/assembler/cir"
	"github.com/sol2ink/assembler/render"
)

// readGolden loads a fixture under testdata/golden, the way go-ethereum's
// table-driven tests load testdata/ fixtures relative to the package
// directory under test.
func readGolden(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", "golden", name))
	require.NoError(t, err)
	return string(b)
}

func TestAssembleContractMatchesGolden(t *testing.T) {
	contract := cir.Contract{
		Name:    "Counter",
		Imports: map[string]struct{}{"use ink_storage::traits::SpreadAllocate;": {}},
		Fields:  []cir.ContractField{{Name: "value", Type: "u128"}},
		Constructor: cir.Function{
			Header: cir.FunctionHeader{
				Name:     "new",
				Params:   []cir.Param{{Name: "initValue", Type: "u128"}},
				External: true,
			},
			Body: []cir.Statement{{Content: "instance.value = init_value", Comment: false}},
		},
		Functions: []cir.Function{
			{Header: cir.FunctionHeader{Name: "get", External: true, View: true, ReturnParams: []cir.Param{{Type: "u128"}}}},
			{Header: cir.FunctionHeader{Name: "reset", External: false, View: false}},
		},
	}

	stream, err := AssembleContract(contract)
	require.NoError(t, err)
	require.Equal(t, readGolden(t, "counter_contract.ink"), render.String(stream))
}

func TestAssembleInterfaceMatchesGolden(t *testing.T) {
	iface := cir.Interface{
		Name:    "IERC20",
		Imports: map[string]struct{}{"use brush::traits::AccountId;": {}},
		FunctionHeaders: []cir.FunctionHeader{
			{Name: "totalSupply", External: true, View: true, ReturnParams: []cir.Param{{Type: "u128"}}},
			{Name: "transfer", External: true, View: false, Params: []cir.Param{
				{Name: "to", Type: "AccountId"},
				{Name: "value", Type: "u128"},
			}},
		},
	}

	stream, err := AssembleInterface(iface)
	require.NoError(t, err)
	require.Equal(t, readGolden(t, "ierc20_interface.ink"), render.String(stream))
}
