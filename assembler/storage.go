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
	"fmt"

	"github.com/sol2ink/assembler/cir"
	"github.com/sol2ink/assembler/internal/casing"
	"github.com/sol2ink/assembler/token"
)

// storage emits the single #[ink(storage)] struct carrying the contract's
// persistent state, always — even when fields is empty. The contract
// type name is preserved verbatim; field names are snake-cased.
func storage(s *token.Stream, contractName string, fields []cir.ContractField) error {
	name, err := casing.Type(contractName)
	if err != nil {
		return err
	}
	if err := s.Raw("#[ink(storage)]"); err != nil {
		return err
	}
	if err := s.Raw("#[derive(Default, SpreadAllocate)]"); err != nil {
		return err
	}

	names := make([]string, len(fields))
	types := make([]string, len(fields))
	for i, f := range fields {
		names[i], types[i] = f.Name, f.Type
	}
	body, err := trailingCommaFields(names, types)
	if err != nil {
		return err
	}

	if err := s.Raw(fmt.Sprintf("pub struct %s { %s}", name, body)); err != nil {
		return err
	}
	s.Blank()
	return nil
}
