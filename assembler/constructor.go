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
	"github.com/sol2ink/assembler/token"
)

// constructor emits the #[ink(constructor)] wrapper around
// ink_lang::codegen::initialize_contract. Every body statement is
// rendered as a line comment regardless of its Comment flag — this is
// the mandated, deliberately degraded behavior SPEC_FULL.md's Open
// Questions section records: the front end cannot yet produce a
// resolved constructor body, so losing the statement's own comment/code
// distinction here is accepted, not a bug to fix.
func constructor(s *token.Stream, fn cir.Function) error {
	names := make([]string, len(fn.Header.Params))
	types := make([]string, len(fn.Header.Params))
	for i, p := range fn.Header.Params {
		names[i], types[i] = p.Name, p.Type
	}
	params, err := trailingCommaFields(names, types)
	if err != nil {
		return err
	}

	if err := s.Raw(fmt.Sprintf("#[ink(constructor)] pub fn new(%s) -> Self {", params)); err != nil {
		return err
	}
	s.MustRaw("ink_lang::codegen::initialize_contract(|instance: &mut Self| {")
	for _, stmt := range fn.Body {
		s.Commentary(stmt.Content)
	}
	s.MustRaw("})")
	s.MustRaw("}")
	s.Blank()
	return nil
}
