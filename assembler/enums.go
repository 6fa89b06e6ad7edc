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
	"strings"

	"github.com/sol2ink/assembler/cir"
	"github.com/sol2ink/assembler/internal/casing"
	"github.com/sol2ink/assembler/token"
)

// enums emits each enum in input order: its comments, then a pub enum
// block whose variants appear verbatim — CIR variants may carry
// front-end-rendered data payloads, so no derive attributes are attached
// here.
func enums(s *token.Stream, es []cir.Enum) error {
	for _, e := range es {
		name, err := casing.Type(e.Name)
		if err != nil {
			return err
		}
		if err := comments(s, e.Comments); err != nil {
			return err
		}

		var variants strings.Builder
		for _, v := range e.Values {
			variants.WriteString(v)
			variants.WriteString(", ")
		}

		if err := s.Raw(fmt.Sprintf("pub enum %s { %s}", name, variants.String())); err != nil {
			return err
		}
		s.Blank()
	}
	return nil
}
