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

const (
	structDerive   = "#[derive(Default, Encode, Decode)]"
	structTypeInfo = `#[cfg_attr(feature = "std", derive(scale_info::TypeInfo))]`
)

// structs emits each data-carrier struct in input order with its derive
// attributes. Struct type names are preserved verbatim; field names are
// snake-cased.
func structs(s *token.Stream, strs []cir.Struct) error {
	for _, st := range strs {
		name, err := casing.Type(st.Name)
		if err != nil {
			return err
		}
		if err := comments(s, st.Comments); err != nil {
			return err
		}
		if err := s.Raw(structDerive); err != nil {
			return err
		}
		if err := s.Raw(structTypeInfo); err != nil {
			return err
		}

		names := make([]string, len(st.Fields))
		types := make([]string, len(st.Fields))
		for i, f := range st.Fields {
			names[i], types[i] = f.Name, f.Type
		}
		fields, err := trailingCommaFields(names, types)
		if err != nil {
			return err
		}

		if err := s.Raw(fmt.Sprintf("pub struct %s { %s}", name, fields)); err != nil {
			return err
		}
		s.Blank()
	}
	return nil
}
