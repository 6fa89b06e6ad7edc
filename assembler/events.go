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

// events emits each event in input order as an #[ink(event)] struct.
// Indexed fields get a leading #[ink(topic)] attribute; field order is
// preserved and field names are snake-cased, the event's own name is not.
func events(s *token.Stream, evs []cir.Event) error {
	for _, e := range evs {
		name, err := casing.Type(e.Name)
		if err != nil {
			return err
		}
		if err := comments(s, e.Comments); err != nil {
			return err
		}
		if err := s.Raw("#[ink(event)]"); err != nil {
			return err
		}

		var fields strings.Builder
		for _, f := range e.Fields {
			if f.Indexed {
				fields.WriteString("#[ink(topic)] ")
			}
			frag, err := fieldFrag(f.Name, f.Type)
			if err != nil {
				return err
			}
			fields.WriteString(frag)
			fields.WriteString(", ")
		}

		if err := s.Raw(fmt.Sprintf("pub struct %s { %s}", name, fields.String())); err != nil {
			return err
		}
		s.Blank()
	}
	return nil
}
