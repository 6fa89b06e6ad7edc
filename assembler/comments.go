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

	"github.com/sol2ink/assembler/token"
)

// comments appends one #[doc = "..."] attribute per string in cs, in
// order, attaching each to whatever item follows it. An empty cs emits
// nothing.
func comments(s *token.Stream, cs []string) error {
	for _, c := range cs {
		if err := s.Raw(docAttr(c)); err != nil {
			return err
		}
	}
	return nil
}

func docAttr(comment string) string {
	return fmt.Sprintf("#[doc = %q]", comment)
}
