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
	"sort"

	"github.com/sol2ink/assembler/token"
)

// imports materialises the (unordered, set-shaped) import statements into
// a lexicographically sorted sequence and appends each verbatim, followed
// unconditionally by a blank-line marker — the only sub-emitter that
// sorts its input; every other one preserves CIR order.
func imports(s *token.Stream, imps map[string]struct{}) error {
	sorted := make([]string, 0, len(imps))
	for imp := range imps {
		sorted = append(sorted, imp)
	}
	sort.Strings(sorted)

	for _, imp := range sorted {
		if err := s.Raw(imp); err != nil {
			return err
		}
	}
	s.Blank()
	return nil
}
