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
	"github.com/sol2ink/assembler/cir"
	"github.com/sol2ink/assembler/internal/casing"
	"github.com/sol2ink/assembler/token"
)

// functionHeaders emits each trait method signature in input order: same
// shape as a message signature, but comment-prefixed, body-less, and
// semicolon-terminated. External=false headers are still emitted — no
// message attribute, name unprefixed — since spec.md treats that as
// merely unusual, not invalid, at this layer.
func functionHeaders(s *token.Stream, headers []cir.FunctionHeader) error {
	for i, h := range headers {
		if err := comments(s, h.Comments); err != nil {
			return err
		}
		if attr := messageAttr(h.External, h.Payable); attr != "" {
			if err := s.Raw(attr); err != nil {
				return err
			}
		}

		name, err := casing.Value(h.Name)
		if err != nil {
			return err
		}
		core, err := signatureCore("fn "+name, h)
		if err != nil {
			return err
		}
		if err := s.Raw(core + ";"); err != nil {
			return err
		}

		if i < len(headers)-1 {
			s.Blank()
		}
	}
	return nil
}
