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

// functions emits each message or private function in input order.
// Duplicate names (Src overloads) are permitted here and emitted as-is —
// the assembler neither detects nor disambiguates them, leaving that to
// the downstream Dst compiler.
func functions(s *token.Stream, fns []cir.Function) error {
	for i, fn := range fns {
		if err := emitFunction(s, fn); err != nil {
			return err
		}
		if i < len(fns)-1 {
			s.Blank()
		}
	}
	return nil
}

func emitFunction(s *token.Stream, fn cir.Function) error {
	h := fn.Header
	if attr := messageAttr(h.External, h.Payable); attr != "" {
		if err := s.Raw(attr); err != nil {
			return err
		}
	}

	name, err := messageName(h)
	if err != nil {
		return err
	}
	core, err := signatureCore(name, h)
	if err != nil {
		return err
	}
	if err := s.Raw(core + " {"); err != nil {
		return err
	}

	for _, stmt := range fn.Body {
		if stmt.Comment {
			s.Commentary(stmt.Content)
			continue
		}
		if err := s.Raw(stmt.Content); err != nil {
			return err
		}
	}
	s.MustRaw("todo!()")
	s.MustRaw("}")
	return nil
}

// messageName renders the name prefix §4.10 describes: "pub fn
// snake_name" for messages, "fn _snake_name" for private functions — the
// leading underscore marks private lowering.
func messageName(h cir.FunctionHeader) (string, error) {
	n, err := casing.Value(h.Name)
	if err != nil {
		return "", err
	}
	if h.External {
		return "pub fn " + n, nil
	}
	return "fn _" + n, nil
}
