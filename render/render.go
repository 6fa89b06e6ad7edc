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

// Package render is the "downstream formatting" spec.md §6 describes as an
// external collaborator: it turns a token.Stream into literal Dst source
// bytes by converting the blank-line and commentary markers into real
// newlines and `//` comments. The assembler itself never renders to
// bytes — this package exists so golden-file tests and cmd/cirgen have
// something to diff and to write, without folding byte-level formatting
// concerns into the pure assembler package.
package render

import (
	"strings"

	"github.com/sol2ink/assembler/token"
)

// String renders stream to a single Dst source string. Adjacent Raw/Ident
// tokens are joined with a single space, mirroring how a real token
// stream (e.g. proc-macro2's TokenStream) prints itself; each Blank marker
// yields exactly one empty line and a Commentary marker renders on its
// own line.
func String(stream token.Stream) string {
	var b strings.Builder
	atLineStart := true
	pendingSpace := false

	writeRaw := func(text string) {
		if pendingSpace && !atLineStart {
			b.WriteByte(' ')
		}
		b.WriteString(text)
		atLineStart = false
		pendingSpace = true
	}

	for _, t := range stream.Tokens() {
		switch t.Kind {
		case token.Blank:
			if !atLineStart {
				b.WriteByte('\n')
			}
			b.WriteByte('\n')
			atLineStart = true
			pendingSpace = false
		case token.Commentary:
			if !atLineStart {
				b.WriteByte('\n')
			}
			b.WriteString("// ")
			b.WriteString(t.Text)
			b.WriteByte('\n')
			atLineStart = true
			pendingSpace = false
		case token.Raw, token.Ident:
			writeRaw(t.Text)
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
