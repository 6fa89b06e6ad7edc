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

const sol2inkURL = "https://github.com/Supercolony-net/sol2ink"

// signature appends the file banner: tool name, version, and project
// URL, each as a commentary marker, followed by the blank line that
// always separates it from whatever comes next. It is the first thing
// every orchestrator emits (after the contract orchestrator's
// crate-level attribute preamble). version defaults to the package
// Version constant but callers may override it via WithVersion.
func signature(s *token.Stream, version string) {
	s.Commentary(fmt.Sprintf("Generated with Sol2Ink v%s", version))
	s.Commentary(sol2inkURL)
	s.Blank()
}
