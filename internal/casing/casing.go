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

// Package casing centralises the one casing policy every emitter in
// assembler applies: value-level identifiers (fields, parameters,
// variables, module and function names) are snake_cased; type-level
// identifiers (contracts, interfaces, enums, structs, events) keep
// whatever casing the front end gave them. The policy is applied at
// emission time, never baked into the CIR itself.
package casing

import (
	"errors"
	"fmt"

	"github.com/iancoleman/strcase"
)

// ErrEmptyIdentifier is returned when an identifier string is empty. CIR
// invariants guarantee every identifier is non-empty; tripping this means
// the front end produced a malformed value.
var ErrEmptyIdentifier = errors.New("casing: empty identifier")

// Value converts a value-level identifier (field, parameter, variable,
// module, or function name) to snake_case.
func Value(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w", ErrEmptyIdentifier)
	}
	return strcase.ToSnake(name), nil
}

// Type returns a type-level identifier (contract, interface, enum,
// struct, or event name) unchanged: the front end's casing is preserved
// verbatim all the way to the emitted Dst source.
func Type(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w", ErrEmptyIdentifier)
	}
	return name, nil
}
