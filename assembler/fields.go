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

// Shared helpers used by more than one sub-emitter: field-list rendering,
// function-signature assembly, and the receiver/return-arrow rules that
// §4.10 and §4.11 both specify identically. Centralising them here is
// the "single shared helper" spec.md §9 asks for, rather than
// duplicating the same comma-joining and casing logic in every emitter.
package assembler

import (
	"fmt"
	"strings"

	"github.com/sol2ink/assembler/cir"
	"github.com/sol2ink/assembler/internal/casing"
)

// fieldFrag renders "snake_name: Type" for one field, param, or storage
// slot. Type is carried through verbatim: it is a pre-rendered Dst type
// expression, never recased.
func fieldFrag(name, typ string) (string, error) {
	n, err := casing.Value(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", n, typ), nil
}

// trailingCommaFields renders a field list where every field — including
// the last — is followed by a comma, the shape struct/event/storage
// bodies and the constructor parameter list use.
func trailingCommaFields(names, types []string) (string, error) {
	var b strings.Builder
	for i := range names {
		frag, err := fieldFrag(names[i], types[i])
		if err != nil {
			return "", err
		}
		b.WriteString(frag)
		b.WriteString(", ")
	}
	return b.String(), nil
}

// leadingCommaParams renders a parameter list where every parameter is
// preceded by ", " and none follows a trailing comma — the shape
// message and private-function signatures append after their receiver.
func leadingCommaParams(params []cir.Param) (string, error) {
	var b strings.Builder
	for _, p := range params {
		frag, err := fieldFrag(p.Name, p.Type)
		if err != nil {
			return "", err
		}
		b.WriteString(", ")
		b.WriteString(frag)
	}
	return b.String(), nil
}

// returnArrow renders the return-type arrow: absent for no return
// params, unparenthesised for exactly one, and parenthesised,
// comma-separated for two or more.
func returnArrow(params []cir.Param) string {
	if len(params) == 0 {
		return ""
	}
	types := make([]string, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	if len(types) == 1 {
		return "-> " + types[0]
	}
	return "-> (" + strings.Join(types, ", ") + ")"
}

// receiver renders the &self / &mut self receiver the view flag selects.
func receiver(view bool) string {
	if view {
		return "&self"
	}
	return "&mut self"
}

// messageAttr renders the #[ink(message[, payable])] attribute, or the
// empty string when the function is private. Identical for messages and
// trait function headers per spec.md §4.10/§4.11.
func messageAttr(external, payable bool) string {
	switch {
	case !external:
		return ""
	case payable:
		return "#[ink(message, payable)]"
	default:
		return "#[ink(message)]"
	}
}

// signatureCore renders "name(<receiver><params>) <return arrow>" — the
// part of a function or trait-header signature shared by §4.10 and
// §4.11, everything except the name prefix and the body/terminator.
func signatureCore(name string, h cir.FunctionHeader) (string, error) {
	params, err := leadingCommaParams(h.Params)
	if err != nil {
		return "", err
	}
	sig := fmt.Sprintf("%s(%s%s)", name, receiver(h.View), params)
	if arrow := returnArrow(h.ReturnParams); arrow != "" {
		sig += " " + arrow
	}
	return sig, nil
}
