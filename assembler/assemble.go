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

// AssembleContract composes the sub-emitters, in the fixed order spec.md
// §4.12 mandates, into a complete ink! contract module. It is a pure
// function of contract, opts, and the package Version constant: equal
// inputs always produce byte-identical output.
func AssembleContract(contract cir.Contract, opts ...Option) (token.Stream, error) {
	o := buildOptions(opts)
	var s token.Stream

	modName, err := casing.Value(contract.Name)
	if err != nil {
		return s, err
	}
	contractType, err := casing.Type(contract.Name)
	if err != nil {
		return s, err
	}

	s.MustRaw(`#![cfg_attr(not(feature = "std"), no_std)]`)
	s.MustRaw(`#![feature(min_specialization)]`)
	s.Blank()
	signature(&s, o.version)
	if err := comments(&s, contract.Comments); err != nil {
		return s, err
	}
	s.MustRaw("#[brush::contract]")
	if err := s.Raw(fmt.Sprintf("pub mod %s {", modName)); err != nil {
		return s, err
	}

	if err := imports(&s, contract.Imports); err != nil {
		return s, err
	}
	if err := events(&s, contract.Events); err != nil {
		return s, err
	}
	if err := enums(&s, contract.Enums); err != nil {
		return s, err
	}
	if err := structs(&s, contract.Structs); err != nil {
		return s, err
	}
	if err := storage(&s, contractType, contract.Fields); err != nil {
		return s, err
	}

	if err := s.Raw(fmt.Sprintf("impl %s {", modName)); err != nil {
		return s, err
	}
	if err := constructor(&s, contract.Constructor); err != nil {
		return s, err
	}
	if err := functions(&s, contract.Functions); err != nil {
		return s, err
	}
	s.MustRaw("}") // impl
	s.MustRaw("}") // mod

	return s, nil
}

// AssembleInterface composes the sub-emitters, in the fixed order
// spec.md §4.12 mandates, into a complete ink! trait module.
func AssembleInterface(iface cir.Interface, opts ...Option) (token.Stream, error) {
	o := buildOptions(opts)
	var s token.Stream

	name, err := casing.Type(iface.Name)
	if err != nil {
		return s, err
	}

	signature(&s, o.version)
	if err := imports(&s, iface.Imports); err != nil {
		return s, err
	}
	if err := events(&s, iface.Events); err != nil {
		return s, err
	}
	if err := enums(&s, iface.Enums); err != nil {
		return s, err
	}
	if err := structs(&s, iface.Structs); err != nil {
		return s, err
	}
	if err := comments(&s, iface.Comments); err != nil {
		return s, err
	}

	s.MustRaw("#[brush::wrapper]")
	if err := s.Raw(fmt.Sprintf("pub type %sRef = dyn %s;", name, name)); err != nil {
		return s, err
	}
	s.Blank()
	s.MustRaw("#[brush::trait_definition]")
	if err := s.Raw(fmt.Sprintf("pub trait %s {", name)); err != nil {
		return s, err
	}
	if err := functionHeaders(&s, iface.FunctionHeaders); err != nil {
		return s, err
	}
	s.MustRaw("}")

	return s, nil
}
