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

// Package cir defines the Contract Intermediate Representation consumed by
// the assembler. It is a plain, front-end-produced tree with no sharing or
// cycles: every value is owned exclusively by its parent. Nothing in this
// package interprets or validates the semantics of the data it carries —
// that is the front end's job. The assembler traverses a CIR value exactly
// once and never mutates it.
package cir

// Contract is the CIR root for a single Src contract.
type Contract struct {
	Name        string
	Imports     map[string]struct{}
	Events      []Event
	Enums       []Enum
	Structs     []Struct
	Fields      []ContractField
	Constructor Function
	Functions   []Function
	Comments    []string
}

// Interface is the CIR root for a single Src interface.
type Interface struct {
	Name            string
	Imports         map[string]struct{}
	Events          []Event
	Enums           []Enum
	Structs         []Struct
	FunctionHeaders []FunctionHeader
	Comments        []string
}

// Event is an ink! event struct in waiting: a name, its fields, and any
// doc comments the front end attached to it.
type Event struct {
	Name     string
	Fields   []EventField
	Comments []string
}

// EventField is one field of an Event. Type is a pre-rendered Dst type
// expression; Indexed marks it for the #[ink(topic)] attribute.
type EventField struct {
	Name    string
	Type    string
	Indexed bool
}

// Enum carries its variant identifiers verbatim; the assembler never
// recases or otherwise rewrites them.
type Enum struct {
	Name     string
	Values   []string
	Comments []string
}

// Struct is a plain data carrier, not contract storage.
type Struct struct {
	Name     string
	Fields   []StructField
	Comments []string
}

// StructField is one field of a Struct. Storage fields are ContractField.
type StructField struct {
	Name string
	Type string
}

// ContractField is one persistent storage field of a Contract.
type ContractField struct {
	Name string
	Type string
}

// Function is a constructor, message, or private function: a header plus
// an opaque, pre-rendered statement body.
type Function struct {
	Header FunctionHeader
	Body   []Statement
}

// FunctionHeader fully describes a function's signature and the ink!
// attributes it requires. External distinguishes messages from private
// functions; View distinguishes a read-only (&self) receiver from a
// mutating (&mut self) one; Payable is only meaningful when External.
type FunctionHeader struct {
	Name         string
	Params       []Param
	ReturnParams []Param
	External     bool
	View         bool
	Payable      bool
	Comments     []string
}

// Param is one function parameter or return slot. Type is a pre-rendered
// Dst type expression.
type Param struct {
	Name string
	Type string
}

// Statement is one opaque body statement. When Comment is true, Content is
// free text to surface as a line comment; otherwise Content is a
// pre-tokenizable Dst expression or statement fragment.
type Statement struct {
	Content string
	Comment bool
}
