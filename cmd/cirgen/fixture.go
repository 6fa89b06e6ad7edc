// Copyright 2024 The sol2ink-go Authors
// This file is part of sol2ink-go.
//
// sol2ink-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sol2ink-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sol2ink-go. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sol2ink/assembler/cir"
)

// fixture is the JSON shape cirgen reads from disk: a stand-in for
// whatever wire format a real front end would hand the assembler. It
// exists only at this CLI boundary — cir itself carries no encoding
// tags, since the spec treats CIR as an in-memory value the front end
// constructs directly, not a serialized one.
type fixture struct {
	Kind      string        `json:"kind"` // "contract" or "interface"
	Contract  *wireContract `json:"contract,omitempty"`
	Interface *wireIface    `json:"interface,omitempty"`
}

type wireContract struct {
	Name        string         `json:"name"`
	Imports     []string       `json:"imports"`
	Events      []wireEvent    `json:"events"`
	Enums       []wireEnum     `json:"enums"`
	Structs     []wireStruct   `json:"structs"`
	Fields      []wireField    `json:"fields"`
	Constructor wireFunction   `json:"constructor"`
	Functions   []wireFunction `json:"functions"`
	Comments    []string       `json:"comments"`
}

type wireIface struct {
	Name            string       `json:"name"`
	Imports         []string     `json:"imports"`
	Events          []wireEvent  `json:"events"`
	Enums           []wireEnum   `json:"enums"`
	Structs         []wireStruct `json:"structs"`
	FunctionHeaders []wireHeader `json:"function_headers"`
	Comments        []string     `json:"comments"`
}

type wireEvent struct {
	Name     string           `json:"name"`
	Fields   []wireEventField `json:"fields"`
	Comments []string         `json:"comments"`
}

type wireEventField struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Indexed bool   `json:"indexed"`
}

type wireEnum struct {
	Name     string   `json:"name"`
	Values   []string `json:"values"`
	Comments []string `json:"comments"`
}

type wireStruct struct {
	Name     string      `json:"name"`
	Fields   []wireField `json:"fields"`
	Comments []string    `json:"comments"`
}

type wireField struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type wireFunction struct {
	Header wireHeader      `json:"header"`
	Body   []wireStatement `json:"body"`
}

type wireHeader struct {
	Name         string      `json:"name"`
	Params       []wireField `json:"params"`
	ReturnParams []wireField `json:"return_params"`
	External     bool        `json:"external"`
	View         bool        `json:"view"`
	Payable      bool        `json:"payable"`
	Comments     []string    `json:"comments"`
}

type wireStatement struct {
	Content string `json:"content"`
	Comment bool   `json:"comment"`
}

func decodeFixture(r io.Reader) (fixture, error) {
	var f fixture
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return fixture{}, fmt.Errorf("cirgen: decoding fixture: %w", err)
	}
	return f, nil
}

func toFields(ws []wireField) []cir.StructField {
	out := make([]cir.StructField, len(ws))
	for i, w := range ws {
		out[i] = cir.StructField{Name: w.Name, Type: w.Type}
	}
	return out
}

func toContractFields(ws []wireField) []cir.ContractField {
	out := make([]cir.ContractField, len(ws))
	for i, w := range ws {
		out[i] = cir.ContractField{Name: w.Name, Type: w.Type}
	}
	return out
}

func toParams(ws []wireField) []cir.Param {
	out := make([]cir.Param, len(ws))
	for i, w := range ws {
		out[i] = cir.Param{Name: w.Name, Type: w.Type}
	}
	return out
}

func toImports(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

func toEvents(ws []wireEvent) []cir.Event {
	out := make([]cir.Event, len(ws))
	for i, w := range ws {
		fields := make([]cir.EventField, len(w.Fields))
		for j, f := range w.Fields {
			fields[j] = cir.EventField{Name: f.Name, Type: f.Type, Indexed: f.Indexed}
		}
		out[i] = cir.Event{Name: w.Name, Fields: fields, Comments: w.Comments}
	}
	return out
}

func toEnums(ws []wireEnum) []cir.Enum {
	out := make([]cir.Enum, len(ws))
	for i, w := range ws {
		out[i] = cir.Enum{Name: w.Name, Values: w.Values, Comments: w.Comments}
	}
	return out
}

func toStructs(ws []wireStruct) []cir.Struct {
	out := make([]cir.Struct, len(ws))
	for i, w := range ws {
		out[i] = cir.Struct{Name: w.Name, Fields: toFields(w.Fields), Comments: w.Comments}
	}
	return out
}

func toFunction(w wireFunction) cir.Function {
	body := make([]cir.Statement, len(w.Body))
	for i, st := range w.Body {
		body[i] = cir.Statement{Content: st.Content, Comment: st.Comment}
	}
	return cir.Function{Header: toHeader(w.Header), Body: body}
}

func toFunctions(ws []wireFunction) []cir.Function {
	out := make([]cir.Function, len(ws))
	for i, w := range ws {
		out[i] = toFunction(w)
	}
	return out
}

func toHeader(w wireHeader) cir.FunctionHeader {
	return cir.FunctionHeader{
		Name:         w.Name,
		Params:       toParams(w.Params),
		ReturnParams: toParams(w.ReturnParams),
		External:     w.External,
		View:         w.View,
		Payable:      w.Payable,
		Comments:     w.Comments,
	}
}

func toHeaders(ws []wireHeader) []cir.FunctionHeader {
	out := make([]cir.FunctionHeader, len(ws))
	for i, w := range ws {
		out[i] = toHeader(w)
	}
	return out
}

func (f fixture) toContract() (cir.Contract, error) {
	if f.Contract == nil {
		return cir.Contract{}, fmt.Errorf("cirgen: fixture kind %q missing \"contract\" object", f.Kind)
	}
	w := f.Contract
	return cir.Contract{
		Name:        w.Name,
		Imports:     toImports(w.Imports),
		Events:      toEvents(w.Events),
		Enums:       toEnums(w.Enums),
		Structs:     toStructs(w.Structs),
		Fields:      toContractFields(w.Fields),
		Constructor: toFunction(w.Constructor),
		Functions:   toFunctions(w.Functions),
		Comments:    w.Comments,
	}, nil
}

func (f fixture) toInterface() (cir.Interface, error) {
	if f.Interface == nil {
		return cir.Interface{}, fmt.Errorf("cirgen: fixture kind %q missing \"interface\" object", f.Kind)
	}
	w := f.Interface
	return cir.Interface{
		Name:            w.Name,
		Imports:         toImports(w.Imports),
		Events:          toEvents(w.Events),
		Enums:           toEnums(w.Enums),
		Structs:         toStructs(w.Structs),
		FunctionHeaders: toHeaders(w.FunctionHeaders),
		Comments:        w.Comments,
	}, nil
}
