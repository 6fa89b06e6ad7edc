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

// Package assembler takes a fully resolved cir.Contract or cir.Interface
// and emits well-formed Dst (ink!) source as a token.Stream. It owns all
// naming, casing, ordering and attribute-placement conventions described
// in spec.md; it does not parse, type-check, or otherwise interpret the
// CIR it is handed.
package assembler

// Version is baked into the signature banner every emitted file carries.
// It stands in for the build-time PKG_VERSION literal spec.md §6
// describes.
const Version = "2.1.0"

// options holds the per-call overrides AssembleContract and
// AssembleInterface accept. buildOptions starts every call from Version.
type options struct {
	version string
}

func buildOptions(opts []Option) options {
	o := options{version: Version}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures one call to AssembleContract or AssembleInterface.
type Option func(*options)

// WithVersion overrides the signature banner's version string for this
// call only; the package Version constant is untouched. cmd/cirgen uses
// this to honor its "version"/PKG_VERSION flag without making the
// library's Version constant itself mutable.
func WithVersion(version string) Option {
	return func(o *options) {
		if version != "" {
			o.version = version
		}
	}
}
