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

// Package token is the low-level layer every emitter in assembler builds
// on: an append-only stream of Dst source fragments plus the two layout
// directives downstream formatting recognises (a blank line, and a
// commentary line carrying literal text). It does not understand Dst
// grammar beyond the structural sanity check Tokenize performs; it never
// reorders or mutates anything it has already accumulated.
package token

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies one element of a Stream.
type Kind int

const (
	// Raw is a pre-tokenized Dst fragment, inserted into the output
	// verbatim. Appended by Stream.Raw once Tokenize has accepted it.
	Raw Kind = iota
	// Ident is a casing-enforced identifier, inserted verbatim. Appended
	// by Stream.Ident; casing is applied by the caller (see internal/casing)
	// before the identifier reaches this package.
	Ident
	// Blank is the blank-line layout marker.
	Blank
	// Commentary is the commentary-marker layout directive: downstream
	// formatting renders it as a single-line `// <Text>` comment.
	Commentary
)

// Token is one element of a Stream.
type Token struct {
	Kind Kind
	Text string
}

// ErrInvalidFragment is the fatal tokenization defect spec.md §7 describes:
// a *_type, import string, or non-comment statement content that is not a
// lexically valid Dst fragment. This is a front-end programmer error, not
// something the assembler can recover from.
var ErrInvalidFragment = errors.New("token: invalid Dst fragment")

// Stream is an append-only sequence of Token. The zero value is an empty,
// ready-to-use stream.
type Stream struct {
	toks []Token
}

// Len reports how many tokens the stream currently holds.
func (s *Stream) Len() int { return len(s.toks) }

// Tokens returns the accumulated tokens. The caller must not mutate the
// returned slice.
func (s *Stream) Tokens() []Token { return s.toks }

// Append adds other's tokens to the end of s, in order.
func (s *Stream) Append(other Stream) {
	s.toks = append(s.toks, other.toks...)
}

// Blank appends a blank-line layout marker.
func (s *Stream) Blank() {
	s.toks = append(s.toks, Token{Kind: Blank})
}

// Commentary appends a commentary marker carrying text. Embedded newlines
// are flattened to spaces so the marker stays single-line, per spec.md §6.
func (s *Stream) Commentary(text string) {
	s.toks = append(s.toks, Token{Kind: Commentary, Text: flattenLine(text)})
}

// Raw validates fragment as a structurally sane Dst fragment and appends
// it verbatim. It returns ErrInvalidFragment, wrapped with the offending
// text, if fragment fails the check.
func (s *Stream) Raw(fragment string) error {
	if err := Tokenize(fragment); err != nil {
		return err
	}
	s.toks = append(s.toks, Token{Kind: Raw, Text: fragment})
	return nil
}

// MustRaw is Raw for fragments the caller has built internally and knows
// to be well-formed (e.g. fixed scaffold text). It panics on failure,
// which signals a defect in the emitter itself rather than the CIR input.
func (s *Stream) MustRaw(fragment string) {
	if err := s.Raw(fragment); err != nil {
		panic(fmt.Sprintf("token: internal fragment failed to tokenize: %v", err))
	}
}

// Ident appends an already-cased identifier verbatim.
func (s *Stream) Ident(name string) {
	s.toks = append(s.toks, Token{Kind: Ident, Text: name})
}

// Tokenize performs the Token Builder's structural sanity check: fragment
// must be non-empty and its brackets and quotes must balance. It does not
// and cannot parse full Dst grammar — the front end is responsible for
// producing lexically valid fragments; this is the assembler's one line
// of defence against a front-end defect reaching the output unnoticed.
func Tokenize(fragment string) error {
	if strings.TrimSpace(fragment) == "" {
		return fmt.Errorf("%w: %q (empty fragment)", ErrInvalidFragment, fragment)
	}

	var parens, braces, brackets int
	inString := false
	escaped := false
	for _, r := range fragment {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '(':
			parens++
		case ')':
			parens--
		case '{':
			braces++
		case '[':
			brackets++
		case ']':
			brackets--
		case '}':
			braces--
		}
		if parens < 0 || braces < 0 || brackets < 0 {
			return fmt.Errorf("%w: %q (unbalanced delimiter)", ErrInvalidFragment, fragment)
		}
	}
	if inString {
		return fmt.Errorf("%w: %q (unterminated string literal)", ErrInvalidFragment, fragment)
	}
	if parens != 0 || braces != 0 || brackets != 0 {
		return fmt.Errorf("%w: %q (unbalanced delimiter)", ErrInvalidFragment, fragment)
	}
	return nil
}

func flattenLine(text string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(text, "\n", " ")), " ")
}
