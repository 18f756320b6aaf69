//
// Copyright (c) 2011-2019 Canonical Ltd
// Copyright (c) 2006-2010 Kirill Simonov
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package rawh holds the small shared vocabulary used by the scanner,
// parser and serializer: byte positions, scalar/container styles and the
// parse-error taxonomy. It plays the role the event-based decoder's yamlh
// package played for that codec: a leaf package every other internal
// package can depend on without creating cycles.
package rawh

import "fmt"

// Position is a byte offset paired with the line/column it resolves to,
// used for both node indentation bookkeeping and parse-error reporting.
type Position struct {
	Offset int // 0-based byte offset into the source.
	Line   int // 1-based line number.
	Column int // 0-based byte count since the last newline.
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column+1)
}

// ScalarStyle is the quoting/block form a scalar was written in.
type ScalarStyle int8

const (
	PlainScalar ScalarStyle = iota
	SingleQuotedScalar
	DoubleQuotedScalar
	LiteralScalar // '|'
	FoldedScalar  // '>'
)

// ContainerStyle distinguishes block layout (indentation-based) from flow
// layout ('{...}' / '[...]'). The parser builds block containers only and
// the insertion routines do not consult this tag; it is part of the data
// model's record of a container.
type ContainerStyle int8

const (
	BlockStyle ContainerStyle = iota
	FlowStyle
)

// Chomping is the trailing-newline handling indicator on a block scalar
// header ('|', '|-', '|+', '>', '>-', '>+').
type Chomping int8

const (
	ClipChomping  Chomping = iota // default: single trailing newline
	StripChomping                 // '-': no trailing newline
	KeepChomping                  // '+': all trailing newlines kept
)

// ErrorKind enumerates the fatal parse-error conditions the parser can
// report.
type ErrorKind int

const (
	_ ErrorKind = iota
	BadIndent
	UnclosedQuote
	UnexpectedEOF
	InvalidEscape
	TabInIndent
	BadNumber
)

func (k ErrorKind) String() string {
	switch k {
	case BadIndent:
		return "bad indent"
	case UnclosedQuote:
		return "unclosed quote"
	case UnexpectedEOF:
		return "unexpected end of input"
	case InvalidEscape:
		return "invalid escape sequence"
	case TabInIndent:
		return "tab character in indentation"
	case BadNumber:
		return "malformed number"
	default:
		return "unknown parse error"
	}
}
