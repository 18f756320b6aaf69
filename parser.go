package ndyaml

import (
	"fmt"

	"github.com/willabides/ndyaml/internal/arena"
	"github.com/willabides/ndyaml/internal/rawh"
	"github.com/willabides/ndyaml/internal/resolve"
	"github.com/willabides/ndyaml/internal/scanner"
)

// parser drives a single, non-recursive-except-through-the-grammar pass
// over a byte buffer, emitting nodes straight into the Document's arena
// as it recognizes them. It never backs up over bytes it
// has committed to a span; scanner.Mark/Reset is only used for bounded
// lookahead (is this line a mapping key? does a nested container follow?)
// that always ends in either committing forward or resetting completely.
type parser struct {
	doc *Document
	s   *scanner.Scanner
}

func parse(src []byte) (doc *Document, err error) {
	doc = &Document{source: src, arena: arena.New[Node]()}
	p := &parser{doc: doc, s: scanner.New(src)}

	prefixStart := 0
	if _, perr := p.collectLeading(); perr != nil {
		return nil, perr
	}
	doc.prefix = sourceSpan(prefixStart, p.s.Offset()-prefixStart)

	rootIndent := p.s.Column()
	rootID, perr := p.parseRootValue(rootIndent)
	if perr != nil {
		return nil, perr
	}
	doc.rootID = rootID

	suffixStart := p.s.Offset()
	doc.suffix = sourceSpan(suffixStart, len(src)-suffixStart)
	return doc, nil
}

func (p *parser) errf(kind rawh.ErrorKind, format string, args ...interface{}) error {
	return &ParseError{Kind: kind, Pos: p.s.Pos(), Problem: fmt.Sprintf(format, args...)}
}

// collectLeading consumes blank lines and comment-only lines, plus the
// indentation of whatever content line follows, and returns the consumed
// range. It never looks past the content line's indentation: the caller
// decides, from the resulting column, whether that content belongs to it.
func (p *parser) collectLeading() (Span, error) {
	start := p.s.Offset()
	for {
		if err := p.skipIndent(); err != nil {
			return Span{}, err
		}
		if p.s.Eof() {
			break
		}
		c := p.s.Peek()
		if c == '#' {
			p.skipToEOL()
			if !p.s.SkipLineBreak() {
				break
			}
			continue
		}
		if scanner.IsBreak(c) {
			p.s.SkipLineBreak()
			continue
		}
		break
	}
	return sourceSpan(start, p.s.Offset()-start), nil
}

// skipIndent consumes leading spaces at the cursor's current column,
// erroring if it finds a tab before any content — tabs are not allowed in
// indentation. It is a no-op past the first non-space byte.
func (p *parser) skipIndent() error {
	for p.s.Peek() == ' ' {
		p.s.Advance()
	}
	if p.s.Peek() == '\t' {
		return p.errf(rawh.TabInIndent, "tab character found where indentation is expected")
	}
	return nil
}

// skipToEOL consumes bytes up to (not including) the next line break or EOF.
func (p *parser) skipToEOL() {
	for !p.s.Eof() && !scanner.IsBreak(p.s.Peek()) {
		p.s.Advance()
	}
}

// skipLineBlanks consumes spaces/tabs without crossing a line break.
func (p *parser) skipLineBlanks() {
	for scanner.IsBlank(p.s.Peek()) {
		p.s.Advance()
	}
}

type containerKind int

const (
	containerNone containerKind = iota
	containerMapping
	containerSequence
)

// detectContainerStart inspects the cursor, which the caller guarantees
// sits at a content byte (not whitespace, not EOF), and reports whether a
// block sequence or block mapping starts here.
func (p *parser) detectContainerStart() containerKind {
	c := p.s.Peek()
	if c == '-' && (p.atEOFAt(1) || scanner.IsBlank(p.s.PeekAt(1)) || scanner.IsBreak(p.s.PeekAt(1))) {
		return containerSequence
	}
	mark := p.s.Mark()
	ok := p.tryScanKeyToColon()
	p.s.Reset(mark)
	if ok {
		return containerMapping
	}
	return containerNone
}

// tryScanKeyToColon reports whether a plain or quoted scalar starting at
// the cursor is followed, after optional blanks, by ':' and then whitespace, a line
// break, or EOF — the block-mapping key signature. It consumes bytes as
// it scans; callers always wrap it in Mark/Reset.
func (p *parser) tryScanKeyToColon() bool {
	if p.s.Eof() {
		return false
	}
	switch p.s.Peek() {
	case '\'':
		if _, err := p.scanSingleQuoted(); err != nil {
			return false
		}
	case '"':
		if _, err := p.scanDoubleQuoted(); err != nil {
			return false
		}
	default:
		if _, err := p.scanPlainScalar(true); err != nil {
			return false
		}
	}
	p.skipLineBlanks()
	if p.s.Peek() != ':' {
		return false
	}
	next := p.s.PeekAt(1)
	return next == 0 && p.atEOFAt(1) || scanner.IsBlank(next) || scanner.IsBreak(next)
}

func (p *parser) atEOFAt(n int) bool {
	return p.s.Offset()+n >= p.bufLen()
}

func (p *parser) bufLen() int {
	return len(p.doc.source)
}

// parseRootValue parses the single top-level value: a block mapping, a
// block sequence, or a bare scalar document.
func (p *parser) parseRootValue(indent int) (Id, error) {
	if p.s.Eof() {
		return p.insertNull(indent, sourceSpan(p.s.Offset(), 0)), nil
	}
	switch p.detectContainerStart() {
	case containerMapping:
		return p.parseBlockMapping(indent)
	case containerSequence:
		return p.parseBlockSequence(indent)
	default:
		return p.parseBareScalar(indent)
	}
}

func (p *parser) insertNull(indent int, span Span) Id {
	return p.doc.arena.Insert(Node{kind: Null, span: span, indent: indent})
}

// parseBareScalar parses a document whose root is a single scalar, with
// no enclosing mapping or sequence.
func (p *parser) parseBareScalar(indent int) (Id, error) {
	id, _, err := p.parseScalarLike(indent)
	return id, err
}

// parseScalarLike parses whichever scalar form starts at the cursor:
// block (| or >), quoted, or plain. It does not consume a trailing
// comment or line break; callers handle that uniformly.
func (p *parser) parseScalarLike(indent int) (Id, bool, error) {
	switch p.s.Peek() {
	case '|', '>':
		id, err := p.parseBlockScalar(indent)
		if err != nil {
			return Id{}, false, err
		}
		return id, false, nil
	case '\'':
		span, err := p.scanSingleQuoted()
		if err != nil {
			return Id{}, false, err
		}
		id := p.doc.arena.Insert(Node{kind: String, span: span, strStyle: SingleQuotedStyle, indent: indent})
		return id, true, nil
	case '"':
		span, err := p.scanDoubleQuoted()
		if err != nil {
			return Id{}, false, err
		}
		id := p.doc.arena.Insert(Node{kind: String, span: span, strStyle: DoubleQuotedStyle, indent: indent})
		return id, true, nil
	default:
		span, err := p.scanPlainScalar(false)
		if err != nil {
			return Id{}, false, err
		}
		return p.insertPlainScalar(span, indent), true, nil
	}
}

func (p *parser) insertPlainScalar(span Span, indent int) Id {
	text := string(p.doc.bytes(span))
	classified := resolve.Classify(text)
	switch classified.Kind {
	case resolve.Null:
		return p.doc.arena.Insert(Node{kind: Null, span: span, indent: indent})
	case resolve.Bool:
		return p.doc.arena.Insert(Node{kind: Bool, span: span, boolVal: classified.Bool, indent: indent})
	case resolve.Integer:
		return p.doc.arena.Insert(Node{kind: Integer, span: span, intVal: classified.Int, intStyle: classified.IntStyle, indent: indent})
	case resolve.Float:
		return p.doc.arena.Insert(Node{kind: Float, span: span, floatVal: classified.Float, indent: indent})
	default:
		return p.doc.arena.Insert(Node{kind: String, span: span, strStyle: PlainStyle, indent: indent})
	}
}

// parseValueAfterMarker parses the value slot following a mapping
// separator (': ') or a sequence marker ('- '). ownIndent is the column
// of the key or the '-' that introduced this slot. It returns inline=true
// whenever the caller should itself consume the rest-of-line trailing
// span (the common case); inline=false when a nested block container or
// a block scalar was parsed, since either has already consumed
// everything through its own last line.
func (p *parser) parseValueAfterMarker(ownIndent int) (id Id, inline bool, err error) {
	p.skipLineBlanks()
	c := p.s.Peek()
	if c == '#' || scanner.IsBreak(c) || p.s.Eof() {
		return p.parseNestedOrNull(ownIndent)
	}
	return p.parseScalarLike(ownIndent)
}

// parseNestedOrNull handles the case where nothing follows the separator
// on the current line: either a nested block container starts on a more
// indented following line (or, for a sequence, a line at the same indent
// as the key — the conventional "c:\n- d\n- e" form), or the value is the
// implicit null scalar.
func (p *parser) parseNestedOrNull(ownIndent int) (id Id, inline bool, err error) {
	mark := p.s.Mark()
	nullSpan := sourceSpan(p.s.Offset(), 0)

	if p.s.Peek() == '#' {
		p.skipToEOL()
	}
	hadBreak := false
	if !p.s.Eof() {
		hadBreak = p.s.SkipLineBreak()
	}
	if !hadBreak {
		p.s.Reset(mark)
		return p.insertNull(ownIndent, nullSpan), true, nil
	}

	if _, lerr := p.collectLeading(); lerr != nil {
		return Id{}, false, lerr
	}
	if !p.s.Eof() {
		nestedIndent := p.s.Column()
		switch p.detectContainerStart() {
		case containerMapping:
			if nestedIndent > ownIndent {
				// Reset so the recursive call's own leading-collection
				// (its first loop iteration) attributes the "\n"+indent
				// we just walked past to the nested container's first
				// entry instead of losing it.
				p.s.Reset(mark)
				id, err = p.parseBlockMapping(nestedIndent)
				return id, false, err
			}
		case containerSequence:
			if nestedIndent >= ownIndent {
				p.s.Reset(mark)
				id, err = p.parseBlockSequence(nestedIndent)
				return id, false, err
			}
		}
	}
	p.s.Reset(mark)
	return p.insertNull(ownIndent, nullSpan), true, nil
}

// finishTrailing consumes, from the cursor, the rest of the current line
// (optional spaces, an optional comment) plus its line break, returning
// that whole range as the entry's trailing span.
func (p *parser) finishTrailing() Span {
	start := p.s.Offset()
	p.skipLineBlanks()
	if p.s.Peek() == '#' {
		p.skipToEOL()
	}
	if !p.s.Eof() {
		p.s.SkipLineBreak()
	}
	return sourceSpan(start, p.s.Offset()-start)
}

func (p *parser) emptySpanHere() Span {
	return sourceSpan(p.s.Offset(), 0)
}

// parseBlockMapping parses entries at exactly indent until a dedent,
// shape mismatch, or EOF.
func (p *parser) parseBlockMapping(indent int) (Id, error) {
	var entries []mapEntry
	for {
		mark := p.s.Mark()
		leading, err := p.collectLeading()
		if err != nil {
			return Id{}, err
		}
		if p.s.Eof() || p.s.Column() < indent {
			p.s.Reset(mark)
			break
		}
		if p.s.Column() > indent {
			return Id{}, p.errf(rawh.BadIndent, "unexpected indent in block mapping")
		}
		if p.detectContainerStart() != containerMapping {
			p.s.Reset(mark)
			break
		}

		var keyID Id
		switch p.s.Peek() {
		case '\'':
			span, serr := p.scanSingleQuoted()
			if serr != nil {
				return Id{}, serr
			}
			keyID = p.doc.arena.Insert(Node{kind: String, span: span, strStyle: SingleQuotedStyle, indent: indent})
		case '"':
			span, serr := p.scanDoubleQuoted()
			if serr != nil {
				return Id{}, serr
			}
			keyID = p.doc.arena.Insert(Node{kind: String, span: span, strStyle: DoubleQuotedStyle, indent: indent})
		default:
			span, serr := p.scanPlainScalar(true)
			if serr != nil {
				return Id{}, serr
			}
			keyID = p.insertPlainScalar(span, indent)
		}

		sepStart := p.s.Offset()
		p.skipLineBlanks()
		if p.s.Peek() != ':' {
			return Id{}, p.errf(rawh.BadIndent, "expected ':' after mapping key")
		}
		p.s.Advance()
		p.skipLineBlanks()
		separator := sourceSpan(sepStart, p.s.Offset()-sepStart)

		valueID, inline, verr := p.parseValueAfterMarker(indent)
		if verr != nil {
			return Id{}, verr
		}
		var trailing Span
		if inline {
			trailing = p.finishTrailing()
		} else {
			trailing = p.emptySpanHere()
		}

		entries = append(entries, mapEntry{
			key:       keyID,
			value:     valueID,
			leading:   leading,
			separator: separator,
			trailing:  trailing,
		})
	}
	return p.doc.arena.Insert(Node{kind: Mapping, indent: indent, entries: entries}), nil
}

// parseBlockSequence parses items at exactly indent until a dedent, shape
// mismatch, or EOF.
func (p *parser) parseBlockSequence(indent int) (Id, error) {
	var items []seqEntry
	for {
		mark := p.s.Mark()
		leading, err := p.collectLeading()
		if err != nil {
			return Id{}, err
		}
		if p.s.Eof() || p.s.Column() < indent {
			p.s.Reset(mark)
			break
		}
		if p.s.Column() > indent {
			return Id{}, p.errf(rawh.BadIndent, "unexpected indent in block sequence")
		}
		if p.detectContainerStart() != containerSequence {
			p.s.Reset(mark)
			break
		}

		markerStart := p.s.Offset()
		p.s.Advance() // '-'
		p.skipLineBlanks()
		marker := sourceSpan(markerStart, p.s.Offset()-markerStart)

		valueID, inline, verr := p.parseValueAfterMarker(indent)
		if verr != nil {
			return Id{}, verr
		}
		var trailing Span
		if inline {
			trailing = p.finishTrailing()
		} else {
			trailing = p.emptySpanHere()
		}

		items = append(items, seqEntry{
			value:    valueID,
			leading:  leading,
			marker:   marker,
			trailing: trailing,
		})
	}
	return p.doc.arena.Insert(Node{kind: Sequence, indent: indent, style: rawh.BlockStyle, items: items}), nil
}

// scanPlainScalar reads a plain (unquoted) scalar starting at the cursor,
// stopping at a line break, a whitespace-introduced comment, or (when
// asKey is true) an unescaped ':' followed by blank/break/EOF. Trailing
// whitespace before the stop is excluded from the returned span and left
// unconsumed, so callers can attribute it to a separator or trailing span.
func (p *parser) scanPlainScalar(asKey bool) (Span, error) {
	start := p.s.Offset()
	end := start
	for {
		if p.s.Eof() {
			break
		}
		c := p.s.Peek()
		if scanner.IsBreak(c) {
			break
		}
		if scanner.IsBlank(c) && p.s.PeekAt(1) == '#' {
			break
		}
		if asKey && c == ':' {
			n := p.s.PeekAt(1)
			if n == 0 && p.atEOFAt(1) || scanner.IsBlank(n) || scanner.IsBreak(n) {
				break
			}
		}
		p.s.Advance()
		if c != ' ' && c != '\t' {
			end = p.s.Offset()
		}
	}
	p.s.RewindTo(end)
	return sourceSpan(start, end-start), nil
}

var validEscapes = map[byte]bool{
	'0': true, 'a': true, 'b': true, 't': true, 'n': true, 'v': true, 'f': true,
	'r': true, 'e': true, '"': true, '\'': true, '\\': true, '/': true,
	'N': true, '_': true, 'L': true, 'P': true,
	' ': true,
	'x': true, 'u': true, 'U': true,
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (p *parser) scanDoubleQuoted() (Span, error) {
	start := p.s.Offset()
	p.s.Advance() // opening '"'
	for {
		if p.s.Eof() {
			return Span{}, p.errf(rawh.UnclosedQuote, "unclosed double-quoted scalar")
		}
		c := p.s.Peek()
		switch {
		case c == '"':
			p.s.Advance()
			return sourceSpan(start, p.s.Offset()-start), nil
		case c == '\\':
			p.s.Advance()
			if p.s.Eof() {
				return Span{}, p.errf(rawh.UnclosedQuote, "unclosed double-quoted scalar")
			}
			e := p.s.Peek()
			if scanner.IsBreak(e) {
				p.s.SkipLineBreak()
				continue
			}
			if !validEscapes[e] {
				return Span{}, p.errf(rawh.InvalidEscape, "invalid escape sequence '\\%c'", e)
			}
			p.s.Advance()
			var hexLen int
			switch e {
			case 'x':
				hexLen = 2
			case 'u':
				hexLen = 4
			case 'U':
				hexLen = 8
			}
			for i := 0; i < hexLen; i++ {
				if p.s.Eof() || !isHexDigit(p.s.Peek()) {
					return Span{}, p.errf(rawh.InvalidEscape, "invalid \\%c escape: expected %d hex digits", e, hexLen)
				}
				p.s.Advance()
			}
		case scanner.IsBreak(c):
			return Span{}, p.errf(rawh.UnclosedQuote, "unclosed double-quoted scalar (line break before closing quote)")
		default:
			p.s.Advance()
		}
	}
}

func (p *parser) scanSingleQuoted() (Span, error) {
	start := p.s.Offset()
	p.s.Advance() // opening '\''
	for {
		if p.s.Eof() {
			return Span{}, p.errf(rawh.UnclosedQuote, "unclosed single-quoted scalar")
		}
		c := p.s.Peek()
		switch {
		case c == '\'':
			p.s.Advance()
			if p.s.Peek() == '\'' {
				p.s.Advance()
				continue
			}
			return sourceSpan(start, p.s.Offset()-start), nil
		case scanner.IsBreak(c):
			return Span{}, p.errf(rawh.UnclosedQuote, "unclosed single-quoted scalar (line break before closing quote)")
		default:
			p.s.Advance()
		}
	}
}

// parseBlockScalar parses a literal ('|') or folded ('>') scalar: the
// header on the current line, then its body on subsequent more-indented
// lines. The returned node's span covers header and body together so an
// unedited block scalar re-serializes byte-for-byte from one span.
func (p *parser) parseBlockScalar(entryIndent int) (Id, error) {
	headerStart := p.s.Offset()
	style := LiteralStyle
	if p.s.Peek() == '>' {
		style = FoldedStyle
	}
	p.s.Advance()

	chomping := rawh.ClipChomping
	explicitIndent := 0
	for i := 0; i < 2; i++ {
		switch p.s.Peek() {
		case '-':
			chomping = rawh.StripChomping
			p.s.Advance()
		case '+':
			chomping = rawh.KeepChomping
			p.s.Advance()
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			explicitIndent = int(p.s.Peek() - '0')
			p.s.Advance()
		}
	}
	p.skipLineBlanks()
	if p.s.Peek() == '#' {
		p.skipToEOL()
	}
	if !p.s.Eof() {
		p.s.SkipLineBreak()
	}

	bodyStart := p.s.Offset()
	contentIndent := 0
	if explicitIndent > 0 {
		contentIndent = entryIndent + explicitIndent
	}
	for {
		mark := p.s.Mark()
		col := 0
		for p.s.Peek() == ' ' {
			p.s.Advance()
			col++
		}
		if p.s.Eof() {
			p.s.Reset(mark)
			break
		}
		if scanner.IsBreak(p.s.Peek()) {
			p.s.SkipLineBreak()
			continue
		}
		if contentIndent == 0 {
			if col <= entryIndent {
				p.s.Reset(mark)
				break
			}
			contentIndent = col
		}
		if col < contentIndent {
			p.s.Reset(mark)
			break
		}
		p.skipToEOL()
		if !p.s.Eof() {
			p.s.SkipLineBreak()
		} else {
			break
		}
	}
	bodyEnd := p.s.Offset()
	if contentIndent == 0 {
		contentIndent = entryIndent + 1
	}

	span := sourceSpan(headerStart, bodyEnd-headerStart)
	node := Node{
		kind:     String,
		span:     span,
		strStyle: style,
		indent:   entryIndent,
		block: &blockScalar{
			body:     sourceSpan(bodyStart, bodyEnd-bodyStart),
			chomping: chomping,
			indent:   contentIndent,
		},
	}
	return p.doc.arena.Insert(node), nil
}
