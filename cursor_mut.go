package ndyaml

import (
	"github.com/willabides/ndyaml/internal/resolve"
)

// WriteCursor is a writable view over one node of a Document. Go has no
// statically-checked exclusive borrow to distinguish a navigation step
// tied to an outer cursor from one tied to the document itself, so
// WriteCursor collapses both into a single value type threaded through
// navigation, like an explicit transaction handle. While a WriteCursor is
// in use, no other cursor into the same Document should be used.
type WriteCursor struct {
	doc *Document
	id  Id
}

// Id returns the Id this cursor currently addresses.
func (c WriteCursor) Id() Id { return c.id }

// Read returns a read-only cursor over the same node.
func (c WriteCursor) Read() ReadCursor { return ReadCursor{doc: c.doc, id: c.id} }

func (c WriteCursor) node() (*Node, bool) {
	n, err := c.doc.node(c.id)
	if err != nil {
		return nil, false
	}
	return n, true
}

// Read-through passthroughs, matching ReadCursor's contract.
func (c WriteCursor) IsNull() bool           { return c.Read().IsNull() }
func (c WriteCursor) AsBool() (bool, bool)   { return c.Read().AsBool() }
func (c WriteCursor) AsI64() (int64, bool)   { return c.Read().AsI64() }
func (c WriteCursor) AsU32() (uint32, bool)  { return c.Read().AsU32() }
func (c WriteCursor) AsF64() (float64, bool) { return c.Read().AsF64() }
func (c WriteCursor) AsStr() (string, bool)  { return c.Read().AsStr() }
func (c WriteCursor) Kind() (Kind, bool)     { return c.Read().Kind() }

// SetBool replaces the current node with a Bool, regardless of its prior
// Kind. Mutators never fail on type: they replace whatever was there.
func (c WriteCursor) SetBool(v bool) WriteCursor {
	n, ok := c.node()
	if !ok {
		return c
	}
	indent := n.indent
	*n = Node{kind: Bool, boolVal: v, indent: indent, edited: true}
	return c
}

// SetI64 replaces the current node with an Integer. If the node was
// already an Integer written in a non-decimal radix, that radix is
// preserved.
func (c WriteCursor) SetI64(v int64) WriteCursor {
	n, ok := c.node()
	if !ok {
		return c
	}
	style := resolve.Decimal
	if n.kind == Integer {
		style = n.intStyle
	}
	indent := n.indent
	*n = Node{kind: Integer, intVal: v, intStyle: style, indent: indent, edited: true}
	return c
}

// SetU32 is SetI64 widened from a uint32.
func (c WriteCursor) SetU32(v uint32) WriteCursor {
	return c.SetI64(int64(v))
}

// SetF64 replaces the current node with a Float, rendered in shortest
// round-trip decimal form.
func (c WriteCursor) SetF64(v float64) WriteCursor {
	n, ok := c.node()
	if !ok {
		return c
	}
	indent := n.indent
	*n = Node{kind: Float, floatVal: v, indent: indent, edited: true}
	return c
}

// SetString replaces the current node with a String rendered in style
// (default PlainStyle; pass a StringStyle explicitly for quoted or block
// forms). The value is copied into the Document's string pool so the new
// Span is stable for the Document's lifetime.
func (c WriteCursor) SetString(v string, style ...StringStyle) WriteCursor {
	n, ok := c.node()
	if !ok {
		return c
	}
	st := PlainStyle
	if len(style) > 0 {
		st = style[0]
	}
	indent := n.indent
	span := c.doc.pool.Insert(v)
	*n = Node{
		kind: String, span: span, strStyle: st, indent: indent,
		decoded: true, decodedAt: v, edited: true,
	}
	return c
}

// AsMapping returns a MappingWriter if the node is a Mapping.
func (c WriteCursor) AsMapping() (MappingWriter, bool) {
	n, ok := c.node()
	if !ok || n.kind != Mapping {
		return MappingWriter{}, false
	}
	return MappingWriter{doc: c.doc, id: c.id}, true
}

// AsSequence returns a SequenceWriter if the node is a Sequence.
func (c WriteCursor) AsSequence() (SequenceWriter, bool) {
	n, ok := c.node()
	if !ok || n.kind != Sequence {
		return SequenceWriter{}, false
	}
	return SequenceWriter{doc: c.doc, id: c.id}, true
}

// MappingWriter is a writable view over a Mapping node's entries.
type MappingWriter struct {
	doc *Document
	id  Id
}

// Read returns a read-only MappingCursor over the same node.
func (w MappingWriter) Read() MappingCursor { return MappingCursor{doc: w.doc, id: w.id} }

// Len returns the number of entries.
func (w MappingWriter) Len() int { return w.Read().Len() }

// GetMut returns a WriteCursor over the value of an existing entry found
// by key, or ok=false if no entry has that key.
func (w MappingWriter) GetMut(key string) (WriteCursor, bool) {
	c, ok := w.Read().Get(key)
	if !ok {
		return WriteCursor{}, false
	}
	return WriteCursor{doc: w.doc, id: c.Id()}, true
}

// insertSpans inspects the mapping's existing entries to decide what a
// freshly inserted entry's leading/separator should look like: the
// separator mirrors the first existing entry's convention, and the
// leading newline is only synthesized when the previous entry's trailing
// bytes don't already end in one.
func (w MappingWriter) insertSpans(n *Node) (leading, separator, trailing Span) {
	sep := ": "
	if len(n.entries) > 0 {
		sep = string(w.doc.bytes(n.entries[0].separator))
	}
	lead := "\n" + indentSpaces(n.indent)
	if len(n.entries) > 0 {
		prev := n.entries[len(n.entries)-1]
		prevBytes := w.doc.bytes(prev.trailing)
		if len(prevBytes) > 0 && prevBytes[len(prevBytes)-1] == '\n' {
			lead = indentSpaces(n.indent)
		}
	}
	return w.doc.pool.Insert(lead), w.doc.pool.Insert(sep), w.doc.pool.Insert("\n")
}

// insertValue appends a fresh entry with the given key and a freshly
// inserted scalar node built by makeValue, returning a cursor to the new
// value.
func (w MappingWriter) insertValue(key string, makeValue func() Node) WriteCursor {
	keyID := w.doc.arena.Insert(Node{
		kind: String, strStyle: PlainStyle, decoded: true, decodedAt: key,
		edited: true, span: w.doc.pool.Insert(key),
	})
	valueID := w.doc.arena.Insert(makeValue())

	n, err := w.doc.node(w.id)
	if err != nil || n.kind != Mapping {
		return WriteCursor{doc: w.doc, id: valueID}
	}
	leading, separator, trailing := w.insertSpans(n)
	n.entries = append(n.entries, mapEntry{
		key: keyID, value: valueID,
		leading: leading, separator: separator, trailing: trailing,
	})
	return WriteCursor{doc: w.doc, id: valueID}
}

// InsertString appends a new string entry.
func (w MappingWriter) InsertString(key, value string) WriteCursor {
	return w.insertValue(key, func() Node {
		return Node{kind: String, strStyle: PlainStyle, decoded: true, decodedAt: value, edited: true, span: w.doc.pool.Insert(value)}
	})
}

// InsertBool appends a new bool entry.
func (w MappingWriter) InsertBool(key string, value bool) WriteCursor {
	return w.insertValue(key, func() Node { return Node{kind: Bool, boolVal: value, edited: true} })
}

// InsertI64 appends a new integer entry.
func (w MappingWriter) InsertI64(key string, value int64) WriteCursor {
	return w.insertValue(key, func() Node { return Node{kind: Integer, intVal: value, edited: true} })
}

// InsertF64 appends a new float entry.
func (w MappingWriter) InsertF64(key string, value float64) WriteCursor {
	return w.insertValue(key, func() Node { return Node{kind: Float, floatVal: value, edited: true} })
}

// Remove drops the entry with the given key, along with the bytes between
// the previous entry's end and this entry's end, so the remaining
// document re-joins cleanly. It reports whether an entry was found.
func (w MappingWriter) Remove(key string) bool {
	n, err := w.doc.node(w.id)
	if err != nil || n.kind != Mapping {
		return false
	}
	idx := -1
	for i, e := range n.entries {
		if s, ok := w.doc.Value(e.key).AsStr(); ok && s == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	removed := n.entries[idx]
	n.entries = append(n.entries[:idx], n.entries[idx+1:]...)
	if idx == 0 && len(n.entries) > 0 {
		n.entries[0].leading = removed.leading
	}
	_ = w.doc.arena.Remove(removed.key)
	_ = w.doc.arena.Remove(removed.value)
	return true
}

// SequenceWriter is a writable view over a Sequence node's elements.
type SequenceWriter struct {
	doc *Document
	id  Id
}

// Read returns a read-only SequenceCursor over the same node.
func (w SequenceWriter) Read() SequenceCursor { return SequenceCursor{doc: w.doc, id: w.id} }

// Len returns the number of elements.
func (w SequenceWriter) Len() int { return w.Read().Len() }

// GetMut returns a WriteCursor over the element at index.
func (w SequenceWriter) GetMut(index int) (WriteCursor, bool) {
	c, ok := w.Read().Get(index)
	if !ok {
		return WriteCursor{}, false
	}
	return WriteCursor{doc: w.doc, id: c.Id()}, true
}

func (w SequenceWriter) pushSpans(n *Node) (leading, marker, trailing Span) {
	mk := "- "
	if len(n.items) > 0 {
		mk = string(w.doc.bytes(n.items[0].marker))
	}
	lead := "\n" + indentSpaces(n.indent)
	if len(n.items) > 0 {
		prev := n.items[len(n.items)-1]
		prevBytes := w.doc.bytes(prev.trailing)
		if len(prevBytes) > 0 && prevBytes[len(prevBytes)-1] == '\n' {
			lead = indentSpaces(n.indent)
		}
	}
	return w.doc.pool.Insert(lead), w.doc.pool.Insert(mk), w.doc.pool.Insert("\n")
}

func (w SequenceWriter) pushValue(makeValue func() Node) WriteCursor {
	valueID := w.doc.arena.Insert(makeValue())
	n, err := w.doc.node(w.id)
	if err != nil || n.kind != Sequence {
		return WriteCursor{doc: w.doc, id: valueID}
	}
	leading, marker, trailing := w.pushSpans(n)
	n.items = append(n.items, seqEntry{
		value: valueID, leading: leading, marker: marker, trailing: trailing,
	})
	return WriteCursor{doc: w.doc, id: valueID}
}

// PushString appends a new string element.
func (w SequenceWriter) PushString(value string) WriteCursor {
	return w.pushValue(func() Node {
		return Node{kind: String, strStyle: PlainStyle, decoded: true, decodedAt: value, edited: true, span: w.doc.pool.Insert(value)}
	})
}

// PushBool appends a new bool element.
func (w SequenceWriter) PushBool(value bool) WriteCursor {
	return w.pushValue(func() Node { return Node{kind: Bool, boolVal: value, edited: true} })
}

// PushI64 appends a new integer element.
func (w SequenceWriter) PushI64(value int64) WriteCursor {
	return w.pushValue(func() Node { return Node{kind: Integer, intVal: value, edited: true} })
}

// PushF64 appends a new float element.
func (w SequenceWriter) PushF64(value float64) WriteCursor {
	return w.pushValue(func() Node { return Node{kind: Float, floatVal: value, edited: true} })
}

// Remove drops the element at index, along with the bytes between the
// previous element's end and this one's end, so the document re-joins
// cleanly.
func (w SequenceWriter) Remove(index int) bool {
	n, err := w.doc.node(w.id)
	if err != nil || n.kind != Sequence {
		return false
	}
	if index < 0 || index >= len(n.items) {
		return false
	}
	removed := n.items[index]
	n.items = append(n.items[:index], n.items[index+1:]...)
	if index == 0 && len(n.items) > 0 {
		n.items[0].leading = removed.leading
	}
	_ = w.doc.arena.Remove(removed.value)
	return true
}
