// Package ndyaml parses YAML documents into a nondestructive, in-memory
// model and serializes them back out byte-for-byte when unedited — and,
// after edits, byte-for-byte everywhere outside the bytes the edit
// logically touched.
package ndyaml

import (
	"bytes"
	"io"

	"github.com/willabides/ndyaml/internal/arena"
)

// Document owns the original source bytes, the arena of parsed/edited
// nodes, and the bytes that render before/after the root node (blank
// lines, leading comments, a trailing newline) but are not attributed to
// any node.
type Document struct {
	source []byte
	pool   pool
	arena  *arena.Arena[Node]
	rootID Id

	prefix Span
	suffix Span
}

// From parses bytes, which the Document borrows: callers must not mutate
// the slice afterward. Use FromString (or From with a copy) when that
// borrow is inconvenient.
func From(bytes []byte) (*Document, error) {
	return parse(bytes)
}

// FromString parses text, copying it so the Document owns its storage.
func FromString(text string) (*Document, error) {
	return parse([]byte(text))
}

// Root returns a read-only cursor over the document's root node.
func (d *Document) Root() ReadCursor {
	return ReadCursor{doc: d, id: d.rootID}
}

// RootMut returns a writable cursor over the document's root node. While
// the returned cursor (or any cursor derived from it) is in use, no other
// cursor into this Document should be used.
func (d *Document) RootMut() WriteCursor {
	return WriteCursor{doc: d, id: d.rootID}
}

// Value returns a read-only cursor over an arbitrary Id, e.g. one
// collected into a side table during an earlier pass.
func (d *Document) Value(id Id) ReadCursor {
	return ReadCursor{doc: d, id: id}
}

// ValueMut returns a writable cursor over an arbitrary Id.
func (d *Document) ValueMut(id Id) WriteCursor {
	return WriteCursor{doc: d, id: id}
}

// node resolves id against the arena, translating arena errors into the
// Document's LookupError vocabulary.
func (d *Document) node(id Id) (*Node, error) {
	n, err := d.arena.Get(id)
	if err != nil {
		return nil, lookupErrFromArena(id, err)
	}
	return n, nil
}

// ToBytes serializes the document to a freshly allocated byte slice.
func (d *Document) ToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String serializes the document, panicking only if an Id invariant has
// been violated (e.g. a node removed out from under a live container
// entry) — a Document produced by From/FromString and only ever mutated
// through the cursor API cannot hit that.
func (d *Document) String() string {
	b, err := d.ToBytes()
	if err != nil {
		panic(err)
	}
	return string(b)
}

// WriteTo streams the serialized document to w, emitting prefix, the root
// node's bytes, and suffix in order.
func (d *Document) WriteTo(w io.Writer) error {
	return serialize(d, w)
}
