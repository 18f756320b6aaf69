package ndyaml

// ReadCursor is a copyable, read-only view over one node of a Document.
// Navigation methods return absence (ok=false) rather than an error on a
// type mismatch: reads prefer returning absence over raising.
type ReadCursor struct {
	doc *Document
	id  Id
}

// Id returns the Id this cursor currently addresses.
func (c ReadCursor) Id() Id { return c.id }

func (c ReadCursor) node() (*Node, bool) {
	n, err := c.doc.node(c.id)
	if err != nil {
		return nil, false
	}
	return n, true
}

// Kind reports the node's current Kind, or ok=false if the Id no longer
// resolves (removed or stale).
func (c ReadCursor) Kind() (kind Kind, ok bool) {
	n, ok := c.node()
	if !ok {
		return 0, false
	}
	return n.kind, true
}

// IsNull reports whether the node is Null. A removed/stale Id is not null.
func (c ReadCursor) IsNull() bool {
	n, ok := c.node()
	return ok && n.kind == Null
}

// AsBool returns the node's boolean value, or ok=false if it isn't a Bool.
func (c ReadCursor) AsBool() (v bool, ok bool) {
	n, ok := c.node()
	if !ok || n.kind != Bool {
		return false, false
	}
	return n.boolVal, true
}

// AsI64 returns the node's integer value, or ok=false if it isn't an
// Integer.
func (c ReadCursor) AsI64() (v int64, ok bool) {
	n, ok := c.node()
	if !ok || n.kind != Integer {
		return 0, false
	}
	return n.intVal, true
}

// AsU32 returns the node's integer value as a uint32, or ok=false if it
// isn't an Integer or doesn't fit.
func (c ReadCursor) AsU32() (v uint32, ok bool) {
	i, ok := c.AsI64()
	if !ok || i < 0 || i > int64(^uint32(0)) {
		return 0, false
	}
	return uint32(i), true
}

// AsF64 returns the node's value as a float64. Integers widen to float64;
// any other kind reports ok=false.
func (c ReadCursor) AsF64() (v float64, ok bool) {
	n, ok := c.node()
	if !ok {
		return 0, false
	}
	switch n.kind {
	case Float:
		return n.floatVal, true
	case Integer:
		return float64(n.intVal), true
	default:
		return 0, false
	}
}

// AsStr returns the node's decoded string value, or ok=false if it isn't a
// String.
func (c ReadCursor) AsStr() (v string, ok bool) {
	n, ok := c.node()
	if !ok || n.kind != String {
		return "", false
	}
	return c.doc.stringValue(n), true
}

// StringStyle reports the quoting/block form of a String node.
func (c ReadCursor) StringStyle() (style StringStyle, ok bool) {
	n, ok := c.node()
	if !ok || n.kind != String {
		return 0, false
	}
	return n.strStyle, true
}

// AsMapping returns a MappingCursor if the node is a Mapping.
func (c ReadCursor) AsMapping() (MappingCursor, bool) {
	n, ok := c.node()
	if !ok || n.kind != Mapping {
		return MappingCursor{}, false
	}
	return MappingCursor{doc: c.doc, id: c.id}, true
}

// AsSequence returns a SequenceCursor if the node is a Sequence.
func (c ReadCursor) AsSequence() (SequenceCursor, bool) {
	n, ok := c.node()
	if !ok || n.kind != Sequence {
		return SequenceCursor{}, false
	}
	return SequenceCursor{doc: c.doc, id: c.id}, true
}

// MappingCursor is a read-only view over a Mapping node's entries.
type MappingCursor struct {
	doc *Document
	id  Id
}

func (c MappingCursor) entries() []mapEntry {
	n, err := c.doc.node(c.id)
	if err != nil {
		return nil
	}
	return n.entries
}

// Len returns the number of entries.
func (c MappingCursor) Len() int { return len(c.entries()) }

// Get looks up an entry by its key's decoded string value, using raw
// string equality — typed keys are not numerically normalized.
func (c MappingCursor) Get(key string) (ReadCursor, bool) {
	for _, e := range c.entries() {
		if s, ok := c.doc.Value(e.key).AsStr(); ok && s == key {
			return c.doc.Value(e.value), true
		}
	}
	return ReadCursor{}, false
}

// Keys returns the decoded string value of every key, in insertion order.
// A non-string key (the model permits them) contributes "".
func (c MappingCursor) Keys() []string {
	entries := c.entries()
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i], _ = c.doc.Value(e.key).AsStr()
	}
	return keys
}

// MapEntry is one key/value pair of a Mapping, as returned by Entries.
type MapEntry struct {
	Key   ReadCursor
	Value ReadCursor
}

// Entries returns every entry in insertion order.
func (c MappingCursor) Entries() []MapEntry {
	entries := c.entries()
	out := make([]MapEntry, len(entries))
	for i, e := range entries {
		out[i] = MapEntry{Key: c.doc.Value(e.key), Value: c.doc.Value(e.value)}
	}
	return out
}

// SequenceCursor is a read-only view over a Sequence node's elements.
type SequenceCursor struct {
	doc *Document
	id  Id
}

func (c SequenceCursor) items() []seqEntry {
	n, err := c.doc.node(c.id)
	if err != nil {
		return nil
	}
	return n.items
}

// Len returns the number of elements.
func (c SequenceCursor) Len() int { return len(c.items()) }

// Get returns the element at index, or ok=false if out of range.
func (c SequenceCursor) Get(index int) (ReadCursor, bool) {
	items := c.items()
	if index < 0 || index >= len(items) {
		return ReadCursor{}, false
	}
	return c.doc.Value(items[index].value), true
}

// Items returns every element in order.
func (c SequenceCursor) Items() []ReadCursor {
	items := c.items()
	out := make([]ReadCursor, len(items))
	for i, it := range items {
		out[i] = c.doc.Value(it.value)
	}
	return out
}
