package ndyaml

// Visitor is optional, opt-in sugar: a generic reader over a cursor's
// variant so an external serialization framework (encoding/json-style
// Marshaler, a config loader, ...) can walk a Document without depending
// on the cursor API's shape directly. It is strictly a reader built on
// top of ReadCursor; it is never imported by anything in the core
// (parser, arena, cursors, serializer) — the bridge is not part of the
// core.
type Visitor interface {
	VisitNull()
	VisitBool(v bool)
	VisitInt(v int64)
	VisitFloat(v float64)
	VisitString(v string)
	VisitSequence(items []ReadCursor)
	VisitMapping(entries []MapEntry)
}

// Accept dispatches c's current value to exactly one Visitor method.
// Removed/stale Ids are treated as Null, the same absence-over-error
// preference ReadCursor's As* methods use.
func Accept(c ReadCursor, v Visitor) {
	kind, ok := c.Kind()
	if !ok {
		v.VisitNull()
		return
	}
	switch kind {
	case Null:
		v.VisitNull()
	case Bool:
		b, _ := c.AsBool()
		v.VisitBool(b)
	case Integer:
		i, _ := c.AsI64()
		v.VisitInt(i)
	case Float:
		f, _ := c.AsF64()
		v.VisitFloat(f)
	case String:
		s, _ := c.AsStr()
		v.VisitString(s)
	case Sequence:
		seq, _ := c.AsSequence()
		v.VisitSequence(seq.Items())
	case Mapping:
		m, _ := c.AsMapping()
		v.VisitMapping(m.Entries())
	}
}

// ToAny recursively converts c into plain Go values (nil, bool, int64,
// float64, string, []any, map[string]any) using Accept, for callers that
// want a one-shot structured snapshot rather than a custom Visitor. Keys
// that don't decode as strings fall back to their empty-string form,
// matching MappingCursor.Keys.
func ToAny(c ReadCursor) any {
	cv := &collectVisitor{}
	Accept(c, cv)
	return cv.result
}

type collectVisitor struct {
	result any
}

func (c *collectVisitor) VisitNull()           { c.result = nil }
func (c *collectVisitor) VisitBool(v bool)     { c.result = v }
func (c *collectVisitor) VisitInt(v int64)     { c.result = v }
func (c *collectVisitor) VisitFloat(v float64) { c.result = v }
func (c *collectVisitor) VisitString(v string) { c.result = v }

func (c *collectVisitor) VisitSequence(items []ReadCursor) {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = ToAny(it)
	}
	c.result = out
}

func (c *collectVisitor) VisitMapping(entries []MapEntry) {
	out := make(map[string]any, len(entries))
	for _, e := range entries {
		key, _ := e.Key.AsStr()
		out[key] = ToAny(e.Value)
	}
	c.result = out
}
