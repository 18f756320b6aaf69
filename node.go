package ndyaml

import (
	"github.com/willabides/ndyaml/internal/arena"
	"github.com/willabides/ndyaml/internal/rawh"
	"github.com/willabides/ndyaml/internal/resolve"
)

// Id is the opaque, copyable handle a caller uses to address a node. It is
// bound to the Document that issued it; passing one Document's Id to
// another Document is a caller bug the way using a foreign pointer would
// be in a language with pointers.
type Id = arena.Id

// Kind tags which variant a Node currently holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Integer
	Float
	String
	Mapping
	Sequence
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// StringStyle is the quoting/block form a string scalar renders with.
type StringStyle = rawh.ScalarStyle

const (
	PlainStyle        = rawh.PlainScalar
	SingleQuotedStyle = rawh.SingleQuotedScalar
	DoubleQuotedStyle = rawh.DoubleQuotedScalar
	LiteralStyle      = rawh.LiteralScalar
	FoldedStyle       = rawh.FoldedScalar
)

// IntStyle is the radix an integer scalar renders in.
type IntStyle = resolve.IntStyle

const (
	DecimalStyle = resolve.Decimal
	BinaryStyle  = resolve.Binary
	OctalStyle   = resolve.Octal
	HexStyle     = resolve.Hex
)

// blockScalar carries the extra raw bookkeeping a literal/folded scalar
// needs on top of a plain Span: the chomping indicator and explicit
// indent digit from its header, and the span of its raw (un-folded) body
// so the semantic value can be computed lazily.
type blockScalar struct {
	body     Span
	chomping rawh.Chomping
	indent   int // column of the body's content: entry indent plus the header's indentation indicator, else detected from the first content line; decoding strips up to this many leading spaces
}

// Node is a tagged variant of the node kinds a YAML document can contain.
// Exactly one of the payload groups below is meaningful, selected by
// Kind. Nodes are never referenced by pointer outside the arena that
// owns them — callers hold an Id and go through the Document.
type Node struct {
	kind Kind

	// Raw is populated for every node: the byte span that renders this
	// node's value (unused/zero-length for Mapping and Sequence, whose
	// rendering comes entirely from their children) and the column the
	// node starts at.
	span   Span
	indent int

	// scalar payload
	boolVal   bool
	intVal    int64
	intStyle  IntStyle
	floatVal  float64
	strStyle  StringStyle
	block     *blockScalar // non-nil only for LiteralStyle/FoldedStyle strings
	decodedAt string       // cache populated once a quoted/block/edited value has been decoded
	decoded   bool

	// edited reports whether a mutator (rather than the parser) produced
	// this node's current payload. The serializer uses it to decide
	// whether to emit raw source bytes or a freshly rendered value.
	edited bool

	// container payload
	style   rawh.ContainerStyle
	entries []mapEntry // Kind == Mapping
	items   []seqEntry // Kind == Sequence
}

// mapEntry is the addressable unit of a block mapping: a key/value pair
// plus the raw bytes attributed to the entry as a whole (the
// blank-line-and-indent before the key, the ':'-and-padding between key
// and value, and any trailing same-line comment).
type mapEntry struct {
	key       Id
	value     Id
	leading   Span
	separator Span
	trailing  Span
}

// seqEntry is the addressable unit of a block sequence: one element plus
// the '-'-and-padding marker that precedes it and the bytes around it.
type seqEntry struct {
	value    Id
	leading  Span
	marker   Span
	trailing Span
}

func (n *Node) Kind() Kind { return n.kind }
