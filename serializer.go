package ndyaml

import (
	"io"
	"strings"
)

// serialize walks the arena in document order, writing prefix, the root
// node's rendering, and suffix to w.
func serialize(d *Document, w io.Writer) error {
	if err := writeSpan(w, d, d.prefix); err != nil {
		return err
	}
	if err := writeNode(w, d, d.rootID); err != nil {
		return err
	}
	return writeSpan(w, d, d.suffix)
}

func writeSpan(w io.Writer, d *Document, s Span) error {
	if s.Len() == 0 {
		return nil
	}
	_, err := w.Write(d.bytes(s))
	return err
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// writeNode emits one node's bytes: leading/separator/trailing context is
// the caller's (container's) job, since those belong to the container
// entry, not the node itself.
func writeNode(w io.Writer, d *Document, id Id) error {
	n, err := d.node(id)
	if err != nil {
		return err
	}
	switch n.kind {
	case Mapping:
		return writeMapping(w, d, n)
	case Sequence:
		return writeSequence(w, d, n)
	default:
		return writeScalar(w, d, n)
	}
}

func writeMapping(w io.Writer, d *Document, n *Node) error {
	for _, e := range n.entries {
		if err := writeSpan(w, d, e.leading); err != nil {
			return err
		}
		if err := writeNode(w, d, e.key); err != nil {
			return err
		}
		if err := writeSpan(w, d, e.separator); err != nil {
			return err
		}
		// A bare ':' separator (as in "key:\n") needs a space before an
		// edited value, or the entry would re-read as one plain scalar.
		if sep := d.bytes(e.separator); len(sep) > 0 && sep[len(sep)-1] == ':' {
			if v, err := d.node(e.value); err == nil && v.edited {
				if err := writeString(w, " "); err != nil {
					return err
				}
			}
		}
		if err := writeNode(w, d, e.value); err != nil {
			return err
		}
		if err := writeSpan(w, d, e.trailing); err != nil {
			return err
		}
	}
	return nil
}

func writeSequence(w io.Writer, d *Document, n *Node) error {
	for _, it := range n.items {
		if err := writeSpan(w, d, it.leading); err != nil {
			return err
		}
		if err := writeSpan(w, d, it.marker); err != nil {
			return err
		}
		if err := writeNode(w, d, it.value); err != nil {
			return err
		}
		if err := writeSpan(w, d, it.trailing); err != nil {
			return err
		}
	}
	return nil
}

func writeScalar(w io.Writer, d *Document, n *Node) error {
	if !n.edited {
		return writeSpan(w, d, n.span)
	}
	switch n.kind {
	case Null:
		return writeString(w, "null")
	case Bool:
		if n.boolVal {
			return writeString(w, "true")
		}
		return writeString(w, "false")
	case Integer:
		return writeString(w, renderInt(n.intVal, n.intStyle))
	case Float:
		return writeString(w, renderFloat(n.floatVal))
	case String:
		return writeEditedString(w, n)
	default:
		return nil
	}
}

func writeEditedString(w io.Writer, n *Node) error {
	s := n.decodedAt
	switch n.strStyle {
	case SingleQuotedStyle:
		return writeString(w, "'"+escapeSingleQuoted(s)+"'")
	case DoubleQuotedStyle:
		return writeString(w, `"`+escapeDoubleQuoted(s)+`"`)
	case LiteralStyle, FoldedStyle:
		return writeEditedBlockScalar(w, n)
	default:
		return writeString(w, s)
	}
}

// writeEditedBlockScalar renders a freshly-set literal/folded scalar: a
// header line plus the value re-indented under the node's own indent plus
// two (the conventional default body indent when no explicit indicator
// was requested). Edits into block-scalar style are the rare case; this
// does not attempt to preserve a previous block scalar's exact indent
// width across a SetString, only its own node.indent.
func writeEditedBlockScalar(w io.Writer, n *Node) error {
	header := "|"
	if n.strStyle == FoldedStyle {
		header = ">"
	}
	body := strings.TrimSuffix(n.decodedAt, "\n")
	indent := indentSpaces(n.indent + 2)
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return writeString(w, b.String())
}
