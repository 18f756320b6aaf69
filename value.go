package ndyaml

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/willabides/ndyaml/internal/rawh"
	"github.com/willabides/ndyaml/internal/resolve"
)

// emptySpan is a zero-length span; reading it always yields no bytes
// regardless of which buffer it nominally points at.
var emptySpan = Span{}

// stringValue returns the decoded semantic value of a String node,
// computing it lazily from the raw span the first time it's asked for and
// caching the result on the node. Edited nodes already carry their decoded
// value in decodedAt, set by the mutator that wrote them.
func (d *Document) stringValue(n *Node) string {
	if n.decoded {
		return n.decodedAt
	}
	raw := d.bytes(n.span)
	var val string
	switch n.strStyle {
	case SingleQuotedStyle:
		val = decodeSingleQuoted(raw)
	case DoubleQuotedStyle:
		val = decodeDoubleQuoted(raw)
	case LiteralStyle, FoldedStyle:
		val = decodeBlockScalar(d.bytes(n.block.body), n.strStyle, n.block)
	default:
		val = string(raw)
	}
	n.decodedAt = val
	n.decoded = true
	return val
}

func decodeSingleQuoted(raw []byte) string {
	if len(raw) < 2 {
		return ""
	}
	s := string(raw[1 : len(raw)-1])
	return strings.ReplaceAll(s, "''", "'")
}

func decodeDoubleQuoted(raw []byte) string {
	if len(raw) < 2 {
		return ""
	}
	s := raw[1 : len(raw)-1]
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			break
		}
		e := s[i]
		switch e {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		case 'a':
			b.WriteByte(7)
		case 'b':
			b.WriteByte(8)
		case 'v':
			b.WriteByte(11)
		case 'f':
			b.WriteByte(12)
		case 'e':
			b.WriteByte(27)
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case ' ':
			b.WriteByte(' ')
		case '_':
			b.WriteRune(' ')
		case 'N':
			b.WriteRune('')
		case 'L':
			b.WriteRune(' ')
		case 'P':
			b.WriteRune(' ')
		case 'x':
			if i+2 < len(s) {
				v, err := strconv.ParseUint(string(s[i+1:i+3]), 16, 32)
				if err == nil {
					b.WriteRune(rune(v))
				}
				i += 2
			}
		case 'u':
			if i+4 < len(s) {
				v, err := strconv.ParseUint(string(s[i+1:i+5]), 16, 32)
				if err == nil {
					b.WriteRune(rune(v))
				}
				i += 4
			}
		case 'U':
			if i+8 < len(s) {
				v, err := strconv.ParseUint(string(s[i+1:i+9]), 16, 32)
				if err == nil {
					b.WriteRune(rune(v))
				}
				i += 8
			}
		case '\n', '\r':
			// Line-continuation: the escaped break contributes nothing to
			// the value, and neither does the next line's indentation.
			if e == '\r' && i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			for i+1 < len(s) && (s[i+1] == ' ' || s[i+1] == '\t') {
				i++
			}
		default:
			b.WriteByte(e)
		}
	}
	return b.String()
}

// decodeBlockScalar applies YAML's folding/chomping rules to a literal or
// folded scalar's raw body, producing its semantic value.
func decodeBlockScalar(body []byte, style StringStyle, block *blockScalar) string {
	text := string(body)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	rawLines := strings.Split(text, "\n")

	indent := block.indent
	lines := make([]string, len(rawLines))
	for i, l := range rawLines {
		n := 0
		for n < len(l) && n < indent && l[n] == ' ' {
			n++
		}
		lines[i] = l[n:]
	}

	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	trailingNewlines := len(lines) - end
	content := lines[:end]

	var core string
	if style == LiteralStyle {
		core = strings.Join(content, "\n")
	} else {
		core = foldLines(content)
	}

	switch block.chomping {
	case rawh.StripChomping:
		return core
	case rawh.KeepChomping:
		return core + strings.Repeat("\n", trailingNewlines)
	default: // ClipChomping
		if len(content) == 0 {
			return ""
		}
		return core + "\n"
	}
}

// foldLines applies folded-scalar ('>') line folding: runs of plain lines
// join with a single space; blank lines and more-indented ("literal")
// lines force a real newline instead, per the standard >-scalar rules.
func foldLines(lines []string) string {
	var b strings.Builder
	for i, ln := range lines {
		if i == 0 {
			b.WriteString(ln)
			continue
		}
		prev := lines[i-1]
		more := len(ln) > 0 && (ln[0] == ' ' || ln[0] == '\t')
		prevMore := len(prev) > 0 && (prev[0] == ' ' || prev[0] == '\t')
		if prev == "" || ln == "" || more || prevMore {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(ln)
	}
	return b.String()
}

func escapeSingleQuoted(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func escapeDoubleQuoted(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, "\\x%02x", r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// renderInt formats v in the radix named by style, matching the prefix
// convention the parser recognized it from so a rewritten integer keeps
// its original base.
func renderInt(v int64, style IntStyle) string {
	neg := v < 0
	mag := v
	if neg {
		mag = -v
	}
	var body string
	switch style {
	case resolve.Hex:
		body = "0x" + strconv.FormatInt(mag, 16)
	case resolve.Octal:
		body = "0o" + strconv.FormatInt(mag, 8)
	case resolve.Binary:
		body = "0b" + strconv.FormatInt(mag, 2)
	default:
		body = strconv.FormatInt(mag, 10)
	}
	if neg {
		return "-" + body
	}
	return body
}

func renderFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func indentSpaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
