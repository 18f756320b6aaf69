// Command ndyaml-fmt is a thin CLI over the ndyaml cursor API: it reads a
// YAML file, applies zero or more top-level "--set key=value" scalar
// edits, and writes the result back out. It exists to exercise the public
// API end to end, not to grow into a general-purpose YAML tool, so it
// deliberately supports only top-level string edits — anything richer
// belongs behind the library API, not this CLI.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/willabides/ndyaml"
)

type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ",") }

func (s *setFlags) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "ndyaml-fmt:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("ndyaml-fmt", flag.ContinueOnError)
	var sets setFlags
	fs.Var(&sets, "set", "key=value scalar edit on the top-level mapping; may be repeated")
	out := fs.String("o", "", "output path (default: overwrite the input file)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: ndyaml-fmt [--set key=value ...] [-o path] FILE")
	}
	path := fs.Arg(0)

	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := ndyaml.From(src)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	root, ok := doc.RootMut().AsMapping()
	if !ok {
		return fmt.Errorf("%s: root is not a mapping", path)
	}
	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("--set %q: expected key=value", kv)
		}
		if cur, ok := root.GetMut(key); ok {
			cur.SetString(value)
		} else {
			root.InsertString(key, value)
		}
	}

	dest := path
	if *out != "" {
		dest = *out
	}
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()
	return doc.WriteTo(f)
}
