package ndyaml

import (
	"fmt"

	"github.com/willabides/ndyaml/internal/arena"
	"github.com/willabides/ndyaml/internal/rawh"
)

// ParseError is returned by From when the input cannot be parsed. It is
// fatal: no Document is constructed. Unlike LookupError it always carries
// a byte position, mirroring the upstream scanner's practice of tagging
// every scanner/parser error with an offset before it ever reaches a
// caller.
type ParseError struct {
	Kind rawh.ErrorKind
	Pos  rawh.Position
	// Problem is a one-line, human-readable description of what went
	// wrong at Pos; Kind alone is enough for programmatic matching.
	Problem string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("yaml: %s at %s: %s", e.Kind, e.Pos, e.Problem)
}

// LookupErrorKind enumerates the operational (non-fatal) failure modes
// an Id-based lookup can hit.
type LookupErrorKind int

const (
	_ LookupErrorKind = iota
	StaleId
	RemovedId
	WrongType
)

func (k LookupErrorKind) String() string {
	switch k {
	case StaleId:
		return "stale id"
	case RemovedId:
		return "removed id"
	case WrongType:
		return "wrong type"
	default:
		return "unknown lookup error"
	}
}

// LookupError reports Id misuse: looking up an Id that has been removed,
// or one that never belonged to this Document's current generation. Type
// mismatches at read time are not reported through LookupError — the
// cursor API prefers returning absence (see ReadCursor.As*) — LookupError
// exists only for the operational case of Id misuse across mutations.
type LookupError struct {
	Kind LookupErrorKind
	Id   Id
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("yaml: %s: %s", e.Kind, e.Id)
}

func lookupErrFromArena(id Id, err error) error {
	switch err {
	case arena.ErrRemoved:
		return &LookupError{Kind: RemovedId, Id: id}
	case arena.ErrStale:
		return &LookupError{Kind: StaleId, Id: id}
	default:
		return err
	}
}
