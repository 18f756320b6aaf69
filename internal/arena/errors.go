package arena

import "errors"

// ErrStale is returned when an Id's generation doesn't match its slot's
// current generation and the slot was never tombstoned under that
// generation — i.e. the Id was never valid for the Arena's current state
// (zero Id, out-of-range index, or a generation from the future).
var ErrStale = errors.New("arena: stale id")

// ErrRemoved is returned when an Id named a live node that has since been
// explicitly removed.
var ErrRemoved = errors.New("arena: removed id")
