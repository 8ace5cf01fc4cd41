package channelmgr

// Result is the small result enum returned by the public API (spec.md §6.1).
// It is intentionally not a generic `error`: callers match on the kind, the
// same way the teacher keeps sentinel device states (wifi.DevOK,
// wifi.DevBadChan) distinct from wrapped plumbing errors.
type Result int

// Result values.
const (
	Ok Result = iota
	InvalidArgs
	InvalidState
	NotFound
)

func (r Result) String() string {
	switch r {
	case Ok:
		return "ok"
	case InvalidArgs:
		return "invalid-args"
	case InvalidState:
		return "invalid-state"
	case NotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// Error adapts a Result to the error interface so it can be returned from
// functions that also fail for ordinary Go reasons (e.g. a malformed
// defaults file), without forcing every caller of the core API to unwrap an
// error to get at the Result.
type Error struct {
	Result Result
}

func (e *Error) Error() string {
	return "channelmgr: " + e.Result.String()
}

// resultError wraps r as an error, or returns nil for Ok.
func resultError(r Result) error {
	if r == Ok {
		return nil
	}
	return &Error{Result: r}
}
