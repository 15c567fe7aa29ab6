package models

import "errors"

// Error taxonomy shared by the fetch, evaluate and persist steps
var (
	// ErrNetwork means the remote lookup could not be reached
	ErrNetwork = errors.New("network error")
	// ErrParse means a remote response or the history file was malformed
	ErrParse = errors.New("parse error")
	// ErrLookupExhausted means backward probing ran out of attempts before finding a drawn round
	ErrLookupExhausted = errors.New("lookup exhausted")
	// ErrUpdateFailed wraps any failure of a fetch, evaluate, append, persist sequence
	ErrUpdateFailed = errors.New("update failed")
)

// ErrRoundNotDrawn means the lookup flagged a specifically requested round as nonexistent
var ErrRoundNotDrawn = errors.New("round not drawn")
