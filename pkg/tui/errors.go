package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoRecords is returned when an action needs a record to pick from.
	ErrNoRecords = errors.New("tui: no records to pick from")
)
