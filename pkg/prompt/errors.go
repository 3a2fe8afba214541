package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrInputClosed is returned when the input stream ends before a prompt
	// could be answered.
	ErrInputClosed = errors.New("prompt: input closed")
)
