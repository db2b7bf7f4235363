package core

import "errors"

// ErrClosed is returned by Connect once Shutdown has released the
// session.
var ErrClosed = errors.New("chat session closed")

func errorEvent(text string) *Event {
	return &Event{Kind: EventError, Text: text}
}
