package core

// EventKind is a notification the session emits to clients.
type EventKind int

const (
	// EventUserConnected notifies clients that a participant joined.
	EventUserConnected EventKind = iota
	// EventUserDisconnected notifies clients that a participant left.
	EventUserDisconnected
	// EventUserSays carries a chat line from one participant to everyone.
	EventUserSays
	// EventNickChange notifies clients about a renamed participant.
	EventNickChange
	// EventNickList delivers the current roster to the requesting client.
	EventNickList
	// EventError reports a rejected command to the offending client.
	EventError
	// EventNotice carries server lifecycle text, e.g. shutdown.
	EventNotice
)

// Event is sent to clients to describe what happened in the session.
// Which fields are populated depends on Kind; the wire mapping switches
// exhaustively over all kinds.
type Event struct {
	Kind    EventKind
	Nick    string
	OldNick string
	NewNick string
	Text    string
	Nicks   []string
}
