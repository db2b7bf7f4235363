package core

// eventBuffer bounds each client's outbound queue. A client that falls
// this far behind starts losing events instead of stalling everyone else.
const eventBuffer = 16

// Client is a connected chat participant as seen by the session. The
// Events channel is the client's exclusively-owned send handle; the
// transport drains it and writes each event to the wire. Nick is mutated
// only by the session while holding its lock.
type Client struct {
	ID     string
	Nick   string
	Events chan *Event
}

func newClient(id string) *Client {
	return &Client{
		ID:     id,
		Nick:   id,
		Events: make(chan *Event, eventBuffer),
	}
}
