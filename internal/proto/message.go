package proto

// Outbound type discriminators.
const (
	TypeUserConnected    = "user-connected"
	TypeUserDisconnected = "user-disconnected"
	TypeUserSays         = "user-says"
	TypeNickChange       = "nick-change"
	TypeNickList         = "nick-list"
	TypeError            = "error"
	TypeNotice           = "notice"
)

// Outbound is the wire form of every server-to-client message: a tagged
// record whose populated fields depend on Type.
type Outbound struct {
	Type    string   `json:"type"`
	Nick    string   `json:"nick,omitempty"`
	OldNick string   `json:"oldNick,omitempty"`
	NewNick string   `json:"newNick,omitempty"`
	Text    string   `json:"text,omitempty"`
	List    []string `json:"list,omitempty"`
}

// Inbound is the structured command form for non-text clients. Plain
// text frames, optionally prefixed "/command value", are the usual way
// in; this envelope skips the text parsing.
type Inbound struct {
	Command string `json:"command"`
	Value   string `json:"value,omitempty"`
}
