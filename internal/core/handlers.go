package core

import "fmt"

// cmdNick renames the calling client. The taken/valid checks and the
// assignment happen as one atomic unit under the session lock, so two
// concurrent claims on the same name cannot both succeed.
func (s *Session) cmdNick(c *Client, value string) {
	switch {
	case s.clients.nickTaken(value):
		s.sendLocked(c, errorEvent(fmt.Sprintf("The nick '%s' is already taken", value)))
	case !s.nickRe.MatchString(value):
		s.sendLocked(c, errorEvent(fmt.Sprintf("'%s' is not a valid nick", value)))
	default:
		oldNick := c.Nick
		c.Nick = value
		s.broadcastLocked(&Event{Kind: EventNickChange, OldNick: oldNick, NewNick: value})
	}
}

// cmdSay broadcasts the text verbatim under the sender's current nick.
// An empty line is rejected rather than broadcast as blank chatter.
func (s *Session) cmdSay(c *Client, value string) {
	if value == "" {
		s.sendLocked(c, errorEvent("Nothing to say"))
		return
	}
	s.broadcastLocked(&Event{Kind: EventUserSays, Nick: c.Nick, Text: value})
}

// cmdWho answers the caller, and only the caller, with the roster.
func (s *Session) cmdWho(c *Client, _ string) {
	s.sendLocked(c, &Event{Kind: EventNickList, Nicks: s.clients.nicks()})
}
