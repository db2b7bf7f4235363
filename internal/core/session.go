package core

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultNickPattern is the allowed nick character set. The extended
// letters come from the locale the service was first deployed in;
// override the policy with WithNickPattern.
const DefaultNickPattern = `(?i)^[\w\-æøå]+$`

// Session owns the client registry and mediates every state transition:
// connects, disconnects, command dispatch and broadcast fan-out all run
// under one lock. That makes check-then-act sequences such as the nick
// uniqueness test atomic, and serializes broadcasts so every connected
// client observes them in the same relative order.
type Session struct {
	mu       sync.Mutex
	clients  *registry
	handlers map[string]handlerFunc
	nickRe   *regexp.Regexp
	log      *zerolog.Logger
	closed   bool
}

// handlerFunc executes a named command on behalf of a connected client.
// Handlers run with the session lock held and reach shared state only
// through the session.
type handlerFunc func(s *Session, c *Client, value string)

// Option customizes a Session.
type Option func(*Session)

// WithNickPattern replaces the nick validation policy.
func WithNickPattern(re *regexp.Regexp) Option {
	return func(s *Session) {
		s.nickRe = re
	}
}

// NewSession constructs a session with the closed set of built-in
// commands registered.
func NewSession(logger *zerolog.Logger, opts ...Option) *Session {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	s := &Session{
		clients: newRegistry(),
		nickRe:  regexp.MustCompile(DefaultNickPattern),
		log:     logger,
	}
	s.handlers = map[string]handlerFunc{
		"nick": (*Session).cmdNick,
		"say":  (*Session).cmdSay,
		"who":  (*Session).cmdWho,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect registers a new client whose nick defaults to its id, and
// broadcasts the join to everyone, the new client included.
func (s *Session) Connect() (*Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}

	c := newClient(uuid.NewString())
	s.clients.add(c)
	s.log.Info().Str("client_id", c.ID).Int("clients", s.clients.len()).Msg("client connected")

	s.broadcastLocked(&Event{Kind: EventUserConnected, Nick: c.Nick})
	return c, nil
}

// Disconnect removes the client and tells the remaining clients, using
// the nick captured before removal. Disconnecting an unknown or already
// removed id is a no-op.
func (s *Session) Disconnect(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients.remove(id)
	if !ok {
		s.log.Debug().Str("client_id", id).Msg("disconnect for unknown client")
		return
	}
	s.log.Info().Str("client_id", id).Str("nick", c.Nick).Int("clients", s.clients.len()).Msg("client disconnected")

	s.broadcastLocked(&Event{Kind: EventUserDisconnected, Nick: c.Nick})
}

// HandleMessage parses a raw inbound payload and dispatches the
// resulting command. Messages from ids no longer in the registry are a
// benign race with disconnect and are only logged.
func (s *Session) HandleMessage(id string, payload []byte, binary bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients.get(id)
	if !ok {
		s.log.Warn().Str("client_id", id).Msg("message from unknown client")
		return
	}

	cmd, ok := parsePayload(payload, binary)
	if !ok {
		s.sendLocked(c, errorEvent(fmt.Sprintf("Malformed message: '%s'", payload)))
		return
	}

	handler, ok := s.handlers[cmd.Name]
	if !ok {
		s.sendLocked(c, errorEvent(fmt.Sprintf("Unknown command '%s'", cmd.Name)))
		return
	}
	handler(s, c, cmd.Value)
}

// Broadcast sends an event to every currently connected client.
func (s *Session) Broadcast(ev *Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcastLocked(ev)
}

// Nicks returns the display names of all currently connected clients.
func (s *Session) Nicks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clients.nicks()
}

// Shutdown announces the shutdown to all clients, then closes their
// event channels and empties the registry. Safe to call more than once.
func (s *Session) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	s.broadcastLocked(&Event{Kind: EventNotice, Text: "Shutting down server"})
	for _, c := range s.clients.clear() {
		close(c.Events)
	}
	s.log.Info().Msg("session shut down")
}

func (s *Session) broadcastLocked(ev *Event) {
	for _, c := range s.clients.all() {
		s.sendLocked(c, ev)
	}
}

// sendLocked delivers an event to one client without blocking the
// session; a full queue means the recipient loses this event, never
// that other recipients wait.
func (s *Session) sendLocked(c *Client, ev *Event) {
	select {
	case c.Events <- ev:
	default:
		s.log.Warn().Str("client_id", c.ID).Msg("dropping event for slow client")
	}
}
