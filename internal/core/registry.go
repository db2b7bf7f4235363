package core

// registry maps client ids to clients. It is owned by the Session and
// must only be touched while holding the session lock, so membership
// changes stay atomic with respect to broadcast.
type registry struct {
	clients map[string]*Client
}

func newRegistry() *registry {
	return &registry{clients: make(map[string]*Client)}
}

func (r *registry) add(c *Client) {
	r.clients[c.ID] = c
}

// remove deletes the client and reports whether it was present, so a
// duplicate disconnect stays a no-op.
func (r *registry) remove(id string) (*Client, bool) {
	c, ok := r.clients[id]
	if !ok {
		return nil, false
	}
	delete(r.clients, id)
	return c, true
}

func (r *registry) get(id string) (*Client, bool) {
	c, ok := r.clients[id]
	return c, ok
}

func (r *registry) nickTaken(nick string) bool {
	for _, c := range r.clients {
		if c.Nick == nick {
			return true
		}
	}
	return false
}

func (r *registry) nicks() []string {
	list := make([]string, 0, len(r.clients))
	for _, c := range r.clients {
		list = append(list, c.Nick)
	}
	return list
}

func (r *registry) all() []*Client {
	list := make([]*Client, 0, len(r.clients))
	for _, c := range r.clients {
		list = append(list, c)
	}
	return list
}

func (r *registry) len() int {
	return len(r.clients)
}

// clear empties the registry and returns the clients it held.
func (r *registry) clear() []*Client {
	list := r.all()
	r.clients = make(map[string]*Client)
	return list
}
