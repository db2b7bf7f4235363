package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/robinsk/prat/internal/config"
	"github.com/robinsk/prat/internal/core"
	"github.com/robinsk/prat/internal/proto"
)

func startTestServer(t *testing.T) (*httptest.Server, *core.Session) {
	t.Helper()

	session := core.NewSession(nil)
	t.Cleanup(session.Shutdown)

	logger := zerolog.Nop()
	server := NewServer(session, config.Config{
		Addr:              ":0",
		StaticDir:         t.TempDir(),
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}, &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts, session
}

func dialWS(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

// readUntil drains outbound records until one with the wanted type
// arrives, skipping presence noise from other connections.
func readUntil(t *testing.T, ctx context.Context, conn *websocket.Conn, wantType string) proto.Outbound {
	t.Helper()

	for {
		var out proto.Outbound
		if err := wsjson.Read(ctx, conn, &out); err != nil {
			t.Fatalf("read outbound (waiting for %q): %v", wantType, err)
		}
		if out.Type == wantType {
			return out
		}
	}
}

func TestWebSocketSelfVisibleConnect(t *testing.T) {
	ts, _ := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)

	out := readUntil(t, ctx, conn, proto.TypeUserConnected)
	if out.Nick == "" {
		t.Fatalf("connect event without nick: %+v", out)
	}
}

func TestWebSocketChatFlow(t *testing.T) {
	ts, _ := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connA := dialWS(t, ctx, ts)
	readUntil(t, ctx, connA, proto.TypeUserConnected)

	connB := dialWS(t, ctx, ts)
	readUntil(t, ctx, connB, proto.TypeUserConnected)

	if err := connA.Write(ctx, websocket.MessageText, []byte("/nick alice")); err != nil {
		t.Fatalf("write nick: %v", err)
	}

	change := readUntil(t, ctx, connB, proto.TypeNickChange)
	if change.NewNick != "alice" {
		t.Fatalf("unexpected nick-change: %+v", change)
	}

	if err := connA.Write(ctx, websocket.MessageText, []byte("hi there")); err != nil {
		t.Fatalf("write say: %v", err)
	}

	says := readUntil(t, ctx, connB, proto.TypeUserSays)
	if says.Nick != "alice" || says.Text != "hi there" {
		t.Fatalf("unexpected user-says: %+v", says)
	}

	if err := connB.Write(ctx, websocket.MessageText, []byte("/who")); err != nil {
		t.Fatalf("write who: %v", err)
	}

	list := readUntil(t, ctx, connB, proto.TypeNickList)
	if len(list.List) != 2 {
		t.Fatalf("unexpected nick list: %+v", list)
	}
}

func TestWebSocketUnknownCommandUnicast(t *testing.T) {
	ts, _ := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)
	readUntil(t, ctx, conn, proto.TypeUserConnected)

	if err := conn.Write(ctx, websocket.MessageText, []byte("/frobnicate x")); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := readUntil(t, ctx, conn, proto.TypeError)
	if out.Text != "Unknown command 'frobnicate'" {
		t.Fatalf("unexpected error: %+v", out)
	}
}

func TestWebSocketShutdownNotice(t *testing.T) {
	ts, session := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)
	readUntil(t, ctx, conn, proto.TypeUserConnected)

	session.Shutdown()

	out := readUntil(t, ctx, conn, proto.TypeNotice)
	if out.Text != "Shutting down server" {
		t.Fatalf("unexpected notice: %+v", out)
	}
}
