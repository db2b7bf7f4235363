// Command ws_chat is a terminal chat client for manual testing: lines
// typed on stdin go to the server verbatim, so "/nick alice" and "/who"
// work the same way they do in the browser client.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/robinsk/prat/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_chat: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := "ws://localhost:3000/ws"
	if len(os.Args) > 1 {
		addr = os.Args[1]
	}

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	fmt.Printf("Connected to %s\n", addr)
	fmt.Println("Type messages and press Enter to send. Ctrl+C to exit.")

	go func() {
		defer cancel()
		readLoop(ctx, conn)
	}()

	writeLoop(ctx, conn)

	cancel()
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	return nil
}

func readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var out proto.Outbound
		if err := wsjson.Read(ctx, conn, &out); err != nil {
			if ctx.Err() == nil {
				log.Printf("read: %v", err)
			}
			return
		}
		printOutbound(out)
	}
}

func printOutbound(out proto.Outbound) {
	switch out.Type {
	case proto.TypeUserConnected:
		fmt.Printf("* %s connected\n", out.Nick)
	case proto.TypeUserDisconnected:
		fmt.Printf("* %s disconnected\n", out.Nick)
	case proto.TypeUserSays:
		fmt.Printf("<%s> %s\n", out.Nick, out.Text)
	case proto.TypeNickChange:
		fmt.Printf("* %s is now known as %s\n", out.OldNick, out.NewNick)
	case proto.TypeNickList:
		fmt.Printf("* online: %s\n", strings.Join(out.List, ", "))
	case proto.TypeError:
		fmt.Printf("! %s\n", out.Text)
	case proto.TypeNotice:
		fmt.Printf("*** %s\n", out.Text)
	default:
		fmt.Printf("? %+v\n", out)
	}
}

func writeLoop(ctx context.Context, conn *websocket.Conn) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := conn.Write(ctx, websocket.MessageText, []byte(line)); err != nil {
			if ctx.Err() == nil {
				log.Printf("send: %v", err)
			}
			return
		}
	}
}
