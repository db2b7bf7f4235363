package http

import (
	"github.com/robinsk/prat/internal/core"
	"github.com/robinsk/prat/internal/proto"
)

// outboundFromEvent maps a session event onto its wire record. The
// switch is exhaustive over core.EventKind.
func outboundFromEvent(ev *core.Event) proto.Outbound {
	switch ev.Kind {
	case core.EventUserConnected:
		return proto.Outbound{Type: proto.TypeUserConnected, Nick: ev.Nick}
	case core.EventUserDisconnected:
		return proto.Outbound{Type: proto.TypeUserDisconnected, Nick: ev.Nick}
	case core.EventUserSays:
		return proto.Outbound{Type: proto.TypeUserSays, Nick: ev.Nick, Text: ev.Text}
	case core.EventNickChange:
		return proto.Outbound{Type: proto.TypeNickChange, OldNick: ev.OldNick, NewNick: ev.NewNick}
	case core.EventNickList:
		return proto.Outbound{Type: proto.TypeNickList, List: ev.Nicks}
	case core.EventError:
		return proto.Outbound{Type: proto.TypeError, Text: ev.Text}
	case core.EventNotice:
		return proto.Outbound{Type: proto.TypeNotice, Text: ev.Text}
	default:
		return proto.Outbound{Type: proto.TypeError, Text: "unknown event"}
	}
}
