package network

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/brickrockler/superpong/protocol"
	"github.com/brickrockler/superpong/room"
)

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	mgr := room.NewManager(0, 0, nil)
	gw := NewGateway(mgr, 0, nil)
	srv := NewServer("", gw, mgr)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts, "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func writeEvent(t *testing.T, ws *websocket.Conn, event string, payload any) {
	t.Helper()
	b, err := protocol.Encode(event, payload)
	if err != nil {
		t.Fatalf("encode %s: %v", event, err)
	}
	if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
		t.Fatalf("write %s: %v", event, err)
	}
}

// readUntil discards frames until one of type want arrives.
func readUntil(t *testing.T, ws *websocket.Conn, want string) protocol.Envelope {
	t.Helper()
	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			t.Fatalf("read while waiting for %q: %v", want, err)
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			t.Fatalf("decode envelope: %v", err)
		}
		if env.T == want {
			return env
		}
	}
}

func TestCreateJoinStartFlow(t *testing.T) {
	_, wsURL := newTestServer(t)

	host := dial(t, wsURL)
	writeEvent(t, host, protocol.MsgCreateRoom, protocol.CreateRoom{Name: "ana", Country: "br"})
	env := readUntil(t, host, protocol.MsgRoomCreated)
	code, err := protocol.DecodePayload[string](env)
	if err != nil || len(code) != protocol.RoomCodeLen {
		t.Fatalf("room code payload %q (%v)", code, err)
	}

	// Join with the lowercase code: matching is case-insensitive. The
	// roomJoined ack and the 2-entry roster can arrive in either order.
	guest := dial(t, wsURL)
	writeEvent(t, guest, protocol.MsgJoinRoom, protocol.JoinRoom{
		Code: strings.ToLower(code), Name: "bo", Country: "de",
	})
	joined, roster := "", 0
	_ = guest.SetReadDeadline(time.Now().Add(2 * time.Second))
	for joined == "" || roster != 2 {
		_, msg, err := guest.ReadMessage()
		if err != nil {
			t.Fatalf("guest read: %v", err)
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			t.Fatalf("decode envelope: %v", err)
		}
		switch env.T {
		case protocol.MsgRoomJoined:
			if joined, err = protocol.DecodePayload[string](env); err != nil {
				t.Fatalf("decode roomJoined: %v", err)
			}
		case protocol.MsgPlayerList:
			entries, err := protocol.DecodePayload[[]protocol.PlayerEntry](env)
			if err != nil {
				t.Fatalf("decode roster: %v", err)
			}
			roster = len(entries)
		}
	}
	if joined != code {
		t.Fatalf("roomJoined payload %q, want %q", joined, code)
	}

	// The host's first roster had one entry; the join pushes a second.
	for {
		env = readUntil(t, host, protocol.MsgPlayerList)
		entries, err := protocol.DecodePayload[[]protocol.PlayerEntry](env)
		if err != nil {
			t.Fatalf("decode roster: %v", err)
		}
		if len(entries) == 2 {
			break
		}
	}

	writeEvent(t, host, protocol.MsgStartGame, struct{}{})
	readUntil(t, host, protocol.MsgGameStarted)
	readUntil(t, guest, protocol.MsgGameStarted)
}

func TestJoinUnknownCodeYieldsError(t *testing.T) {
	_, wsURL := newTestServer(t)

	ws := dial(t, wsURL)
	writeEvent(t, ws, protocol.MsgJoinRoom, protocol.JoinRoom{Code: "NOPE", Name: "ana"})
	env := readUntil(t, ws, protocol.MsgError)
	msg, err := protocol.DecodePayload[string](env)
	if err != nil || msg == "" {
		t.Fatalf("error payload %q (%v)", msg, err)
	}
}

func TestCreateRoomRequiresName(t *testing.T) {
	_, wsURL := newTestServer(t)

	ws := dial(t, wsURL)
	writeEvent(t, ws, protocol.MsgCreateRoom, protocol.CreateRoom{Name: "   "})
	readUntil(t, ws, protocol.MsgError)
}

func TestStartOutsideRoomYieldsError(t *testing.T) {
	_, wsURL := newTestServer(t)

	ws := dial(t, wsURL)
	writeEvent(t, ws, protocol.MsgStartGame, struct{}{})
	readUntil(t, ws, protocol.MsgError)
}
