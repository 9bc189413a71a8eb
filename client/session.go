package client

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/brickrockler/superpong/protocol"
)

// Events holds the callbacks invoked from the session's read goroutine.
// Nil entries are skipped.
type Events struct {
	RoomCreated func(code string)
	RoomJoined  func(code string)
	PlayerList  func(players []protocol.PlayerEntry)
	GameStarted func()
	ScoreUpdate func(score protocol.Score)
	GameState   func(state protocol.GameState)
	GameOver    func(winner string)
	Error       func(message string)
}

// Session is one client connection to the game server.
type Session struct {
	ws *websocket.Conn
	mu sync.Mutex // serializes writes
}

func Dial(url string) (*Session, error) {
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return &Session{ws: ws}, nil
}

func (s *Session) Close() error {
	return s.ws.Close()
}

// Listen reads server events until the connection drops, dispatching each
// to its callback. Frames that fail to decode are skipped.
func (s *Session) Listen(ev Events) error {
	for {
		_, msg, err := s.ws.ReadMessage()
		if err != nil {
			return err
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			continue
		}
		switch env.T {
		case protocol.MsgRoomCreated:
			if ev.RoomCreated != nil {
				if code, err := protocol.DecodePayload[string](env); err == nil {
					ev.RoomCreated(code)
				}
			}
		case protocol.MsgRoomJoined:
			if ev.RoomJoined != nil {
				if code, err := protocol.DecodePayload[string](env); err == nil {
					ev.RoomJoined(code)
				}
			}
		case protocol.MsgPlayerList:
			if ev.PlayerList != nil {
				if players, err := protocol.DecodePayload[[]protocol.PlayerEntry](env); err == nil {
					ev.PlayerList(players)
				}
			}
		case protocol.MsgGameStarted:
			if ev.GameStarted != nil {
				ev.GameStarted()
			}
		case protocol.MsgScoreUpdate:
			if ev.ScoreUpdate != nil {
				if score, err := protocol.DecodePayload[protocol.Score](env); err == nil {
					ev.ScoreUpdate(score)
				}
			}
		case protocol.MsgGameState:
			if ev.GameState != nil {
				if state, err := protocol.DecodePayload[protocol.GameState](env); err == nil {
					ev.GameState(state)
				}
			}
		case protocol.MsgGameOver:
			if ev.GameOver != nil {
				if over, err := protocol.DecodePayload[protocol.GameOver](env); err == nil {
					ev.GameOver(over.Winner)
				}
			}
		case protocol.MsgError:
			if ev.Error != nil {
				if msg, err := protocol.DecodePayload[string](env); err == nil {
					ev.Error(msg)
				}
			}
		}
	}
}

func (s *Session) CreateRoom(name, country string) error {
	return s.send(protocol.MsgCreateRoom, protocol.CreateRoom{Name: name, Country: country})
}

func (s *Session) JoinRoom(code, name, country string) error {
	return s.send(protocol.MsgJoinRoom, protocol.JoinRoom{Code: code, Name: name, Country: country})
}

func (s *Session) StartGame() error {
	return s.send(protocol.MsgStartGame, struct{}{})
}

// SendInput emits the caller's paddle target. Called on every pointer
// move, unthrottled; the server clamps.
func (s *Session) SendInput(y float64) error {
	return s.send(protocol.MsgInput, protocol.Input{Y: y})
}

func (s *Session) send(t string, payload any) error {
	b, err := protocol.Encode(t, payload)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ws.WriteMessage(websocket.TextMessage, b)
}
