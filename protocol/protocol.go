package protocol

import "encoding/json"

// Client → server events.
const (
	MsgCreateRoom = "createRoom"
	MsgJoinRoom   = "joinRoom"
	MsgStartGame  = "startGame"
	MsgInput      = "input"
)

// Server → client events.
const (
	MsgRoomCreated = "roomCreated"
	MsgRoomJoined  = "roomJoined"
	MsgPlayerList  = "playerList"
	MsgGameStarted = "gameStarted"
	MsgScoreUpdate = "scoreUpdate"
	MsgGameState   = "gameState"
	MsgGameOver    = "gameOver"
	MsgError       = "error"
)

const (
	SimTickHz   = 60
	RoomCodeLen = 4
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
