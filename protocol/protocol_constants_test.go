package protocol

import "testing"

func TestClientEventNames(t *testing.T) {
	want := map[string]string{
		MsgCreateRoom: "createRoom",
		MsgJoinRoom:   "joinRoom",
		MsgStartGame:  "startGame",
		MsgInput:      "input",
	}
	for got, expect := range want {
		if got != expect {
			t.Fatalf("event constant = %q, want %q", got, expect)
		}
	}
}

func TestServerEventNames(t *testing.T) {
	want := map[string]string{
		MsgRoomCreated: "roomCreated",
		MsgRoomJoined:  "roomJoined",
		MsgPlayerList:  "playerList",
		MsgGameStarted: "gameStarted",
		MsgScoreUpdate: "scoreUpdate",
		MsgGameState:   "gameState",
		MsgGameOver:    "gameOver",
		MsgError:       "error",
	}
	for got, expect := range want {
		if got != expect {
			t.Fatalf("event constant = %q, want %q", got, expect)
		}
	}
}

func TestTimingConstants(t *testing.T) {
	if SimTickHz != 60 {
		t.Fatalf("SimTickHz = %d, want 60", SimTickHz)
	}
	if RoomCodeLen != 4 {
		t.Fatalf("RoomCodeLen = %d, want 4", RoomCodeLen)
	}
}
