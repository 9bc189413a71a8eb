package room

import "errors"

var (
	ErrGameStarted  = errors.New("room not found or game already started")
	ErrRoomFull     = errors.New("room is full")
	ErrTooManyRooms = errors.New("server is at room capacity")
)
