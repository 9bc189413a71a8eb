package room

// Status is the session state machine. Transitions only ever run
// Lobby → Playing → Finished.
type Status int32

const (
	StatusLobby Status = iota
	StatusPlaying
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusLobby:
		return "lobby"
	case StatusPlaying:
		return "playing"
	case StatusFinished:
		return "finished"
	}
	return "unknown"
}
