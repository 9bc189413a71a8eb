package protocol

// Payloads coming in from the client.

type CreateRoom struct {
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
}

type JoinRoom struct {
	Code    string `json:"code"` // matched case-insensitively
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
}

type Input struct {
	Y float64 `json:"y"` // paddle top target, clamped server-side
}
