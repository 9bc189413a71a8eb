package room

import (
	"crypto/rand"
	"log/slog"
	"math/big"
	"strings"
	"sync"

	"github.com/brickrockler/superpong/protocol"
)

// RoomInfo is returned by the API for the lobby browser.
type RoomInfo struct {
	Code    string `json:"code"`
	Players int    `json:"players"`
	Status  string `json:"status"`
}

// Manager owns the code → room directory. Rooms are created on demand
// and removed when the last player leaves.
type Manager struct {
	mu         sync.RWMutex
	rooms      map[string]*Room
	maxRooms   int
	maxPlayers int
	log        *slog.Logger
}

func NewManager(maxRooms, maxPlayersPerRoom int, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		rooms:      make(map[string]*Room),
		maxRooms:   maxRooms,
		maxPlayers: maxPlayersPerRoom,
		log:        log,
	}
}

const codeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CreateRoom generates a unique 4-char code, registers a Lobby room and
// starts its goroutine. Generation retries on collision with live rooms.
func (m *Manager) CreateRoom() (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.maxRooms > 0 && len(m.rooms) >= m.maxRooms {
		return nil, ErrTooManyRooms
	}
	for {
		code := generateCode(protocol.RoomCodeLen)
		if _, exists := m.rooms[code]; exists {
			continue
		}
		r := New(code, m.maxPlayers)
		r.OnEmpty = func(c string) {
			m.removeRoom(c)
		}
		m.rooms[code] = r
		go r.Run()
		m.log.Info("room created", "code", code)
		return r, nil
	}
}

// Lookup finds a live room; codes match case-insensitively.
func (m *Manager) Lookup(code string) (*Room, bool) {
	code = strings.ToUpper(code)
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[code]
	return r, ok
}

func (m *Manager) removeRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		r.Stop()
		delete(m.rooms, code)
		m.log.Info("room torn down", "code", code)
	}
}

// Rooms returns a snapshot of the directory for the Scheduler to walk.
func (m *Manager) Rooms() []*Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	return out
}

// ListRooms returns all live rooms with code, player count and status.
func (m *Manager) ListRooms() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoomInfo, 0, len(m.rooms))
	for code, r := range m.rooms {
		out = append(out, RoomInfo{
			Code:    code,
			Players: r.NumPlayers(),
			Status:  r.Status().String(),
		})
	}
	return out
}

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
