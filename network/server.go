package network

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brickrockler/superpong/room"
)

// NewServer wires the gateway and the lobby-browser API onto one HTTP
// server.
func NewServer(addr string, gw *Gateway, mgr *room.Manager) *http.Server {
	r := chi.NewRouter()
	r.Get("/ws", gw.HandleWS)
	r.Get("/api/rooms", handleListRooms(mgr))

	return &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func handleListRooms(mgr *room.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(mgr.ListRooms())
	}
}
