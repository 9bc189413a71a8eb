package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string // server listen address
	ServerURL string // websocket URL the client dials

	MaxRooms          int
	MaxPlayersPerRoom int
	MaxConnections    int

	// Client-side smoothing fractions per animation frame.
	BallSmoothing float64
	AISmoothing   float64
}

// Load reads an optional .env file, then the environment, falling back
// to defaults for anything unset.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:              getString("SUPERPONG_ADDR", ":3000"),
		ServerURL:         getString("SUPERPONG_SERVER_URL", "ws://localhost:3000/ws"),
		MaxRooms:          getInt("SUPERPONG_MAX_ROOMS", 256),
		MaxPlayersPerRoom: getInt("SUPERPONG_MAX_PLAYERS_PER_ROOM", 8),
		MaxConnections:    getInt("SUPERPONG_MAX_CONNECTIONS", 512),
		BallSmoothing:     getFloat("SUPERPONG_BALL_SMOOTHING", 0.2),
		AISmoothing:       getFloat("SUPERPONG_AI_SMOOTHING", 0.1),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
