package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/brickrockler/superpong/client"
	"github.com/brickrockler/superpong/config"
	"github.com/brickrockler/superpong/game"
	"github.com/brickrockler/superpong/protocol"
)

type App struct {
	session *client.Session
	rec     *client.Reconciler

	mu       sync.Mutex
	roomCode string
	roster   []protocol.PlayerEntry
	score    protocol.Score
	playing  bool
	winner   string
	notice   string

	lastCursorY int
}

func (a *App) Update() error {
	a.mu.Lock()
	playing := a.playing
	a.mu.Unlock()

	if playing {
		_, cy := ebiten.CursorPosition()
		if cy != a.lastCursorY {
			a.lastCursorY = cy
			// Window renders at logical size, so only centering applies.
			y := client.PaddleTargetY(float64(cy), 0, game.CourtHeight)
			_ = a.session.SendInput(y)
		}
	} else if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		_ = a.session.StartGame()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x08, 0x08, 0x12, 0xff})

	// Center line.
	vector.FillRect(screen, game.CourtWidth/2-1, 0, 2, game.CourtHeight,
		color.RGBA{0x30, 0x30, 0x40, 0xff}, false)

	if state, ok := a.rec.Frame(); ok {
		for _, p := range state.Players {
			vector.FillRect(screen, game.HumanPaddleX, float32(p.Y),
				game.PaddleWidth, game.PaddleHeight, color.White, false)
		}
		vector.FillRect(screen, game.AIPaddleX, float32(state.AI.Y),
			game.PaddleWidth, game.PaddleHeight,
			color.RGBA{0xea, 0x43, 0x35, 0xff}, false)
		vector.FillRect(screen, float32(state.Ball.X), float32(state.Ball.Y),
			game.BallSize, game.BallSize,
			color.RGBA{0xff, 0xd7, 0x00, 0xff}, false)
	}

	a.drawHUD(screen)
}

func (a *App) drawHUD(screen *ebiten.Image) {
	a.mu.Lock()
	defer a.mu.Unlock()

	face := text.NewGoXFace(basicfont.Face7x13)
	drawText := func(msg string, x, y float64) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y)
		text.Draw(screen, msg, face, op)
	}

	drawText(fmt.Sprintf("room %s    humans %d : %d ai", a.roomCode, a.score.Human, a.score.AI), 20, 10)
	for i, p := range a.roster {
		label := p.Name
		if p.Country != "" {
			label += " [" + p.Country + "]"
		}
		if p.IsHost {
			label += " (host)"
		}
		drawText(label, 20, 30+float64(i)*16)
	}
	switch {
	case a.winner != "":
		drawText("game over: "+a.winner+" win", game.CourtWidth/2-60, game.CourtHeight/2)
	case !a.playing:
		drawText("waiting in lobby - host presses SPACE to start", game.CourtWidth/2-140, game.CourtHeight/2)
	}
	if a.notice != "" {
		drawText(a.notice, 20, game.CourtHeight-30)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.CourtWidth, game.CourtHeight
}

func main() {
	var (
		name    = flag.String("name", "player", "display name")
		country = flag.String("country", "", "country tag shown in the roster")
		join    = flag.String("join", "", "room code to join; empty creates a new room")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := config.Load()

	session, err := client.Dial(cfg.ServerURL)
	if err != nil {
		log.Error("connect failed", "err", err)
		os.Exit(1)
	}
	defer session.Close()

	app := &App{
		session:     session,
		rec:         client.NewReconciler(cfg.BallSmoothing, cfg.AISmoothing),
		lastCursorY: -1,
	}

	go func() {
		err := session.Listen(client.Events{
			RoomCreated: func(code string) {
				app.mu.Lock()
				app.roomCode = code
				app.mu.Unlock()
				log.Info("room created", "code", code)
			},
			RoomJoined: func(code string) {
				app.mu.Lock()
				app.roomCode = code
				app.mu.Unlock()
				log.Info("room joined", "code", code)
			},
			PlayerList: func(players []protocol.PlayerEntry) {
				app.mu.Lock()
				app.roster = players
				app.mu.Unlock()
			},
			GameStarted: func() {
				app.mu.Lock()
				app.playing = true
				app.notice = ""
				app.mu.Unlock()
			},
			ScoreUpdate: func(score protocol.Score) {
				app.mu.Lock()
				app.score = score
				app.mu.Unlock()
			},
			GameState: app.rec.Apply,
			GameOver: func(winner string) {
				app.mu.Lock()
				app.playing = false
				app.winner = winner
				app.mu.Unlock()
			},
			Error: func(message string) {
				app.mu.Lock()
				app.notice = message
				app.mu.Unlock()
			},
		})
		if err != nil {
			log.Info("disconnected from server", "err", err)
		}
	}()

	if *join != "" {
		err = session.JoinRoom(*join, *name, *country)
	} else {
		err = session.CreateRoom(*name, *country)
	}
	if err != nil {
		log.Error("room request failed", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(game.CourtWidth, game.CourtHeight)
	ebiten.SetWindowTitle("superpong")
	if err := ebiten.RunGame(app); err != nil {
		log.Error("client exited", "err", err)
		os.Exit(1)
	}
}
