// Package tty runs the game in a terminal. A mouse click is a touch-down;
// the arena is the terminal grid scaled by CellW x CellH.
package tty

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"

	"dodge/internal/engine"
	"dodge/internal/scene"
	"dodge/internal/sfx"
)

type Game struct {
	screen  tcell.Screen
	session *scene.Session
	arena   engine.Arena

	prevButtons tcell.ButtonMask
	audioInit   bool
}

// New builds a game on an initialized screen. Audio is opened unless the
// settings mute it; failing to open it is not fatal.
func New(screen tcell.Screen, settings scene.Settings) (*Game, error) {
	session, err := scene.NewSession(settings.Config, settings.Seed)
	if err != nil {
		return nil, err
	}
	g := &Game{
		screen:  screen,
		session: session,
	}
	g.handleResize()

	if !settings.Mute {
		if err := initAudio(); err != nil {
			log.Printf("audio initialization failed: %v", err)
		} else {
			g.audioInit = true
			sfx.Bind(session.Bus, soundPlayer(settings.Volume))
		}
	}
	return g, nil
}

func (g *Game) Session() *scene.Session { return g.session }
func (g *Game) Arena() engine.Arena     { return g.arena }

func (g *Game) handleResize() {
	cols, rows := g.screen.Size()
	g.arena = ArenaFor(cols, rows)
}

// idle reports whether the next tap only starts or restarts a round.
func (g *Game) idle() bool {
	return g.session.State == scene.StateMenu || g.session.Round.IsGameOver()
}

// handleInput applies one terminal event and reports whether to keep running.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' && g.idle() {
			g.session.Tap(g.arena, -1, -1)
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && g.prevButtons&tcell.Button1 == 0
		g.prevButtons = buttons
		if pressed {
			x, y := ev.Position()
			ax, ay := CellCenter(x, y)
			g.session.Tap(g.arena, ax, ay)
		}

	case *tcell.EventResize:
		g.handleResize()
		g.screen.Sync()
	}
	return true
}

// frame advances the round by dt seconds and redraws.
func (g *Game) frame(dt float64) {
	g.session.Frame(g.arena, dt)
	draw(g.screen, g.session, g.arena)
	g.screen.Show()
}

// Run drives the game until the player quits.
func (g *Game) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, eventBuffer)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			g.frame(dt)
		}
	}
}

// Close releases the speaker. The screen belongs to the caller.
func (g *Game) Close() {
	if g.audioInit {
		speaker.Close()
	}
}
