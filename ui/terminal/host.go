package terminal

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/ui"
)

const frameInterval = 16 * time.Millisecond

// Stepper is driven once per frame after the game update.
type Stepper interface {
	Step()
}

type Host struct {
	screen   tcell.Screen
	game     *game.Game
	pilot    Stepper
	renderer *Renderer
	logger   *slog.Logger
}

// NewHost wires g to an initialised screen. pilot may be nil.
func NewHost(screen tcell.Screen, g *game.Game, pilot Stepper, logger *slog.Logger) *Host {
	return &Host{
		screen:   screen,
		game:     g,
		pilot:    pilot,
		renderer: NewRenderer(screen),
		logger:   logger,
	}
}

// Run polls terminal events on a separate goroutine and draws at a fixed
// rate until ctx is done or a quit key is pressed.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				key, quit := TranslateKey(ev)
				if quit {
					h.logger.Info("quit requested")
					return nil
				}
				if key != types.KeyOther {
					h.game.OnKey(key)
				}
			case *tcell.EventResize:
				h.screen.Sync()
			}

		case now := <-ticker.C:
			h.game.Update(now.Sub(last))
			last = now
			if h.pilot != nil {
				h.pilot.Step()
			}
			h.renderer.Draw(ui.BuildScene(h.game.Snapshot(), h.game.Stats()))
		}
	}
}

// TranslateKey maps a terminal key to a game key. quit is set for Esc,
// Ctrl-C and q.
func TranslateKey(ev *tcell.EventKey) (key types.Key, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.KeyOther, true
	case tcell.KeyUp:
		return types.KeyUp, false
	case tcell.KeyDown:
		return types.KeyDown, false
	case tcell.KeyLeft:
		return types.KeyLeft, false
	case tcell.KeyRight:
		return types.KeyRight, false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return types.KeyOther, true
		case 'p', 'P', ' ':
			return types.KeyPause, false
		case 'w', 'k':
			return types.KeyUp, false
		case 's', 'j':
			return types.KeyDown, false
		case 'a', 'h':
			return types.KeyLeft, false
		case 'd', 'l':
			return types.KeyRight, false
		}
	}
	return types.KeyOther, false
}
