package ui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/tombs/internal/game"
	"github.com/samdwyer/tombs/internal/logger"
)

// loop is the real-time driver: input is latched between ticks and the world
// advances once per frame whether or not a key was pressed.
type loop struct {
	game     *game.Game
	screen   *Screen
	renderer *Renderer

	pending        *game.Intent // last key since the previous tick
	mouseX, mouseY int
}

// Run drives g at cfg.LimitFPS ticks per second until a quit key is pressed,
// the event stream ends or ctx is cancelled. It is the only goroutine that
// touches g.
func Run(ctx context.Context, g *game.Game, screen *Screen, renderer *Renderer) error {
	l := &loop{game: g, screen: screen, renderer: renderer, mouseX: -1, mouseY: -1}
	events := screen.Events()

	ticker := time.NewTicker(time.Second / time.Duration(g.Config().LimitFPS))
	defer ticker.Stop()

	log := logger.Log.WithFields(logrus.Fields{
		"component": "ui",
		"world":     g.ID.String(),
	})
	log.Info("Loop started.")

	l.renderer.Render(g, l.mouseX, l.mouseY)
	for {
		select {
		case <-ctx.Done():
			log.WithField("tick", g.Tick).Info("Loop cancelled.")
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if l.handleEvent(ev) {
				log.WithField("tick", g.Tick).Info("Loop stopped.")
				return nil
			}
		case <-ticker.C:
			l.tick(ctx)
		}
	}
}

// handleEvent records input for the next tick. Reports whether to quit.
func (l *loop) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuitKey(ev) {
			return true
		}
		if in, ok := IntentForKey(ev); ok {
			l.pending = &in
		}
	case *tcell.EventMouse:
		l.mouseX, l.mouseY = ev.Position()
	case *tcell.EventResize:
		l.screen.Sync()
	}
	return false
}

// tick applies the latched intent, advances the world and redraws.
func (l *loop) tick(ctx context.Context) {
	if l.pending != nil {
		l.game.HandleIntent(*l.pending)
		l.pending = nil
	}
	l.game.Update(ctx)
	l.renderer.Render(l.game, l.mouseX, l.mouseY)
}
