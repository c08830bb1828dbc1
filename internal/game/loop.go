package game

import (
	"context"

	"gridwalk/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Run is the main turn loop: draw, read one input event, apply it. It
// returns when the player quits, when ctx is cancelled, or when the screen
// stops delivering events. Cancellation is only observed between turns.
func (g *Game) Run(ctx context.Context, screen tcell.Screen, r *render.Renderer) error {
	stop := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()
	defer func() { logRunStats(g.log, g.stats) }()

	if err := g.draw(r); err != nil {
		return err
	}
	for !g.quit {
		if ctx.Err() != nil {
			return nil
		}
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			if err := g.draw(r); err != nil {
				return err
			}
		case *tcell.EventKey:
			report, err := g.HandleIntent(g.keys.Intent(ev))
			if err != nil {
				return err
			}
			if report.Redraw {
				if err := g.draw(r); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (g *Game) draw(r *render.Renderer) error {
	f, err := g.Frame()
	if err != nil {
		return err
	}
	r.Draw(f)
	return nil
}
