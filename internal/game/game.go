package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"gridwalk/internal/component"
	"gridwalk/internal/ecs"
	"gridwalk/internal/factory"
	"gridwalk/internal/gamemap"
	"gridwalk/internal/geom"
	"gridwalk/internal/render"
	"gridwalk/internal/system"
	"gridwalk/internal/world"

	"github.com/sirupsen/logrus"
)

// Options configures a Game.
type Options struct {
	Grid     *gamemap.Grid
	Rules    world.Rules
	Player   factory.CharacterDef
	Monsters []factory.CharacterDef
	Messages *Messages
	Keys     KeyMap
	Rand     *rand.Rand
	Logger   logrus.FieldLogger

	// BlockedMoveEndsTurn makes a move into terrain cost a turn (monsters
	// act and the screen redraws). By default such a move is ignored.
	BlockedMoveEndsTurn bool
}

// TurnReport describes what one intent did.
type TurnReport struct {
	Player   world.MoveResult   // zero unless the intent was a move
	Killed   ecs.EntityID       // entity the player killed, if any
	AI       []world.MoveResult // monster moves, in entity order
	Advanced bool               // the turn counter moved on
	Redraw   bool
	Quit     bool
}

// Game is the turn driver: it applies one intent per turn to the world.
type Game struct {
	world    *world.World
	playerID ecs.EntityID
	rng      *rand.Rand
	msgs     *Messages
	keys     KeyMap
	log      logrus.FieldLogger

	blockedEndsTurn bool
	quit            bool
	pending         []string
	history         []string
	stats           RunStats
}

// New builds the world, spawns the player and monsters, and queues the
// welcome message.
func New(opts Options) (*Game, error) {
	if opts.Grid == nil {
		return nil, errors.New("game: no terrain grid")
	}
	if opts.Rand == nil {
		return nil, errors.New("game: no random source")
	}
	if opts.Messages == nil {
		m, err := NewMessages(DefaultWelcome, DefaultKill)
		if err != nil {
			return nil, err
		}
		opts.Messages = m
	}
	if opts.Keys.keys == nil {
		opts.Keys = DefaultKeyMap()
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}

	g := &Game{
		world:           world.New(opts.Grid, opts.Rules),
		rng:             opts.Rand,
		msgs:            opts.Messages,
		keys:            opts.Keys,
		log:             opts.Logger,
		blockedEndsTurn: opts.BlockedMoveEndsTurn,
		stats:           RunStats{Kills: make(map[string]int)},
	}

	id, err := factory.NewPlayer(g.world, opts.Player)
	if err != nil {
		return nil, err
	}
	g.playerID = id
	for _, m := range opts.Monsters {
		if _, err := factory.NewMonster(g.world, m); err != nil {
			return nil, err
		}
	}

	welcome, err := g.msgs.Welcome(MessageData{Name: opts.Player.Name, Player: opts.Player.Name})
	if err != nil {
		return nil, err
	}
	g.addMessage(welcome)
	g.log.WithFields(logrus.Fields{
		"player":   opts.Player.Name,
		"monsters": len(opts.Monsters),
		"order":    opts.Rules.Order,
	}).Info("game started")
	return g, nil
}

// World returns the simulated world.
func (g *Game) World() *world.World { return g.world }

// PlayerID returns the player's entity.
func (g *Game) PlayerID() ecs.EntityID { return g.playerID }

// Stats returns the run statistics so far.
func (g *Game) Stats() RunStats { return g.stats }

// Quit reports whether a quit was requested.
func (g *Game) Quit() bool { return g.quit }

// RequestQuit ends the turn loop before the next input is read.
func (g *Game) RequestQuit() {
	g.quit = true
}

// HandleIntent applies one decoded input.
func (g *Game) HandleIntent(i Intent) (TurnReport, error) {
	switch i.Action {
	case ActionMove:
		return g.HandleDirection(i.Dir)
	case ActionWait:
		return g.endTurn(TurnReport{})
	case ActionQuit:
		g.RequestQuit()
		return TurnReport{Quit: true}, nil
	}
	return TurnReport{}, nil
}

// HandleDirection moves the player one step. Bumping into another entity
// kills it; bumping into terrain only costs a turn when configured to.
func (g *Game) HandleDirection(d geom.Direction) (TurnReport, error) {
	res, err := g.world.Move(g.playerID, d)
	if err != nil {
		return TurnReport{}, fmt.Errorf("moving player: %w", err)
	}
	report := TurnReport{Player: res}
	g.log.WithFields(logrus.Fields{"dir": d, "outcome": res.Outcome, "to": res.To}).Debug("player move")

	switch res.Outcome {
	case world.BlockedByTerrain:
		g.stats.Blocked++
		if !g.blockedEndsTurn {
			return report, nil
		}
	case world.BlockedByEntity:
		if err := g.kill(res.Blocker); err != nil {
			return report, err
		}
		report.Killed = res.Blocker
	}
	return g.endTurn(report)
}

func (g *Game) kill(id ecs.EntityID) error {
	// Read the name before the record goes away.
	victim, err := ecs.Get[component.Displayable](g.world.Entities, id)
	if err != nil {
		return fmt.Errorf("resolving victim: %w", err)
	}
	name := victim.DisplayName()
	if err := g.world.Kill(id); err != nil {
		return err
	}
	g.stats.Kills[name]++
	msg, err := g.msgs.Kill(MessageData{Name: name, Player: g.playerName(), Turn: g.stats.Turns})
	if err != nil {
		return err
	}
	g.addMessage(msg)
	g.log.WithFields(logrus.Fields{"entity": id, "name": name}).Info("kill")
	return nil
}

// endTurn lets every monster act and asks for a redraw.
func (g *Game) endTurn(report TurnReport) (TurnReport, error) {
	ai, err := system.ProcessAI(g.world, g.rng, g.log)
	report.AI = ai
	if err != nil {
		return report, fmt.Errorf("monster turn: %w", err)
	}
	g.stats.Turns++
	report.Advanced = true
	report.Redraw = true
	return report, nil
}

func (g *Game) playerName() string {
	p, err := ecs.Get[component.Displayable](g.world.Entities, g.playerID)
	if err != nil {
		return ""
	}
	return p.DisplayName()
}

func (g *Game) addMessage(msg string) {
	g.pending = append(g.pending, msg)
	g.history = append(g.history, msg)
	if len(g.history) > maxMessages {
		g.history = g.history[len(g.history)-maxMessages:]
	}
}

// Messages returns the most recent messages, oldest first.
func (g *Game) Messages() []string { return g.history }

// Frame snapshots the world for drawing and consumes pending messages.
func (g *Game) Frame() (render.Frame, error) {
	sprites, err := g.world.Sprites()
	if err != nil {
		return render.Frame{}, err
	}
	f := render.Frame{
		Terrain:  g.world.Terrain.Render(),
		Grid:     g.world.Terrain,
		Sprites:  sprites,
		Messages: g.pending,
	}
	if c, err := g.world.Positions.CoordinateOf(g.playerID); err == nil {
		f.Cursor, f.HasCursor = c, true
	}
	g.pending = nil
	return f, nil
}
