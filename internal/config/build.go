package config

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"unicode/utf8"

	"gridwalk/internal/component"
	"gridwalk/internal/factory"
	"gridwalk/internal/game"
	"gridwalk/internal/gamemap"
	"gridwalk/internal/geom"
	"gridwalk/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-errors"
	"github.com/sirupsen/logrus"
)

// TerrainConfig overrides the stock terrain table per kind.
type TerrainConfig struct {
	Void  TileConfig `yaml:"void"`
	Floor TileConfig `yaml:"floor"`
	Wall  TileConfig `yaml:"wall"`
}

// TileConfig overrides one terrain kind. Empty fields keep the stock value.
type TileConfig struct {
	Design   string `yaml:"design"` // extra map characters that stand for this kind
	Glyph    string `yaml:"glyph"`
	Color    string `yaml:"color"`
	Walkable *bool  `yaml:"walkable"`
}

// KeysConfig adds key bindings on top of the defaults.
type KeysConfig struct {
	Move map[string][]string `yaml:"move"` // direction name to key names
	Wait []string            `yaml:"wait"`
	Quit []string            `yaml:"quit"`
}

// TerrainTable builds the terrain table.
func (c *Config) TerrainTable() (gamemap.Table, error) {
	t := gamemap.DefaultTable()
	el := errors.NewErrorList()
	tiles := [...]TileConfig{
		gamemap.Void:  c.Terrain.Void,
		gamemap.Floor: c.Terrain.Floor,
		gamemap.Wall:  c.Terrain.Wall,
	}
	for kind, tc := range tiles {
		if err := tc.apply(&t, gamemap.Kind(kind)); err != nil {
			el.Add(fmt.Errorf("%s: %w", gamemap.Kind(kind), err))
		}
	}
	return t, el.Err()
}

func (tc TileConfig) apply(t *gamemap.Table, kind gamemap.Kind) error {
	terrain := t.Terrain[kind]
	if tc.Glyph != "" {
		r, err := parseGlyph(tc.Glyph)
		if err != nil {
			return err
		}
		terrain.Tile.Glyph = r
	}
	if tc.Color != "" {
		col, err := ParseColor(tc.Color)
		if err != nil {
			return err
		}
		terrain.Tile.Color = col
	}
	if tc.Walkable != nil {
		terrain.Walkable = *tc.Walkable
	}
	t.Terrain[kind] = terrain
	for _, r := range tc.Design {
		t.Design[r] = kind
	}
	return nil
}

// Grid builds the terrain grid from the map rows.
func (c *Config) Grid() (*gamemap.Grid, error) {
	t, err := c.TerrainTable()
	if err != nil {
		return nil, err
	}
	return gamemap.Build(c.Map, t), nil
}

// PlayerDef builds the player definition.
func (c *Config) PlayerDef() (factory.CharacterDef, error) {
	return c.Player.def()
}

// MonsterDefs builds the monster definitions in file order.
func (c *Config) MonsterDefs() ([]factory.CharacterDef, error) {
	el := errors.NewErrorList()
	defs := make([]factory.CharacterDef, 0, len(c.Monsters))
	for i, m := range c.Monsters {
		d, err := m.def()
		if err != nil {
			el.Add(fmt.Errorf("monster %d: %w", i, err))
			continue
		}
		defs = append(defs, d)
	}
	return defs, el.Err()
}

func (cc CharacterConfig) def() (factory.CharacterDef, error) {
	el := errors.NewErrorList()
	if cc.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	glyph, err := parseGlyph(cc.Glyph)
	el.Add(err)
	col, err := ParseColor(cc.Color)
	el.Add(err)
	behavior, err := component.ParseBehavior(cc.Behavior)
	el.Add(err)
	if cc.Start == nil {
		el.Add(fmt.Errorf("start is required"))
	}
	if err := el.Err(); err != nil {
		return factory.CharacterDef{}, err
	}
	return factory.CharacterDef{
		Name:     cc.Name,
		Glyph:    glyph,
		Color:    col,
		Start:    geom.C(cc.Start.X, cc.Start.Y),
		Behavior: behavior,
	}, nil
}

// KeyMap builds the default key map plus the configured bindings.
func (c *Config) KeyMap() (game.KeyMap, error) {
	km := game.DefaultKeyMap()
	el := errors.NewErrorList()

	dirs := make([]string, 0, len(c.Keys.Move))
	for name := range c.Keys.Move {
		dirs = append(dirs, name)
	}
	sort.Strings(dirs)
	for _, name := range dirs {
		d, err := geom.ParseDirection(name)
		if err != nil {
			el.Add(err)
			continue
		}
		for _, key := range c.Keys.Move[name] {
			el.Add(km.Bind(key, game.Move(d)))
		}
	}
	for _, key := range c.Keys.Wait {
		el.Add(km.Bind(key, game.Intent{Action: game.ActionWait}))
	}
	for _, key := range c.Keys.Quit {
		el.Add(km.Bind(key, game.Intent{Action: game.ActionQuit}))
	}
	return km, el.Err()
}

// Rules builds the movement rules.
func (rc RulesConfig) Rules() (world.Rules, error) {
	order, err := world.ParseCheckOrder(rc.CheckOrder)
	if err != nil {
		return world.Rules{}, err
	}
	return world.Rules{Order: order}, nil
}

// Build parses the message templates.
func (mc MessagesConfig) Build() (*game.Messages, error) {
	return game.NewMessages(mc.Welcome, mc.Kill)
}

// validatePlacements checks that every character starts on its own
// walkable cell.
func (c *Config) validatePlacements() error {
	grid, err := c.Grid()
	if err != nil || grid.Height() == 0 {
		return nil // reported elsewhere
	}
	el := errors.NewErrorList()
	taken := make(map[geom.Coord]string)
	check := func(what string, cc CharacterConfig) {
		if cc.Start == nil {
			return
		}
		at := geom.C(cc.Start.X, cc.Start.Y)
		switch {
		case !grid.InBounds(at):
			el.Add(fmt.Errorf("%s starts off the map at %s", what, at))
		case !grid.CanWalk(at):
			el.Add(fmt.Errorf("%s starts on unwalkable terrain at %s", what, at))
		case taken[at] != "":
			el.Add(fmt.Errorf("%s starts on %s at %s", what, taken[at], at))
		default:
			taken[at] = what
		}
	}
	check("player", c.Player)
	for i, m := range c.Monsters {
		check(fmt.Sprintf("monster %d", i), m)
	}
	return el.Err()
}

// Options builds everything a game needs. The configuration should have
// passed Validate.
func (c *Config) Options(rng *rand.Rand, log logrus.FieldLogger) (game.Options, error) {
	grid, err := c.Grid()
	if err != nil {
		return game.Options{}, err
	}
	rules, err := c.Rules.Rules()
	if err != nil {
		return game.Options{}, err
	}
	player, err := c.PlayerDef()
	if err != nil {
		return game.Options{}, err
	}
	monsters, err := c.MonsterDefs()
	if err != nil {
		return game.Options{}, err
	}
	keys, err := c.KeyMap()
	if err != nil {
		return game.Options{}, err
	}
	msgs, err := c.Messages.Build()
	if err != nil {
		return game.Options{}, err
	}
	return game.Options{
		Grid:                grid,
		Rules:               rules,
		Player:              player,
		Monsters:            monsters,
		Messages:            msgs,
		Keys:                keys,
		Rand:                rng,
		Logger:              log,
		BlockedMoveEndsTurn: c.Rules.BlockedMoveEndsTurn,
	}, nil
}

func parseGlyph(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("glyph %q must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// ParseColor accepts tcell color names ("green", "darkred"), "#rrggbb",
// and "default" or "reset" for the terminal's own color.
func ParseColor(s string) (tcell.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "", "default", "reset":
		return tcell.ColorReset, nil
	}
	col := tcell.GetColor(name)
	if col == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
	}
	return col, nil
}
