// Package config loads the YAML file describing a level, its characters
// and the game rules.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gridwalk/assets"
	"gridwalk/internal/logger"

	"github.com/pixil98/go-errors"
	"gopkg.in/yaml.v3"
)

// Config holds everything needed to start a game.
type Config struct {
	Map      []string          `yaml:"map"`
	Generate *GenerateConfig   `yaml:"generate"` // replaces map and starts with a random level
	Terrain  TerrainConfig     `yaml:"terrain"`
	Player   CharacterConfig   `yaml:"player"`
	Monsters []CharacterConfig `yaml:"monsters"`
	Keys     KeysConfig        `yaml:"keys"`
	Rules    RulesConfig       `yaml:"rules"`
	Messages MessagesConfig    `yaml:"messages"`
	Seed     int64             `yaml:"seed"` // 0 picks a seed at startup
	Log      logger.Config     `yaml:"log"`
}

// Point is a map coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// CharacterConfig describes the player or a monster.
type CharacterConfig struct {
	Name     string `yaml:"name"`
	Glyph    string `yaml:"glyph"`
	Color    string `yaml:"color"`
	Start    *Point `yaml:"start"`
	Behavior string `yaml:"behavior"` // monsters only: wander or stationary
}

// RulesConfig holds movement rules.
type RulesConfig struct {
	CheckOrder          string `yaml:"check_order"` // terrain_first or occupant_first
	BlockedMoveEndsTurn bool   `yaml:"blocked_move_ends_turn"`
}

// MessagesConfig holds the message templates.
type MessagesConfig struct {
	Welcome string `yaml:"welcome"`
	Kill    string `yaml:"kill"`
}

// Default returns the built-in level.
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

// Load reads configuration from a YAML file. Settings the file leaves out
// take their built-in values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document and fills in defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Generate != nil {
		c.Generate.setDefaults()
	}
	if len(c.Map) == 0 && c.Generate == nil {
		c.Map = assets.LevelMap
		if c.Monsters == nil {
			for _, o := range assets.Orcs {
				c.Monsters = append(c.Monsters, fromSpawn(o))
			}
		}
	}
	hero := fromSpawn(assets.Hero)
	if c.Player.Name == "" {
		c.Player.Name = hero.Name
	}
	if c.Player.Glyph == "" {
		c.Player.Glyph = hero.Glyph
	}
	if c.Player.Color == "" {
		c.Player.Color = hero.Color
	}
	if c.Player.Start == nil {
		c.Player.Start = hero.Start
	}
	for i := range c.Monsters {
		m := &c.Monsters[i]
		if m.Glyph == "" && m.Name != "" {
			r, _ := utf8.DecodeRuneInString(m.Name)
			m.Glyph = string(r)
		}
		if m.Color == "" {
			m.Color = "default"
		}
	}
	if c.Messages.Welcome == "" {
		c.Messages.Welcome = assets.WelcomeMessage
	}
	if c.Messages.Kill == "" {
		c.Messages.Kill = assets.KillMessage
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func fromSpawn(s assets.Spawn) CharacterConfig {
	return CharacterConfig{
		Name:  s.Name,
		Glyph: string(s.Glyph),
		Color: s.Color,
		Start: &Point{X: s.X, Y: s.Y},
	}
}

// Validate reports every problem in the configuration at once.
func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if len(c.Map) == 0 && c.Generate == nil {
		el.Add(fmt.Errorf("map is required"))
	}
	if c.Generate != nil {
		el.Add(c.Generate.Validate())
	}
	if _, err := c.TerrainTable(); err != nil {
		el.Add(fmt.Errorf("terrain: %w", err))
	}
	if _, err := c.PlayerDef(); err != nil {
		el.Add(fmt.Errorf("player: %w", err))
	}
	if _, err := c.MonsterDefs(); err != nil {
		el.Add(fmt.Errorf("monsters: %w", err))
	}
	if _, err := c.KeyMap(); err != nil {
		el.Add(fmt.Errorf("keys: %w", err))
	}
	if _, err := c.Rules.Rules(); err != nil {
		el.Add(fmt.Errorf("rules: %w", err))
	}
	if _, err := c.Messages.Build(); err != nil {
		el.Add(fmt.Errorf("messages: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		el.Add(fmt.Errorf("log: %w", err))
	}

	el.Add(c.validatePlacements())

	return el.Err()
}
