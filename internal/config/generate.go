package config

import (
	"fmt"
	"math/rand"

	"gridwalk/internal/generate"
)

// GenerateConfig asks for a random level instead of a fixed map.
type GenerateConfig struct {
	Width    int             `yaml:"width"`
	Height   int             `yaml:"height"`
	Corridor string          `yaml:"corridor"` // l_shaped, z_shaped or straight
	Monsters int             `yaml:"monsters"` // 0 means 3
	Monster  CharacterConfig `yaml:"monster"`  // template for every generated monster
}

func (gc *GenerateConfig) setDefaults() {
	def := generate.DefaultConfig(nil)
	if gc.Width == 0 {
		gc.Width = def.Width
	}
	if gc.Height == 0 {
		gc.Height = def.Height
	}
	if gc.Monsters == 0 {
		gc.Monsters = def.Monsters
	}
	if gc.Monster.Name == "" {
		gc.Monster.Name = "orc"
		if gc.Monster.Glyph == "" {
			gc.Monster.Glyph = "o"
		}
		if gc.Monster.Color == "" {
			gc.Monster.Color = "green"
		}
	}
}

// Validate reports generator settings that cannot produce a level.
func (gc *GenerateConfig) Validate() error {
	if _, err := generate.ParseCorridorStyle(gc.Corridor); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err := gc.params(nil).Validate(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	return nil
}

func (gc *GenerateConfig) params(rng *rand.Rand) generate.Config {
	p := generate.DefaultConfig(rng)
	p.Width, p.Height = gc.Width, gc.Height
	p.Monsters = gc.Monsters
	p.Corridor, _ = generate.ParseCorridorStyle(gc.Corridor)
	return p
}

// GenerateLevel replaces the map, the player's start and the monster list
// with a freshly generated level. It does nothing without a generate
// section.
func (c *Config) GenerateLevel(rng *rand.Rand) error {
	if c.Generate == nil {
		return nil
	}
	if err := c.Generate.Validate(); err != nil {
		return err
	}
	lvl, err := generate.Generate(c.Generate.params(rng))
	if err != nil {
		return fmt.Errorf("generating level: %w", err)
	}

	c.Map = lvl.Rows
	c.Player.Start = &Point{X: lvl.Player.X, Y: lvl.Player.Y}
	c.Monsters = make([]CharacterConfig, 0, len(lvl.Monsters))
	for _, at := range lvl.Monsters {
		m := c.Generate.Monster
		m.Start = &Point{X: at.X, Y: at.Y}
		c.Monsters = append(c.Monsters, m)
	}
	// Fill in what the monster template left out.
	c.setDefaults()
	return nil
}
