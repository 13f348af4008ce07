package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// Fixed deck composition of the reference game.
const (
	NumCharacters = 6
	NumWeapons    = 6
	NumRooms      = 9
)

// ErrInvalidComposition is returned when a card file does not hold exactly
// NumCharacters characters, NumWeapons weapons and NumRooms rooms.
var ErrInvalidComposition = errors.New("invalid card composition")

//go:embed default_config.json
var defaultConfig []byte

// CardCategory defines the type of a card using a typed enum.
type CardCategory int

const (
	CategoryCharacter CardCategory = iota
	CategoryWeapon
	CategoryRoom
)

// Categories lists every card category in display order.
var Categories = []CardCategory{CategoryCharacter, CategoryWeapon, CategoryRoom}

func (cc CardCategory) String() string {
	return []string{"characters", "weapons", "rooms"}[cc]
}

// GameConfig holds the card definitions for a game of Cluedo.
type GameConfig struct {
	Characters []string                `json:"characters"`
	Weapons    []string                `json:"weapons"`
	Rooms      []string                `json:"rooms"`
	AllCards   []string                `json:"-"`
	CardToType map[string]CardCategory `json:"-"`
}

// Default returns the reference card set bundled with the binary.
func Default() (*GameConfig, error) {
	return parse(defaultConfig)
}

// Load reads, parses, and prepares the game configuration from a file.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func parse(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Characters) != NumCharacters || len(cfg.Weapons) != NumWeapons || len(cfg.Rooms) != NumRooms {
		return nil, fmt.Errorf("%w: got %d characters, %d weapons, %d rooms",
			ErrInvalidComposition, len(cfg.Characters), len(cfg.Weapons), len(cfg.Rooms))
	}

	cfg.CardToType = make(map[string]CardCategory)
	sort.Strings(cfg.Characters)
	sort.Strings(cfg.Weapons)
	sort.Strings(cfg.Rooms)

	for _, cat := range Categories {
		for _, card := range cfg.CardListForCategory(cat) {
			if _, dup := cfg.CardToType[card]; dup {
				return nil, fmt.Errorf("%w: duplicate card %q", ErrInvalidComposition, card)
			}
			cfg.AllCards = append(cfg.AllCards, card)
			cfg.CardToType[card] = cat
		}
	}
	return &cfg, nil
}

// DeepCopy creates a new GameConfig with all slices copied to prevent shared state.
func (c *GameConfig) DeepCopy() *GameConfig {
	newCfg := &GameConfig{
		CardToType: make(map[string]CardCategory, len(c.CardToType)),
	}
	newCfg.Characters = append([]string(nil), c.Characters...)
	newCfg.Weapons = append([]string(nil), c.Weapons...)
	newCfg.Rooms = append([]string(nil), c.Rooms...)
	newCfg.AllCards = append([]string(nil), c.AllCards...)
	for k, v := range c.CardToType {
		newCfg.CardToType[k] = v
	}
	return newCfg
}

// CardListForCategory is a helper to get the correct card list from the config.
func (c *GameConfig) CardListForCategory(cat CardCategory) []string {
	switch cat {
	case CategoryCharacter:
		return c.Characters
	case CategoryWeapon:
		return c.Weapons
	case CategoryRoom:
		return c.Rooms
	default:
		return nil
	}
}
