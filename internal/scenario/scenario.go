package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/clash/internal/game"
	"github.com/peterkuimelis/clash/internal/log"
)

// File is the top-level YAML structure of a scenario file.
type File struct {
	Items    []ItemEntry `yaml:"items"`
	Attacker SideEntry   `yaml:"attacker"`
	Defender SideEntry   `yaml:"defender"`
}

// ItemEntry defines a custom item.
type ItemEntry struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Cost        int         `yaml:"cost"`
	Rarity      int         `yaml:"rarity"`
	Type        string      `yaml:"type"`
	Effects     []yaml.Node `yaml:"effects"`
}

// SideEntry describes one side of the battle.
type SideEntry struct {
	Player   *PlayerEntry  `yaml:"player"`
	Creature CreatureEntry `yaml:"creature"`
	Item     string        `yaml:"item"` // empty means no item
}

// PlayerEntry describes the player backing a side.
type PlayerEntry struct {
	Name    string   `yaml:"name"`
	Gold    *int     `yaml:"gold"`
	Seed    *uint64  `yaml:"seed"`
	Hand    []string `yaml:"hand"`
	Library []string `yaml:"library"`
}

// CreatureEntry describes a creature.
type CreatureEntry struct {
	Name         string      `yaml:"name"`
	Description  string      `yaml:"description"`
	Strength     int         `yaml:"strength"`
	Health       int         `yaml:"health"`
	Cost         int         `yaml:"cost"`
	Rarity       int         `yaml:"rarity"`
	Elements     []string    `yaml:"elements"`
	Restrictions []string    `yaml:"restrictions"`
	LandBonus    int         `yaml:"land_bonus"`
	Effects      []yaml.Node `yaml:"effects"`
}

// Defaults fill in player fields a scenario leaves out.
type Defaults struct {
	Gold int
	Seed uint64
}

// Side is one fully built side of a scenario.
type Side struct {
	Creature *game.Creature
	Player   *game.Player
	Item     *game.ItemCard // game.NoItem when the side declines
}

// Scenario is a ready-to-fight battle setup.
type Scenario struct {
	Attacker Side
	Defender Side
}

// Load reads and parses a scenario file.
func Load(path string, defaults Defaults) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, defaults)
}

// Parse decodes a scenario document. Unknown keys are errors.
func Parse(data []byte, defaults Defaults) (*Scenario, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	catalog, err := buildCatalog(f.Items)
	if err != nil {
		return nil, err
	}

	att, err := buildSide("attacker", "Player One", f.Attacker, catalog, defaults)
	if err != nil {
		return nil, err
	}
	defaults.Seed++
	def, err := buildSide("defender", "Player Two", f.Defender, catalog, defaults)
	if err != nil {
		return nil, err
	}
	return &Scenario{Attacker: att, Defender: def}, nil
}

// Battle sets up a battle for the scenario without opening item selection.
func (s *Scenario) Battle(logger log.StepLogger) *game.Battle {
	return game.NewBattle(game.BattleConfig{
		Attacker:       s.Attacker.Creature,
		Defender:       s.Defender.Creature,
		AttackerPlayer: s.Attacker.Player,
		DefenderPlayer: s.Defender.Player,
		Logger:         logger,
	})
}

// Run opens item selection, equips both sides and fights. Equip failures do
// not stop the fight from being attempted, so cleanup always runs; they are
// returned joined with the fight's own error.
func (s *Scenario) Run(logger log.StepLogger) (*game.BattleResult, error) {
	b := s.Battle(logger)
	if err := b.OpenItemSelection(); err != nil {
		return nil, err
	}

	var errs []error
	if err := b.SetAttackerItem(s.Attacker.Item); err != nil {
		errs = append(errs, fmt.Errorf("attacker item %s: %w", s.Attacker.Item, err))
	}
	if err := b.SetDefenderItem(s.Defender.Item); err != nil {
		errs = append(errs, fmt.Errorf("defender item %s: %w", s.Defender.Item, err))
	}

	res, err := b.Fight()
	if err != nil {
		errs = append(errs, err)
	}
	return res, errors.Join(errs...)
}

// catalog builds fresh item instances by name: custom items first, then the
// built-in registry.
type catalog map[string]func() *game.ItemCard

func (c catalog) item(name string) (*game.ItemCard, error) {
	if ctor, ok := c[name]; ok {
		return ctor(), nil
	}
	if ctor, ok := game.ItemRegistry[name]; ok {
		return ctor(), nil
	}
	return nil, fmt.Errorf("unknown item %q", name)
}

func buildCatalog(entries []ItemEntry) (catalog, error) {
	c := make(catalog, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			return nil, errors.New("custom item without a name")
		}
		typ := game.ItemWeapon
		if e.Type != "" {
			t, err := game.ParseItemType(e.Type)
			if err != nil {
				return nil, fmt.Errorf("item %s: %w", e.Name, err)
			}
			typ = t
		}
		effects, err := ParseEffects(e.Effects)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", e.Name, err)
		}
		rarity := max(e.Rarity, 1)
		c[e.Name] = func() *game.ItemCard {
			item := game.NewItem(e.Name, e.Cost, rarity, typ, slices.Clone(effects)...)
			item.Description = e.Description
			return item
		}
	}
	return c, nil
}

func buildSide(role, defaultName string, e SideEntry, c catalog, defaults Defaults) (Side, error) {
	creature, err := buildCreature(e.Creature)
	if err != nil {
		return Side{}, fmt.Errorf("%s creature: %w", role, err)
	}

	pe := e.Player
	autoHand := pe == nil
	if pe == nil {
		pe = &PlayerEntry{}
	}
	name := pe.Name
	if name == "" {
		name = defaultName
	}
	gold := defaults.Gold
	if pe.Gold != nil {
		gold = *pe.Gold
	}
	seed := defaults.Seed
	if pe.Seed != nil {
		seed = *pe.Seed
	}
	player := game.NewPlayer(name, gold, seed)

	for _, n := range pe.Library {
		item, err := c.item(n)
		if err != nil {
			return Side{}, fmt.Errorf("%s library: %w", role, err)
		}
		player.AddToLibrary(item)
	}
	for _, n := range pe.Hand {
		item, err := c.item(n)
		if err != nil {
			return Side{}, fmt.Errorf("%s hand: %w", role, err)
		}
		player.AddToHand(item)
	}

	side := Side{Creature: creature, Player: player, Item: game.NoItem}
	if e.Item == "" {
		return side, nil
	}
	// Equip the card from the hand when there is one; otherwise a loose
	// instance, which only a player-less scenario puts into the hand.
	if held := findInHand(player, e.Item); held != nil {
		side.Item = held
		return side, nil
	}
	item, err := c.item(e.Item)
	if err != nil {
		return Side{}, fmt.Errorf("%s item: %w", role, err)
	}
	if autoHand {
		player.AddToHand(item)
	}
	side.Item = item
	return side, nil
}

func findInHand(p *game.Player, name string) *game.ItemCard {
	for _, card := range p.Hand {
		if item, ok := card.(*game.ItemCard); ok && item.Name == name {
			return item
		}
	}
	return nil
}

func buildCreature(e CreatureEntry) (*game.Creature, error) {
	if e.Name == "" {
		return nil, errors.New("missing name")
	}
	if e.Health <= 0 {
		return nil, fmt.Errorf("%s: health must be positive", e.Name)
	}
	c := game.NewCreature(e.Name, e.Strength, e.Health).WithCost(e.Cost, max(e.Rarity, 1))
	c.Description = e.Description

	for _, s := range e.Elements {
		el, err := game.ParseElement(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		c.Elements = append(c.Elements, el)
	}
	for _, s := range e.Restrictions {
		t, err := game.ParseItemType(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		c.Restrictions = append(c.Restrictions, t)
	}

	effects, err := ParseEffects(e.Effects)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}
	c.WithEffects(effects...)
	if err := c.SetLandBonus(e.LandBonus); err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}
	return c, nil
}
