package game

import (
	"fmt"
	"slices"
	"strings"
)

// ActiveEffect is an effect attached to a creature together with the card it
// came from. The source is the creature itself for innate effects and the
// equipped item for added ones.
type ActiveEffect struct {
	Effect CardEffect
	Source Card
}

// Creature is a combatant card. Base stats are fixed at creation; current
// stats, added effects and modifiers change during a battle and are restored
// by the battle's cleanup.
type Creature struct {
	Name         string
	Description  string
	BaseStrength int
	BaseMaxHP    int
	BaseCost     int
	BaseRarity   int
	Elements     []Element
	Restrictions []ItemType // item types this creature cannot equip

	// Current stats
	Strength           int
	HP                 int
	LandBonus          int // per-battle HP bonus from the land, stripped by penetrate
	HealthBeforeBattle int

	AttackFirst bool
	AttackLast  bool

	Effects      []ActiveEffect // innate
	AddedEffects []ActiveEffect // from the equipped item, for one battle
	Modifiers    []BattleModifier

	inBattle bool // between OpenItemSelection and cleanup
}

// NewCreature creates a creature at full strength and health. Every creature
// gets the innate land bonus effect.
func NewCreature(name string, strength, maxHP int) *Creature {
	c := &Creature{
		Name:               name,
		BaseStrength:       strength,
		BaseMaxHP:          maxHP,
		Strength:           strength,
		HP:                 maxHP,
		HealthBeforeBattle: maxHP,
	}
	c.AddEffect(LandBonusEffect())
	return c
}

func (c *Creature) String() string {
	if c == nil {
		return "(none)"
	}
	return c.Name
}

func (c *Creature) Cost() int {
	return c.BaseCost
}

// DisplayString returns a human-readable description including current stats.
func (c *Creature) DisplayString() string {
	return fmt.Sprintf("%s (ST %d/HP %d)", c.Name, c.Strength, c.HP)
}

// WithCost sets cost and rarity.
func (c *Creature) WithCost(cost, rarity int) *Creature {
	c.BaseCost = cost
	c.BaseRarity = rarity
	return c
}

// WithElements sets the creature's elements.
func (c *Creature) WithElements(elements ...Element) *Creature {
	c.Elements = elements
	return c
}

// WithRestrictions sets the item types the creature cannot equip.
func (c *Creature) WithRestrictions(types ...ItemType) *Creature {
	c.Restrictions = types
	return c
}

// WithEffects attaches innate effects.
func (c *Creature) WithEffects(effects ...CardEffect) *Creature {
	for _, e := range effects {
		c.AddEffect(e)
	}
	return c
}

// AddEffect attaches an innate effect sourced from the creature itself.
func (c *Creature) AddEffect(effect CardEffect) {
	c.Effects = append(c.Effects, ActiveEffect{Effect: effect, Source: c})
}

// attachItem adds the item's effects to the added-effects set for this battle.
func (c *Creature) attachItem(item *ItemCard) {
	for _, e := range item.Effects {
		c.AddedEffects = append(c.AddedEffects, ActiveEffect{Effect: e, Source: item})
	}
}

// AllEffects returns innate followed by added effects.
func (c *Creature) AllEffects() []ActiveEffect {
	all := make([]ActiveEffect, 0, len(c.Effects)+len(c.AddedEffects))
	all = append(all, c.Effects...)
	return append(all, c.AddedEffects...)
}

// HasEffect reports whether any top-level effect of the given kind is attached.
func (c *Creature) HasEffect(kind EffectKind) bool {
	for _, ae := range c.AllEffects() {
		if ae.Effect.Kind() == kind {
			return true
		}
	}
	return false
}

// HasElement reports whether the creature has the element.
func (c *Creature) HasElement(e Element) bool {
	return slices.Contains(c.Elements, e)
}

// CanEquip checks the creature's equip restrictions against the item type.
func (c *Creature) CanEquip(item *ItemCard) bool {
	return !slices.Contains(c.Restrictions, item.Type)
}

// AddModifier places a battle modifier on the creature.
func (c *Creature) AddModifier(m BattleModifier) {
	c.Modifiers = append(c.Modifiers, m)
}

// HasModifier reports whether a modifier of the given kind is present.
func (c *Creature) HasModifier(kind Modifier) bool {
	_, ok := c.Modifier(kind)
	return ok
}

// Modifier returns the first modifier of the given kind.
func (c *Creature) Modifier(kind Modifier) (BattleModifier, bool) {
	for _, m := range c.Modifiers {
		if m.Kind == kind {
			return m, true
		}
	}
	return BattleModifier{}, false
}

// IsDestroyed reports whether the creature's HP has reached zero.
func (c *Creature) IsDestroyed() bool {
	return c.HP <= 0
}

// SetLandBonus sets the HP bonus the creature receives from its land for the
// next battle. The bonus is added to HP when item selection opens, so it
// cannot change while the creature is in a battle.
func (c *Creature) SetLandBonus(bonus int) error {
	if c.inBattle {
		return ErrLandBonusLocked
	}
	c.LandBonus = bonus
	return nil
}

// ResetValues restores the creature after a battle: strength back to base,
// HP no higher than before the battle, and all battle-only state cleared.
func (c *Creature) ResetValues() {
	c.clearBattleState()
	c.HP = min(c.HP, c.HealthBeforeBattle)
	c.LandBonus = 0
}

// clearBattleState drops stat changes, priority flags, item effects and
// modifiers. It leaves HP and the land bonus alone.
func (c *Creature) clearBattleState() {
	c.Strength = c.BaseStrength
	c.AttackFirst = false
	c.AttackLast = false
	c.AddedEffects = nil
	c.Modifiers = nil
	c.inBattle = false
}

// --- Stat accessors ---

// Stat names a numeric creature property that calculations can read and
// SetStat effects can write.
type Stat int

const (
	StatBaseStrength Stat = iota
	StatBaseMaxHP
	StatStrength
	StatHP
	StatLandBonus
	StatHealthBeforeBattle
)

type statAccessor struct {
	name string
	get  func(c *Creature) int
	set  func(c *Creature, v int) // nil for read-only stats
}

var statAccessors = [...]statAccessor{
	StatBaseStrength: {
		name: "base strength",
		get:  func(c *Creature) int { return c.BaseStrength },
	},
	StatBaseMaxHP: {
		name: "base max HP",
		get:  func(c *Creature) int { return c.BaseMaxHP },
	},
	StatStrength: {
		name: "strength",
		get:  func(c *Creature) int { return c.Strength },
		set:  func(c *Creature, v int) { c.Strength = v },
	},
	StatHP: {
		name: "HP",
		get:  func(c *Creature) int { return c.HP },
		set:  func(c *Creature, v int) { c.HP = v },
	},
	StatLandBonus: {
		name: "land bonus",
		get:  func(c *Creature) int { return c.LandBonus },
		set:  func(c *Creature, v int) { c.LandBonus = v },
	},
	StatHealthBeforeBattle: {
		name: "HP before battle",
		get:  func(c *Creature) int { return c.HealthBeforeBattle },
	},
}

func (s Stat) valid() bool {
	return s >= 0 && int(s) < len(statAccessors)
}

func (s Stat) String() string {
	if !s.valid() {
		return "unknown"
	}
	return statAccessors[s].name
}

// Mutable reports whether SetStat may write this stat.
func (s Stat) Mutable() bool {
	return s.valid() && statAccessors[s].set != nil
}

// Get reads the stat from a creature.
func (s Stat) Get(c *Creature) int {
	if !s.valid() {
		panic(fmt.Sprintf("game: unknown stat %d", int(s)))
	}
	return statAccessors[s].get(c)
}

func (s Stat) set(c *Creature, v int) {
	if !s.Mutable() {
		panic(fmt.Sprintf("game: stat %s is read-only", s))
	}
	statAccessors[s].set(c, v)
}

// ParseStat maps a snake_case stat tag to its Stat.
func ParseStat(tag string) (Stat, error) {
	switch strings.ToLower(tag) {
	case "base_strength":
		return StatBaseStrength, nil
	case "base_max_hp", "base_mhp":
		return StatBaseMaxHP, nil
	case "strength", "st":
		return StatStrength, nil
	case "hp", "health":
		return StatHP, nil
	case "land_bonus":
		return StatLandBonus, nil
	case "hp_before_battle":
		return StatHealthBeforeBattle, nil
	}
	return 0, fmt.Errorf("unknown stat %q", tag)
}
