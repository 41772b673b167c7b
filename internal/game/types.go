package game

import (
	"fmt"
	"strings"
)

// --- Enums ---

type Phase int

const (
	PhaseSetup Phase = iota
	PhaseItemSelection
	PhaseBeforeBattle
	PhaseAttack
	PhaseBattleEnd
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseItemSelection:
		return "Item Selection"
	case PhaseBeforeBattle:
		return "Before Battle"
	case PhaseAttack:
		return "Attack"
	case PhaseBattleEnd:
		return "Battle End"
	case PhaseDone:
		return "Done"
	default:
		return "Setup"
	}
}

type Element int

const (
	ElementNeutral Element = iota
	ElementFire
	ElementWater
	ElementEarth
	ElementAir
)

func (e Element) String() string {
	switch e {
	case ElementFire:
		return "fire"
	case ElementWater:
		return "water"
	case ElementEarth:
		return "earth"
	case ElementAir:
		return "air"
	default:
		return "neutral"
	}
}

// ItemType is the item category checked against a creature's equip restrictions.
type ItemType int

const (
	ItemWeapon ItemType = iota
	ItemArmor
	ItemTool
)

func (t ItemType) String() string {
	switch t {
	case ItemWeapon:
		return "weapon"
	case ItemArmor:
		return "armor"
	case ItemTool:
		return "tool"
	default:
		return "unknown"
	}
}

// Side selects a creature or player relative to the effect's owner.
type Side int

const (
	SideOwner Side = iota
	SideOpponent
)

func (s Side) String() string {
	if s == SideOpponent {
		return "opponent"
	}
	return "owner"
}

// Timing is the resolution phase a timed effect fires in.
type Timing int

const (
	TimingBeforeItemSelection Timing = iota
	TimingBeforeBattle
	TimingAttackBonus
	TimingOnSuccessfulAttack
	TimingOnFailedAttack
	TimingBattleEnd
)

func (t Timing) String() string {
	switch t {
	case TimingBeforeItemSelection:
		return "before item selection"
	case TimingBeforeBattle:
		return "before battle"
	case TimingAttackBonus:
		return "attack bonus"
	case TimingOnSuccessfulAttack:
		return "on successful attack"
	case TimingOnFailedAttack:
		return "on failed attack"
	case TimingBattleEnd:
		return "battle end"
	default:
		return "unknown"
	}
}

// Modifier is a transient per-battle flag that only affects damage application.
type Modifier int

const (
	ModNeutralized Modifier = iota
	ModReflected
	ModCritical
	ModPenetrate
)

func (m Modifier) String() string {
	switch m {
	case ModNeutralized:
		return "neutralized"
	case ModReflected:
		return "reflected"
	case ModCritical:
		return "critical"
	case ModPenetrate:
		return "penetrating"
	default:
		return "unknown"
	}
}

// BattleModifier is a modifier placed on a creature for the current battle.
type BattleModifier struct {
	Kind       Modifier
	Multiplier float64 // reflected damage multiplier; unused by other kinds
}

// --- Parsing (used by the scenario loader) ---

func ParseElement(s string) (Element, error) {
	for e := ElementNeutral; e <= ElementAir; e++ {
		if strings.EqualFold(s, e.String()) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown element %q", s)
}

func ParseItemType(s string) (ItemType, error) {
	for t := ItemWeapon; t <= ItemTool; t++ {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown item type %q", s)
}

func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "owner", "self":
		return SideOwner, nil
	case "opponent":
		return SideOpponent, nil
	}
	return 0, fmt.Errorf("unknown side %q (want owner or opponent)", s)
}
