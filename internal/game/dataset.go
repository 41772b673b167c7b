package game

import "fmt"

// DataSet is the read-only context every calculation, conditional and
// trigger is evaluated against. Owner is the creature the effect fires for
// and Opponent the creature it fires against.
type DataSet struct {
	Owner          *Creature
	Opponent       *Creature
	OwnerPlayer    *Player
	OpponentPlayer *Player
	Source         Card // card the triggering effect came from

	damage map[*Creature]int
}

// DamageDealt returns the battle damage a creature has dealt so far this battle.
func (ds DataSet) DamageDealt(c *Creature) int {
	if c == nil {
		return 0
	}
	return ds.damage[c]
}

// creature resolves a side to a creature. A missing creature is a contract
// violation by the caller.
func (ds DataSet) creature(side Side) *Creature {
	c := ds.Owner
	if side == SideOpponent {
		c = ds.Opponent
	}
	if c == nil {
		panic(fmt.Sprintf("game: no %s creature in data set", side))
	}
	return c
}

func (ds DataSet) player(side Side) *Player {
	p := ds.OwnerPlayer
	if side == SideOpponent {
		p = ds.OpponentPlayer
	}
	if p == nil {
		panic(fmt.Sprintf("game: no %s player in data set", side))
	}
	return p
}

func (ds DataSet) sourceName() string {
	if ds.Source == nil {
		return "unknown"
	}
	return ds.Source.String()
}
