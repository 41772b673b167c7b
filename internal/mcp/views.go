package mcp

import (
	"github.com/peterkuimelis/clash/internal/game"
	"github.com/peterkuimelis/clash/internal/log"
	"github.com/peterkuimelis/clash/internal/scenario"
)

// StepView is a battle step as presented in tool responses.
type StepView struct {
	Seq    int    `json:"seq"`
	Phase  string `json:"phase"`
	Type   string `json:"type"`
	Text   string `json:"text"`
	Card   string `json:"card,omitempty"`
	Target string `json:"target,omitempty"`
	Source string `json:"source,omitempty"`
	Stat   string `json:"stat,omitempty"`
	Amount int    `json:"amount,omitempty"`
	Total  int    `json:"total,omitempty"`
	Flag   bool   `json:"flag,omitempty"`
}

// CreatureView is a creature's state after the battle's cleanup.
type CreatureView struct {
	Name      string   `json:"name"`
	Strength  int      `json:"strength"`
	HP        int      `json:"hp"`
	MaxHP     int      `json:"max_hp"`
	Elements  []string `json:"elements,omitempty"`
	Destroyed bool     `json:"destroyed"`
}

// SideView is one side of a resolved battle.
type SideView struct {
	Creature CreatureView `json:"creature"`
	Item     string       `json:"item"`
	Player   string       `json:"player"`
	Gold     int          `json:"gold"`
	Hand     []string     `json:"hand"`
}

// ItemView describes a built-in item.
type ItemView struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
}

// ToolResponse is the JSON envelope returned by resolve_battle and last_battle.
type ToolResponse struct {
	Steps       []StepView `json:"steps"`
	Outcome     string     `json:"outcome,omitempty"`
	Description string     `json:"description,omitempty"`
	Attacker    *SideView  `json:"attacker,omitempty"`
	Defender    *SideView  `json:"defender,omitempty"`
	Error       string     `json:"error,omitempty"`
}

func stepViews(steps []log.BattleStep) []StepView {
	views := make([]StepView, len(steps))
	for i, s := range steps {
		views[i] = StepView{
			Seq:    s.Seq,
			Phase:  s.Phase,
			Type:   s.Type.String(),
			Text:   s.Describe(),
			Card:   s.Card,
			Target: s.Target,
			Source: s.Source,
			Stat:   s.Stat,
			Amount: s.Amount,
			Total:  s.Total,
			Flag:   s.Flag,
		}
	}
	return views
}

func sideView(s scenario.Side) *SideView {
	c := s.Creature
	v := &SideView{
		Creature: CreatureView{
			Name:      c.Name,
			Strength:  c.Strength,
			HP:        c.HP,
			MaxHP:     c.BaseMaxHP,
			Destroyed: c.IsDestroyed(),
		},
		Item:   s.Item.Name,
		Player: s.Player.Name,
		Gold:   s.Player.Gold,
		Hand:   make([]string, 0, len(s.Player.Hand)),
	}
	for _, e := range c.Elements {
		v.Creature.Elements = append(v.Creature.Elements, e.String())
	}
	for _, card := range s.Player.Hand {
		v.Hand = append(v.Hand, card.String())
	}
	return v
}

func itemView(item *game.ItemCard) ItemView {
	return ItemView{
		Name:        item.Name,
		Type:        item.Type.String(),
		Cost:        item.Cost(),
		Description: item.Description,
	}
}
