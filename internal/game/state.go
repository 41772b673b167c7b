package game

import (
	"math/rand/v2"
	"slices"
)

// Player holds one player's gold and card collections.
type Player struct {
	Name      string
	Gold      int
	Library   []Card // top of library is last element (pop from end)
	Hand      []Card
	Graveyard []Card

	rng *rand.Rand
}

// NewPlayer creates a player with empty collections. The seed drives random
// discards, so a given seed always discards the same cards.
func NewPlayer(name string, gold int, seed uint64) *Player {
	return &Player{
		Name: name,
		Gold: gold,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (p *Player) String() string {
	if p == nil {
		return "(none)"
	}
	return p.Name
}

// HandCount returns the number of cards in hand.
func (p *Player) HandCount() int {
	return len(p.Hand)
}

// HasInHand reports whether this exact card is in the player's hand.
func (p *Player) HasInHand(card Card) bool {
	return slices.Contains(p.Hand, card)
}

// CanPlay checks that the card is in hand and affordable.
func (p *Player) CanPlay(card Card) error {
	if !p.HasInHand(card) {
		return ErrCardNotInHand
	}
	if card.Cost() > p.Gold {
		return ErrInsufficientGold
	}
	return nil
}

// PlayCard pays for a card and moves it from hand to graveyard.
func (p *Player) PlayCard(card Card) error {
	if err := p.CanPlay(card); err != nil {
		return err
	}
	p.Gold -= card.Cost()
	p.removeFromHand(card)
	p.Graveyard = append(p.Graveyard, card)
	return nil
}

// AddToHand puts cards into the player's hand.
func (p *Player) AddToHand(cards ...Card) {
	p.Hand = append(p.Hand, cards...)
}

// AddToLibrary puts cards on top of the library, in order.
func (p *Player) AddToLibrary(cards ...Card) {
	p.Library = append(p.Library, cards...)
}

// ReturnToHand moves a card from the graveyard back to the hand. A card that
// is not in the graveyard is added to the hand directly.
func (p *Player) ReturnToHand(card Card) {
	if i := slices.Index(p.Graveyard, card); i >= 0 {
		p.Graveyard = slices.Delete(p.Graveyard, i, i+1)
	}
	p.Hand = append(p.Hand, card)
}

// DrawCards moves up to n cards from the top of the library to the hand and
// returns the cards actually drawn.
func (p *Player) DrawCards(n int) []Card {
	var drawn []Card
	for i := 0; i < n && len(p.Library) > 0; i++ {
		card := p.Library[len(p.Library)-1]
		p.Library = p.Library[:len(p.Library)-1]
		p.Hand = append(p.Hand, card)
		drawn = append(drawn, card)
	}
	return drawn
}

// DiscardCards moves up to n random cards from hand to graveyard and returns
// the discarded cards.
func (p *Player) DiscardCards(n int) []Card {
	var discarded []Card
	for i := 0; i < n && len(p.Hand) > 0; i++ {
		idx := 0
		if p.rng != nil {
			idx = p.rng.IntN(len(p.Hand))
		}
		card := p.Hand[idx]
		p.Hand = slices.Delete(p.Hand, idx, idx+1)
		p.Graveyard = append(p.Graveyard, card)
		discarded = append(discarded, card)
	}
	return discarded
}

func (p *Player) removeFromHand(card Card) {
	if i := slices.Index(p.Hand, card); i >= 0 {
		p.Hand = slices.Delete(p.Hand, i, i+1)
	}
}
