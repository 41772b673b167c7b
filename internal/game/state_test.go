package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayCard(t *testing.T) {
	p := NewPlayer("P1", 50, 1)
	item := NewItem("Sword", 30, 1, ItemWeapon)

	assert.ErrorIs(t, p.PlayCard(item), ErrCardNotInHand)

	p.AddToHand(item)
	require.NoError(t, p.CanPlay(item))
	require.NoError(t, p.PlayCard(item))
	assert.Equal(t, 20, p.Gold)
	assert.Empty(t, p.Hand)
	assert.Equal(t, []Card{item}, p.Graveyard)

	other := NewItem("Sword", 30, 1, ItemWeapon)
	p.AddToHand(other)
	assert.ErrorIs(t, p.PlayCard(other), ErrInsufficientGold)
	assert.Equal(t, 20, p.Gold)
	assert.True(t, p.HasInHand(other))
	assert.False(t, p.HasInHand(item), "same name is not the same card")
}

func TestDrawCardsFromTop(t *testing.T) {
	p := NewPlayer("P1", 0, 1)
	bottom := NewItem("bottom", 1, 1, ItemTool)
	top := NewItem("top", 1, 1, ItemTool)
	p.AddToLibrary(bottom, top)

	drawn := p.DrawCards(1)
	require.Len(t, drawn, 1)
	assert.Same(t, top, drawn[0])

	drawn = p.DrawCards(5)
	require.Len(t, drawn, 1)
	assert.Same(t, bottom, drawn[0])
	assert.Empty(t, p.Library)
	assert.Equal(t, 2, p.HandCount())

	assert.Empty(t, p.DrawCards(1))
	assert.Empty(t, p.DrawCards(-1))
}

func TestDiscardCardsIsSeeded(t *testing.T) {
	hand := func() []Card {
		var cards []Card
		for _, n := range []string{"a", "b", "c", "d", "e", "f"} {
			cards = append(cards, NewItem(n, 1, 1, ItemTool))
		}
		return cards
	}
	names := func(cards []Card) []string {
		var out []string
		for _, c := range cards {
			out = append(out, c.String())
		}
		return out
	}

	p1 := NewPlayer("P1", 0, 42)
	p1.AddToHand(hand()...)
	p2 := NewPlayer("P2", 0, 42)
	p2.AddToHand(hand()...)

	d1 := p1.DiscardCards(3)
	d2 := p2.DiscardCards(3)

	require.Len(t, d1, 3)
	assert.Equal(t, names(d1), names(d2))
	assert.Len(t, p1.Hand, 3)
	assert.Equal(t, d1, p1.Graveyard)

	assert.Len(t, p1.DiscardCards(10), 3)
	assert.Empty(t, p1.Hand)
}

func TestReturnToHand(t *testing.T) {
	p := NewPlayer("P1", 0, 1)
	item := NewItem("Boomerang", 0, 1, ItemTool)
	kept := NewItem("Kept", 0, 1, ItemTool)
	p.Graveyard = []Card{kept, item}

	p.ReturnToHand(item)
	assert.Equal(t, []Card{kept}, p.Graveyard)
	assert.Equal(t, []Card{item}, p.Hand)

	loose := NewItem("Loose", 0, 1, ItemTool)
	p.ReturnToHand(loose)
	assert.Len(t, p.Hand, 2)
	assert.Len(t, p.Graveyard, 1)
}
