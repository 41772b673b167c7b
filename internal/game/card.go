package game

// Card is anything a player can hold: creatures and items.
// Identity is pointer identity; two cards with the same name are different cards.
type Card interface {
	String() string
	Cost() int
}

// ItemCard is equipment a creature may carry into a single battle.
type ItemCard struct {
	Name        string
	Description string
	BaseCost    int
	Rarity      int
	Type        ItemType
	Effects     []CardEffect
}

// NoItem is the sentinel choice for a side that declines to equip anything.
var NoItem = &ItemCard{Name: "No Item"}

// NewItem creates an item card with the given effects.
func NewItem(name string, cost, rarity int, typ ItemType, effects ...CardEffect) *ItemCard {
	return &ItemCard{
		Name:     name,
		BaseCost: cost,
		Rarity:   rarity,
		Type:     typ,
		Effects:  effects,
	}
}

func (i *ItemCard) String() string {
	return i.Name
}

func (i *ItemCard) Cost() int {
	return i.BaseCost
}

// IsEmpty reports whether this is the NoItem sentinel.
func (i *ItemCard) IsEmpty() bool {
	return i == NoItem
}

// AddEffect appends an effect to the item.
func (i *ItemCard) AddEffect(effect CardEffect) *ItemCard {
	i.Effects = append(i.Effects, effect)
	return i
}
