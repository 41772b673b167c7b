package game

// equip makes a creature carry an item for the coming battle. The creature's
// restriction check runs before the player pays, so a restricted item never
// costs gold.
func equip(c *Creature, p *Player, item *ItemCard) error {
	if item == nil {
		return ErrInvalidItemChoice
	}
	if item.IsEmpty() {
		return nil
	}
	if !c.CanEquip(item) {
		return ErrItemRestricted
	}
	if p == nil {
		return ErrNoOwningPlayer
	}
	if err := p.PlayCard(item); err != nil {
		return err
	}
	c.attachItem(item)
	return nil
}
