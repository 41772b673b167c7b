package game

// BatteringRam: weapon. ST+20 before battle; destroys a defensive opponent on attack.
func BatteringRam() *ItemCard {
	item := NewItem("Battering Ram", 30, 1, ItemWeapon,
		BeforeBattle(ModifyAttack{Target: SideOwner, Amount: Constant(20)}),
		AttackBonus(ConditionalEffect{
			Condition: OpponentHasEffect{Kind: KindDefensive},
			OnTrue:    SetHealth{Target: SideOpponent, Value: Constant(0)},
		}),
	)
	item.Description = "ST+20. Destroys the enemy creature if it is defensive."
	return item
}

// Buckler: armor. Neutralizes opponents with base ST 30 or less.
func Buckler() *ItemCard {
	item := NewItem("Buckler", 30, 1, ItemArmor,
		BeforeBattle(ConditionalEffect{
			Condition: LessThanOrEqual{
				X: StatOf{Of: SideOpponent, Stat: StatBaseStrength},
				Y: Constant(30),
			},
			OnTrue: NeutralizeOpponent{},
		}),
	)
	item.Description = "Neutralizes the attack of an enemy with base ST 30 or less."
	return item
}

// FireShield: armor. Neutralizes the opponent when either side is fire.
func FireShield() *ItemCard {
	item := NewItem("Fire Shield", 40, 1, ItemArmor,
		BeforeBattle(ConditionalEffect{
			Condition: Or{
				First:  OpponentHasAnyElement{Elements: []Element{ElementFire}},
				Second: OwnerHasAnyElement{Elements: []Element{ElementFire}},
			},
			OnTrue: NeutralizeOpponent{},
		}),
	)
	item.Description = "Neutralizes the attack if either creature is fire."
	return item
}

// AngryMask: tool. HP+30; pays the opponent back for every point of damage it dealt.
func AngryMask() *ItemCard {
	item := NewItem("Angry Mask", 10, 1, ItemTool,
		BeforeBattle(ModifyHealth{Target: SideOwner, Amount: Constant(30)}),
		BattleEnd(ModifyHealth{Target: SideOpponent, Amount: Negate{Of: OpponentDamageDealt{}}}),
	)
	item.Description = "HP+30. Deals the enemy the damage it dealt."
	return item
}

// Boomerang: tool. ST+20, HP+10; returns to its owner's hand after battle.
func Boomerang() *ItemCard {
	item := NewItem("Boomerang", 40, 1, ItemTool,
		BeforeBattle(ModifyAttack{Target: SideOwner, Amount: Constant(20)}),
		BeforeBattle(ModifyHealth{Target: SideOwner, Amount: Constant(10)}),
		BattleEnd(RecycleToOwnersHand{}),
	)
	item.Description = "ST+20, HP+10. Returns to hand after battle."
	return item
}

// CounterAmulet: tool. Reflects the opponent's attack back at it.
func CounterAmulet() *ItemCard {
	item := NewItem("Counter Amulet", 30, 1, ItemTool,
		BeforeBattle(Reflect{Multiplier: 1}),
	)
	item.Description = "Reflects the enemy's attack back at it."
	return item
}
