package game

import (
	"fmt"
	"sort"
)

// ItemRegistry maps item names to their constructor functions.
var ItemRegistry = map[string]func() *ItemCard{
	"Battering Ram":  BatteringRam,
	"Buckler":        Buckler,
	"Fire Shield":    FireShield,
	"Angry Mask":     AngryMask,
	"Boomerang":      Boomerang,
	"Counter Amulet": CounterAmulet,
}

// LookupItem looks up an item by name and returns a new instance.
// Panics if the item is not found.
func LookupItem(name string) *ItemCard {
	ctor, ok := ItemRegistry[name]
	if !ok {
		panic(fmt.Sprintf("item not found in registry: %q", name))
	}
	return ctor()
}

// ItemNames returns the registered item names in sorted order.
func ItemNames() []string {
	names := make([]string, 0, len(ItemRegistry))
	for name := range ItemRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
