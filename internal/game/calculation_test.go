package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	owner := vanillaCreature("Owner", 30, 50)
	opponent := vanillaCreature("Opponent", 20, 40)
	opponent.Strength = 25
	ds := testDataSet(owner, opponent)
	ds.damage[opponent] = 12

	tests := []struct {
		name string
		calc IntCalculation
		want int
	}{
		{"constant", Constant(7), 7},
		{"negate", Negate{Of: Constant(7)}, -7},
		{"double negate", Negate{Of: Negate{Of: Constant(3)}}, 3},
		{"sum", Sum{Constant(1), Constant(2), Negate{Of: Constant(4)}}, -1},
		{"empty sum", Sum{}, 0},
		{"owner base strength", StatOf{Of: SideOwner, Stat: StatBaseStrength}, 30},
		{"opponent base strength", StatOf{Of: SideOpponent, Stat: StatBaseStrength}, 20},
		{"opponent current strength", StatOf{Of: SideOpponent, Stat: StatStrength}, 25},
		{"owner hp", StatOf{Of: SideOwner, Stat: StatHP}, 50},
		{"opponent damage dealt", OpponentDamageDealt{}, 12},
		{"negated damage dealt", Negate{Of: OpponentDamageDealt{}}, -12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calculate(tt.calc, ds))
		})
	}
}

func TestCalculateMissingActorPanics(t *testing.T) {
	ds := testDataSet(vanillaCreature("Owner", 1, 1), nil)
	assert.Panics(t, func() { Calculate(StatOf{Of: SideOpponent, Stat: StatHP}, ds) })
	assert.Panics(t, func() { Calculate(OpponentDamageDealt{}, ds) })
	assert.NotPanics(t, func() { Calculate(StatOf{Of: SideOwner, Stat: StatHP}, ds) })
}

func TestCalculationString(t *testing.T) {
	calc := Sum{Constant(2), Negate{Of: StatOf{Of: SideOpponent, Stat: StatStrength}}}
	assert.Equal(t, "2 + -(opponent's strength)", calc.String())
}
