package game

import (
	"fmt"
	"strings"
)

// IntCalculation computes an integer from a DataSet. The set of calculations
// is closed; Calculate switches over every variant.
type IntCalculation interface {
	String() string
	isCalculation()
}

// Constant is a fixed value.
type Constant int

// Negate flips the sign of another calculation.
type Negate struct {
	Of IntCalculation
}

// Sum adds its terms.
type Sum []IntCalculation

// StatOf reads a stat from the owner or the opponent creature.
type StatOf struct {
	Of   Side
	Stat Stat
}

// OpponentDamageDealt is the battle damage the opponent has dealt so far.
type OpponentDamageDealt struct{}

func (Constant) isCalculation()            {}
func (Negate) isCalculation()              {}
func (Sum) isCalculation()                 {}
func (StatOf) isCalculation()              {}
func (OpponentDamageDealt) isCalculation() {}

func (c Constant) String() string { return fmt.Sprint(int(c)) }
func (n Negate) String() string   { return "-(" + n.Of.String() + ")" }

func (s Sum) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (s StatOf) String() string {
	return fmt.Sprintf("%s's %s", s.Of, s.Stat)
}

func (OpponentDamageDealt) String() string { return "damage opponent dealt" }

// Calculate evaluates a calculation. Stat lookups panic when the creature
// they need is missing from the data set.
func Calculate(calc IntCalculation, ds DataSet) int {
	switch c := calc.(type) {
	case Constant:
		return int(c)
	case Negate:
		return -Calculate(c.Of, ds)
	case Sum:
		total := 0
		for _, t := range c {
			total += Calculate(t, ds)
		}
		return total
	case StatOf:
		return c.Stat.Get(ds.creature(c.Of))
	case OpponentDamageDealt:
		return ds.DamageDealt(ds.creature(SideOpponent))
	default:
		panic(fmt.Sprintf("game: unhandled calculation %T", calc))
	}
}
