package game

import (
	"fmt"
	"slices"
)

// Conditional is a boolean predicate over a DataSet.
type Conditional interface {
	isConditional()
}

// OwnerHasEffect holds when the owner carries a top-level effect of Kind.
type OwnerHasEffect struct {
	Kind EffectKind
}

// OpponentHasEffect holds when the opponent carries a top-level effect of Kind.
type OpponentHasEffect struct {
	Kind EffectKind
}

// OwnerHasAnyElement holds when the owner has at least one of Elements.
type OwnerHasAnyElement struct {
	Elements []Element
}

// OpponentHasAnyElement holds when the opponent has at least one of Elements.
type OpponentHasAnyElement struct {
	Elements []Element
}

// LessThanOrEqual holds when X <= Y.
type LessThanOrEqual struct {
	X, Y IntCalculation
}

// GreaterThanOrEqual holds when X >= Y.
type GreaterThanOrEqual struct {
	X, Y IntCalculation
}

// And holds when both operands hold.
type And struct {
	First, Second Conditional
}

// Or holds when either operand holds.
type Or struct {
	First, Second Conditional
}

func (OwnerHasEffect) isConditional()        {}
func (OpponentHasEffect) isConditional()     {}
func (OwnerHasAnyElement) isConditional()    {}
func (OpponentHasAnyElement) isConditional() {}
func (LessThanOrEqual) isConditional()       {}
func (GreaterThanOrEqual) isConditional()    {}
func (And) isConditional()                   {}
func (Or) isConditional()                    {}

// Evaluate checks a condition. Presence checks are false when the creature
// they refer to is missing; And/Or always evaluate both operands.
func Evaluate(cond Conditional, ds DataSet) bool {
	switch c := cond.(type) {
	case OwnerHasEffect:
		return ds.Owner != nil && ds.Owner.HasEffect(c.Kind)
	case OpponentHasEffect:
		return ds.Opponent != nil && ds.Opponent.HasEffect(c.Kind)
	case OwnerHasAnyElement:
		return hasAnyElement(ds.Owner, c.Elements)
	case OpponentHasAnyElement:
		return hasAnyElement(ds.Opponent, c.Elements)
	case LessThanOrEqual:
		return Calculate(c.X, ds) <= Calculate(c.Y, ds)
	case GreaterThanOrEqual:
		return Calculate(c.X, ds) >= Calculate(c.Y, ds)
	case And:
		first, second := Evaluate(c.First, ds), Evaluate(c.Second, ds)
		return first && second
	case Or:
		first, second := Evaluate(c.First, ds), Evaluate(c.Second, ds)
		return first || second
	default:
		panic(fmt.Sprintf("game: unhandled conditional %T", cond))
	}
}

func hasAnyElement(c *Creature, elements []Element) bool {
	if c == nil {
		return false
	}
	return slices.ContainsFunc(elements, c.HasElement)
}
