package game

import (
	"fmt"

	"github.com/peterkuimelis/clash/internal/log"
)

// Trigger resolves an effect from the owner's perspective and returns the
// steps describing what it did. All mutation happens synchronously here.
func Trigger(effect CardEffect, ds DataSet) []log.BattleStep {
	src := ds.sourceName()

	switch e := effect.(type) {
	case ModifyAttack:
		c := ds.creature(e.Target)
		amount := Calculate(e.Amount, ds)
		c.Strength += amount
		return []log.BattleStep{log.NewModifyAttackStep(c.Name, src, amount, c.Strength)}

	case ModifyHealth:
		c := ds.creature(e.Target)
		amount := Calculate(e.Amount, ds)
		c.HP += amount
		return []log.BattleStep{log.NewModifyHealthStep(c.Name, src, amount, c.HP)}

	case SetAttack:
		return setStat(ds, e.Target, StatStrength, e.Value)

	case SetHealth:
		return setStat(ds, e.Target, StatHP, e.Value)

	case SetStat:
		return setStat(ds, e.Target, e.Stat, e.Value)

	case NeutralizeOpponent:
		return applyModifier(ds, SideOpponent, BattleModifier{Kind: ModNeutralized})

	case Reflect:
		mult := e.Multiplier
		if mult == 0 {
			mult = 1
		}
		return applyModifier(ds, SideOpponent, BattleModifier{Kind: ModReflected, Multiplier: mult})

	case CriticalHit:
		return applyModifier(ds, SideOwner, BattleModifier{Kind: ModCritical})

	case Penetrate:
		return applyModifier(ds, SideOwner, BattleModifier{Kind: ModPenetrate})

	case AttackFirst:
		c := ds.creature(SideOwner)
		c.AttackFirst = true
		return []log.BattleStep{log.NewStatusAppliedStep(c.Name, src, "attacking first")}

	case AttackLast:
		c := ds.creature(SideOwner)
		c.AttackLast = true
		return []log.BattleStep{log.NewStatusAppliedStep(c.Name, src, "attacking last")}

	case Defensive:
		return nil

	case RecycleToOwnersHand:
		if ds.Source == nil {
			panic("game: recycle triggered without a source card")
		}
		p := ds.player(SideOwner)
		p.ReturnToHand(ds.Source)
		return []log.BattleStep{log.NewRecycleStep(p.Name, ds.Source.String())}

	case DrawCards:
		p := ds.player(e.Player)
		n := Calculate(e.Amount, ds)
		drawn := p.DrawCards(n)
		return []log.BattleStep{log.NewDrawCardsStep(p.Name, src, n, len(drawn))}

	case DiscardCards:
		p := ds.player(e.Player)
		n := Calculate(e.Amount, ds)
		before := len(p.Hand)
		discarded := p.DiscardCards(n)
		return []log.BattleStep{log.NewDiscardCardsStep(p.Name, src, before, len(discarded))}

	case Timed:
		return Trigger(e.Effect, ds)

	case ConditionalEffect:
		result := Evaluate(e.Condition, ds)
		steps := []log.BattleStep{log.NewConditionCheckStep(src, result)}
		branch := e.OnFalse
		if result {
			branch = e.OnTrue
		}
		if branch != nil {
			steps = append(steps, Trigger(branch, ds)...)
		}
		return steps

	default:
		panic(fmt.Sprintf("game: unhandled effect %T", effect))
	}
}

func setStat(ds DataSet, target Side, stat Stat, value IntCalculation) []log.BattleStep {
	c := ds.creature(target)
	v := Calculate(value, ds)
	stat.set(c, v)
	return []log.BattleStep{log.NewSetStatStep(c.Name, ds.sourceName(), stat.String(), v)}
}

func applyModifier(ds DataSet, target Side, m BattleModifier) []log.BattleStep {
	c := ds.creature(target)
	c.AddModifier(m)
	return []log.BattleStep{log.NewStatusAppliedStep(c.Name, ds.sourceName(), m.Kind.String())}
}

// triggerTimed fires every effect on the owner tagged with the given timing,
// innate effects first, in attachment order.
func triggerTimed(when Timing, ds DataSet) []log.BattleStep {
	var steps []log.BattleStep
	for _, ae := range ds.creature(SideOwner).AllEffects() {
		t, ok := ae.Effect.(Timed)
		if !ok || t.When != when {
			continue
		}
		eds := ds
		eds.Source = ae.Source
		steps = append(steps, Trigger(t, eds)...)
	}
	return steps
}
