package game

import "github.com/peterkuimelis/clash/internal/log"

// CriticalHitMultiplier scales the strength of a creature carrying the
// critical modifier.
const CriticalHitMultiplier = 1.5

// attackPlan is the full effect of one attack, computed without touching
// either creature.
type attackPlan struct {
	strength   int // effective strength after critical hit
	selfDamage int // reflected damage the attacker takes
	stripped   int // land bonus removed by penetrate
	damage     int // damage to the defender
	landed     bool
	steps      []log.BattleStep
}

// planAttack works out what an attack from a on d does. It only reads state,
// so planning the same state twice yields the same steps.
func planAttack(a, d *Creature) attackPlan {
	var p attackPlan

	p.strength = max(a.Strength, 0)
	if a.HasModifier(ModCritical) {
		p.strength = int(float64(p.strength) * CriticalHitMultiplier)
		p.steps = append(p.steps, log.NewCriticalHitStep(a.Name, p.strength))
	}

	if m, ok := a.Modifier(ModReflected); ok {
		p.selfDamage = int(float64(p.strength) * m.Multiplier)
		p.steps = append(p.steps, log.NewAttackReflectedStep(a.Name, p.selfDamage, a.HP-p.selfDamage))
		return p
	}

	if a.HasModifier(ModNeutralized) {
		p.steps = append(p.steps, log.NewAttackNeutralizedStep(a.Name))
		return p
	}

	if a.HasModifier(ModPenetrate) {
		p.stripped = d.LandBonus
		p.steps = append(p.steps, log.NewPenetrateStep(a.Name, d.Name, p.stripped))
	}
	p.damage = p.strength
	p.landed = p.damage > 0
	p.steps = append(p.steps, log.NewDamageStep(a.Name, d.Name, p.damage, d.HP-p.stripped-p.damage))
	return p
}

// applyDamage resolves an attack from a on d, records the damage a dealt and
// reports whether the attack hurt the defender.
func applyDamage(a, d *Creature, dealt map[*Creature]int) ([]log.BattleStep, bool) {
	p := planAttack(a, d)

	a.HP -= p.selfDamage
	if p.stripped != 0 {
		d.HP -= p.stripped
		d.LandBonus = 0
	}
	d.HP -= p.damage
	dealt[a] += p.damage

	return p.steps, p.landed
}
