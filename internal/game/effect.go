package game

import "fmt"

// EffectKind identifies a card effect variant.
type EffectKind int

const (
	KindModifyAttack EffectKind = iota
	KindModifyHealth
	KindSetAttack
	KindSetHealth
	KindSetStat
	KindNeutralizeOpponent
	KindReflect
	KindCriticalHit
	KindPenetrate
	KindAttackFirst
	KindAttackLast
	KindDefensive
	KindRecycleToOwnersHand
	KindDrawCards
	KindDiscardCards
	KindTimed
	KindConditional
)

var effectKindNames = [...]string{
	KindModifyAttack:        "modify_attack",
	KindModifyHealth:        "modify_health",
	KindSetAttack:           "set_attack",
	KindSetHealth:           "set_health",
	KindSetStat:             "set_stat",
	KindNeutralizeOpponent:  "neutralize_opponent",
	KindReflect:             "reflect",
	KindCriticalHit:         "critical_hit",
	KindPenetrate:           "penetrate",
	KindAttackFirst:         "attack_first",
	KindAttackLast:          "attack_last",
	KindDefensive:           "defensive",
	KindRecycleToOwnersHand: "recycle",
	KindDrawCards:           "draw_cards",
	KindDiscardCards:        "discard_cards",
	KindTimed:               "timed",
	KindConditional:         "conditional",
}

func (k EffectKind) String() string {
	if k < 0 || int(k) >= len(effectKindNames) {
		return "unknown"
	}
	return effectKindNames[k]
}

// ParseEffectKind maps an effect name to its kind.
func ParseEffectKind(name string) (EffectKind, error) {
	for k, n := range effectKindNames {
		if n == name {
			return EffectKind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown effect kind %q", name)
}

// CardEffect is a unit of battle logic. The set of effects is closed: instant
// mutators, the Timed wrapper and the ConditionalEffect wrapper. Trigger is
// the single dispatch point.
type CardEffect interface {
	Kind() EffectKind
	isEffect()
}

// --- Instant mutators ---

// ModifyAttack adds Amount to the target creature's current strength.
type ModifyAttack struct {
	Target Side
	Amount IntCalculation
}

// ModifyHealth adds Amount to the target creature's current HP.
type ModifyHealth struct {
	Target Side
	Amount IntCalculation
}

// SetAttack sets the target creature's current strength.
type SetAttack struct {
	Target Side
	Value  IntCalculation
}

// SetHealth sets the target creature's current HP.
type SetHealth struct {
	Target Side
	Value  IntCalculation
}

// SetStat writes a mutable stat on the target creature. Build it with NewSetStat.
type SetStat struct {
	Target Side
	Stat   Stat
	Value  IntCalculation
}

// NeutralizeOpponent makes the opponent's attacks fail this battle.
type NeutralizeOpponent struct{}

// Reflect makes the opponent's attacks hit the opponent itself.
type Reflect struct {
	Multiplier float64 // 0 means 1
}

// CriticalHit multiplies the owner's attacks by CriticalHitMultiplier.
type CriticalHit struct{}

// Penetrate makes the owner's attacks strip the defender's land bonus.
type Penetrate struct{}

// AttackFirst gives the owner first-strike priority.
type AttackFirst struct{}

// AttackLast makes the owner strike last.
type AttackLast struct{}

// Defensive is a marker; it does nothing when triggered.
type Defensive struct{}

// RecycleToOwnersHand returns the effect's source card to the owning player's hand.
type RecycleToOwnersHand struct{}

// DrawCards makes a player draw Amount cards from their library.
type DrawCards struct {
	Player Side
	Amount IntCalculation
}

// DiscardCards makes a player discard Amount random cards from hand.
type DiscardCards struct {
	Player Side
	Amount IntCalculation
}

// --- Wrappers ---

// Timed tags an effect with the phase it fires in.
type Timed struct {
	When   Timing
	Effect CardEffect
}

// ConditionalEffect triggers OnTrue or OnFalse depending on Condition.
// Either branch may be nil.
type ConditionalEffect struct {
	Condition Conditional
	OnTrue    CardEffect
	OnFalse   CardEffect
}

func (ModifyAttack) Kind() EffectKind        { return KindModifyAttack }
func (ModifyHealth) Kind() EffectKind        { return KindModifyHealth }
func (SetAttack) Kind() EffectKind           { return KindSetAttack }
func (SetHealth) Kind() EffectKind           { return KindSetHealth }
func (SetStat) Kind() EffectKind             { return KindSetStat }
func (NeutralizeOpponent) Kind() EffectKind  { return KindNeutralizeOpponent }
func (Reflect) Kind() EffectKind             { return KindReflect }
func (CriticalHit) Kind() EffectKind         { return KindCriticalHit }
func (Penetrate) Kind() EffectKind           { return KindPenetrate }
func (AttackFirst) Kind() EffectKind         { return KindAttackFirst }
func (AttackLast) Kind() EffectKind          { return KindAttackLast }
func (Defensive) Kind() EffectKind           { return KindDefensive }
func (RecycleToOwnersHand) Kind() EffectKind { return KindRecycleToOwnersHand }
func (DrawCards) Kind() EffectKind           { return KindDrawCards }
func (DiscardCards) Kind() EffectKind        { return KindDiscardCards }
func (Timed) Kind() EffectKind               { return KindTimed }
func (ConditionalEffect) Kind() EffectKind   { return KindConditional }

func (ModifyAttack) isEffect()        {}
func (ModifyHealth) isEffect()        {}
func (SetAttack) isEffect()           {}
func (SetHealth) isEffect()           {}
func (SetStat) isEffect()             {}
func (NeutralizeOpponent) isEffect()  {}
func (Reflect) isEffect()             {}
func (CriticalHit) isEffect()         {}
func (Penetrate) isEffect()           {}
func (AttackFirst) isEffect()         {}
func (AttackLast) isEffect()          {}
func (Defensive) isEffect()           {}
func (RecycleToOwnersHand) isEffect() {}
func (DrawCards) isEffect()           {}
func (DiscardCards) isEffect()        {}
func (Timed) isEffect()               {}
func (ConditionalEffect) isEffect()   {}

// NewSetStat builds a SetStat effect. It panics if the stat is read-only.
func NewSetStat(target Side, stat Stat, value IntCalculation) SetStat {
	if !stat.Mutable() {
		panic(fmt.Sprintf("game: cannot build SetStat for read-only stat %s", stat))
	}
	return SetStat{Target: target, Stat: stat, Value: value}
}

// --- Timing helpers ---

// Each helper wraps an effect in Timed for one phase.

func BeforeItemSelection(e CardEffect) Timed { return Timed{When: TimingBeforeItemSelection, Effect: e} }
func BeforeBattle(e CardEffect) Timed        { return Timed{When: TimingBeforeBattle, Effect: e} }
func AttackBonus(e CardEffect) Timed         { return Timed{When: TimingAttackBonus, Effect: e} }
func OnSuccessfulAttack(e CardEffect) Timed  { return Timed{When: TimingOnSuccessfulAttack, Effect: e} }
func OnFailedAttack(e CardEffect) Timed      { return Timed{When: TimingOnFailedAttack, Effect: e} }
func BattleEnd(e CardEffect) Timed           { return Timed{When: TimingBattleEnd, Effect: e} }

// LandBonusEffect adds the owner's land bonus to its HP as item selection opens.
func LandBonusEffect() CardEffect {
	return BeforeItemSelection(ModifyHealth{
		Target: SideOwner,
		Amount: StatOf{Of: SideOwner, Stat: StatLandBonus},
	})
}
