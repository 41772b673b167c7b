package log

import "fmt"

// StepType enumerates all observable battle events.
type StepType int

const (
	StepPhaseChange StepType = iota
	StepItemEquipped
	StepNoItem
	StepAttacksFirst
	StepAttacksLast
	StepAttackDeclare
	StepDamage
	StepCriticalHit
	StepPenetrate
	StepAttackReflected
	StepAttackNeutralized
	StepCardDefeated
	StepCardSurvives
	StepConditionCheck
	StepModifyAttack
	StepModifyHealth
	StepSetStat
	StepStatusApplied
	StepDrawCards
	StepDiscardCards
	StepRecycle
	StepOutcome
)

func (t StepType) String() string {
	switch t {
	case StepPhaseChange:
		return "PhaseChange"
	case StepItemEquipped:
		return "ItemEquipped"
	case StepNoItem:
		return "NoItem"
	case StepAttacksFirst:
		return "AttacksFirst"
	case StepAttacksLast:
		return "AttacksLast"
	case StepAttackDeclare:
		return "AttackDeclare"
	case StepDamage:
		return "Damage"
	case StepCriticalHit:
		return "CriticalHit"
	case StepPenetrate:
		return "Penetrate"
	case StepAttackReflected:
		return "AttackReflected"
	case StepAttackNeutralized:
		return "AttackNeutralized"
	case StepCardDefeated:
		return "CardDefeated"
	case StepCardSurvives:
		return "CardSurvives"
	case StepConditionCheck:
		return "ConditionCheck"
	case StepModifyAttack:
		return "ModifyAttack"
	case StepModifyHealth:
		return "ModifyHealth"
	case StepSetStat:
		return "SetStat"
	case StepStatusApplied:
		return "StatusApplied"
	case StepDrawCards:
		return "DrawCards"
	case StepDiscardCards:
		return "DiscardCards"
	case StepRecycle:
		return "Recycle"
	case StepOutcome:
		return "Outcome"
	default:
		return "Unknown"
	}
}

// BattleStep is a single observable event in a battle. Steps are values and
// are never changed once logged; Describe renders one from its fields alone.
type BattleStep struct {
	Seq    int      // monotonic sequence number, assigned by the logger
	Phase  string   // battle phase the step happened in
	Type   StepType // step type
	Card   string   // acting creature (or player for card movement)
	Target string   // receiving creature, item or player
	Source string   // card whose effect produced the step
	Stat   string   // stat or status name
	Amount int
	Total  int
	Flag   bool // attacker side for AttackDeclare, result for ConditionCheck
}

// Describe returns the human-readable text of a step.
func (s BattleStep) Describe() string {
	switch s.Type {
	case StepPhaseChange:
		return fmt.Sprintf("Phase → %s", s.Stat)
	case StepItemEquipped:
		return fmt.Sprintf("%s equips %s (%s pays %dG)", s.Card, s.Target, s.Source, s.Amount)
	case StepNoItem:
		return fmt.Sprintf("%s fights without an item", s.Card)
	case StepAttacksFirst:
		return fmt.Sprintf("%s attacks first", s.Card)
	case StepAttacksLast:
		return fmt.Sprintf("%s attacks last", s.Card)
	case StepAttackDeclare:
		if s.Flag {
			return fmt.Sprintf("%s attacks for %d.", s.Card, s.Amount)
		}
		return fmt.Sprintf("Defender %s attacks for %d.", s.Card, s.Amount)
	case StepDamage:
		return fmt.Sprintf("%s deals %d damage to %s (%d HP left)", s.Card, s.Amount, s.Target, s.Total)
	case StepCriticalHit:
		return fmt.Sprintf("%s lands a critical hit (ST %d)", s.Card, s.Amount)
	case StepPenetrate:
		return fmt.Sprintf("%s penetrates %s's land bonus (-%d HP)", s.Card, s.Target, s.Amount)
	case StepAttackReflected:
		return fmt.Sprintf("%s's attack is reflected: %d damage to itself (%d HP left)", s.Card, s.Amount, s.Total)
	case StepAttackNeutralized:
		return fmt.Sprintf("%s is neutralized, attack failed", s.Card)
	case StepCardDefeated:
		return fmt.Sprintf("%s is defeated.", s.Card)
	case StepCardSurvives:
		return fmt.Sprintf("%s survives with %d HP remaining.", s.Card, s.Total)
	case StepConditionCheck:
		return fmt.Sprintf("%s condition evaluated to %t", s.Source, s.Flag)
	case StepModifyAttack:
		return fmt.Sprintf("%s changes attack by %s via %s effect (ST %d)", s.Card, withSign(s.Amount), s.Source, s.Total)
	case StepModifyHealth:
		return fmt.Sprintf("%s changes health by %s via %s effect (HP %d)", s.Card, withSign(s.Amount), s.Source, s.Total)
	case StepSetStat:
		return fmt.Sprintf("%s's %s is set to %d via %s effect", s.Card, s.Stat, s.Total, s.Source)
	case StepStatusApplied:
		return fmt.Sprintf("%s is %s via %s effect", s.Card, s.Stat, s.Source)
	case StepDrawCards:
		return fmt.Sprintf("%s draws %d card(s) via %s effect", s.Card, s.Total, s.Source)
	case StepDiscardCards:
		return fmt.Sprintf("%s discards %d of %d card(s) in hand via %s effect", s.Card, s.Total, s.Amount, s.Source)
	case StepRecycle:
		return fmt.Sprintf("%s returns to %s's hand", s.Target, s.Card)
	case StepOutcome:
		return s.Stat
	default:
		return s.Type.String()
	}
}

func withSign(n int) string {
	if n < 0 {
		return fmt.Sprint(n)
	}
	return fmt.Sprintf("+%d", n)
}

// --- Helper constructors for common steps ---

func NewPhaseChangeStep(phase string) BattleStep {
	return BattleStep{Type: StepPhaseChange, Stat: phase}
}

func NewItemEquippedStep(creature, item, player string, cost int) BattleStep {
	return BattleStep{Type: StepItemEquipped, Card: creature, Target: item, Source: player, Amount: cost}
}

func NewNoItemStep(creature string) BattleStep {
	return BattleStep{Type: StepNoItem, Card: creature}
}

func NewAttacksFirstStep(creature string) BattleStep {
	return BattleStep{Type: StepAttacksFirst, Card: creature}
}

func NewAttacksLastStep(creature string) BattleStep {
	return BattleStep{Type: StepAttacksLast, Card: creature}
}

func NewAttackDeclareStep(creature string, value int, isAttacker bool) BattleStep {
	return BattleStep{Type: StepAttackDeclare, Card: creature, Amount: value, Flag: isAttacker}
}

func NewDamageStep(attacker, defender string, amount, remaining int) BattleStep {
	return BattleStep{Type: StepDamage, Card: attacker, Target: defender, Amount: amount, Total: remaining}
}

func NewCriticalHitStep(creature string, strength int) BattleStep {
	return BattleStep{Type: StepCriticalHit, Card: creature, Amount: strength}
}

func NewPenetrateStep(attacker, defender string, stripped int) BattleStep {
	return BattleStep{Type: StepPenetrate, Card: attacker, Target: defender, Amount: stripped}
}

func NewAttackReflectedStep(attacker string, amount, remaining int) BattleStep {
	return BattleStep{Type: StepAttackReflected, Card: attacker, Target: attacker, Amount: amount, Total: remaining}
}

func NewAttackNeutralizedStep(attacker string) BattleStep {
	return BattleStep{Type: StepAttackNeutralized, Card: attacker}
}

func NewCardDefeatedStep(creature string) BattleStep {
	return BattleStep{Type: StepCardDefeated, Card: creature}
}

func NewCardSurvivesStep(creature string, health int) BattleStep {
	return BattleStep{Type: StepCardSurvives, Card: creature, Total: health}
}

func NewConditionCheckStep(source string, result bool) BattleStep {
	return BattleStep{Type: StepConditionCheck, Source: source, Flag: result}
}

func NewModifyAttackStep(creature, source string, amount, total int) BattleStep {
	return BattleStep{Type: StepModifyAttack, Card: creature, Source: source, Amount: amount, Total: total}
}

func NewModifyHealthStep(creature, source string, amount, total int) BattleStep {
	return BattleStep{Type: StepModifyHealth, Card: creature, Source: source, Amount: amount, Total: total}
}

func NewSetStatStep(creature, source, stat string, value int) BattleStep {
	return BattleStep{Type: StepSetStat, Card: creature, Source: source, Stat: stat, Total: value}
}

// NewStatusAppliedStep records a battle modifier or priority flag placed on a creature.
func NewStatusAppliedStep(creature, source, status string) BattleStep {
	return BattleStep{Type: StepStatusApplied, Card: creature, Source: source, Stat: status}
}

func NewDrawCardsStep(player, source string, requested, drawn int) BattleStep {
	return BattleStep{Type: StepDrawCards, Card: player, Source: source, Amount: requested, Total: drawn}
}

func NewDiscardCardsStep(player, source string, handBefore, discarded int) BattleStep {
	return BattleStep{Type: StepDiscardCards, Card: player, Source: source, Amount: handBefore, Total: discarded}
}

func NewRecycleStep(player, card string) BattleStep {
	return BattleStep{Type: StepRecycle, Card: player, Target: card}
}

func NewOutcomeStep(description string) BattleStep {
	return BattleStep{Type: StepOutcome, Stat: description}
}
