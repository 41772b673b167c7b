package game

import "github.com/peterkuimelis/clash/internal/log"

// BattleConfig holds everything needed to set up a battle.
type BattleConfig struct {
	Attacker       *Creature
	Defender       *Creature
	AttackerPlayer *Player // pays for the attacker's item; may be nil if no item is played
	DefenderPlayer *Player
	Logger         log.StepLogger
}

// combatant is one side of a battle.
type combatant struct {
	creature *Creature
	player   *Player
	item     *ItemCard // nil until chosen
}

// Battle resolves a single 1v1 combat. A Battle owns its creatures for the
// duration of Fight and may be fought only once.
type Battle struct {
	attacker combatant
	defender combatant
	Logger   log.StepLogger

	phase         Phase
	selectionOpen bool
	snapshotTaken bool // health snapshot taken by OpenItemSelection
	resolved      bool
	damage        map[*Creature]int
	steps         []log.BattleStep // this battle's steps only
}

// NewBattle creates a battle from the given config. It panics if either
// creature is missing.
func NewBattle(cfg BattleConfig) *Battle {
	if cfg.Attacker == nil || cfg.Defender == nil {
		panic("game: battle needs an attacker and a defender")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	return &Battle{
		attacker: combatant{creature: cfg.Attacker, player: cfg.AttackerPlayer},
		defender: combatant{creature: cfg.Defender, player: cfg.DefenderPlayer},
		Logger:   logger,
		phase:    PhaseSetup,
		damage:   make(map[*Creature]int),
	}
}

// Attacker returns the attacking creature.
func (b *Battle) Attacker() *Creature { return b.attacker.creature }

// Defender returns the defending creature.
func (b *Battle) Defender() *Creature { return b.defender.creature }

// Phase returns the phase the battle is in.
func (b *Battle) Phase() Phase { return b.phase }

// OpenItemSelection snapshots both creatures' health and fires their
// before-item-selection effects, attacker first. Opening twice is a no-op.
func (b *Battle) OpenItemSelection() error {
	if b.resolved {
		return BattleAlreadyResolved
	}
	if b.selectionOpen {
		return nil
	}
	b.setPhase(PhaseItemSelection)
	for _, c := range []*Creature{b.attacker.creature, b.defender.creature} {
		c.HealthBeforeBattle = c.HP
		c.inBattle = true
	}
	b.snapshotTaken = true
	b.fire(TimingBeforeItemSelection, &b.attacker, &b.defender)
	b.fire(TimingBeforeItemSelection, &b.defender, &b.attacker)
	b.selectionOpen = true
	return nil
}

// SetAttackerItem equips the attacker with an item, or with nothing when
// given NoItem.
func (b *Battle) SetAttackerItem(item *ItemCard) error {
	return b.setItem(&b.attacker, item)
}

// SetDefenderItem equips the defender with an item, or with nothing when
// given NoItem.
func (b *Battle) SetDefenderItem(item *ItemCard) error {
	return b.setItem(&b.defender, item)
}

func (b *Battle) setItem(side *combatant, item *ItemCard) error {
	if !b.selectionOpen || b.resolved {
		return ErrItemSelectionClosed
	}
	if side.item != nil {
		return ErrItemAlreadySelected
	}
	if err := equip(side.creature, side.player, item); err != nil {
		return err
	}
	side.item = item
	if item.IsEmpty() {
		b.record(log.NewNoItemStep(side.creature.Name))
	} else {
		b.record(log.NewItemEquippedStep(side.creature.Name, item.Name, side.player.Name, item.Cost()))
	}
	return nil
}

// Fight resolves the battle. It returns a BattleError when a precondition is
// not met. Cleanup runs on every return path.
func (b *Battle) Fight() (*BattleResult, error) {
	if b.resolved {
		return nil, BattleAlreadyResolved
	}
	b.resolved = true
	defer b.cleanup()

	if !b.selectionOpen {
		return nil, ItemSelectionNotTriggered
	}
	if b.attacker.item == nil {
		return nil, NoAttackerItemDefined
	}
	if b.defender.item == nil {
		return nil, NoDefenderItemDefined
	}
	b.selectionOpen = false

	// Before battle
	b.setPhase(PhaseBeforeBattle)
	first, second := b.attackOrder()
	b.fire(TimingBeforeBattle, first, second)
	b.fire(TimingBeforeBattle, second, first)
	// Before-battle effects may change priority flags.
	first, second = b.attackOrder()

	// Attack exchange
	if b.bothAlive() {
		b.setPhase(PhaseAttack)
		b.attack(first, second)
		if b.bothAlive() {
			b.attack(second, first)
		}
	}

	// Battle end
	b.setPhase(PhaseBattleEnd)
	b.fire(TimingBattleEnd, &b.attacker, &b.defender)
	b.fire(TimingBattleEnd, &b.defender, &b.attacker)

	outcome, err := b.classify()
	if err != nil {
		return nil, err
	}
	for _, c := range []*Creature{b.attacker.creature, b.defender.creature} {
		if c.IsDestroyed() {
			b.record(log.NewCardDefeatedStep(c.Name))
		} else {
			b.record(log.NewCardSurvivesStep(c.Name, c.HP))
		}
	}
	b.record(log.NewOutcomeStep(outcome.Description()))
	b.phase = PhaseDone

	return &BattleResult{Steps: b.Steps(), Outcome: outcome}, nil
}

// attackOrder returns the side that strikes first and the side that strikes
// second, logging each creature's priority class. A creature flagged both
// first and last has no priority; equal priority favours the attacker.
func (b *Battle) attackOrder() (first, second *combatant) {
	att, def := b.attacker.creature, b.defender.creature
	attFirst, attLast := priority(att)
	defFirst, defLast := priority(def)

	for _, c := range []*Creature{att, def} {
		switch isFirst, isLast := priority(c); {
		case isFirst:
			b.record(log.NewAttacksFirstStep(c.Name))
		case isLast:
			b.record(log.NewAttacksLastStep(c.Name))
		}
	}

	if (attLast && !defLast) || (defFirst && !attFirst) {
		return &b.defender, &b.attacker
	}
	return &b.attacker, &b.defender
}

func priority(c *Creature) (first, last bool) {
	return c.AttackFirst && !c.AttackLast, c.AttackLast && !c.AttackFirst
}

// attack runs one strike: declaration, damage, then the striker's attack
// bonus and success or failure effects.
func (b *Battle) attack(striker, target *combatant) {
	b.record(log.NewAttackDeclareStep(striker.creature.Name, striker.creature.Strength, striker == &b.attacker))
	steps, landed := applyDamage(striker.creature, target.creature, b.damage)
	b.record(steps...)

	b.fire(TimingAttackBonus, striker, target)
	if landed {
		b.fire(TimingOnSuccessfulAttack, striker, target)
	} else {
		b.fire(TimingOnFailedAttack, striker, target)
	}
}

// classify maps final health to an outcome.
func (b *Battle) classify() (Outcome, error) {
	attDead := b.attacker.creature.IsDestroyed()
	defDead := b.defender.creature.IsDestroyed()
	switch {
	case attDead && defDead:
		return OutcomeMutualDestruction, nil
	case !attDead && !defDead:
		return OutcomeStalemate, nil
	case defDead:
		return OutcomeAttackerWins, nil
	case attDead:
		return OutcomeDefenderWins, nil
	}
	return 0, CouldNotDetermineBattleOutcome
}

func (b *Battle) bothAlive() bool {
	return !b.attacker.creature.IsDestroyed() && !b.defender.creature.IsDestroyed()
}

// fire triggers every effect of the given timing on owner, against opponent.
func (b *Battle) fire(when Timing, owner, opponent *combatant) {
	ds := DataSet{
		Owner:          owner.creature,
		Opponent:       opponent.creature,
		OwnerPlayer:    owner.player,
		OpponentPlayer: opponent.player,
		damage:         b.damage,
	}
	b.record(triggerTimed(when, ds)...)
}

// cleanup releases item effects and restores both creatures. Health and land
// bonus are only restored when this battle applied them.
func (b *Battle) cleanup() {
	for _, c := range []*Creature{b.attacker.creature, b.defender.creature} {
		if b.snapshotTaken {
			c.ResetValues()
		} else {
			c.clearBattleState()
		}
	}
	b.selectionOpen = false
}

func (b *Battle) setPhase(p Phase) {
	b.phase = p
	b.record(log.NewPhaseChangeStep(p.String()))
}

// Steps returns a copy of the steps this battle has recorded so far, numbered
// from 1 whatever else the logger has seen.
func (b *Battle) Steps() []log.BattleStep {
	out := make([]log.BattleStep, len(b.steps))
	copy(out, b.steps)
	return out
}

// record stamps each step with the current phase and this battle's sequence
// number, keeps it and forwards it to the logger.
func (b *Battle) record(steps ...log.BattleStep) {
	for _, s := range steps {
		s.Phase = b.phase.String()
		s.Seq = len(b.steps) + 1
		b.steps = append(b.steps, s)
		b.Logger.Log(s)
	}
}
