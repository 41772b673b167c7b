package game

import (
	"errors"

	"github.com/peterkuimelis/clash/internal/log"
)

// Outcome is the terminal classification of a battle.
type Outcome int

const (
	OutcomeAttackerWins Outcome = iota
	OutcomeDefenderWins
	OutcomeStalemate
	OutcomeMutualDestruction
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAttackerWins:
		return "attacker_wins"
	case OutcomeDefenderWins:
		return "defender_wins"
	case OutcomeStalemate:
		return "stalemate"
	case OutcomeMutualDestruction:
		return "mutual_destruction"
	default:
		return "unknown"
	}
}

// Description returns the human-readable outcome text.
func (o Outcome) Description() string {
	switch o {
	case OutcomeAttackerWins:
		return "The offense wins."
	case OutcomeDefenderWins:
		return "The defense wins."
	case OutcomeStalemate:
		return "The battle was a draw."
	case OutcomeMutualDestruction:
		return "Both creatures were destroyed."
	default:
		return "Unknown outcome."
	}
}

// BattleResult is the full step log of a resolved battle and its outcome.
type BattleResult struct {
	Steps   []log.BattleStep
	Outcome Outcome
}

// BattleError is a precondition failure reported by Fight.
type BattleError int

const (
	NoAttackerItemDefined BattleError = iota + 1
	NoDefenderItemDefined
	ItemSelectionNotTriggered
	CouldNotDetermineBattleOutcome
	BattleAlreadyResolved
)

func (e BattleError) Error() string {
	switch e {
	case NoAttackerItemDefined:
		return "no attacker item defined"
	case NoDefenderItemDefined:
		return "no defender item defined"
	case ItemSelectionNotTriggered:
		return "item selection not triggered"
	case CouldNotDetermineBattleOutcome:
		return "could not determine battle outcome"
	case BattleAlreadyResolved:
		return "battle already resolved"
	default:
		return "unknown battle error"
	}
}

// Equip legality errors, returned by the item setters.
var (
	ErrItemRestricted      = errors.New("creature cannot equip this item type")
	ErrCardNotInHand       = errors.New("card is not in the player's hand")
	ErrInsufficientGold    = errors.New("not enough gold to play card")
	ErrNoOwningPlayer      = errors.New("no player to pay for the item")
	ErrInvalidItemChoice   = errors.New("item choice must be an item or NoItem")
	ErrItemSelectionClosed = errors.New("item selection is not open")
	ErrItemAlreadySelected = errors.New("item already selected for this side")
	ErrLandBonusLocked     = errors.New("land bonus cannot change during a battle")
)
