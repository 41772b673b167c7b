package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/clash/internal/log"
)

// vanillaCreature creates a creature with no effects beyond the land bonus.
func vanillaCreature(name string, strength, hp int) *Creature {
	return NewCreature(name, strength, hp).WithCost(10, 1)
}

// testBattle bundles a battle with its players and logger.
type testBattle struct {
	*Battle
	attackerPlayer *Player
	defenderPlayer *Player
	logger         *log.MemoryLogger
}

// newTestBattle creates a battle between two creatures, each backed by a
// player with 100 gold, and opens item selection.
func newTestBattle(t *testing.T, attacker, defender *Creature) *testBattle {
	t.Helper()
	logger := log.NewMemoryLogger()
	tb := &testBattle{
		attackerPlayer: NewPlayer("Player One", 100, 1),
		defenderPlayer: NewPlayer("Player Two", 100, 2),
		logger:         logger,
	}
	tb.Battle = NewBattle(BattleConfig{
		Attacker:       attacker,
		Defender:       defender,
		AttackerPlayer: tb.attackerPlayer,
		DefenderPlayer: tb.defenderPlayer,
		Logger:         logger,
	})
	require.NoError(t, tb.OpenItemSelection())
	return tb
}

// giveAttacker puts the item in the attacker player's hand and equips it.
func (tb *testBattle) giveAttacker(t *testing.T, item *ItemCard) {
	t.Helper()
	tb.attackerPlayer.AddToHand(item)
	require.NoError(t, tb.SetAttackerItem(item))
}

// giveDefender puts the item in the defender player's hand and equips it.
func (tb *testBattle) giveDefender(t *testing.T, item *ItemCard) {
	t.Helper()
	tb.defenderPlayer.AddToHand(item)
	require.NoError(t, tb.SetDefenderItem(item))
}

// fight runs the battle, fails the test on a precondition error and dumps the log.
func (tb *testBattle) fight(t *testing.T) *BattleResult {
	t.Helper()
	res, err := tb.Fight()
	t.Logf("Battle log:\n%s", log.FormatAll(tb.logger.Steps()))
	require.NoError(t, err)
	return res
}

// fightNoItems resolves a battle where neither side equips an item.
func fightNoItems(t *testing.T, attacker, defender *Creature) (*BattleResult, *log.MemoryLogger) {
	t.Helper()
	tb := newTestBattle(t, attacker, defender)
	require.NoError(t, tb.SetAttackerItem(NoItem))
	require.NoError(t, tb.SetDefenderItem(NoItem))
	return tb.fight(t), tb.logger
}

// testDataSet builds a data set with fresh damage tracking.
func testDataSet(owner, opponent *Creature) DataSet {
	return DataSet{Owner: owner, Opponent: opponent, damage: make(map[*Creature]int)}
}
