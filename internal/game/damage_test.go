package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/clash/internal/log"
)

func TestApplyDamage(t *testing.T) {
	tests := []struct {
		name         string
		strength     int
		modifiers    []BattleModifier
		landBonus    int
		wantAttacker int // attacker HP after
		wantDefender int // defender HP after
		wantDealt    int
		wantLanded   bool
		wantTypes    []log.StepType
	}{
		{
			name: "plain", strength: 30,
			wantAttacker: 100, wantDefender: 70, wantDealt: 30, wantLanded: true,
			wantTypes: []log.StepType{log.StepDamage},
		},
		{
			name: "critical", strength: 30, modifiers: []BattleModifier{{Kind: ModCritical}},
			wantAttacker: 100, wantDefender: 55, wantDealt: 45, wantLanded: true,
			wantTypes: []log.StepType{log.StepCriticalHit, log.StepDamage},
		},
		{
			name: "reflected", strength: 30, modifiers: []BattleModifier{{Kind: ModReflected, Multiplier: 0.5}},
			wantAttacker: 85, wantDefender: 100,
			wantTypes: []log.StepType{log.StepAttackReflected},
		},
		{
			name: "critical reflected", strength: 30, modifiers: []BattleModifier{{Kind: ModCritical}, {Kind: ModReflected, Multiplier: 1}},
			wantAttacker: 55, wantDefender: 100,
			wantTypes: []log.StepType{log.StepCriticalHit, log.StepAttackReflected},
		},
		{
			name: "neutralized", strength: 30, modifiers: []BattleModifier{{Kind: ModNeutralized}},
			wantAttacker: 100, wantDefender: 100,
			wantTypes: []log.StepType{log.StepAttackNeutralized},
		},
		{
			name: "neutralized and reflected", strength: 30, modifiers: []BattleModifier{{Kind: ModNeutralized}, {Kind: ModReflected, Multiplier: 1}},
			wantAttacker: 70, wantDefender: 100,
			wantTypes: []log.StepType{log.StepAttackReflected},
		},
		{
			name: "penetrate", strength: 30, modifiers: []BattleModifier{{Kind: ModPenetrate}}, landBonus: 20,
			wantAttacker: 100, wantDefender: 50, wantDealt: 30, wantLanded: true,
			wantTypes: []log.StepType{log.StepPenetrate, log.StepDamage},
		},
		{
			name: "negative strength deals nothing", strength: -5,
			wantAttacker: 100, wantDefender: 100,
			wantTypes: []log.StepType{log.StepDamage},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := vanillaCreature("A", tt.strength, 100)
			d := vanillaCreature("D", 10, 100)
			a.Modifiers = tt.modifiers
			d.LandBonus = tt.landBonus
			dealt := make(map[*Creature]int)

			steps, landed := applyDamage(a, d, dealt)

			assert.Equal(t, tt.wantAttacker, a.HP)
			assert.Equal(t, tt.wantDefender, d.HP)
			assert.Equal(t, tt.wantDealt, dealt[a])
			assert.Equal(t, tt.wantLanded, landed)
			types := make([]log.StepType, len(steps))
			for i, s := range steps {
				types[i] = s.Type
			}
			assert.Equal(t, tt.wantTypes, types)
		})
	}
}

// TestPlanAttackIsRepeatable: planning the same state twice gives identical steps.
func TestPlanAttackIsRepeatable(t *testing.T) {
	a := vanillaCreature("A", 33, 100)
	d := vanillaCreature("D", 10, 100)
	a.AddModifier(BattleModifier{Kind: ModCritical})
	a.AddModifier(BattleModifier{Kind: ModPenetrate})
	d.LandBonus = 5

	first := planAttack(a, d)
	second := planAttack(a, d)

	require.NotEmpty(t, first.steps)
	assert.Equal(t, first.steps, second.steps)
	assert.Equal(t, 100, d.HP)
	assert.Equal(t, 5, d.LandBonus)
}

func TestDamageAccumulates(t *testing.T) {
	a := vanillaCreature("A", 10, 100)
	d := vanillaCreature("D", 10, 100)
	dealt := make(map[*Creature]int)

	applyDamage(a, d, dealt)
	applyDamage(a, d, dealt)

	assert.Equal(t, 20, dealt[a])
	assert.Zero(t, dealt[d])
	assert.Equal(t, 80, d.HP)
}
