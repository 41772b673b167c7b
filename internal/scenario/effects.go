package scenario

import (
	"fmt"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/peterkuimelis/clash/internal/game"
)

// Effect, calculation and condition trees are single-key YAML maps, or bare
// scalars for variants without arguments.

var timingKeys = map[string]game.Timing{
	"before_item_selection": game.TimingBeforeItemSelection,
	"before_battle":         game.TimingBeforeBattle,
	"attack_bonus":          game.TimingAttackBonus,
	"on_successful_attack":  game.TimingOnSuccessfulAttack,
	"on_failed_attack":      game.TimingOnFailedAttack,
	"battle_end":            game.TimingBattleEnd,
}

var bareEffects = map[string]game.CardEffect{
	"neutralize_opponent": game.NeutralizeOpponent{},
	"reflect":             game.Reflect{Multiplier: 1},
	"critical_hit":        game.CriticalHit{},
	"penetrate":           game.Penetrate{},
	"attack_first":        game.AttackFirst{},
	"attack_last":         game.AttackLast{},
	"defensive":           game.Defensive{},
	"recycle":             game.RecycleToOwnersHand{},
}

func errorf(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("line %d: %s", n.Line, fmt.Sprintf(format, args...))
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// singleKey splits a one-entry mapping into its key and value.
func singleKey(n *yaml.Node) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, errorf(n, "expected a map with exactly one key")
	}
	return n.Content[0].Value, resolve(n.Content[1]), nil
}

// fields reads a mapping, rejecting keys not in allowed.
func fields(n *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorf(n, "expected a map")
	}
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if !slices.Contains(allowed, k.Value) {
			return nil, errorf(k, "unknown key %q (want one of %v)", k.Value, allowed)
		}
		out[k.Value] = resolve(n.Content[i+1])
	}
	return out, nil
}

func sequence(n *yaml.Node, atLeast int) ([]*yaml.Node, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, errorf(n, "expected a list")
	}
	if len(n.Content) < atLeast {
		return nil, errorf(n, "expected at least %d entries, got %d", atLeast, len(n.Content))
	}
	out := make([]*yaml.Node, len(n.Content))
	for i, c := range n.Content {
		out[i] = resolve(c)
	}
	return out, nil
}

func side(f map[string]*yaml.Node, key string) (game.Side, error) {
	n, ok := f[key]
	if !ok {
		return game.SideOwner, nil
	}
	s, err := game.ParseSide(n.Value)
	if err != nil {
		return 0, errorf(n, "%v", err)
	}
	return s, nil
}

func required(parent *yaml.Node, f map[string]*yaml.Node, key string) (*yaml.Node, error) {
	n, ok := f[key]
	if !ok {
		return nil, errorf(parent, "missing %q", key)
	}
	return n, nil
}

// ParseEffects decodes a list of effect nodes.
func ParseEffects(nodes []yaml.Node) ([]game.CardEffect, error) {
	effects := make([]game.CardEffect, 0, len(nodes))
	for i := range nodes {
		e, err := ParseEffect(&nodes[i])
		if err != nil {
			return nil, err
		}
		effects = append(effects, e)
	}
	return effects, nil
}

// ParseEffect decodes one effect tree.
func ParseEffect(n *yaml.Node) (game.CardEffect, error) {
	n = resolve(n)
	if n.Kind == yaml.ScalarNode {
		e, ok := bareEffects[n.Value]
		if !ok {
			return nil, errorf(n, "unknown effect %q", n.Value)
		}
		return e, nil
	}

	key, val, err := singleKey(n)
	if err != nil {
		return nil, err
	}

	if when, ok := timingKeys[key]; ok {
		inner, err := ParseEffect(val)
		if err != nil {
			return nil, err
		}
		return game.Timed{When: when, Effect: inner}, nil
	}

	switch key {
	case "modify_attack", "modify_health", "set_attack", "set_health":
		return parseStatEffect(key, val)
	case "set_stat":
		return parseSetStat(val)
	case "draw_cards", "discard_cards":
		return parsePlayerEffect(key, val)
	case "reflect":
		f, err := fields(val, "multiplier")
		if err != nil {
			return nil, err
		}
		r := game.Reflect{Multiplier: 1}
		if m, ok := f["multiplier"]; ok {
			if err := m.Decode(&r.Multiplier); err != nil {
				return nil, errorf(m, "multiplier: %v", err)
			}
		}
		return r, nil
	case "conditional":
		return parseConditionalEffect(val)
	}
	if _, ok := bareEffects[key]; ok {
		return nil, errorf(n, "effect %q takes no arguments", key)
	}
	return nil, errorf(n, "unknown effect %q", key)
}

func parseStatEffect(key string, n *yaml.Node) (game.CardEffect, error) {
	argName := "amount"
	if key == "set_attack" || key == "set_health" {
		argName = "value"
	}
	f, err := fields(n, "target", argName)
	if err != nil {
		return nil, err
	}
	target, err := side(f, "target")
	if err != nil {
		return nil, err
	}
	arg, err := required(n, f, argName)
	if err != nil {
		return nil, err
	}
	calc, err := ParseCalculation(arg)
	if err != nil {
		return nil, err
	}
	switch key {
	case "modify_attack":
		return game.ModifyAttack{Target: target, Amount: calc}, nil
	case "modify_health":
		return game.ModifyHealth{Target: target, Amount: calc}, nil
	case "set_attack":
		return game.SetAttack{Target: target, Value: calc}, nil
	default:
		return game.SetHealth{Target: target, Value: calc}, nil
	}
}

func parseSetStat(n *yaml.Node) (game.CardEffect, error) {
	f, err := fields(n, "target", "stat", "value")
	if err != nil {
		return nil, err
	}
	target, err := side(f, "target")
	if err != nil {
		return nil, err
	}
	statNode, err := required(n, f, "stat")
	if err != nil {
		return nil, err
	}
	stat, err := game.ParseStat(statNode.Value)
	if err != nil {
		return nil, errorf(statNode, "%v", err)
	}
	if !stat.Mutable() {
		return nil, errorf(statNode, "stat %s is read-only", stat)
	}
	valNode, err := required(n, f, "value")
	if err != nil {
		return nil, err
	}
	value, err := ParseCalculation(valNode)
	if err != nil {
		return nil, err
	}
	return game.NewSetStat(target, stat, value), nil
}

func parsePlayerEffect(key string, n *yaml.Node) (game.CardEffect, error) {
	f, err := fields(n, "player", "amount")
	if err != nil {
		return nil, err
	}
	player, err := side(f, "player")
	if err != nil {
		return nil, err
	}
	amountNode, err := required(n, f, "amount")
	if err != nil {
		return nil, err
	}
	amount, err := ParseCalculation(amountNode)
	if err != nil {
		return nil, err
	}
	if key == "draw_cards" {
		return game.DrawCards{Player: player, Amount: amount}, nil
	}
	return game.DiscardCards{Player: player, Amount: amount}, nil
}

func parseConditionalEffect(n *yaml.Node) (game.CardEffect, error) {
	f, err := fields(n, "if", "then", "else")
	if err != nil {
		return nil, err
	}
	condNode, err := required(n, f, "if")
	if err != nil {
		return nil, err
	}
	cond, err := ParseCondition(condNode)
	if err != nil {
		return nil, err
	}
	ce := game.ConditionalEffect{Condition: cond}
	if t, ok := f["then"]; ok {
		if ce.OnTrue, err = ParseEffect(t); err != nil {
			return nil, err
		}
	}
	if e, ok := f["else"]; ok {
		if ce.OnFalse, err = ParseEffect(e); err != nil {
			return nil, err
		}
	}
	return ce, nil
}

// ParseCalculation decodes an integer expression.
func ParseCalculation(n *yaml.Node) (game.IntCalculation, error) {
	n = resolve(n)
	if n.Kind == yaml.ScalarNode {
		if n.Value == "opponent_damage_dealt" {
			return game.OpponentDamageDealt{}, nil
		}
		v, err := strconv.Atoi(n.Value)
		if err != nil {
			return nil, errorf(n, "expected an integer or calculation, got %q", n.Value)
		}
		return game.Constant(v), nil
	}

	key, val, err := singleKey(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "negate":
		of, err := ParseCalculation(val)
		if err != nil {
			return nil, err
		}
		return game.Negate{Of: of}, nil
	case "sum":
		terms, err := sequence(val, 1)
		if err != nil {
			return nil, err
		}
		sum := make(game.Sum, 0, len(terms))
		for _, t := range terms {
			c, err := ParseCalculation(t)
			if err != nil {
				return nil, err
			}
			sum = append(sum, c)
		}
		return sum, nil
	case "stat":
		f, err := fields(val, "of", "stat")
		if err != nil {
			return nil, err
		}
		of, err := side(f, "of")
		if err != nil {
			return nil, err
		}
		statNode, err := required(val, f, "stat")
		if err != nil {
			return nil, err
		}
		stat, err := game.ParseStat(statNode.Value)
		if err != nil {
			return nil, errorf(statNode, "%v", err)
		}
		return game.StatOf{Of: of, Stat: stat}, nil
	}
	return nil, errorf(n, "unknown calculation %q", key)
}

// ParseCondition decodes a boolean predicate.
func ParseCondition(n *yaml.Node) (game.Conditional, error) {
	n = resolve(n)
	key, val, err := singleKey(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "owner_has_effect", "opponent_has_effect":
		kind, err := game.ParseEffectKind(val.Value)
		if err != nil {
			return nil, errorf(val, "%v", err)
		}
		if key == "owner_has_effect" {
			return game.OwnerHasEffect{Kind: kind}, nil
		}
		return game.OpponentHasEffect{Kind: kind}, nil

	case "owner_has_any_element", "opponent_has_any_element":
		items, err := sequence(val, 1)
		if err != nil {
			return nil, err
		}
		elements := make([]game.Element, 0, len(items))
		for _, it := range items {
			e, err := game.ParseElement(it.Value)
			if err != nil {
				return nil, errorf(it, "%v", err)
			}
			elements = append(elements, e)
		}
		if key == "owner_has_any_element" {
			return game.OwnerHasAnyElement{Elements: elements}, nil
		}
		return game.OpponentHasAnyElement{Elements: elements}, nil

	case "lte", "gte":
		operands, err := sequence(val, 2)
		if err != nil {
			return nil, err
		}
		if len(operands) != 2 {
			return nil, errorf(val, "%s takes exactly two operands", key)
		}
		x, err := ParseCalculation(operands[0])
		if err != nil {
			return nil, err
		}
		y, err := ParseCalculation(operands[1])
		if err != nil {
			return nil, err
		}
		if key == "lte" {
			return game.LessThanOrEqual{X: x, Y: y}, nil
		}
		return game.GreaterThanOrEqual{X: x, Y: y}, nil

	case "and", "or":
		operands, err := sequence(val, 2)
		if err != nil {
			return nil, err
		}
		var acc game.Conditional
		for i, o := range operands {
			c, err := ParseCondition(o)
			if err != nil {
				return nil, err
			}
			switch {
			case i == 0:
				acc = c
			case key == "and":
				acc = game.And{First: acc, Second: c}
			default:
				acc = game.Or{First: acc, Second: c}
			}
		}
		return acc, nil
	}
	return nil, errorf(n, "unknown condition %q", key)
}
