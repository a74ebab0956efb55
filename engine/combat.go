package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nathoo/legend/engine/combat"
	"github.com/nathoo/legend/engine/enemy"
	"github.com/nathoo/legend/engine/game"
	"github.com/nathoo/legend/engine/inventory"
	"github.com/nathoo/legend/engine/parser"
	"github.com/nathoo/legend/engine/player"
	"github.com/nathoo/legend/engine/state"
	"github.com/nathoo/legend/types"
)

// basePlayerSpeed is the player's speed at level 0 for flee checks.
const basePlayerSpeed = 10

// lootWeights: nothing, or a health potion left on the enemy's tile.
var lootWeights = []int{3, 1}

// move walks the player one tile. In battle the move is a flee attempt
// first. Returns whether the player changed tile.
func (e *Engine) move(st *step, dir types.Direction, msg string) bool {
	s := e.Session

	if s.Battle.State.Active {
		foe := s.Enemies[s.Battle.Enemy]
		if !combat.FleeSuccess(basePlayerSpeed+s.Game.Player.Level, enemy.Speed(foe.Kind)) {
			st.say(fmt.Sprintf("You can't escape the %s!", foe.Kind))
			st.emit("flee_failed", map[string]any{"enemy": foe.Kind.String()})
			e.counterattack(st)
			return false
		}
		st.say(fmt.Sprintf("You escape from the %s!", foe.Kind))
		st.emit("fled", map[string]any{"enemy": foe.Kind.String()})
		e.endBattle()
	}

	target := player.Move(s.Game.Pos, dir)
	if !game.IsInBounds(target) || !e.Map.Walkable(target.X, target.Y) || state.EnemyAt(s, target) >= 0 {
		st.say("You can't go that way!")
		return false
	}

	from := s.Game.Pos
	s.Game.Pos = target
	st.say(msg)
	st.emit("player_moved", map[string]any{"from": from, "to": target})
	return true
}

// attack strikes the engaged enemy, or an adjacent one. Returns false when
// the attack was refused without costing a turn.
func (e *Engine) attack(st *step, object, msg string) bool {
	s := e.Session

	kind, ok := parser.AttackKind(object)
	if !ok {
		st.say(fmt.Sprintf("You don't know how to %s. Try: sword, spin, bow, magic, bash.", object))
		return false
	}

	idx := state.AdjacentEnemy(s)
	if s.Battle.State.Active && s.Enemies[s.Battle.Enemy].Alive {
		idx = s.Battle.Enemy
	}
	if idx < 0 {
		st.say("No enemy nearby to attack!")
		return true
	}

	stats := s.Game.Player
	if !combat.CanUseSpecial(kind, stats.Health, stats.MaxHealth) {
		st.say(fmt.Sprintf("You are too weak to use a %s!", kind))
		return false
	}

	foe := s.Enemies[idx]
	if !s.Battle.State.Active || s.Battle.Enemy != idx {
		s.Battle = types.Battle{State: combat.StartBattle(stats.Health, foe.Health), Enemy: idx}
		st.say(fmt.Sprintf("You engage the %s!", foe.Kind))
		st.emit("battle_started", map[string]any{"enemy": foe.Kind.String(), "x": foe.Pos.X, "y": foe.Pos.Y})
		e.Log.Debug("battle started", zap.String("enemy", foe.Kind.String()))
	}

	res := combat.PlayerAttack(kind, state.PlayerCombatant(s), enemy.Combatant(foe), enemy.ExpReward(foe))
	foe = enemy.ApplyDamage(foe, res.DamageDealt)
	s.Enemies[idx] = foe

	if kind == types.SwordSlash {
		st.say(msg)
	}
	if res.Critical {
		st.say("Critical hit!")
	}
	if kind == types.SwordSlash {
		st.say(fmt.Sprintf("You hit the %s for %d damage! (%d HP left)", foe.Kind, res.DamageDealt, foe.Health))
	} else {
		st.say(fmt.Sprintf("Your %s hits the %s for %d damage! (%d HP left)", kind, foe.Kind, res.DamageDealt, foe.Health))
	}
	st.emit("attack", map[string]any{
		"kind":     kind.String(),
		"enemy":    foe.Kind.String(),
		"damage":   res.DamageDealt,
		"critical": res.Critical,
	})

	s.Battle.State = combat.UpdateHealth(s.Battle.State, s.Game.Player.Health, foe.Health)
	s.Battle.State = combat.NextTurn(s.Battle.State)

	if enemy.IsDefeated(foe) {
		e.defeat(st, idx, res.ExpGained)
		return true
	}
	e.counterattack(st)
	return true
}

// counterattack lets the engaged enemy strike back.
func (e *Engine) counterattack(st *step) {
	s := e.Session
	if !s.Battle.State.Active {
		return
	}
	foe := s.Enemies[s.Battle.Enemy]
	res := combat.EnemyAttack(enemy.Combatant(foe), state.PlayerCombatant(s))
	e.hurt(res.DamageDealt)

	if res.Critical {
		st.say(fmt.Sprintf("The %s lands a critical blow for %d damage!", foe.Kind, res.DamageDealt))
	} else {
		st.say(fmt.Sprintf("The %s hits you for %d damage!", foe.Kind, res.DamageDealt))
	}
	st.emit("player_hit", map[string]any{"enemy": foe.Kind.String(), "damage": res.DamageDealt})

	s.Battle.State = combat.UpdateHealth(s.Battle.State, s.Game.Player.Health, foe.Health)
	s.Battle.State = combat.NextTurn(s.Battle.State)
	if combat.IsBattleOver(s.Battle.State) {
		e.endBattle()
	}
}

// defeat awards experience and score for the enemy at idx.
func (e *Engine) defeat(st *step, idx, exp int) {
	s := e.Session
	foe := s.Enemies[idx]

	before := s.Game.Player.Level
	s.Game.Player = player.GainExperience(s.Game.Player, exp)
	s.Game.EnemiesDefeated++
	s.Score += exp * 10
	st.say(fmt.Sprintf("You defeated the %s! +%d EXP, +%d score", foe.Kind, exp, exp*10))
	st.emit("enemy_defeated", map[string]any{"enemy": foe.Kind.String(), "exp": exp})
	e.Log.Info("enemy defeated",
		zap.String("enemy", foe.Kind.String()),
		zap.Int("exp", exp),
		zap.Int("turn", s.Game.TurnNumber))

	if s.Game.Player.Level > before {
		st.say(fmt.Sprintf("*** LEVEL UP! You are now level %d! ***", s.Game.Player.Level))
		st.emit("level_up", map[string]any{"level": s.Game.Player.Level})
		e.Log.Info("level up", zap.Int("level", s.Game.Player.Level))
	}

	if foe.Kind == types.Boss {
		s.Game.BossDefeated = true
	} else if e.Source.Pick(foe.Pos, lootWeights) == 1 && state.PickupAt(s, foe.Pos) < 0 {
		s.Pickups = append(s.Pickups, types.Pickup{Pos: foe.Pos, ItemID: inventory.HealthPotion})
		st.say(fmt.Sprintf("The %s dropped a potion!", foe.Kind))
	}
	e.endBattle()
}

// hurt subtracts damage that has already been through the damage engine.
func (e *Engine) hurt(dmg int) {
	p := &e.Session.Game.Player
	p.Health -= dmg
	if p.Health < 0 {
		p.Health = 0
	}
}

func (e *Engine) endBattle() {
	s := e.Session
	if s.Battle.State.Active {
		s.Battle.State = combat.EndBattle(s.Battle.State)
	}
	s.Battle.Enemy = -1
}
