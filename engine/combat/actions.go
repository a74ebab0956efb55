package combat

import (
	"fmt"

	"github.com/nathoo/legend/types"
)

// PlayerAttack resolves one player attack. Experience is granted only when
// the attack defeats the enemy.
func PlayerAttack(kind types.AttackKind, player, enemy types.CombatantStats, enemyExp int) types.CombatResult {
	dmg := FinalDamage(kind, player, enemy)
	crit := IsCritical(player.Attack)
	defeated := IsDefeated(enemy.Health, dmg)

	exp := 0
	if defeated {
		exp = enemyExp
	}
	return types.CombatResult{
		DamageDealt:    dmg,
		Critical:       crit,
		TargetDefeated: defeated,
		ExpGained:      exp,
		Message:        hitMessage(dmg, crit),
	}
}

// EnemyAttack resolves an enemy's counterattack. Enemies only slash.
func EnemyAttack(enemy, player types.CombatantStats) types.CombatResult {
	dmg := FinalDamage(types.SwordSlash, enemy, player)
	crit := IsCritical(enemy.Attack)
	return types.CombatResult{
		DamageDealt:    dmg,
		Critical:       crit,
		TargetDefeated: IsDefeated(player.Health, dmg),
		Message:        hitMessage(dmg, crit),
	}
}

func hitMessage(dmg int, crit bool) string {
	if crit {
		return fmt.Sprintf("Critical hit! %d damage!", dmg)
	}
	return fmt.Sprintf("Hit for %d damage!", dmg)
}
