// Package combat implements the damage engine, the battle state machine and
// the attack actions built on top of them. All functions are pure.
package combat

import "github.com/nathoo/legend/types"

// BaseDamage returns the base damage of an attack kind.
func BaseDamage(kind types.AttackKind) int {
	switch kind {
	case types.SwordSlash:
		return 10
	case types.SpinAttack:
		return 20
	case types.BowShot:
		return 8
	case types.MagicAttack:
		return 15
	case types.ShieldBash:
		return 5
	default:
		return 0
	}
}

// Multiplier is 1 plus a tenth of the attacker's total attack, rounded down.
func Multiplier(attack, equipment int) int {
	return 1 + (attack+equipment)/10
}

// RawDamage is the damage before the defender's reduction.
func RawDamage(kind types.AttackKind, attacker types.CombatantStats) int {
	return BaseDamage(kind) * Multiplier(attacker.Attack, attacker.EquipmentBonus)
}

// ApplyDefense subtracts half the defense from raw damage. Never below 1.
func ApplyDefense(raw, defense int) int {
	dmg := raw - defense/2
	if dmg < 1 {
		return 1
	}
	return dmg
}

// IsCritical reports a critical hit. Attack values ending in 7 always crit.
func IsCritical(attack int) bool {
	return attack%10 == 7
}

// ApplyCritical doubles damage on a critical hit.
func ApplyCritical(damage int, critical bool) int {
	if critical {
		return damage * 2
	}
	return damage
}

// FinalDamage runs the full damage pipeline for one attack.
//
// Postcondition: result >= 1 for every attack kind.
func FinalDamage(kind types.AttackKind, attacker, defender types.CombatantStats) int {
	dmg := ApplyDefense(RawDamage(kind, attacker), defender.Defense)
	return ApplyCritical(dmg, IsCritical(attacker.Attack))
}

// IsDefeated reports whether damage is enough to bring health to zero.
func IsDefeated(targetHealth, damage int) bool {
	return damage >= targetHealth
}

// CanUseSpecial gates the special attacks on remaining health.
// Spin attacks need half health, magic needs a quarter.
func CanUseSpecial(kind types.AttackKind, health, maxHealth int) bool {
	switch kind {
	case types.SpinAttack:
		return health >= maxHealth/2
	case types.MagicAttack:
		return health >= maxHealth/4
	default:
		return true
	}
}

// FleeSuccess reports whether the faster side gets away. Ties fail.
func FleeSuccess(playerSpeed, enemySpeed int) bool {
	return playerSpeed > enemySpeed
}
