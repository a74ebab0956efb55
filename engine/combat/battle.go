package combat

import "github.com/nathoo/legend/types"

// StartBattle opens a battle with the player to move first.
func StartBattle(playerHealth, enemyHealth int) types.BattleState {
	return types.BattleState{
		Active:       true,
		TurnCount:    0,
		PlayerHealth: playerHealth,
		EnemyHealth:  enemyHealth,
		PlayerTurn:   true,
	}
}

// NextTurn advances the turn counter and hands the turn to the other side.
// Terminal battles are advanced too; callers check IsBattleOver first.
func NextTurn(b types.BattleState) types.BattleState {
	b.TurnCount++
	b.PlayerTurn = !b.PlayerTurn
	return b
}

// UpdateHealth overwrites both health values. Values are stored as given.
func UpdateHealth(b types.BattleState, playerHealth, enemyHealth int) types.BattleState {
	b.PlayerHealth = playerHealth
	b.EnemyHealth = enemyHealth
	return b
}

// EndBattle marks the battle inactive and leaves the rest untouched.
func EndBattle(b types.BattleState) types.BattleState {
	b.Active = false
	return b
}

// IsBattleOver reports whether the battle has ended or either side is down.
func IsBattleOver(b types.BattleState) bool {
	return !b.Active || b.PlayerHealth <= 0 || b.EnemyHealth <= 0
}

// PlayerWon reports whether the enemy is down and the player still stands.
func PlayerWon(b types.BattleState) bool {
	return b.EnemyHealth <= 0 && b.PlayerHealth > 0
}
