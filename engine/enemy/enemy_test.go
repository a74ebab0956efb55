package enemy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	chancemock "github.com/nathoo/legend/engine/chance/mock"
	"github.com/nathoo/legend/engine/enemy"
	"github.com/nathoo/legend/types"
)

func at(x, y int) types.Position { return types.Position{X: x, Y: y} }

func TestSpawn_Table(t *testing.T) {
	tests := []struct {
		kind                         types.EnemyKind
		health, attack, defense, exp int
		behavior                     types.Behavior
	}{
		{types.Slime, 30, 5, 2, 10, types.Wander},
		{types.Skeleton, 50, 12, 5, 25, types.Guard},
		{types.Bat, 20, 8, 1, 15, types.Chase},
		{types.Goblin, 40, 10, 4, 20, types.Chase},
		{types.DarkKnight, 80, 20, 15, 50, types.Guard},
		{types.Boss, 200, 30, 20, 100, types.BossPattern},
	}
	for _, tc := range tests {
		e := enemy.Spawn(tc.kind, at(3, 4))
		assert.Equal(t, tc.health, e.Health, "kind=%s", tc.kind)
		assert.Equal(t, tc.health, e.MaxHealth, "kind=%s", tc.kind)
		assert.Equal(t, tc.attack, e.Attack, "kind=%s", tc.kind)
		assert.Equal(t, tc.defense, e.Defense, "kind=%s", tc.kind)
		assert.Equal(t, tc.exp, e.ExpReward, "kind=%s", tc.kind)
		assert.Equal(t, tc.behavior, e.Behavior, "kind=%s", tc.kind)
		assert.Equal(t, at(3, 4), e.Pos)
		assert.True(t, e.Alive)
	}
}

func TestSpawn_Property_RoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		kind := rapid.SampledFrom(enemy.Kinds).Draw(rt, "kind")
		pos := at(rapid.IntRange(0, 99).Draw(rt, "x"), rapid.IntRange(0, 99).Draw(rt, "y"))
		e := enemy.Spawn(kind, pos)
		assert.Equal(rt, enemy.BaseStats(kind).Health, e.Health)
		assert.True(rt, e.Alive)
		assert.Equal(rt, pos, e.Pos)
	})
}

func TestSpawnBoss(t *testing.T) {
	b := enemy.SpawnBoss(at(75, 74))
	assert.Equal(t, types.Boss, b.Kind)
	assert.Equal(t, types.BossPattern, b.Behavior)
}

func TestCalculateMove_ChaseStepsTowardPlayer(t *testing.T) {
	e := enemy.Spawn(types.Goblin, at(5, 5))
	assert.Equal(t, at(5, 6), enemy.CalculateMove(e, at(5, 10)))
	assert.Equal(t, at(4, 4), enemy.CalculateMove(e, at(0, 0)))
	assert.Equal(t, at(5, 5), enemy.CalculateMove(e, at(5, 5)))
}

func TestCalculateMove_FleeStepsAway(t *testing.T) {
	e := enemy.Spawn(types.Goblin, at(5, 5))
	e.Behavior = types.Flee
	assert.Equal(t, at(5, 4), enemy.CalculateMove(e, at(5, 10)))
	assert.Equal(t, at(6, 6), enemy.CalculateMove(e, at(2, 1)))
}

func TestCalculateMove_WanderUsesPositionHash(t *testing.T) {
	tests := []struct {
		pos, want types.Position
	}{
		{at(2, 2), at(3, 2)},   // 4 % 4 = 0 -> east
		{at(2, 3), at(1, 3)},   // 1 -> west
		{at(1, 1), at(1, 2)},   // 2 -> south
		{at(1, 2), at(1, 1)},   // 3 -> north
		{at(-3, 2), at(-3, 1)}, // negative remainder -> north
	}
	for _, tc := range tests {
		e := enemy.Spawn(types.Slime, tc.pos)
		assert.Equal(t, tc.want, enemy.CalculateMove(e, at(50, 50)), "from %v", tc.pos)
	}
}

func TestCalculateMove_StationaryBehaviors(t *testing.T) {
	for _, kind := range []types.EnemyKind{types.Skeleton, types.DarkKnight, types.Boss} {
		e := enemy.Spawn(kind, at(10, 10))
		assert.Equal(t, at(10, 10), enemy.CalculateMove(e, at(11, 10)), "kind=%s", kind)
	}
}

func TestCalculateMoveWith_DelegatesWanderToSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := chancemock.NewMockSource(ctrl)
	e := enemy.Spawn(types.Slime, at(10, 10))
	src.EXPECT().Wander(at(10, 10)).Return(2)

	assert.Equal(t, at(10, 11), enemy.CalculateMoveWith(e, at(0, 0), src))
}

func TestCalculateMoveWith_ChaseIgnoresSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := chancemock.NewMockSource(ctrl)
	e := enemy.Spawn(types.Bat, at(10, 10))
	src.EXPECT().Wander(gomock.Any()).Times(0)

	assert.Equal(t, at(11, 9), enemy.CalculateMoveWith(e, at(20, 0), src))
}

func TestShouldAttack(t *testing.T) {
	e := enemy.Spawn(types.Goblin, at(5, 5))
	assert.True(t, enemy.ShouldAttack(e, at(5, 5)))
	assert.True(t, enemy.ShouldAttack(e, at(5, 6)))
	assert.True(t, enemy.ShouldAttack(e, at(4, 5)))
	assert.False(t, enemy.ShouldAttack(e, at(6, 6)))
	assert.False(t, enemy.ShouldAttack(e, at(5, 7)))
}

func TestUpdateBehavior(t *testing.T) {
	g := enemy.Spawn(types.Goblin, at(0, 0))
	assert.Equal(t, types.Chase, enemy.UpdateBehavior(g))

	g.Health = 8 // 20%
	assert.Equal(t, types.Chase, enemy.UpdateBehavior(g))

	g.Health = 7 // 17%
	assert.Equal(t, types.Flee, enemy.UpdateBehavior(g))

	boss := enemy.SpawnBoss(at(0, 0))
	boss.Health = 1
	assert.Equal(t, types.BossPattern, enemy.UpdateBehavior(boss))
}

func TestTakeDamage(t *testing.T) {
	e := enemy.Spawn(types.Skeleton, at(0, 0))
	e = enemy.TakeDamage(e, 12) // 12 - 5/2 = 10
	assert.Equal(t, 40, e.Health)
	assert.True(t, e.Alive)

	e = enemy.TakeDamage(e, 0) // minimum 1
	assert.Equal(t, 39, e.Health)
}

func TestTakeDamage_Property_LethalBoundary(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		kind := rapid.SampledFrom(enemy.Kinds).Draw(rt, "kind")
		e := enemy.Spawn(kind, at(0, 0))
		raw := rapid.IntRange(e.Health+e.Defense/2, 100000).Draw(rt, "raw")
		e = enemy.TakeDamage(e, raw)
		assert.Equal(rt, 0, e.Health)
		assert.False(rt, e.Alive)
		assert.True(rt, enemy.IsDefeated(e))
	})
}

func TestApplyDamage_SkipsDefense(t *testing.T) {
	e := enemy.Spawn(types.DarkKnight, at(0, 0))
	e = enemy.ApplyDamage(e, 30)
	assert.Equal(t, 50, e.Health)
	e = enemy.ApplyDamage(e, 500)
	require.Equal(t, 0, e.Health)
	assert.False(t, e.Alive)
}

func TestAccessors(t *testing.T) {
	e := enemy.Spawn(types.Bat, at(1, 1))
	assert.Equal(t, 15, enemy.ExpReward(e))
	assert.Equal(t, 8, enemy.AttackDamage(e))
	assert.Equal(t, byte('b'), enemy.Symbol(types.Bat))
	assert.Greater(t, enemy.Speed(types.Boss), enemy.Speed(types.Bat))

	c := enemy.Combatant(e)
	assert.Equal(t, types.CombatantStats{Attack: 8, Defense: 1, Health: 20, MaxHealth: 20}, c)
}

func TestParseKind(t *testing.T) {
	k, ok := enemy.ParseKind("Dark Knight")
	require.True(t, ok)
	assert.Equal(t, types.DarkKnight, k)

	k, ok = enemy.ParseKind("slime")
	require.True(t, ok)
	assert.Equal(t, types.Slime, k)

	_, ok = enemy.ParseKind("dragon")
	assert.False(t, ok)
}
