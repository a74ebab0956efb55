// Package inventory implements the item catalog and the bounded inventory:
// counting, equipping, gold, and consuming items.
package inventory

import (
	"fmt"

	"github.com/nathoo/legend/engine/player"
	"github.com/nathoo/legend/types"
)

// DefaultCapacity is the number of item slots a new inventory has.
const DefaultCapacity = 20

// boostAmount is what the attack and defense boosts grant.
const boostAmount = 5

// New returns an empty inventory with nothing equipped.
func New() types.InventoryState {
	return types.InventoryState{MaxCapacity: DefaultCapacity}
}

// AddItem takes up one slot. A full inventory is left unchanged.
func AddItem(inv types.InventoryState, _ int) types.InventoryState {
	if inv.ItemCount < inv.MaxCapacity {
		inv.ItemCount++
	}
	return inv
}

// RemoveItem frees one slot. An empty inventory is left unchanged.
func RemoveItem(inv types.InventoryState, _ int) types.InventoryState {
	if inv.ItemCount > 0 {
		inv.ItemCount--
	}
	return inv
}

// IsFull reports whether every slot is taken.
func IsFull(inv types.InventoryState) bool {
	return inv.ItemCount >= inv.MaxCapacity
}

// EquipWeapon sets the equipped weapon. The ID is not checked.
func EquipWeapon(inv types.InventoryState, id int) types.InventoryState {
	inv.EquippedWeapon = id
	return inv
}

// EquipArmor sets the equipped armor. The ID is not checked.
func EquipArmor(inv types.InventoryState, id int) types.InventoryState {
	inv.EquippedArmor = id
	return inv
}

// AddGold adds gold.
func AddGold(inv types.InventoryState, amount int) types.InventoryState {
	inv.Gold += amount
	return inv
}

// SpendGold removes gold if there is enough; otherwise nothing changes.
func SpendGold(inv types.InventoryState, amount int) types.InventoryState {
	if inv.Gold >= amount {
		inv.Gold -= amount
	}
	return inv
}

// UseItem reports what consuming an item does to a player at the given
// health. It does not touch any state.
func UseItem(id, currentHealth, maxHealth int) types.UseResult {
	switch id {
	case HealthPotion:
		return healResult(currentHealth, catalog[HealthPotion].HealAmount, maxHealth)
	case FullHealthPotion:
		return healResult(currentHealth, maxHealth, maxHealth)
	case AttackBoost:
		return types.UseResult{
			Success:     true,
			AttackBoost: boostAmount,
			Message:     fmt.Sprintf("Attack increased by %d!", boostAmount),
		}
	case DefenseBoost:
		return types.UseResult{
			Success:      true,
			DefenseBoost: boostAmount,
			Message:      fmt.Sprintf("Defense increased by %d!", boostAmount),
		}
	case Antidote:
		return types.UseResult{Success: true, Message: "Cured poison!"}
	default:
		return types.UseResult{Success: false, Message: "Unknown item!"}
	}
}

func healResult(current, amount, max int) types.UseResult {
	restored := player.HealedHealth(current, amount, max) - current
	if restored < 0 {
		restored = 0
	}
	return types.UseResult{
		Success:        true,
		HealthRestored: restored,
		Message:        fmt.Sprintf("Restored %d health!", restored),
	}
}
