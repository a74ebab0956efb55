package inventory

import (
	"strings"

	"github.com/nathoo/legend/types"
)

// Weapon IDs.
const (
	WoodenSword = 1
	SteelSword  = 2
	MasterSword = 3
	Bow         = 4
	FireRod     = 5
)

// Armor IDs.
const (
	ClothTunic   = 101
	LeatherArmor = 102
	ChainMail    = 103
	Shield       = 104
	MagicRobe    = 105
)

// Consumable IDs.
const (
	HealthPotion     = 201
	FullHealthPotion = 202
	AttackBoost      = 203
	DefenseBoost     = 204
	Antidote         = 205
)

// fullHeal is the catalog heal amount of the full potion; UseItem fills to max.
const fullHeal = 9999

var catalog = map[int]types.Item{
	WoodenSword: {ID: WoodenSword, Name: "Wooden Sword", Category: types.Weapon, AttackBonus: 5},
	SteelSword:  {ID: SteelSword, Name: "Steel Sword", Category: types.Weapon, AttackBonus: 10},
	MasterSword: {ID: MasterSword, Name: "Master Sword", Category: types.Weapon, AttackBonus: 25},
	Bow:         {ID: Bow, Name: "Bow", Category: types.Weapon, AttackBonus: 8},
	FireRod:     {ID: FireRod, Name: "Fire Rod", Category: types.Weapon, AttackBonus: 15},

	ClothTunic:   {ID: ClothTunic, Name: "Cloth Tunic", Category: types.Armor, DefenseBonus: 2},
	LeatherArmor: {ID: LeatherArmor, Name: "Leather Armor", Category: types.Armor, DefenseBonus: 5},
	ChainMail:    {ID: ChainMail, Name: "Chain Mail", Category: types.Armor, DefenseBonus: 10},
	Shield:       {ID: Shield, Name: "Shield", Category: types.Armor, DefenseBonus: 8},
	MagicRobe:    {ID: MagicRobe, Name: "Magic Robe", Category: types.Armor, DefenseBonus: 4},

	HealthPotion:     {ID: HealthPotion, Name: "Health Potion", Category: types.Consumable, HealAmount: 50},
	FullHealthPotion: {ID: FullHealthPotion, Name: "Full Health Potion", Category: types.Consumable, HealAmount: fullHeal},
	AttackBoost:      {ID: AttackBoost, Name: "Attack Boost", Category: types.Consumable},
	DefenseBoost:     {ID: DefenseBoost, Name: "Defense Boost", Category: types.Consumable},
	Antidote:         {ID: Antidote, Name: "Antidote", Category: types.Consumable},
}

// unknownItem is returned for IDs outside the catalog.
var unknownItem = types.Item{ID: 0, Name: "Unknown", Category: types.Treasure}

// Lookup returns a single catalog item. Unknown IDs give the placeholder
// "Unknown" treasure with ID 0 and quantity 0.
func Lookup(id int) types.Item {
	item, ok := catalog[id]
	if !ok {
		return unknownItem
	}
	item.Quantity = 1
	return item
}

// Known reports whether the ID is in the catalog.
func Known(id int) bool {
	_, ok := catalog[id]
	return ok
}

// CreateWeapon returns a weapon by ID.
func CreateWeapon(id int) types.Item {
	return createInCategory(id, types.Weapon)
}

// CreateArmor returns an armor piece by ID.
func CreateArmor(id int) types.Item {
	return createInCategory(id, types.Armor)
}

// CreateConsumable returns a stack of a consumable.
func CreateConsumable(id, quantity int) types.Item {
	item := createInCategory(id, types.Consumable)
	if item.ID != 0 {
		item.Quantity = quantity
	}
	return item
}

func createInCategory(id int, cat types.ItemCategory) types.Item {
	item := Lookup(id)
	if item.Category != cat {
		return unknownItem
	}
	return item
}

// FindByName matches a catalog item by case-insensitive name or prefix.
func FindByName(name string) (types.Item, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return types.Item{}, false
	}
	var prefix types.Item
	found := false
	for _, id := range IDs() {
		item := catalog[id]
		lower := strings.ToLower(item.Name)
		if lower == name {
			return Lookup(id), true
		}
		if !found && strings.HasPrefix(lower, name) {
			prefix = Lookup(id)
			found = true
		}
	}
	return prefix, found
}

// AttackBonus is the attack bonus of a weapon ID, 0 if none.
func AttackBonus(weaponID int) int {
	return catalog[weaponID].AttackBonus
}

// DefenseBonus is the defense bonus of an armor ID, 0 if none.
func DefenseBonus(armorID int) int {
	return catalog[armorID].DefenseBonus
}

// IDs lists every catalog ID: weapons, armor, then consumables.
func IDs() []int {
	return []int{
		WoodenSword, SteelSword, MasterSword, Bow, FireRod,
		ClothTunic, LeatherArmor, ChainMail, Shield, MagicRobe,
		HealthPotion, FullHealthPotion, AttackBoost, DefenseBoost, Antidote,
	}
}
