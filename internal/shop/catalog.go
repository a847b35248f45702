package shop

import "fmt"

// Catalog returns the shop items in display order.
func Catalog() []Item {
	return []Item{
		{
			ID:          "refill-hearts",
			Name:        "Refill Hearts",
			Description: "Instantly refill all your hearts",
			Icon:        "heart",
			Price:       50,
			Type:        ItemHeartsRefill,
		},
		{
			ID:          "streak-freeze",
			Name:        "Streak Freeze",
			Description: "Protect your streak for one missed day",
			Icon:        "snowflake",
			Price:       100,
			Type:        ItemStreakFreeze,
		},
		{
			ID:          "xp-boost",
			Name:        "XP Boost",
			Description: "Double XP for 30 minutes",
			Icon:        "zap",
			Price:       75,
			Type:        ItemXPBoost,
		},
		{
			ID:          "double-coins",
			Name:        "Double Coins",
			Description: "Double coins for 30 minutes",
			Icon:        "coins",
			Price:       75,
			Type:        ItemDoubleCoins,
		},
		{
			ID:          "common-chest",
			Name:        "Common Chest",
			Description: "Random rewards",
			Icon:        "gift",
			Price:       150,
			Type:        ItemChest,
		},
	}
}

// GetItem returns a catalog item by ID.
func GetItem(id string) (Item, error) {
	for _, it := range Catalog() {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("shop item not found: %q", id)
}
