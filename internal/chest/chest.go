// Package chest performs the weighted-random reward draw behind chest
// purchases. The shop only deducts coins and hands over an opaque
// request; this collaborator decides what falls out.
package chest

import "math/rand"

// Rarity is the reward tier of a chest draw.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// tierWeights are the draw weights per rarity, in ascending rarity order.
// They sum to 100.
var tierWeights = []struct {
	rarity Rarity
	weight int
	coins  int
	xp     int
}{
	{RarityCommon, 60, 20, 10},
	{RarityRare, 25, 50, 25},
	{RarityEpic, 12, 120, 60},
	{RarityLegendary, 3, 300, 150},
}

// Reward is the outcome of one chest draw.
type Reward struct {
	Rarity Rarity
	Coins  int
	XP     int
}

// Drawer draws chest rewards from an injected random source.
type Drawer struct {
	rng *rand.Rand
}

// New creates a Drawer. Pass a seeded source for deterministic tests.
func New(src rand.Source) *Drawer {
	return &Drawer{rng: rand.New(src)}
}

// Draw picks a rarity tier by weight and returns its reward.
func (d *Drawer) Draw() Reward {
	roll := d.rng.Intn(100)
	for _, tier := range tierWeights {
		if roll < tier.weight {
			return Reward{Rarity: tier.rarity, Coins: tier.coins, XP: tier.xp}
		}
		roll -= tier.weight
	}
	// Unreachable while weights sum to 100.
	last := tierWeights[len(tierWeights)-1]
	return Reward{Rarity: last.rarity, Coins: last.coins, XP: last.xp}
}
