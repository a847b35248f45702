// Package shop implements the coin-gated purchase handler.
//
// Purchase validates funds and returns the proposed state deltas; it
// mutates nothing itself. The engine applies the effect atomically.
package shop

import (
	"errors"
	"fmt"
	"time"

	"github.com/arnavj/mathsprint/internal/powerup"
)

// ErrInsufficientFunds is returned when an item costs more than the
// learner's coin balance. No state changes on this path.
var ErrInsufficientFunds = errors.New("not enough coins")

// ItemType selects the effect a purchase applies.
type ItemType string

const (
	ItemHeartsRefill ItemType = "hearts-refill"
	ItemStreakFreeze ItemType = "streak-freeze"
	ItemXPBoost      ItemType = "xp-boost"
	ItemDoubleCoins  ItemType = "double-coins"
	ItemChest        ItemType = "chest"
)

// Item is a purchasable catalog entry. Icon is an opaque identifier
// resolved by the UI layer.
type Item struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Price       int
	Type        ItemType
}

// ChestRequest is an opaque reward-grant request handed to the chest
// collaborator after the coins are deducted.
type ChestRequest struct {
	ItemID string
}

// Effect is the set of deltas a successful purchase proposes.
type Effect struct {
	CoinsSpent   int
	RefillHearts bool
	GrantPowerUp *powerup.PowerUp
	Chest        *ChestRequest
}

// Purchase checks funds and builds the item's effect. Boost power-ups
// carry an expiry of powerup.BoostDuration from now.
func Purchase(coins int, item Item, now time.Time) (Effect, error) {
	if coins < item.Price {
		return Effect{}, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, item.ID, item.Price, coins)
	}

	eff := Effect{CoinsSpent: item.Price}
	switch item.Type {
	case ItemHeartsRefill:
		eff.RefillHearts = true
	case ItemStreakFreeze:
		eff.GrantPowerUp = &powerup.PowerUp{Type: powerup.TypeStreakFreeze, Active: true}
	case ItemXPBoost:
		eff.GrantPowerUp = &powerup.PowerUp{Type: powerup.TypeXPBoost, Active: true, ExpiresAt: now.Add(powerup.BoostDuration)}
	case ItemDoubleCoins:
		eff.GrantPowerUp = &powerup.PowerUp{Type: powerup.TypeDoubleCoins, Active: true, ExpiresAt: now.Add(powerup.BoostDuration)}
	case ItemChest:
		eff.Chest = &ChestRequest{ItemID: item.ID}
	default:
		return Effect{}, fmt.Errorf("unknown item type %q", item.Type)
	}
	return eff, nil
}
