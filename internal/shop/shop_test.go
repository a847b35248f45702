package shop

import (
	"errors"
	"testing"
	"time"

	"github.com/arnavj/mathsprint/internal/powerup"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func item(t *testing.T, id string) Item {
	t.Helper()
	it, err := GetItem(id)
	if err != nil {
		t.Fatal(err)
	}
	return it
}

func TestPurchaseInsufficientFunds(t *testing.T) {
	_, err := Purchase(40, item(t, "refill-hearts"), now)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
}

func TestPurchaseHeartsRefill(t *testing.T) {
	eff, err := Purchase(100, item(t, "refill-hearts"), now)
	if err != nil {
		t.Fatal(err)
	}
	if eff.CoinsSpent != 50 || !eff.RefillHearts {
		t.Errorf("effect = %+v, want 50 coins spent + refill", eff)
	}
	if eff.GrantPowerUp != nil || eff.Chest != nil {
		t.Errorf("unexpected extras in effect: %+v", eff)
	}
}

func TestPurchaseStreakFreeze(t *testing.T) {
	eff, err := Purchase(100, item(t, "streak-freeze"), now)
	if err != nil {
		t.Fatal(err)
	}
	p := eff.GrantPowerUp
	if p == nil || p.Type != powerup.TypeStreakFreeze || !p.Active {
		t.Fatalf("effect power-up = %+v, want active streak freeze", p)
	}
	if !p.ExpiresAt.IsZero() {
		t.Error("freezes expire by consumption, not by time")
	}
}

func TestPurchaseBoostCarriesExpiry(t *testing.T) {
	for _, id := range []string{"xp-boost", "double-coins"} {
		eff, err := Purchase(75, item(t, id), now)
		if err != nil {
			t.Fatal(err)
		}
		p := eff.GrantPowerUp
		if p == nil || !p.Active {
			t.Fatalf("%s: effect = %+v", id, eff)
		}
		if !p.ExpiresAt.Equal(now.Add(powerup.BoostDuration)) {
			t.Errorf("%s expiry = %v, want now+30m", id, p.ExpiresAt)
		}
	}
}

func TestPurchaseChestReturnsRequest(t *testing.T) {
	eff, err := Purchase(200, item(t, "common-chest"), now)
	if err != nil {
		t.Fatal(err)
	}
	if eff.Chest == nil || eff.Chest.ItemID != "common-chest" {
		t.Errorf("effect = %+v, want chest request", eff)
	}
	if eff.CoinsSpent != 150 {
		t.Errorf("coins spent = %d, want 150", eff.CoinsSpent)
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, it := range Catalog() {
		if seen[it.ID] {
			t.Errorf("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
		if it.Price <= 0 {
			t.Errorf("item %s has non-positive price", it.ID)
		}
	}
}
