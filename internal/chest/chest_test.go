package chest

import (
	"math/rand"
	"testing"
)

func TestWeightsSumTo100(t *testing.T) {
	sum := 0
	for _, tier := range tierWeights {
		sum += tier.weight
	}
	if sum != 100 {
		t.Fatalf("tier weights sum to %d, want 100", sum)
	}
}

func TestDrawDistribution(t *testing.T) {
	d := New(rand.NewSource(7))
	counts := make(map[Rarity]int)
	const draws = 10000
	for i := 0; i < draws; i++ {
		r := d.Draw()
		counts[r.Rarity]++
		if r.Coins <= 0 || r.XP <= 0 {
			t.Fatalf("empty reward: %+v", r)
		}
	}

	// Common should dominate; legendary should be rare but present.
	if counts[RarityCommon] < draws/2 {
		t.Errorf("common drawn %d times of %d, expected majority", counts[RarityCommon], draws)
	}
	if counts[RarityLegendary] == 0 {
		t.Error("legendary never drawn in 10000 draws")
	}
	if counts[RarityLegendary] > counts[RarityRare] {
		t.Error("legendary drawn more often than rare")
	}
}

func TestRewardScalesWithRarity(t *testing.T) {
	for i := 1; i < len(tierWeights); i++ {
		if tierWeights[i].coins <= tierWeights[i-1].coins {
			t.Errorf("%s coins not above %s", tierWeights[i].rarity, tierWeights[i-1].rarity)
		}
	}
}
