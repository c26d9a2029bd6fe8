package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-loot/internal/dice"
	"github.com/KirkDiggler/rpg-loot/internal/testutils"
)

func TestRandomChance(t *testing.T) {
	r := dice.NewRandom(testutils.NewScriptedRoller(20, 21, 100, 1))

	assert.True(t, r.Chance(20))
	assert.False(t, r.Chance(20))
	assert.True(t, r.Chance(100))
	assert.False(t, r.Chance(0))
}

func TestRandomIntn(t *testing.T) {
	roller := testutils.NewScriptedRoller(1, 5)
	r := dice.NewRandom(roller)

	assert.Equal(t, 0, r.Intn(5))
	assert.Equal(t, 4, r.Intn(5))
	assert.Equal(t, 0, r.Intn(1))
	assert.Equal(t, 0, r.Intn(0))
	assert.Equal(t, []int{5, 5}, roller.Calls)
}

func TestRandomShuffle(t *testing.T) {
	// i=2 picks j=0, i=1 picks j=1
	r := dice.NewRandom(testutils.NewScriptedRoller(1, 2))
	items := []string{"a", "b", "c"}

	r.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	assert.Equal(t, []string{"c", "b", "a"}, items)
}

func TestRandomShuffleIsPermutation(t *testing.T) {
	r := dice.NewRandom(nil)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}

	r.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, items)
}

func TestRandomWeightedIndex(t *testing.T) {
	weights := []int{50, 0, 30, 20}
	r := dice.NewRandom(testutils.NewScriptedRoller(50, 51, 80, 81, 100))

	assert.Equal(t, 0, r.WeightedIndex(weights))
	assert.Equal(t, 2, r.WeightedIndex(weights))
	assert.Equal(t, 2, r.WeightedIndex(weights))
	assert.Equal(t, 3, r.WeightedIndex(weights))
	assert.Equal(t, 3, r.WeightedIndex(weights))
	assert.Equal(t, -1, r.WeightedIndex([]int{0, -3}))
}
