package statcalc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAbilityScoreMod(t *testing.T) {
	anchors := map[int]int{
		1:  -5,
		3:  -4,
		8:  -1,
		9:  -1,
		10: 0,
		11: 0,
		12: 1,
		18: 4,
		20: 5,
		25: 7,
	}

	for score, mod := range anchors {
		require.Equal(t, mod, AbilityScoreMod(score), "score %d", score)
	}

	// The modifier is non-decreasing across the whole valid range.
	for score := 2; score <= 25; score++ {
		require.GreaterOrEqual(t, AbilityScoreMod(score), AbilityScoreMod(score-1))
	}
}

func TestSavingThrow(t *testing.T) {
	for score := 1; score <= 25; score++ {
		mod := AbilityScoreMod(score)
		require.Equal(t, mod, SavingThrow(score, false))
		require.Equal(t, mod+ProficiencyBonus, SavingThrow(score, true))
	}
}

func TestSkillBonus(t *testing.T) {
	require.Equal(t, 4, SkillBonus(18, false))
	require.Equal(t, 6, SkillBonus(18, true))
	require.Equal(t, -5, SkillBonus(1, false))
	require.Equal(t, -3, SkillBonus(1, true))
}
