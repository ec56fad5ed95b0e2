package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkillAbilityTable(t *testing.T) {
	require.Len(t, SkillKinds, 18)
	require.Len(t, SkillAbilities, 18)
	require.Len(t, AbilityKinds, 6)

	for _, kind := range SkillKinds {
		ability, ok := SkillAbilities[kind]
		require.True(t, ok, "skill %s has no ability score", kind)
		require.Contains(t, AbilityKinds, ability)
	}
}

func TestAlignments(t *testing.T) {
	require.Len(t, Alignments, 9)
	require.Contains(t, Alignments, TrueNeutral)
}
