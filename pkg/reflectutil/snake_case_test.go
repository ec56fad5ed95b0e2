package reflectutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToSnakeCase(t *testing.T) {
	require.Equal(t, "ability_score_mod", ToSnakeCase("AbilityScoreMod"))
	require.Equal(t, "abs_saving_throw", ToSnakeCase("AbsSavingThrow"))
	require.Equal(t, "somethingwrong", ToSnakeCase("Somethingwrong"))
	require.Equal(t, "user_ids", ToSnakeCase("UserIDs"))
}
