package repository_test

import (
	"testing"

	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/internal/repository"
	"github.com/wyrmsheet/backend/pkg/testutil"
	"github.com/wyrmsheet/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_spellRepository_GetByName_Cache(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	spellRepo := repository.NewSpellRepository(testutil.NewMiniredisClient(t))

	spell, err := spellRepo.GetByName(ctx, "Fireball")
	require.NoError(t, err)
	require.Equal(t, 3, spell.Level)

	// The second read is served from the cache: it survives the row being
	// changed underneath.
	err = xcontext.DB(ctx).
		Model(&entity.SpellListing{}).
		Where("name=?", "Fireball").
		Update("level", 9).Error
	require.NoError(t, err)

	cached, err := spellRepo.GetByName(ctx, "Fireball")
	require.NoError(t, err)
	require.Equal(t, 3, cached.Level)

	// A repository with an empty cache sees the new value.
	freshRepo := repository.NewSpellRepository(testutil.NewMiniredisClient(t))
	fresh, err := freshRepo.GetByName(ctx, "Fireball")
	require.NoError(t, err)
	require.Equal(t, 9, fresh.Level)
}

func Test_spellRepository_GetListByClass(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	spellRepo := repository.NewSpellRepository(&testutil.MockRedisClient{})

	spells, err := spellRepo.GetListByClass(ctx, entity.Cleric)
	require.NoError(t, err)
	require.Len(t, spells, 1)
	require.Equal(t, "Guidance", spells[0].Name)
}
