package domain

import (
	"testing"

	"github.com/wyrmsheet/backend/internal/model"
	"github.com/wyrmsheet/backend/internal/repository"
	"github.com/wyrmsheet/backend/pkg/errorx"
	"github.com/wyrmsheet/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_spellDomain_SpellsPage(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := NewSpellDomain(repository.NewSpellRepository(&testutil.MockRedisClient{}))

	resp, err := domain.SpellsPage(ctx, &model.SpellsPageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Spells, 2)
	require.Equal(t, "Fireball", resp.Spells[0].Name)
	require.Equal(t, "3", resp.Spells[0].LevelDisplay)
	require.Equal(t, "Guidance", resp.Spells[1].Name)
	require.Equal(t, "Cantrip", resp.Spells[1].LevelDisplay)
}

func Test_spellDomain_GetSpell(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := NewSpellDomain(repository.NewSpellRepository(&testutil.MockRedisClient{}))

	resp, err := domain.GetSpell(ctx, &model.GetSpellRequest{Name: "Fireball"})
	require.NoError(t, err)
	require.Equal(t, "Evocation", resp.Spell.SchoolDisplay)
	require.Equal(t, []string{"V", "S", "M"}, resp.Spell.Components)
	require.Equal(t, []string{"Sorcerer", "Wizard"}, resp.Spell.Classes)
}

func Test_spellDomain_GetSpell_NotFound(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := NewSpellDomain(repository.NewSpellRepository(&testutil.MockRedisClient{}))

	_, err := domain.GetSpell(ctx, &model.GetSpellRequest{Name: "Wish"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_spellDomain_GetClassSpells(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := NewSpellDomain(repository.NewSpellRepository(&testutil.MockRedisClient{}))

	resp, err := domain.GetClassSpells(ctx, &model.GetClassSpellsRequest{Class: "wizard"})
	require.NoError(t, err)
	require.Equal(t, "Wizard", resp.Class)
	require.Len(t, resp.Spells, 1)
	require.Equal(t, "Fireball", resp.Spells[0].Name)
}

func Test_spellDomain_GetClassSpells_UnknownClass(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := NewSpellDomain(repository.NewSpellRepository(&testutil.MockRedisClient{}))

	_, err := domain.GetClassSpells(ctx, &model.GetClassSpellsRequest{Class: "barbarian"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}
