package domain

import (
	"testing"

	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/internal/model"
	"github.com/wyrmsheet/backend/internal/repository"
	"github.com/wyrmsheet/backend/pkg/errorx"
	"github.com/wyrmsheet/backend/pkg/testutil"
	"github.com/wyrmsheet/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newCharacterDomainForTest() CharacterDomain {
	return NewCharacterDomain(
		repository.NewCharacterRepository(),
		repository.NewAbilityScoreRepository(),
		repository.NewSkillRepository(),
	)
}

func Test_characterDomain_CreateCharacter(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newCharacterDomainForTest()

	resp, err := domain.CreateCharacter(ctx, &model.CreateCharacterRequest{
		Name:      "Rand",
		Alignment: "chaotic_good",
	})
	require.NoError(t, err)
	require.Empty(t, resp.Error)
	require.NotEmpty(t, resp.RedirectURL)

	characterID := resp.RedirectURL[len("/character/"):]

	// Exactly one ability score per kind.
	var scores []entity.AbilityScore
	err = xcontext.DB(ctx).Find(&scores, "character_id=?", characterID).Error
	require.NoError(t, err)
	require.Len(t, scores, 6)

	scoreKindByID := map[string]entity.AbilityKind{}
	seenKinds := map[entity.AbilityKind]bool{}
	for _, score := range scores {
		require.Equal(t, entity.DefaultAbilityScore, score.Value)
		require.False(t, seenKinds[score.Kind])
		seenKinds[score.Kind] = true
		scoreKindByID[score.ID] = score.Kind
	}

	// Exactly one skill per kind, attached to the mapped ability score.
	var skills []entity.Skill
	scoreIDs := make([]string, 0, len(scores))
	for _, score := range scores {
		scoreIDs = append(scoreIDs, score.ID)
	}
	err = xcontext.DB(ctx).Find(&skills, "ability_score_id IN (?)", scoreIDs).Error
	require.NoError(t, err)
	require.Len(t, skills, 18)

	seenSkills := map[entity.SkillKind]bool{}
	for _, skill := range skills {
		require.False(t, seenSkills[skill.Kind])
		seenSkills[skill.Kind] = true
		require.Equal(t, entity.SkillAbilities[skill.Kind], scoreKindByID[skill.AbilityScoreID])
	}
}

func Test_characterDomain_CreateCharacter_InvalidAlignment(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newCharacterDomainForTest()

	resp, err := domain.CreateCharacter(ctx, &model.CreateCharacterRequest{
		Name:      "Rand",
		Alignment: "lawful_silly",
	})
	require.NoError(t, err)
	require.Empty(t, resp.RedirectURL)
	require.NotEmpty(t, resp.Error)

	// The invalid submission must not persist anything.
	var count int64
	err = xcontext.DB(ctx).Model(&entity.Character{}).Where("name=?", "Rand").Count(&count).Error
	require.NoError(t, err)
	require.Zero(t, count)
}

func Test_characterDomain_CreateCharacter_NonASCIIName(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newCharacterDomainForTest()

	name := "Ráðormsdóttir"
	resp, err := domain.CreateCharacter(ctx, &model.CreateCharacterRequest{Name: name})
	require.NoError(t, err)

	characterID := resp.RedirectURL[len("/character/"):]
	detail, err := domain.GetCharacter(ctx, &model.GetCharacterRequest{ID: characterID})
	require.NoError(t, err)
	require.Equal(t, name, detail.Character.Name)
	require.Equal(t, "True Neutral", detail.Character.AlignmentDisplay)
}

func Test_characterDomain_GetCharacter(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newCharacterDomainForTest()

	resp, err := domain.GetCharacter(ctx, &model.GetCharacterRequest{ID: testutil.Character1.ID})
	require.NoError(t, err)
	require.Equal(t, testutil.Character1.Name, resp.Character.Name)
	require.Len(t, resp.AbilityScores, 6)

	for _, score := range resp.AbilityScores {
		require.Equal(t, entity.DefaultAbilityScore, score.Value)
		require.Zero(t, score.Mod)
		require.Zero(t, score.SavingThrow)
	}
}

func Test_characterDomain_GetCharacter_NotOwner(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newCharacterDomainForTest()

	_, err := domain.GetCharacter(ctx, &model.GetCharacterRequest{ID: testutil.Character1.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_characterDomain_GetCharacter_NotAuthenticated(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newCharacterDomainForTest()

	_, err := domain.GetCharacter(ctx, &model.GetCharacterRequest{ID: testutil.Character1.ID})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
}

func Test_characterDomain_GetCharacter_NotFound(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newCharacterDomainForTest()

	_, err := domain.GetCharacter(ctx, &model.GetCharacterRequest{ID: "i-dont-exist"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_characterDomain_GetAbilityScore(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newCharacterDomainForTest()

	resp, err := domain.GetAbilityScore(ctx, &model.GetAbilityScoreRequest{
		CharacterID: testutil.Character1.ID,
		Attribute:   "strength",
	})
	require.NoError(t, err)
	require.Equal(t, model.AttributeResponse{"strength": entity.DefaultAbilityScore}, *resp)
}

func Test_characterDomain_GetAbilityScore_UnknownAttribute(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newCharacterDomainForTest()

	_, err := domain.GetAbilityScore(ctx, &model.GetAbilityScoreRequest{
		CharacterID: testutil.Character1.ID,
		Attribute:   "luck",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_characterDomain_UpdateAbilityScore(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newCharacterDomainForTest()

	resp, err := domain.UpdateAbilityScore(ctx, &model.UpdateAbilityScoreRequest{
		CharacterID: testutil.Character1.ID,
		Attribute:   "wisdom",
		Value:       "11",
	})
	require.NoError(t, err)
	require.Equal(t, model.AttributeResponse{
		"wisdom":            11,
		"ability_score_mod": 0,
		"saving_throw":      0,
	}, *resp)

	var stored entity.AbilityScore
	err = xcontext.DB(ctx).
		Where("character_id=? AND kind=?", testutil.Character1.ID, entity.Wisdom).
		Take(&stored).Error
	require.NoError(t, err)
	require.Equal(t, 11, stored.Value)
}

func Test_characterDomain_UpdateAbilityScore_InvalidValues(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newCharacterDomainForTest()

	for _, value := range []string{"26", "-5", "0", "not-a-number", ""} {
		_, err := domain.UpdateAbilityScore(ctx, &model.UpdateAbilityScoreRequest{
			CharacterID: testutil.Character1.ID,
			Attribute:   "strength",
			Value:       value,
		})

		var errx errorx.Error
		require.ErrorAs(t, err, &errx, "value %q", value)
		require.Equal(t, errorx.BadRequest, errx.Code, "value %q", value)

		// The stored value must be untouched.
		var stored entity.AbilityScore
		err = xcontext.DB(ctx).
			Where("character_id=? AND kind=?", testutil.Character1.ID, entity.Strength).
			Take(&stored).Error
		require.NoError(t, err)
		require.Equal(t, entity.DefaultAbilityScore, stored.Value)
	}
}

func Test_characterDomain_UpdateAbilityScore_NotOwner(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User2.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newCharacterDomainForTest()

	// Ownership is rejected before the bogus value is even looked at.
	_, err := domain.UpdateAbilityScore(ctx, &model.UpdateAbilityScoreRequest{
		CharacterID: testutil.Character1.ID,
		Attribute:   "strength",
		Value:       "not-a-number",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_characterDomain_Home(t *testing.T) {
	ctx := testutil.MockContextWithUserID(testutil.User1.ID)
	testutil.CreateFixtureDb(ctx)
	domain := newCharacterDomainForTest()

	// Characters are ordered by name.
	_, err := domain.CreateCharacter(ctx, &model.CreateCharacterRequest{Name: "Aviendha"})
	require.NoError(t, err)

	resp, err := domain.Home(ctx, &model.HomeRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Characters, 2)
	require.Equal(t, "Aviendha", resp.Characters[0].Name)
	require.Equal(t, testutil.Character1.Name, resp.Characters[1].Name)
}

func Test_characterDomain_Home_Anonymous(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newCharacterDomainForTest()

	resp, err := domain.Home(ctx, &model.HomeRequest{})
	require.NoError(t, err)
	require.Empty(t, resp.Characters)
}
