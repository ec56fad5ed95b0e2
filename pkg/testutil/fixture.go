package testutil

import (
	"context"

	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/internal/repository"
	"github.com/wyrmsheet/backend/pkg/crypto"
)

var (
	User1 = entity.User{
		Base: entity.Base{ID: "user1"},
		Name: "tim",
	}

	User2 = entity.User{
		Base: entity.Base{ID: "user2"},
		Name: "malcanthet",
	}

	// Character1 belongs to User1 and gets the full set of default child
	// rows, like a character created through the form.
	Character1 = entity.Character{
		Base:      entity.Base{ID: "user1_character1"},
		UserID:    "user1",
		Name:      "Perrin",
		Alignment: entity.NeutralGood,
	}

	Spell1 = entity.SpellListing{
		Name:        "Fireball",
		Page:        "phb 241",
		CastingTime: "1 action",
		Range:       "150 feet",
		Duration:    "Instantaneous",
		Level:       3,
		Description: "A bright streak flashes from your pointing finger.",
		Components:  entity.Array[entity.SpellComponent]{entity.Verbal, entity.Somatic, entity.Material},
		School:      entity.Evocation,
	}

	Spell1Classes = []entity.CasterClass{entity.Sorcerer, entity.Wizard}

	Spell2 = entity.SpellListing{
		Name:        "Guidance",
		Page:        "phb 248",
		CastingTime: "1 action",
		Range:       "Touch",
		Duration:    "Up to 1 minute",
		Level:       0,
		Description: "You touch one willing creature.",
		Components:  entity.Array[entity.SpellComponent]{entity.Verbal, entity.Somatic},
		School:      entity.Divination,

		Concentration: true,
	}

	Spell2Classes = []entity.CasterClass{entity.Cleric, entity.Druid}
)

// UserPassword is the plain text password of every fixture user.
const UserPassword = "password"

// CreateFixtureDb inserts the fixture records through the repositories. The
// context must carry a migrated database.
func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertCharacters(ctx)
	insertSpells(ctx)
}

// AbilityScoreID returns the deterministic id of a fixture ability score.
func AbilityScoreID(characterID string, kind entity.AbilityKind) string {
	return characterID + "_" + string(kind)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	hashed, err := crypto.HashPassword(UserPassword)
	if err != nil {
		panic(err)
	}

	for _, user := range []entity.User{User1, User2} {
		user.HashedPassword = hashed
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}
}

func insertCharacters(ctx context.Context) {
	characterRepo := repository.NewCharacterRepository()
	abilityScoreRepo := repository.NewAbilityScoreRepository()
	skillRepo := repository.NewSkillRepository()

	character := Character1
	if err := characterRepo.Create(ctx, &character); err != nil {
		panic(err)
	}

	for _, kind := range entity.AbilityKinds {
		err := abilityScoreRepo.Create(ctx, &entity.AbilityScore{
			Base:        entity.Base{ID: AbilityScoreID(character.ID, kind)},
			CharacterID: character.ID,
			Kind:        kind,
			Value:       entity.DefaultAbilityScore,
		})
		if err != nil {
			panic(err)
		}
	}

	for _, kind := range entity.SkillKinds {
		err := skillRepo.Create(ctx, &entity.Skill{
			Base:           entity.Base{ID: string(kind)},
			AbilityScoreID: AbilityScoreID(character.ID, entity.SkillAbilities[kind]),
			Kind:           kind,
		})
		if err != nil {
			panic(err)
		}
	}
}

func insertSpells(ctx context.Context) {
	spellRepo := repository.NewSpellRepository(&MockRedisClient{})

	spell1 := Spell1
	if err := spellRepo.Create(ctx, &spell1, Spell1Classes); err != nil {
		panic(err)
	}

	spell2 := Spell2
	if err := spellRepo.Create(ctx, &spell2, Spell2Classes); err != nil {
		panic(err)
	}
}
