package domain

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/wyrmsheet/backend/internal/common"
	"github.com/wyrmsheet/backend/internal/domain/statcalc"
	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/internal/model"
	"github.com/wyrmsheet/backend/internal/repository"
	"github.com/wyrmsheet/backend/pkg/enum"
	"github.com/wyrmsheet/backend/pkg/errorx"
	"github.com/wyrmsheet/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type CharacterDomain interface {
	Home(ctx context.Context, req *model.HomeRequest) (*model.HomeResponse, error)
	LoginPage(ctx context.Context, req *model.LoginPageRequest) (*model.LoginPageResponse, error)
	NewCharacterPage(ctx context.Context, req *model.NewCharacterPageRequest) (*model.NewCharacterPageResponse, error)
	CreateCharacter(ctx context.Context, req *model.CreateCharacterRequest) (*model.CreateCharacterResponse, error)
	GetCharacter(ctx context.Context, req *model.GetCharacterRequest) (*model.GetCharacterResponse, error)
	GetAbilityScore(ctx context.Context, req *model.GetAbilityScoreRequest) (*model.AttributeResponse, error)
	UpdateAbilityScore(ctx context.Context, req *model.UpdateAbilityScoreRequest) (*model.AttributeResponse, error)
}

type characterDomain struct {
	characterRepo     repository.CharacterRepository
	abilityScoreRepo  repository.AbilityScoreRepository
	skillRepo         repository.SkillRepository
	ownershipVerifier *common.OwnershipVerifier
}

func NewCharacterDomain(
	characterRepo repository.CharacterRepository,
	abilityScoreRepo repository.AbilityScoreRepository,
	skillRepo repository.SkillRepository,
) CharacterDomain {
	return &characterDomain{
		characterRepo:     characterRepo,
		abilityScoreRepo:  abilityScoreRepo,
		skillRepo:         skillRepo,
		ownershipVerifier: common.NewOwnershipVerifier(),
	}
}

func (d *characterDomain) Home(
	ctx context.Context, req *model.HomeRequest,
) (*model.HomeResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return &model.HomeResponse{Characters: []model.Character{}}, nil
	}

	characters, err := d.characterRepo.GetListByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get characters: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.HomeResponse{Characters: []model.Character{}}
	for i := range characters {
		resp.Characters = append(resp.Characters, model.ConvertCharacter(&characters[i]))
	}

	return resp, nil
}

func (d *characterDomain) LoginPage(
	ctx context.Context, req *model.LoginPageRequest,
) (*model.LoginPageResponse, error) {
	if xcontext.RequestUserID(ctx) != "" {
		return &model.LoginPageResponse{RedirectURL: "/"}, nil
	}

	return &model.LoginPageResponse{Next: req.Next}, nil
}

func (d *characterDomain) NewCharacterPage(
	ctx context.Context, req *model.NewCharacterPageRequest,
) (*model.NewCharacterPageResponse, error) {
	if xcontext.RequestUserID(ctx) == "" {
		return &model.NewCharacterPageResponse{RedirectURL: "/login?next=/new_character"}, nil
	}

	return &model.NewCharacterPageResponse{Alignments: alignmentOptions()}, nil
}

func (d *characterDomain) CreateCharacter(
	ctx context.Context, req *model.CreateCharacterRequest,
) (*model.CreateCharacterResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return &model.CreateCharacterResponse{RedirectURL: "/login?next=/new_character"}, nil
	}

	if req.Name == "" {
		return &model.CreateCharacterResponse{
			Error:      "Please give your character a name",
			Alignments: alignmentOptions(),
		}, nil
	}

	alignment := entity.TrueNeutral
	if req.Alignment != "" {
		alignment = entity.Alignment(req.Alignment)
		if !slices.Contains(entity.Alignments, alignment) {
			return &model.CreateCharacterResponse{
				Error:      "Unknown alignment",
				Name:       req.Name,
				Alignments: alignmentOptions(),
			}, nil
		}
	}

	character := &entity.Character{
		Base:      entity.Base{ID: uuid.NewString()},
		UserID:    userID,
		Name:      req.Name,
		Alignment: alignment,
	}

	// The character and all its child rows are created atomically. A
	// character without its six ability scores is unusable.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.characterRepo.Create(ctx, character); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create character: %v", err)
		return nil, errorx.Unknown
	}

	abilityScoreIDs := map[entity.AbilityKind]string{}
	for _, kind := range entity.AbilityKinds {
		score := &entity.AbilityScore{
			Base:        entity.Base{ID: uuid.NewString()},
			CharacterID: character.ID,
			Kind:        kind,
			Value:       entity.DefaultAbilityScore,
		}

		if err := d.abilityScoreRepo.Create(ctx, score); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create ability score: %v", err)
			return nil, errorx.Unknown
		}

		abilityScoreIDs[kind] = score.ID
	}

	for _, kind := range entity.SkillKinds {
		skill := &entity.Skill{
			Base:           entity.Base{ID: uuid.NewString()},
			AbilityScoreID: abilityScoreIDs[entity.SkillAbilities[kind]],
			Kind:           kind,
		}

		if err := d.skillRepo.Create(ctx, skill); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create skill: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.CreateCharacterResponse{RedirectURL: "/character/" + character.ID}, nil
}

func (d *characterDomain) GetCharacter(
	ctx context.Context, req *model.GetCharacterRequest,
) (*model.GetCharacterResponse, error) {
	character, err := d.loadOwnedCharacter(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	scores, err := d.abilityScoreRepo.GetListByCharacterID(ctx, character.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get ability scores: %v", err)
		return nil, errorx.Unknown
	}

	scoreByKind := map[entity.AbilityKind]*entity.AbilityScore{}
	scoreIDs := []string{}
	for i := range scores {
		scoreByKind[scores[i].Kind] = &scores[i]
		scoreIDs = append(scoreIDs, scores[i].ID)
	}

	skills, err := d.skillRepo.GetListByAbilityScoreIDs(ctx, scoreIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get skills: %v", err)
		return nil, errorx.Unknown
	}

	skillsByScoreID := map[string][]entity.Skill{}
	for _, skill := range skills {
		skillsByScoreID[skill.AbilityScoreID] = append(skillsByScoreID[skill.AbilityScoreID], skill)
	}

	resp := &model.GetCharacterResponse{
		Character:        model.ConvertCharacter(character),
		AbilityScores:    []model.AbilityScore{},
		ProficiencyBonus: statcalc.ProficiencyBonus,
	}

	for _, kind := range entity.AbilityKinds {
		score, ok := scoreByKind[kind]
		if !ok {
			continue
		}

		resp.AbilityScores = append(resp.AbilityScores,
			model.ConvertAbilityScore(score, sortSkills(skillsByScoreID[score.ID])))
	}

	return resp, nil
}

func (d *characterDomain) GetAbilityScore(
	ctx context.Context, req *model.GetAbilityScoreRequest,
) (*model.AttributeResponse, error) {
	character, err := d.loadOwnedCharacter(ctx, req.CharacterID)
	if err != nil {
		return nil, err
	}

	kind := entity.AbilityKind(req.Attribute)
	if !enum.IsValid(kind) {
		return nil, errorx.New(errorx.NotFound, "Unknown attribute %s", req.Attribute)
	}

	score, err := d.abilityScoreRepo.GetByCharacterAndKind(ctx, character.ID, kind)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get ability score: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AttributeResponse{string(kind): score.Value}, nil
}

func (d *characterDomain) UpdateAbilityScore(
	ctx context.Context, req *model.UpdateAbilityScoreRequest,
) (*model.AttributeResponse, error) {
	// Ownership is checked before the value is even parsed.
	character, err := d.loadOwnedCharacter(ctx, req.CharacterID)
	if err != nil {
		return nil, err
	}

	kind := entity.AbilityKind(req.Attribute)
	if !enum.IsValid(kind) {
		return nil, errorx.New(errorx.NotFound, "Unknown attribute %s", req.Attribute)
	}

	value, err := strconv.Atoi(req.Value)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "The value must be a number")
	}

	if value < entity.MinAbilityScore || value > entity.MaxAbilityScore {
		return nil, errorx.New(errorx.BadRequest, "The value must be between %d and %d",
			entity.MinAbilityScore, entity.MaxAbilityScore)
	}

	score, err := d.abilityScoreRepo.GetByCharacterAndKind(ctx, character.ID, kind)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get ability score: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.abilityScoreRepo.UpdateValue(ctx, score.ID, value); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update ability score: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AttributeResponse{
		string(kind):        value,
		"ability_score_mod": statcalc.AbilityScoreMod(value),
		"saving_throw":      statcalc.SavingThrow(value, score.Proficient),
	}, nil
}

func (d *characterDomain) loadOwnedCharacter(ctx context.Context, id string) (*entity.Character, error) {
	if xcontext.RequestUserID(ctx) == "" {
		return nil, errorx.New(errorx.Unauthenticated, "You need to login first")
	}

	character, err := d.characterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found character")
		}

		xcontext.Logger(ctx).Errorf("Cannot get character: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.ownershipVerifier.Verify(ctx, character); err != nil {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	return character, nil
}

func alignmentOptions() []model.AlignmentOption {
	options := []model.AlignmentOption{}
	for _, alignment := range entity.Alignments {
		options = append(options, model.AlignmentOption{
			Value:   string(alignment),
			Display: enum.ToString(alignment),
		})
	}

	return options
}

func sortSkills(skills []entity.Skill) []entity.Skill {
	slices.SortFunc(skills, func(a, b entity.Skill) bool {
		return slices.Index(entity.SkillKinds, a.Kind) < slices.Index(entity.SkillKinds, b.Kind)
	})

	return skills
}
