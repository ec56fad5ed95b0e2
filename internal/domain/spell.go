package domain

import (
	"context"
	"errors"

	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/internal/model"
	"github.com/wyrmsheet/backend/internal/repository"
	"github.com/wyrmsheet/backend/pkg/enum"
	"github.com/wyrmsheet/backend/pkg/errorx"
	"github.com/wyrmsheet/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type SpellDomain interface {
	SpellsPage(ctx context.Context, req *model.SpellsPageRequest) (*model.SpellsPageResponse, error)
	GetSpell(ctx context.Context, req *model.GetSpellRequest) (*model.GetSpellResponse, error)
	GetClassSpells(ctx context.Context, req *model.GetClassSpellsRequest) (*model.GetClassSpellsResponse, error)
}

type spellDomain struct {
	spellRepo repository.SpellRepository
}

func NewSpellDomain(spellRepo repository.SpellRepository) SpellDomain {
	return &spellDomain{spellRepo: spellRepo}
}

func (d *spellDomain) SpellsPage(
	ctx context.Context, req *model.SpellsPageRequest,
) (*model.SpellsPageResponse, error) {
	spells, err := d.spellRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get spells: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.SpellsPageResponse{Spells: []model.Spell{}}
	for i := range spells {
		resp.Spells = append(resp.Spells, model.ConvertSpell(&spells[i], nil))
	}

	return resp, nil
}

func (d *spellDomain) GetSpell(
	ctx context.Context, req *model.GetSpellRequest,
) (*model.GetSpellResponse, error) {
	spell, err := d.spellRepo.GetByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found spell %s", req.Name)
		}

		xcontext.Logger(ctx).Errorf("Cannot get spell: %v", err)
		return nil, errorx.Unknown
	}

	classes, err := d.spellRepo.GetClasses(ctx, spell.Name)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get spell classes: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetSpellResponse{Spell: model.ConvertSpell(spell, classes)}, nil
}

func (d *spellDomain) GetClassSpells(
	ctx context.Context, req *model.GetClassSpellsRequest,
) (*model.GetClassSpellsResponse, error) {
	class := entity.CasterClass(req.Class)
	if !enum.IsValid(class) {
		return nil, errorx.New(errorx.NotFound, "Not found caster class %s", req.Class)
	}

	spells, err := d.spellRepo.GetListByClass(ctx, class)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get spells of class: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetClassSpellsResponse{
		Class:  enum.ToString(class),
		Spells: []model.Spell{},
	}
	for i := range spells {
		resp.Spells = append(resp.Spells, model.ConvertSpell(&spells[i], nil))
	}

	return resp, nil
}
