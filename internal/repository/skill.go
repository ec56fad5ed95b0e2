package repository

import (
	"context"

	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/pkg/xcontext"
)

type SkillRepository interface {
	Create(ctx context.Context, skill *entity.Skill) error
	GetListByAbilityScoreID(ctx context.Context, abilityScoreID string) ([]entity.Skill, error)
	GetListByAbilityScoreIDs(ctx context.Context, abilityScoreIDs []string) ([]entity.Skill, error)
	UpdateProficient(ctx context.Context, id string, proficient bool) error
}

type skillRepository struct{}

func NewSkillRepository() SkillRepository {
	return &skillRepository{}
}

func (r *skillRepository) Create(ctx context.Context, skill *entity.Skill) error {
	return xcontext.DB(ctx).Create(skill).Error
}

func (r *skillRepository) GetListByAbilityScoreID(
	ctx context.Context, abilityScoreID string,
) ([]entity.Skill, error) {
	var result []entity.Skill
	if err := xcontext.DB(ctx).Find(&result, "ability_score_id=?", abilityScoreID).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *skillRepository) GetListByAbilityScoreIDs(
	ctx context.Context, abilityScoreIDs []string,
) ([]entity.Skill, error) {
	var result []entity.Skill
	if err := xcontext.DB(ctx).Find(&result, "ability_score_id IN (?)", abilityScoreIDs).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *skillRepository) UpdateProficient(ctx context.Context, id string, proficient bool) error {
	return xcontext.DB(ctx).
		Model(&entity.Skill{}).
		Where("id=?", id).
		Update("proficient", proficient).Error
}
