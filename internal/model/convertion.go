package model

import (
	"strconv"

	"github.com/wyrmsheet/backend/internal/domain/statcalc"
	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/pkg/enum"
)

func ConvertCharacter(character *entity.Character) Character {
	if character == nil {
		return Character{}
	}

	return Character{
		ID:               character.ID,
		Name:             character.Name,
		Alignment:        string(character.Alignment),
		AlignmentDisplay: enum.ToString(character.Alignment),
	}
}

func ConvertSkill(skill *entity.Skill, score int) Skill {
	return Skill{
		Kind:       string(skill.Kind),
		Display:    enum.ToString(skill.Kind),
		Proficient: skill.Proficient,
		Bonus:      statcalc.SkillBonus(score, skill.Proficient),
	}
}

func ConvertAbilityScore(score *entity.AbilityScore, skills []entity.Skill) AbilityScore {
	modelSkills := []Skill{}
	for i := range skills {
		modelSkills = append(modelSkills, ConvertSkill(&skills[i], score.Value))
	}

	return AbilityScore{
		Kind:        string(score.Kind),
		Display:     enum.ToString(score.Kind),
		Value:       score.Value,
		Proficient:  score.Proficient,
		Mod:         statcalc.AbilityScoreMod(score.Value),
		SavingThrow: statcalc.SavingThrow(score.Value, score.Proficient),
		Skills:      modelSkills,
	}
}

// SpellLevelDisplay renders level zero as Cantrip.
func SpellLevelDisplay(level int) string {
	if level == 0 {
		return "Cantrip"
	}

	return strconv.Itoa(level)
}

func ConvertSpell(spell *entity.SpellListing, classes []entity.CasterClass) Spell {
	if spell == nil {
		return Spell{}
	}

	components := []string{}
	for _, c := range spell.Components {
		components = append(components, string(c))
	}

	classNames := []string{}
	for _, class := range classes {
		classNames = append(classNames, enum.ToString(class))
	}

	return Spell{
		Name:          spell.Name,
		School:        string(spell.School),
		SchoolDisplay: enum.ToString(spell.School),
		Level:         spell.Level,
		LevelDisplay:  SpellLevelDisplay(spell.Level),
		CastingTime:   spell.CastingTime,
		Range:         spell.Range,
		Duration:      spell.Duration,
		Components:    components,
		MaterialText:  spell.MaterialText,
		Concentration: spell.Concentration,
		Ritual:        spell.Ritual,
		Description:   spell.Description,
		Page:          spell.Page,
		Classes:       classNames,
	}
}
