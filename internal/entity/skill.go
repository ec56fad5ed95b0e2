package entity

import "github.com/wyrmsheet/backend/pkg/enum"

type SkillKind string

var (
	Athletics      = enum.New(SkillKind("athletics"), "Athletics")
	Acrobatics     = enum.New(SkillKind("acrobatics"), "Acrobatics")
	SleightOfHand  = enum.New(SkillKind("sleight_of_hand"), "Sleight of Hand")
	Stealth        = enum.New(SkillKind("stealth"), "Stealth")
	Arcana         = enum.New(SkillKind("arcana"), "Arcana")
	History        = enum.New(SkillKind("history"), "History")
	Investigation  = enum.New(SkillKind("investigation"), "Investigation")
	Nature         = enum.New(SkillKind("nature"), "Nature")
	Religion       = enum.New(SkillKind("religion"), "Religion")
	AnimalHandling = enum.New(SkillKind("animal_handling"), "Animal Handling")
	Insight        = enum.New(SkillKind("insight"), "Insight")
	Medicine       = enum.New(SkillKind("medicine"), "Medicine")
	Perception     = enum.New(SkillKind("perception"), "Perception")
	Survival       = enum.New(SkillKind("survival"), "Survival")
	Deception      = enum.New(SkillKind("deception"), "Deception")
	Intimidation   = enum.New(SkillKind("intimidation"), "Intimidation")
	Performance    = enum.New(SkillKind("performance"), "Performance")
	Persuasion     = enum.New(SkillKind("persuasion"), "Persuasion")
)

// SkillAbilities is the fixed skill to ability-score table. It is never
// mutated after package initialization.
var SkillAbilities = map[SkillKind]AbilityKind{
	Athletics:      Strength,
	Acrobatics:     Dexterity,
	SleightOfHand:  Dexterity,
	Stealth:        Dexterity,
	Arcana:         Intelligence,
	History:        Intelligence,
	Investigation:  Intelligence,
	Nature:         Intelligence,
	Religion:       Intelligence,
	AnimalHandling: Wisdom,
	Insight:        Wisdom,
	Medicine:       Wisdom,
	Perception:     Wisdom,
	Survival:       Wisdom,
	Deception:      Charisma,
	Intimidation:   Charisma,
	Performance:    Charisma,
	Persuasion:     Charisma,
}

// SkillKinds is in display order, grouped by ability-score kind.
var SkillKinds = []SkillKind{
	Athletics,
	Acrobatics, SleightOfHand, Stealth,
	Arcana, History, Investigation, Nature, Religion,
	AnimalHandling, Insight, Medicine, Perception, Survival,
	Deception, Intimidation, Performance, Persuasion,
}

type Skill struct {
	Base
	AbilityScoreID string    `gorm:"uniqueIndex:idx_skills_ability_score_kind"`
	Kind           SkillKind `gorm:"uniqueIndex:idx_skills_ability_score_kind"`
	Proficient     bool
}
