package entity

import "github.com/wyrmsheet/backend/pkg/enum"

type AbilityKind string

var (
	Strength     = enum.New(AbilityKind("strength"), "Strength")
	Dexterity    = enum.New(AbilityKind("dexterity"), "Dexterity")
	Constitution = enum.New(AbilityKind("constitution"), "Constitution")
	Intelligence = enum.New(AbilityKind("intelligence"), "Intelligence")
	Wisdom       = enum.New(AbilityKind("wisdom"), "Wisdom")
	Charisma     = enum.New(AbilityKind("charisma"), "Charisma")
)

// AbilityKinds is in display order; every character has exactly one
// AbilityScore per kind.
var AbilityKinds = []AbilityKind{
	Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma,
}

const (
	MinAbilityScore = 1
	MaxAbilityScore = 25

	// The default of a freshly created character; its modifier is zero.
	DefaultAbilityScore = 10
)

type AbilityScore struct {
	Base
	CharacterID string      `gorm:"uniqueIndex:idx_ability_scores_character_kind"`
	Kind        AbilityKind `gorm:"uniqueIndex:idx_ability_scores_character_kind"`
	Value       int
	Proficient  bool
}
