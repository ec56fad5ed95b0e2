package entity

import (
	"time"

	"github.com/wyrmsheet/backend/pkg/enum"
)

type SpellSchool string

var (
	Abjuration    = enum.New(SpellSchool("abjuration"), "Abjuration")
	Conjuration   = enum.New(SpellSchool("conjuration"), "Conjuration")
	Divination    = enum.New(SpellSchool("divination"), "Divination")
	Enchantment   = enum.New(SpellSchool("enchantment"), "Enchantment")
	Evocation     = enum.New(SpellSchool("evocation"), "Evocation")
	Illusion      = enum.New(SpellSchool("illusion"), "Illusion")
	Necromancy    = enum.New(SpellSchool("necromancy"), "Necromancy")
	Transmutation = enum.New(SpellSchool("transmutation"), "Transmutation")
)

type CasterClass string

var (
	Bard     = enum.New(CasterClass("bard"), "Bard")
	Cleric   = enum.New(CasterClass("cleric"), "Cleric")
	Druid    = enum.New(CasterClass("druid"), "Druid")
	Paladin  = enum.New(CasterClass("paladin"), "Paladin")
	Ranger   = enum.New(CasterClass("ranger"), "Ranger")
	Sorcerer = enum.New(CasterClass("sorcerer"), "Sorcerer")
	Warlock  = enum.New(CasterClass("warlock"), "Warlock")
	Wizard   = enum.New(CasterClass("wizard"), "Wizard")
)

type SpellComponent string

var (
	Verbal   = enum.New(SpellComponent("V"), "Verbal")
	Somatic  = enum.New(SpellComponent("S"), "Somatic")
	Material = enum.New(SpellComponent("M"), "Material")
)

const (
	MinSpellLevel = 0
	MaxSpellLevel = 9
)

// SpellListing is read-only reference data keyed by the spell name.
type SpellListing struct {
	Name          string `gorm:"primaryKey"`
	Page          string
	CastingTime   string
	Range         string
	Duration      string
	Concentration bool
	Ritual        bool
	Level         int
	Description   string                `gorm:"type:text"`
	MaterialText  string                `gorm:"type:text"`
	Components    Array[SpellComponent] `gorm:"type:text"`
	School        SpellSchool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type SpellClass struct {
	SpellName string      `gorm:"primaryKey"`
	Class     CasterClass `gorm:"primaryKey"`
	CreatedAt time.Time
}
