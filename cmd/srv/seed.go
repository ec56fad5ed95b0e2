package main

import (
	"context"

	"github.com/urfave/cli/v2"
	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/pkg/xcontext"
)

type seedSpell struct {
	spell   entity.SpellListing
	classes []entity.CasterClass
}

// A small starter set of reference spells, enough to make the spell pages
// useful out of the box.
var seedSpells = []seedSpell{
	{
		spell: entity.SpellListing{
			Name:        "Fireball",
			Page:        "phb 241",
			CastingTime: "1 action",
			Range:       "150 feet",
			Duration:    "Instantaneous",
			Level:       3,
			School:      entity.Evocation,
			Components:  entity.Array[entity.SpellComponent]{entity.Verbal, entity.Somatic, entity.Material},

			MaterialText: "A tiny ball of bat guano and sulfur.",
			Description:  "A bright streak flashes from your pointing finger to a point you choose and then blossoms with a low roar into an explosion of flame.",
		},
		classes: []entity.CasterClass{entity.Sorcerer, entity.Wizard},
	},
	{
		spell: entity.SpellListing{
			Name:        "Cure Wounds",
			Page:        "phb 230",
			CastingTime: "1 action",
			Range:       "Touch",
			Duration:    "Instantaneous",
			Level:       1,
			School:      entity.Evocation,
			Components:  entity.Array[entity.SpellComponent]{entity.Verbal, entity.Somatic},

			Description: "A creature you touch regains a number of hit points equal to 1d8 + your spellcasting ability modifier.",
		},
		classes: []entity.CasterClass{entity.Bard, entity.Cleric, entity.Druid, entity.Paladin, entity.Ranger},
	},
	{
		spell: entity.SpellListing{
			Name:        "Guidance",
			Page:        "phb 248",
			CastingTime: "1 action",
			Range:       "Touch",
			Duration:    "Up to 1 minute",
			Level:       0,
			School:      entity.Divination,
			Components:  entity.Array[entity.SpellComponent]{entity.Verbal, entity.Somatic},

			Concentration: true,
			Description:   "You touch one willing creature. Once before the spell ends, the target can roll a d4 and add the number rolled to one ability check of its choice.",
		},
		classes: []entity.CasterClass{entity.Cleric, entity.Druid},
	},
	{
		spell: entity.SpellListing{
			Name:        "Detect Magic",
			Page:        "phb 231",
			CastingTime: "1 action",
			Range:       "Self",
			Duration:    "Up to 10 minutes",
			Level:       1,
			School:      entity.Divination,
			Components:  entity.Array[entity.SpellComponent]{entity.Verbal, entity.Somatic},

			Concentration: true,
			Ritual:        true,
			Description:   "For the duration, you sense the presence of magic within 30 feet of you.",
		},
		classes: []entity.CasterClass{
			entity.Bard, entity.Cleric, entity.Druid, entity.Paladin,
			entity.Ranger, entity.Sorcerer, entity.Wizard,
		},
	},
	{
		spell: entity.SpellListing{
			Name:        "Eldritch Blast",
			Page:        "phb 237",
			CastingTime: "1 action",
			Range:       "120 feet",
			Duration:    "Instantaneous",
			Level:       0,
			School:      entity.Evocation,
			Components:  entity.Array[entity.SpellComponent]{entity.Verbal, entity.Somatic},

			Description: "A beam of crackling energy streaks toward a creature within range.",
		},
		classes: []entity.CasterClass{entity.Warlock},
	},
}

func (s *srv) startSeed(ct *cli.Context) error {
	s.loadConfig(ct)
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadRepos()

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, s.cfg)
	ctx = xcontext.WithLogger(ctx, s.logger)
	ctx = xcontext.WithDB(ctx, s.db)

	for _, seed := range seedSpells {
		spell := seed.spell
		if err := s.spellRepo.Create(ctx, &spell, seed.classes); err != nil {
			s.logger.Warnf("Skip %s: %v", spell.Name, err)
			continue
		}

		s.logger.Infof("Seeded %s", spell.Name)
	}

	return nil
}
