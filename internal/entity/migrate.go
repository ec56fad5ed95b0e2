package entity

import (
	"context"

	"github.com/wyrmsheet/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&OAuth2{},
		&RefreshToken{},
		&Character{},
		&AbilityScore{},
		&Skill{},
		&SpellListing{},
		&SpellClass{},
	)
}
