package entity

import "time"

type User struct {
	Base
	Name           string `gorm:"unique"`
	HashedPassword string
}

type OAuth2 struct {
	UserID        string `gorm:"primaryKey"`
	Service       string `gorm:"primaryKey"`
	ServiceUserID string `gorm:"uniqueIndex"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (OAuth2) TableName() string {
	return "oauth2"
}

// RefreshToken stores one token family per login. The family value is hashed
// before storage so a database leak cannot forge refresh tokens.
type RefreshToken struct {
	Family     string `gorm:"primaryKey"`
	UserID     string
	Counter    uint64
	Expiration time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
