package common

import (
	"context"
	"errors"

	"github.com/wyrmsheet/backend/internal/entity"
	"github.com/wyrmsheet/backend/pkg/xcontext"
)

// OwnershipVerifier gates access to a character and everything hanging off
// it. Only the owning user may view or edit.
type OwnershipVerifier struct{}

func NewOwnershipVerifier() *OwnershipVerifier {
	return &OwnershipVerifier{}
}

func (verifier *OwnershipVerifier) Verify(ctx context.Context, character *entity.Character) error {
	userID := xcontext.RequestUserID(ctx)
	if userID == "" {
		return errors.New("not authenticated")
	}

	if character.UserID != userID {
		return errors.New("user does not own this character")
	}

	return nil
}
