package repository

import (
	"context"

	"github.com/eliteprops/backend/domain"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	// Update persists name, phone and email edits on an existing profile.
	Update(ctx context.Context, profile *domain.Profile) error
}

// CredentialRepository manages the password hashes stored beside profiles,
// mirroring the hosted platform's separate auth schema.
type CredentialRepository interface {
	GetHash(ctx context.Context, profileID string) (string, error)
	SetHash(ctx context.Context, profileID, hash string) error
}
