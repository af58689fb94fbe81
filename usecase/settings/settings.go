package settings

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/repository"
)

const minPasswordLength = 6

// UseCase covers admin account settings: profile edits and password changes.
type UseCase struct {
	profiles    repository.ProfileRepository
	credentials repository.CredentialRepository
	logger      *zap.Logger
}

func New(profiles repository.ProfileRepository, credentials repository.CredentialRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{profiles: profiles, credentials: credentials, logger: logger}
}

func (uc *UseCase) Profile(ctx context.Context, profileID string) (*domain.Profile, error) {
	return uc.profiles.GetByID(ctx, profileID)
}

// UpdateProfile edits the display name, phone and email of the signed-in
// admin. Email changes take effect on the next sign-in.
func (uc *UseCase) UpdateProfile(ctx context.Context, profileID, name, phone, email string) (*domain.Profile, error) {
	if email == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "email is required")
	}
	profile, err := uc.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	profile.Name = name
	profile.Phone = phone
	profile.Email = email
	if err := uc.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}
	uc.logger.Info("profile updated", zap.String("profile_id", profileID))
	return uc.profiles.GetByID(ctx, profileID)
}

// UpdatePassword verifies the current password and stores a new bcrypt hash.
// The new password and its confirmation must match and meet the length floor.
func (uc *UseCase) UpdatePassword(ctx context.Context, profileID, current, next, confirm string) error {
	if next != confirm {
		return domain.NewError(domain.ErrCodeInvalid, "new passwords do not match")
	}
	if len(next) < minPasswordLength {
		return domain.NewError(domain.ErrCodeInvalid, "password must be at least 6 characters long")
	}

	hash, err := uc.credentials.GetHash(ctx, profileID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(current)) != nil {
		return domain.NewError(domain.ErrCodeUnauthorized, "current password is incorrect")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "failed to hash password", err)
	}
	if err := uc.credentials.SetHash(ctx, profileID, string(newHash)); err != nil {
		return err
	}
	uc.logger.Info("password updated", zap.String("profile_id", profileID))
	return nil
}
