package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/eliteprops/backend/domain"
)

type fakeProfileRepo struct {
	profiles map[string]*domain.Profile
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (f *fakeProfileRepo) Update(_ context.Context, profile *domain.Profile) error {
	cp := *profile
	f.profiles[profile.ID] = &cp
	return nil
}

type fakeCredentialRepo struct {
	hashes map[string]string
}

func (f *fakeCredentialRepo) GetHash(_ context.Context, profileID string) (string, error) {
	if h, ok := f.hashes[profileID]; ok {
		return h, nil
	}
	return "", domain.ErrProfileNotFound
}

func (f *fakeCredentialRepo) SetHash(_ context.Context, profileID, hash string) error {
	f.hashes[profileID] = hash
	return nil
}

func newFixture(t *testing.T) (*UseCase, *fakeProfileRepo, *fakeCredentialRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("old-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	profiles := &fakeProfileRepo{profiles: map[string]*domain.Profile{
		"p-1": {ID: "p-1", Email: "admin@eliteprops.co.ke", Name: "Admin", Role: domain.RoleAdmin},
	}}
	credentials := &fakeCredentialRepo{hashes: map[string]string{"p-1": string(hash)}}
	return New(profiles, credentials, zap.NewNop()), profiles, credentials
}

func TestUpdateProfile(t *testing.T) {
	uc, profiles, _ := newFixture(t)

	updated, err := uc.UpdateProfile(context.Background(), "p-1", "New Name", "0711", "new@eliteprops.co.ke")
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "new@eliteprops.co.ke", updated.Email)
	assert.Equal(t, "new@eliteprops.co.ke", profiles.profiles["p-1"].Email)

	_, err = uc.UpdateProfile(context.Background(), "p-1", "x", "y", "")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	_, err = uc.UpdateProfile(context.Background(), "missing", "x", "y", "a@b.c")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestUpdatePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("mismatched confirmation", func(t *testing.T) {
		uc, _, _ := newFixture(t)
		err := uc.UpdatePassword(ctx, "p-1", "old-secret", "new-secret", "other")
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	})

	t.Run("too short", func(t *testing.T) {
		uc, _, _ := newFixture(t)
		err := uc.UpdatePassword(ctx, "p-1", "old-secret", "short", "short")
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	})

	t.Run("wrong current password", func(t *testing.T) {
		uc, _, _ := newFixture(t)
		err := uc.UpdatePassword(ctx, "p-1", "wrong", "new-secret", "new-secret")
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
	})

	t.Run("success replaces hash", func(t *testing.T) {
		uc, _, credentials := newFixture(t)
		before := credentials.hashes["p-1"]
		err := uc.UpdatePassword(ctx, "p-1", "old-secret", "new-secret", "new-secret")
		require.NoError(t, err)
		after := credentials.hashes["p-1"]
		assert.NotEqual(t, before, after)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after), []byte("new-secret")))
	})
}
