package auth

import (
	"context"
	"testing"
	"time"

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
		return p, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (f *fakeProfileRepo) Update(context.Context, *domain.Profile) error { return nil }

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

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
}

func (f *fakeSessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (f *fakeSessionRepo) Save(_ context.Context, session *domain.Session) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionRepo) Extend(context.Context, string, int) error { return nil }

func newFixture(t *testing.T, role string) (*UseCase, *fakeSessionRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	profiles := &fakeProfileRepo{profiles: map[string]*domain.Profile{
		"p-1": {ID: "p-1", Email: "admin@eliteprops.co.ke", Role: role},
	}}
	credentials := &fakeCredentialRepo{hashes: map[string]string{"p-1": string(hash)}}
	sessions := &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
	uc := New(profiles, credentials, sessions, Config{Secret: "test-secret", Issuer: "eliteprops", TTL: time.Hour}, zap.NewNop())
	return uc, sessions
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("valid admin credentials", func(t *testing.T) {
		uc, sessions := newFixture(t, domain.RoleAdmin)
		session, token, err := uc.SignIn(ctx, "admin@eliteprops.co.ke", "secret-pass")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "p-1", session.ProfileID)
		assert.Contains(t, sessions.sessions, session.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, _ := newFixture(t, domain.RoleAdmin)
		_, _, err := uc.SignIn(ctx, "admin@eliteprops.co.ke", "nope")
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
	})

	t.Run("unknown email maps to the same error as a bad password", func(t *testing.T) {
		uc, _ := newFixture(t, domain.RoleAdmin)
		_, _, err := uc.SignIn(ctx, "nobody@eliteprops.co.ke", "secret-pass")
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
	})

	t.Run("non-admin rejected even with valid credentials", func(t *testing.T) {
		uc, sessions := newFixture(t, domain.RoleUser)
		_, _, err := uc.SignIn(ctx, "admin@eliteprops.co.ke", "secret-pass")
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeForbidden))
		assert.Empty(t, sessions.sessions)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	uc, sessions := newFixture(t, domain.RoleAdmin)

	session, token, err := uc.SignIn(ctx, "admin@eliteprops.co.ke", "secret-pass")
	require.NoError(t, err)

	t.Run("valid token resolves the session", func(t *testing.T) {
		resolved, err := uc.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, session.ID, resolved.ID)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := uc.Authenticate(ctx, "not-a-jwt")
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
	})

	t.Run("expired session is revoked", func(t *testing.T) {
		sessions.sessions[session.ID].ExpiresAt = time.Now().Add(-time.Minute)
		_, err := uc.Authenticate(ctx, token)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
		assert.NotContains(t, sessions.sessions, session.ID)
	})
}

func TestSignOut(t *testing.T) {
	ctx := context.Background()
	uc, sessions := newFixture(t, domain.RoleAdmin)

	session, token, err := uc.SignIn(ctx, "admin@eliteprops.co.ke", "secret-pass")
	require.NoError(t, err)

	require.NoError(t, uc.SignOut(ctx, session.ID))
	assert.Empty(t, sessions.sessions)

	_, err = uc.Authenticate(ctx, token)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
}
