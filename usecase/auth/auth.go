package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/eliteprops/backend/domain"
	"github.com/eliteprops/backend/repository"
)

var errInvalidCredentials = domain.NewError(domain.ErrCodeUnauthorized, "invalid email or password")

// Config carries the token-signing settings.
type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type UseCase struct {
	profiles    repository.ProfileRepository
	credentials repository.CredentialRepository
	sessions    repository.SessionRepository
	cfg         Config
	logger      *zap.Logger
}

func New(
	profiles repository.ProfileRepository,
	credentials repository.CredentialRepository,
	sessions repository.SessionRepository,
	cfg Config,
	logger *zap.Logger,
) *UseCase {
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		profiles:    profiles,
		credentials: credentials,
		sessions:    sessions,
		cfg:         cfg,
		logger:      logger,
	}
}

// SignIn verifies the credential pair, requires the admin role and issues a
// session plus a signed bearer token. A non-admin principal never receives a
// session, matching the back office access convention.
func (uc *UseCase) SignIn(ctx context.Context, email, password string) (*domain.Session, string, error) {
	if email == "" || password == "" {
		return nil, "", errInvalidCredentials
	}

	profile, err := uc.profiles.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", err
	}

	hash, err := uc.credentials.GetHash(ctx, profile.ID)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, "", errInvalidCredentials
	}

	if !profile.IsAdmin() {
		uc.logger.Warn("non-admin sign-in rejected", zap.String("profile_id", profile.ID))
		return nil, "", domain.ErrAdminRequired
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		ProfileID: profile.ID,
		Email:     profile.Email,
		Role:      profile.Role,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(uc.cfg.TTL),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, "", err
	}

	token, err := uc.signToken(session)
	if err != nil {
		_ = uc.sessions.Delete(ctx, session.ID)
		return nil, "", err
	}
	return session, token, nil
}

// Authenticate validates a bearer token and resolves its live session.
func (uc *UseCase) Authenticate(ctx context.Context, tokenString string) (*domain.Session, error) {
	if tokenString == "" {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrUnauthorized
		}
		return []byte(uc.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	sessionID, _ := claims["session_id"].(string)
	if sessionID == "" {
		return nil, domain.ErrUnauthorized
	}

	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if session.IsExpired(time.Now()) {
		_ = uc.sessions.Delete(ctx, sessionID)
		return nil, domain.ErrUnauthorized
	}
	if session.Role != domain.RoleAdmin {
		return nil, domain.ErrAdminRequired
	}
	return session, nil
}

// Refresh extends a live session by the configured TTL.
func (uc *UseCase) Refresh(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Extend(ctx, sessionID, int(uc.cfg.TTL.Seconds())); err != nil {
		return nil, err
	}
	session.ExpiresAt = time.Now().Add(uc.cfg.TTL)
	return session, nil
}

// SignOut revokes the session.
func (uc *UseCase) SignOut(ctx context.Context, sessionID string) error {
	return uc.sessions.Delete(ctx, sessionID)
}

func (uc *UseCase) signToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"session_id": session.ID,
		"profile_id": session.ProfileID,
		"iss":        uc.cfg.Issuer,
		"exp":        session.ExpiresAt.Unix(),
		"iat":        session.CreatedAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(uc.cfg.Secret))
}

// HashPassword produces a bcrypt hash for credential storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
