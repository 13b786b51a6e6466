package service

import (
	"context"
	log "log/slog"
	"time"

	"talkify/internal/api/dto"
	"talkify/internal/model"
	"talkify/internal/pkg/oauth"
	"talkify/internal/pkg/redis"
	"talkify/internal/pkg/security"
	"talkify/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, idToken string) (*dto.LoginResponseDTO, error)
	Logout(ctx context.Context, token string) error
}

// RevocationStore persists revoked token signatures until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, signature string, ttl time.Duration) error
}

type redisRevocationStore struct{}

func (redisRevocationStore) Revoke(ctx context.Context, signature string, ttl time.Duration) error {
	return redis.SetWithExpiration(ctx, signature, true, ttl)
}

type authServiceImpl struct {
	verifier    oauth.Verifier
	userRepo    repository.UserRepo
	revocations RevocationStore
}

func NewAuthService(verifier oauth.Verifier, userRepo repository.UserRepo) AuthService {
	return &authServiceImpl{
		verifier:    verifier,
		userRepo:    userRepo,
		revocations: redisRevocationStore{},
	}
}

// Login verifies the Google ID token, upserts the user record and
// issues a session token bound to the Google subject id.
func (s *authServiceImpl) Login(ctx context.Context, idToken string) (*dto.LoginResponseDTO, error) {
	if idToken == "" {
		return nil, ErrLoginTokenRequired
	}

	claims, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		log.WarnContext(ctx, "google token verification failed", "err", err)
		return nil, ErrInvalidGoogleToken
	}

	user := &model.User{
		UserID:         claims.Subject,
		Name:           claims.Name,
		Email:          claims.Email,
		ProfilePicture: claims.Picture,
		LastLogin:      time.Now().UTC(),
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}

	token, err := security.GenerateToken(user.UserID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponseDTO{
		AccessToken: token,
		User: &dto.UserDTO{
			UserID:         user.UserID,
			Name:           user.Name,
			Email:          user.Email,
			ProfilePicture: user.ProfilePicture,
			LastLogin:      user.LastLogin,
		},
	}, nil
}

// Logout blacklists the token's signature for its remaining lifetime.
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := security.ValidateToken(token)
	if err != nil {
		return ErrInvalidGoogleToken
	}

	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}

	ttl := security.JWTExpirationTime
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}

	return s.revocations.Revoke(ctx, signature, ttl)
}
