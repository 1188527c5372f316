package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"workhours/internal/accounting"
	"workhours/internal/domain"
	"workhours/internal/errors"
	"workhours/internal/metrics"
	"workhours/internal/session"
	"workhours/internal/validation"
)

const invalidCredentialsMessage = "invalid username or password"

// Claims are carried by every issued token. Subject is the profile id.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// AuthOptions configures NewAuthService.
type AuthOptions struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	profiles  domain.ProfileStore
	sessions  session.Store
	validator *validation.UserValidator
	clock     accounting.Clock
	opts      AuthOptions
	logger    zerolog.Logger
}

// NewAuthService creates a new AuthService instance
func NewAuthService(profiles domain.ProfileStore, sessions session.Store, validator *validation.UserValidator, clock accounting.Clock, opts AuthOptions, logger zerolog.Logger) AuthService {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &authServiceImpl{
		profiles:  profiles,
		sessions:  sessions,
		validator: validator,
		clock:     clock,
		opts:      opts,
		logger:    logger,
	}
}

func (a *authServiceImpl) Register(ctx context.Context, r *validation.Registration) (*domain.Profile, error) {
	return a.CreateUser(ctx, r, domain.RoleUser)
}

func (a *authServiceImpl) CreateUser(ctx context.Context, r *validation.Registration, role domain.Role) (*domain.Profile, error) {
	if !role.Valid() {
		return nil, errors.NewInvalidInputError("role", role, "must be user or admin")
	}
	if err := a.validator.ValidateRegistration(r); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), a.opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	profile := &domain.Profile{
		Username:     r.Username,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := a.profiles.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	metrics.Registrations.Inc()
	a.logger.Info().Str("user_id", profile.ID).Str("username", profile.Username).Str("role", string(role)).Msg("user registered")
	return profile, nil
}

func (a *authServiceImpl) Login(ctx context.Context, c *validation.Credentials) (*LoginResult, error) {
	if err := a.validator.ValidateCredentials(c); err != nil {
		return nil, err
	}

	profile, err := a.profiles.GetProfileByUsername(ctx, c.Username)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			metrics.LoginAttempts.WithLabelValues("unknown_user").Inc()
			return nil, errors.NewUnauthorizedError(invalidCredentialsMessage)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(c.Password)); err != nil {
		metrics.LoginAttempts.WithLabelValues("bad_password").Inc()
		return nil, errors.NewUnauthorizedError(invalidCredentialsMessage)
	}

	now := a.clock.Now()
	s := session.Session{
		ID:        uuid.NewString(),
		UserID:    profile.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.opts.TokenTTL),
	}
	if err := a.sessions.Save(ctx, s); err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeDatabase, "failed to save session")
	}

	token, err := a.sign(profile.ID, s)
	if err != nil {
		return nil, err
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	a.logger.Info().Str("user_id", profile.ID).Str("session_id", s.ID).Msg("user logged in")
	return &LoginResult{Token: token, ExpiresAt: s.ExpiresAt, Profile: *profile}, nil
}

func (a *authServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := a.parse(token)
	if err != nil {
		return err
	}
	if err := a.sessions.Delete(ctx, claims.SessionID); err != nil {
		return errors.WrapError(err, errors.ErrorTypeDatabase, "failed to delete session")
	}
	a.logger.Info().Str("user_id", claims.Subject).Str("session_id", claims.SessionID).Msg("user logged out")
	return nil
}

func (a *authServiceImpl) Authenticate(ctx context.Context, token string) (*domain.Profile, error) {
	claims, err := a.parse(token)
	if err != nil {
		return nil, err
	}

	s, err := a.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if stderrors.Is(err, session.ErrNotFound) {
			return nil, errors.NewUnauthorizedError("session has ended")
		}
		return nil, errors.WrapError(err, errors.ErrorTypeDatabase, "failed to load session")
	}
	if s.UserID != claims.Subject {
		return nil, errors.NewUnauthorizedError("session does not match token")
	}

	profile, err := a.profiles.GetProfile(ctx, claims.Subject)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, errors.NewUnauthorizedError("account no longer exists")
		}
		return nil, err
	}
	return profile, nil
}

func (a *authServiceImpl) sign(userID string, s session.Session) (string, error) {
	claims := Claims{
		SessionID: s.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
			NotBefore: jwt.NewNumericDate(s.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.opts.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (a *authServiceImpl) parse(token string) (*Claims, error) {
	if token == "" {
		return nil, errors.NewUnauthorizedError("missing token")
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(a.opts.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.clock.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid token")
	}
	if claims.SessionID == "" || claims.Subject == "" {
		return nil, errors.NewUnauthorizedError("invalid token")
	}
	return claims, nil
}
