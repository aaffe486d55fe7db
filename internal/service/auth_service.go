package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/funfriday/backend/internal/auth"
	"github.com/funfriday/backend/internal/models"
	"github.com/funfriday/backend/internal/storage"
)

// AuthService wraps the authenticator and token manager into the three
// operations the API exposes: register, login, and current-user lookup.
type AuthService struct {
	authenticator auth.Authenticator
	tokens        *auth.JWTManager
	users         storage.UserStore
}

// NewAuthService creates an AuthService.
func NewAuthService(authenticator auth.Authenticator, tokens *auth.JWTManager, users storage.UserStore) *AuthService {
	return &AuthService{authenticator: authenticator, tokens: tokens, users: users}
}

// Session is a logged-in user plus their bearer token.
type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register creates an account and returns a fresh session.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*Session, error) {
	user, err := s.authenticator.Register(ctx, email, name, password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, backendErr("register", err)
	}

	slog.Info("user registered", "user_id", user.ID)
	return &Session{User: user, Token: token}, nil
}

// Login verifies credentials and returns a fresh session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, backendErr("login", err)
	}

	return &Session{User: user, Token: token}, nil
}

// CurrentUser loads the profile behind an authenticated user ID.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, backendErr("current user", err)
	}
	return user, nil
}
