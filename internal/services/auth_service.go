package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dayflow-dev/dayflow/internal/auth"
	"github.com/dayflow-dev/dayflow/internal/models"
	"github.com/dayflow-dev/dayflow/internal/stores"
	"github.com/dayflow-dev/dayflow/internal/types"
)

type TokenIssuer interface {
	GenerateJWT(userID uint, role types.Role) (string, error)
	VerifyJWT(tokenString string) (*auth.Claims, error)
}

type AuthService struct {
	users  stores.UserStore
	hasher auth.PasswordHasher
	tokens TokenIssuer
}

func NewAuthService(users stores.UserStore, hasher auth.PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Signup(ctx context.Context, email, password string, role types.Role) (*models.User, error) {
	email = normalizeEmail(email)

	if !role.Valid() {
		return nil, newError(KindValidation, "Role must be admin or employee")
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, newError(KindConflict, "User already exists")
	}
	if !errors.Is(err, stores.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(role),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, stores.ErrDuplicate) {
			return nil, newError(KindConflict, "User already exists")
		}
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns a signed access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, types.Role, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return "", "", newError(KindUnauthenticated, "Invalid credentials")
		}
		return "", "", err
	}

	if err := s.hasher.Compare([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", newError(KindUnauthenticated, "Invalid credentials")
	}

	role := types.Role(user.Role)

	token, err := s.tokens.GenerateJWT(user.ID, role)
	if err != nil {
		return "", "", err
	}

	return token, role, nil
}

func (s *AuthService) Authenticate(token string) (*auth.Claims, error) {
	if token == "" {
		return nil, newError(KindUnauthenticated, "Authorization token is required")
	}

	claims, err := s.tokens.VerifyJWT(token)
	if err != nil {
		return nil, newError(KindUnauthenticated, "Invalid or expired token")
	}

	return claims, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, newError(KindUnauthenticated, "User not found")
		}
		return nil, err
	}
	return user, nil
}
