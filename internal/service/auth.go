package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/auth"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type AuthService struct {
	userRepo      repo.UserRepository
	authenticator *auth.JWTAuthenticator
	logger        *zap.SugaredLogger
}

func NewAuthService(userRepo repo.UserRepository, authenticator *auth.JWTAuthenticator, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		authenticator: authenticator,
		logger:        logger,
	}
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.authenticator.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Infow("user logged in", "user_id", user.ID.Hex(), "email", user.Email)

	return &LoginResult{Token: token, User: user}, nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repo.ErrNotFound
	}
	return s.userRepo.GetByID(ctx, oid)
}
