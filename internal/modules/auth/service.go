package auth

import (
	"context"
	"errors"
	"strings"

	"makeupshop/internal/domain"
	"makeupshop/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewService(users UserRepository, tokens TokenIssuer) *Service {
	return &Service{users: users, tokens: tokens}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	role := domain.UserRole(req.Role)
	if role != domain.RoleArtist && role != domain.RoleModel {
		return nil, ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Nickname:     req.Nickname,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.issue(user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *Service) issue(user *domain.User) (*TokenResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		UserID:      user.ID,
		Role:        string(user.Role),
		AccessToken: token,
	}, nil
}
