package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"dimec-inventory/internal/adapters/persistence/models"
	"dimec-inventory/internal/adapters/persistence/repositories"
	"dimec-inventory/internal/config"
	"dimec-inventory/internal/core/domain"
	"dimec-inventory/internal/pkg/jwt"
	"dimec-inventory/internal/pkg/password"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, cfg: cfg}
}

// Login authenticates a user and returns a signed token with the
// user identity, matching the /auth/login wire contract.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || creds.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(creds.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Name, user.Email, user.Role,
		s.cfg.JWT.Secret, s.cfg.JWT.ExpiryHours)
	if err != nil {
		return nil, err
	}

	log.Printf("user logged in: %s", user.Email)

	return &domain.LoginResult{
		Token:  token,
		Type:   "Bearer",
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}

// Register creates a new user account. Registration does not log the
// user in; the caller authenticates separately.
func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailTaken
	}

	role := domain.Role(input.Role)
	if input.Role == "" {
		role = domain.RoleViewer
	}
	if !role.Known() {
		return nil, domain.ErrInvalidInput
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Password: hashed,
		Role:     string(role),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("user registered: %s (%s)", user.Email, user.Role)
	return user, nil
}

// ValidateToken validates an access token
func (s *AuthService) ValidateToken(token string) (*jwt.Claims, error) {
	return jwt.ValidateToken(token, s.cfg.JWT.Secret)
}
