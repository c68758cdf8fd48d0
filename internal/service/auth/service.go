package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/univent-hse/Univent-VenueService/internal/domain"
	userRepo "github.com/univent-hse/Univent-VenueService/internal/infra/storage/user"
)

// RegisterRequest запрос на регистрацию
type RegisterRequest struct {
	FullName string
	Email    string
	Password string
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string
	Password string
}

// TokenPair пара выпущенных токенов
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Service сервис регистрации и аутентификации
type Service struct {
	userRepo      UserRepository
	tokens        TokenIssuer
	bcryptCost    int
	defaultLocale string
	logger        Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, tokens TokenIssuer, bcryptCost int, defaultLocale string, logger Logger) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	if defaultLocale == "" {
		defaultLocale = "ru"
	}
	return &Service{
		userRepo:      userRepo,
		tokens:        tokens,
		bcryptCost:    bcryptCost,
		defaultLocale: defaultLocale,
		logger:        logger,
	}
}

// Register регистрирует нового пользователя с ролью student и выпускает токены
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*TokenPair, error) {
	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	created, err := s.userRepo.Create(ctx, &domain.User{
		FullName:       strings.TrimSpace(req.FullName),
		Email:          normalizeEmail(req.Email),
		HashedPassword: string(hashed),
		Role:           domain.RoleStudent,
		Locale:         s.defaultLocale,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email already registered: %s", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user created id=%d role=%s", created.ID, created.Role)
	return s.issue(created)
}

// Login проверяет пару email/пароль и выпускает токены
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*TokenPair, error) {
	u, err := s.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email %s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(req.Password)) != nil {
		s.logger.Warn("Login: wrong password for user id=%d", u.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user id=%d authenticated", u.ID)
	return s.issue(u)
}

// GetByID получает пользователя по ID (для /auth/me)
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return u, nil
}

func (s *Service) issue(u *domain.User) (*TokenPair, error) {
	pair, err := s.tokens.IssuePair(u.ID, string(u.Role), u.FullName)
	if err != nil {
		s.logger.Error("issue: failed to issue tokens for user id=%d: %v", u.ID, err)
		return nil, fmt.Errorf("%w: failed to issue tokens: %v", ErrInternal, err)
	}
	return &TokenPair{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func validateRegister(req *RegisterRequest) error {
	if strings.TrimSpace(req.FullName) == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}
	email := normalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(req.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
