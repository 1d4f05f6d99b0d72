package service

import (
	"context"
	"errors"

	accountserrors "luxestay/internal/accounts/errors"
	"luxestay/internal/accounts/repository"
	"luxestay/internal/accounts/validator"
	"luxestay/pkg/auth"
	"luxestay/pkg/config"
	apperrors "luxestay/pkg/errors"
	"luxestay/pkg/model"
	"luxestay/pkg/sanitizer"
	"luxestay/pkg/validation"

	"golang.org/x/crypto/bcrypt"
)

const (
	DemoUsername = "demouser"
	DemoPassword = "password"
	DemoEmail    = "demo@example.com"
	DemoFullName = "Demo User"
)

type AccountService interface {
	Register(ctx context.Context, reg *model.Registration) (*model.Account, error)
	Authenticate(ctx context.Context, creds *model.Credentials) (*model.LoginResult, error)
	GetByID(ctx context.Context, id string) (*model.Account, error)
	EnsureDemoUser(ctx context.Context) error
}

type accountService struct {
	repo      repository.AccountRepository
	validator *validator.AccountValidator
	tokens    *auth.TokenIssuer
	cfg       *config.Config
	hashCost  int
}

func NewAccountService(
	repo repository.AccountRepository,
	validator *validator.AccountValidator,
	tokens *auth.TokenIssuer,
	cfg *config.Config,
) AccountService {
	return &accountService{
		repo:      repo,
		validator: validator,
		tokens:    tokens,
		cfg:       cfg,
		hashCost:  bcrypt.DefaultCost,
	}
}

func (s *accountService) Register(ctx context.Context, reg *model.Registration) (*model.Account, error) {
	s.sanitize(reg)
	if err := s.validator.ValidateRegistration(reg); err != nil {
		return nil, validation.ToAppError(err)
	}

	account, err := s.create(ctx, reg)
	if err != nil {
		return nil, err
	}

	s.cfg.Log.Info("Account registered", "id", account.ID, "username", account.Username)
	return account, nil
}

func (s *accountService) Authenticate(ctx context.Context, creds *model.Credentials) (*model.LoginResult, error) {
	creds.Username = sanitizer.NormalizeUsername(creds.Username)
	if err := s.validator.ValidateCredentials(creds); err != nil {
		return nil, validation.ToAppError(err)
	}

	account, err := s.repo.FindByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, accountserrors.ErrNotFound) {
			s.cfg.Log.Warn("Login failed", "username", creds.Username, "reason", "unknown username")
			return nil, apperrors.AuthFailure()
		}
		s.cfg.Log.Error("Failed to look up account", "username", creds.Username, "error", err)
		return nil, apperrors.Internal("Failed to authenticate", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(creds.Password)); err != nil {
		s.cfg.Log.Warn("Login failed", "username", creds.Username, "reason", "password mismatch")
		return nil, apperrors.AuthFailure()
	}

	token, expiresAt, err := s.tokens.Issue(account.ID, account.Username)
	if err != nil {
		return nil, apperrors.Internal("Failed to issue access token", err)
	}

	s.cfg.Log.Info("Login successful", "id", account.ID, "username", account.Username)
	return &model.LoginResult{
		Account:     account,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *accountService) GetByID(ctx context.Context, id string) (*model.Account, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("User ID cannot be empty")
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, accountserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("User", id)
		}
		if errors.Is(err, accountserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid user ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve user", err)
	}
	return account, nil
}

// EnsureDemoUser creates the well-known demo account if it does not exist.
// The demo password predates the registration policy, so validation is skipped.
func (s *accountService) EnsureDemoUser(ctx context.Context) error {
	_, err := s.repo.FindByUsername(ctx, DemoUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, accountserrors.ErrNotFound) {
		return apperrors.Internal("Failed to look up demo user", err)
	}

	_, err = s.create(ctx, &model.Registration{
		Username: DemoUsername,
		Password: DemoPassword,
		Email:    DemoEmail,
		FullName: DemoFullName,
	})
	if err != nil && !apperrors.HasCode(err, apperrors.CodeConflict) {
		return err
	}

	s.cfg.Log.Info("Demo user ensured", "username", DemoUsername)
	return nil
}

func (s *accountService) create(ctx context.Context, reg *model.Registration) (*model.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.hashCost)
	if err != nil {
		return nil, apperrors.Internal("Failed to hash password", err)
	}

	account := &model.Account{
		Username:     reg.Username,
		PasswordHash: string(hash),
		Email:        reg.Email,
		FullName:     reg.FullName,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, accountserrors.ErrDuplicate) {
			s.cfg.Log.Warn("Registration conflict", "username", reg.Username)
			return nil, apperrors.DuplicateKey("Username or email already exists")
		}
		s.cfg.Log.Error("Failed to create account", "username", reg.Username, "error", err)
		return nil, apperrors.Internal("Failed to create account", err)
	}
	return account, nil
}

func (s *accountService) sanitize(reg *model.Registration) {
	reg.Username = sanitizer.NormalizeUsername(reg.Username)
	reg.Email = sanitizer.NormalizeEmail(reg.Email)
	reg.FullName = sanitizer.NormalizeName(reg.FullName)
}
