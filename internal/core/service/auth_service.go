package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentaldesk/rental-api/internal/core/domain"
	"github.com/rentaldesk/rental-api/internal/core/ports"
)

// AuthService implements registration, login and profile management.
type AuthService struct {
	repo      ports.OwnerRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.OwnerRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Owner, error) {
	name, err := domain.ValidateFullname(in.Fullname)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateOwnerPhone(in.Phone); err != nil {
		return nil, err
	}
	email := normalizeEmail(in.Email)
	if email == "" {
		return nil, domain.Validation("email is required")
	}
	if err := domain.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, email, in.Phone, 0); err != nil {
		return nil, err
	}

	role, err := s.repo.EnsureRole(ctx, domain.RoleOwner)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	owner := &domain.Owner{
		Fullname:     name,
		Phone:        in.Phone,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, owner); err != nil {
		return nil, err
	}
	owner.Role = role

	s.log.Info().Uint("owner_id", owner.ID).Msg("owner registered")
	return owner, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Owner, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	owner, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if owner.Authority() != domain.RoleOwner {
		return "", nil, domain.ErrNotOwnerRole
	}
	if !owner.IsActive {
		return "", nil, domain.ErrInactiveOwner
	}

	token, err := s.generateToken(owner)
	if err != nil {
		return "", nil, err
	}
	return token, owner, nil
}

func (s *AuthService) Profile(ctx context.Context, ownerID uint) (*domain.Owner, error) {
	return s.repo.FindByID(ctx, ownerID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, ownerID uint, patch ports.ProfilePatch) (*domain.Owner, error) {
	owner, err := s.repo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	email, phone := "", ""
	if patch.Fullname != nil {
		name, err := domain.ValidateFullname(*patch.Fullname)
		if err != nil {
			return nil, err
		}
		owner.Fullname = name
	}
	if patch.Phone != nil {
		if err := domain.ValidateOwnerPhone(*patch.Phone); err != nil {
			return nil, err
		}
		phone = *patch.Phone
	}
	if patch.Email != nil {
		email = normalizeEmail(*patch.Email)
		if email == "" {
			return nil, domain.Validation("email is required")
		}
	}

	if err := s.checkUnique(ctx, email, phone, owner.ID); err != nil {
		return nil, err
	}
	if email != "" {
		owner.Email = email
	}
	if phone != "" {
		owner.Phone = phone
	}

	if err := s.repo.Update(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, ownerID uint, oldPassword, newPassword string) error {
	owner, err := s.repo.FindByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(oldPassword)) != nil {
		return domain.ErrWrongPassword
	}
	if err := domain.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	owner.PasswordHash = string(hash)
	if err := s.repo.Update(ctx, owner); err != nil {
		return err
	}

	s.log.Info().Uint("owner_id", owner.ID).Msg("password changed")
	return nil
}

func (s *AuthService) Roles(ctx context.Context) ([]domain.Role, error) {
	return s.repo.ListRoles(ctx)
}

func (s *AuthService) Authenticate(ctx context.Context, ownerID uint) error {
	owner, err := s.repo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			return domain.ErrUnknownSubject
		}
		return err
	}
	if !owner.IsActive {
		return domain.ErrInactiveOwner
	}
	return nil
}

// checkUnique rejects an email or phone already used by another account.
// Empty values are skipped.
func (s *AuthService) checkUnique(ctx context.Context, email, phone string, exceptID uint) error {
	if email != "" {
		taken, err := s.repo.EmailTaken(ctx, email, exceptID)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrEmailTaken
		}
	}
	if phone != "" {
		taken, err := s.repo.PhoneTaken(ctx, phone, exceptID)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrPhoneTaken
		}
	}
	return nil
}

func (s *AuthService) generateToken(owner *domain.Owner) (string, error) {
	claims := jwt.MapClaims{
		"sub":  owner.Email,
		"oid":  strconv.FormatUint(uint64(owner.ID), 10),
		"role": owner.Authority(),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
