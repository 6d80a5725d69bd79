package service

import (
	"errors"

	"starfaves/config"
	"starfaves/internal/auth"
	"starfaves/internal/models"
	"starfaves/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCreds = errors.New("invalid username or password")

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// Register hashes the password and inserts the user. Duplicate
// username/email is not pre-checked; the unique index rejects it and
// the storage error propagates to the responder.
func (s *AuthService) Register(username, email, password string, isActive bool) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     isActive,
	}
	if err := s.userRepo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials against the username (or email, when the
// login contains an @) and returns the user with a signed access token.
func (s *AuthService) Login(login, password string) (*models.User, string, error) {
	u, err := s.userRepo.GetByUsername(login)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u, err = s.userRepo.GetByEmail(login)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCreds
	}
	token, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
