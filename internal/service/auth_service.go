// Package service contains the service layer for the ElectroWay API
package service

import (
	"errors"
	"strings"

	"github.com/electroway/electrowayapi/internal/models"
	"github.com/electroway/electrowayapi/internal/repository"
	"github.com/electroway/electrowayapi/pkg/utils/apperr"
	"github.com/electroway/electrowayapi/pkg/utils/zaplogger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost matches the work factor the passwords were originally hashed with.
const bcryptCost = 12

// AuthService handles registration and credential verification
type AuthService struct {
	repo         *repository.UserRepository
	tokenService *TokenService
}

// NewAuthService creates a new service for signup and login
func NewAuthService(db *gorm.DB, tokenService *TokenService) *AuthService {
	return &AuthService{
		repo:         repository.NewUserRepository(db),
		tokenService: tokenService,
	}
}

// Register creates a new user with a hashed password and returns a token
// for the new identity
func (s *AuthService) Register(email, username, password, confirmPassword string) (string, error) {
	if email == "" || username == "" || password == "" || confirmPassword == "" {
		return "", apperr.Validation("All fields are required")
	}
	if password != confirmPassword {
		return "", apperr.Validation("Passwords do not match")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", apperr.Internal("failed to hash password", err)
	}

	user := &models.UserModel{
		ID:             uuid.NewString(),
		Email:          strings.ToLower(email),
		Username:       username,
		HashedPassword: string(hashedPassword),
	}

	if err := s.repo.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apperr.Conflict("User already exists")
		}
		return "", apperr.Internal("failed to create user", err)
	}

	zaplogger.Info("user registered", zaplogger.Fields{"email": user.Email})

	return s.tokenService.Issue(user.ID)
}

// Login verifies a user's credentials and returns a token and the display
// username. Bad email and bad password are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, string, error) {
	if email == "" || password == "" {
		return "", "", apperr.Validation("Email and password required")
	}

	user, err := s.repo.GetUserByEmail(strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", apperr.Auth("Invalid credentials")
		}
		return "", "", apperr.Internal("failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", "", apperr.Auth("Invalid credentials")
	}

	token, err := s.tokenService.Issue(user.ID)
	if err != nil {
		return "", "", err
	}
	return token, user.Username, nil
}
