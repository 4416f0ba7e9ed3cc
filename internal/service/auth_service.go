package service

import (
	"errors"
	"fmt"
	"strings"

	"availit-backend/internal/models"
	"availit-backend/internal/repository"
	"availit-backend/pkg/utils"
)

// AuthService covers registration, login and the per-user city preference.
type AuthService interface {
	Register(username, password, role string) (*models.User, error)
	Login(username, password string) (*LoginResponse, error)
	GetAllUsers() ([]models.UserSummary, error)
	GetCity(username string) (string, error)
	UpdateCity(username, city string) error
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens *TokenService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new user account with a one-way-hashed password.
// No token is issued at registration.
func (s *authService) Register(username, password, role string) (*models.User, error) {
	// Check if username already exists
	existing, err := s.userRepo.FindUserByUsername(username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role = strings.ToUpper(role)
	if role != models.RoleAdmin {
		role = models.RoleUser
	}

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login authenticates a user and returns a bearer token. Unknown username and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(username, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindUserByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// GetAllUsers lists every account's public fields.
func (s *authService) GetAllUsers() ([]models.UserSummary, error) {
	users, err := s.userRepo.FindAllUsers()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, models.UserSummary{
			ID:       u.ID,
			Username: u.Username,
			Role:     u.Role,
		})
	}
	return summaries, nil
}

// GetCity returns the user's saved city. A user that never set a city is
// reported the same as an unknown username.
func (s *authService) GetCity(username string) (string, error) {
	user, err := s.userRepo.FindUserByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if user.City == "" {
		return "", ErrNotFound
	}
	return user.City, nil
}

// UpdateCity sets the user's city preference.
func (s *authService) UpdateCity(username, city string) error {
	err := s.userRepo.UpdateCityByUsername(username, city)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update city: %w", err)
	}
	return nil
}
