package repository

import (
	"errors"

	"availit-backend/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a queried record does not exist.
var ErrNotFound = errors.New("record not found")

type userRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser creates a new user
func (r *userRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// FindUserByUsername finds a user by username
func (r *userRepository) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindAllUsers retrieves all users
func (r *userRepository) FindAllUsers() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id ASC").Find(&users).Error
	return users, err
}

// UpdateCityByUsername sets the city for the named user.
// Returns ErrNotFound when no row matched.
func (r *userRepository) UpdateCityByUsername(username, city string) error {
	result := r.db.Model(&models.User{}).
		Where("username = ?", username).
		Update("city", city)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
