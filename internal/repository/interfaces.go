package repository

import "availit-backend/internal/models"

// UserRepository defines persistence operations on User entities.
type UserRepository interface {
	CreateUser(user *models.User) error
	FindUserByUsername(username string) (*models.User, error)
	FindAllUsers() ([]models.User, error)
	UpdateCityByUsername(username, city string) error
}

// HospitalRepository defines persistence operations on Hospital aggregates.
// Every read returns hospitals with their locations populated.
type HospitalRepository interface {
	CreateHospital(hospital *models.Hospital) error
	CreateHospitals(hospitals []models.Hospital) ([]models.Hospital, error)
	FindAllHospitals() ([]models.Hospital, error)
	FindHospitalPage(page, size int, sortColumn string, descending bool) ([]models.Hospital, int64, error)
	FindHospitalByID(id uint) (*models.Hospital, error)
	UpdateHospitalAvailability(hospital *models.Hospital) error
	DeleteHospital(id uint) error
	FindHospitalsByCity(city string) ([]models.Hospital, error)
	FindDistinctCities() ([]string, error)
}
