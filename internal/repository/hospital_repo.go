package repository

import (
	"errors"

	"availit-backend/internal/models"

	"gorm.io/gorm"
)

type hospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) HospitalRepository {
	return &hospitalRepository{db: db}
}

// CreateHospital creates a new hospital together with its locations
func (r *hospitalRepository) CreateHospital(hospital *models.Hospital) error {
	return r.db.Create(hospital).Error
}

// CreateHospitals inserts a batch of hospitals in a single transaction.
// The whole batch fails if any record is rejected.
func (r *hospitalRepository) CreateHospitals(hospitals []models.Hospital) ([]models.Hospital, error) {
	if len(hospitals) == 0 {
		return []models.Hospital{}, nil
	}
	if err := r.db.Create(&hospitals).Error; err != nil {
		return nil, err
	}
	return hospitals, nil
}

// FindAllHospitals retrieves every hospital with its locations
func (r *hospitalRepository) FindAllHospitals() ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.Preload("Locations").Order("id ASC").Find(&hospitals).Error
	return hospitals, err
}

// FindHospitalPage retrieves one page of hospitals plus the total count.
// page is 0-based; sortColumn must already be validated against the column
// allow-list by the caller.
func (r *hospitalRepository) FindHospitalPage(page, size int, sortColumn string, descending bool) ([]models.Hospital, int64, error) {
	var total int64
	if err := r.db.Model(&models.Hospital{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := sortColumn + " ASC"
	if descending {
		order = sortColumn + " DESC"
	}

	var hospitals []models.Hospital
	err := r.db.Preload("Locations").
		Order(order).
		Limit(size).
		Offset(page * size).
		Find(&hospitals).Error
	if err != nil {
		return nil, 0, err
	}
	return hospitals, total, nil
}

// FindHospitalByID retrieves a hospital by ID
func (r *hospitalRepository) FindHospitalByID(id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.Preload("Locations").First(&hospital, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &hospital, nil
}

// UpdateHospitalAvailability persists only the availability fields of an
// existing hospital. Address, contact, ICU/ventilator counts and locations
// are intentionally left untouched.
func (r *hospitalRepository) UpdateHospitalAvailability(hospital *models.Hospital) error {
	return r.db.Model(hospital).
		Select("hospital_name", "total_beds", "available_beds", "oxygen_available").
		Updates(hospital).Error
}

// DeleteHospital removes a hospital; its locations go with it.
// Returns ErrNotFound when no row matched.
func (r *hospitalRepository) DeleteHospital(id uint) error {
	result := r.db.Delete(&models.Hospital{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindHospitalsByCity retrieves hospitals having at least one location in the
// given city, matched case-insensitively.
func (r *hospitalRepository) FindHospitalsByCity(city string) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.db.Preload("Locations").
		Distinct("hospitals.*").
		Joins("JOIN locations ON locations.hospital_id = hospitals.id").
		Where("LOWER(locations.city) = LOWER(?)", city).
		Find(&hospitals).Error
	return hospitals, err
}

// FindDistinctCities retrieves every distinct non-empty city across all
// hospital locations.
func (r *hospitalRepository) FindDistinctCities() ([]string, error) {
	var cities []string
	err := r.db.Model(&models.Location{}).
		Distinct().
		Where("city IS NOT NULL AND city <> ''").
		Order("city ASC").
		Pluck("city", &cities).Error
	return cities, err
}
