package service

import (
	"errors"
	"fmt"
	"strings"

	"availit-backend/internal/models"
	"availit-backend/internal/repository"
)

// Columns the paginated listing may sort by, mapped from their JSON names.
var hospitalSortColumns = map[string]string{
	"id":            "id",
	"hospitalName":  "hospital_name",
	"totalBeds":     "total_beds",
	"availableBeds": "available_beds",
	"icuBeds":       "icu_beds",
	"ventilators":   "ventilators",
}

// HospitalService covers CRUD and search over hospital availability records.
type HospitalService interface {
	GetAllHospitals() ([]models.Hospital, error)
	GetHospitalPage(page, size int, sort string) (*models.HospitalPage, error)
	CreateHospital(hospital *models.Hospital) error
	CreateHospitals(hospitals []models.Hospital) ([]models.Hospital, error)
	GetHospitalByID(id uint) (*models.Hospital, error)
	UpdateHospital(id uint, details *models.Hospital) (*models.Hospital, error)
	DeleteHospital(id uint) error
	GetHospitalsByCity(city string) ([]models.Hospital, error)
	GetAllCities() ([]string, error)
}

type hospitalService struct {
	hospitalRepo repository.HospitalRepository
}

func NewHospitalService(hospitalRepo repository.HospitalRepository) HospitalService {
	return &hospitalService{hospitalRepo: hospitalRepo}
}

// GetAllHospitals retrieves the full, unpaginated collection.
func (s *hospitalService) GetAllHospitals() ([]models.Hospital, error) {
	return s.hospitalRepo.FindAllHospitals()
}

// GetHospitalPage retrieves one page of hospitals. page is 0-based; sort is
// "field" or "field,asc|desc" with unknown fields falling back to id.
func (s *hospitalService) GetHospitalPage(page, size int, sort string) (*models.HospitalPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	column, descending := parseSort(sort)
	hospitals, total, err := s.hospitalRepo.FindHospitalPage(page, size, column, descending)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hospital page: %w", err)
	}

	envelope := models.NewHospitalPage(hospitals, total, page, size)
	return &envelope, nil
}

func parseSort(sort string) (column string, descending bool) {
	column = "id"
	field, dir, _ := strings.Cut(sort, ",")
	if mapped, ok := hospitalSortColumns[strings.TrimSpace(field)]; ok {
		column = mapped
	}
	descending = strings.EqualFold(strings.TrimSpace(dir), "desc")
	return column, descending
}

// CreateHospital persists a new hospital and its locations.
func (s *hospitalService) CreateHospital(hospital *models.Hospital) error {
	if err := s.hospitalRepo.CreateHospital(hospital); err != nil {
		return fmt.Errorf("failed to create hospital: %w", err)
	}
	return nil
}

// CreateHospitals persists a batch of hospitals, all-or-nothing.
func (s *hospitalService) CreateHospitals(hospitals []models.Hospital) ([]models.Hospital, error) {
	created, err := s.hospitalRepo.CreateHospitals(hospitals)
	if err != nil {
		return nil, fmt.Errorf("failed to create hospitals: %w", err)
	}
	return created, nil
}

// GetHospitalByID retrieves a hospital by its identifier.
func (s *hospitalService) GetHospitalByID(id uint) (*models.Hospital, error) {
	hospital, err := s.hospitalRepo.FindHospitalByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return hospital, nil
}

// UpdateHospital overwrites exactly the availability fields (name, total and
// available beds, oxygen flag) of an existing record and returns it. Address,
// contact number, ICU/ventilator counts and locations are not touched even if
// present in details.
func (s *hospitalService) UpdateHospital(id uint, details *models.Hospital) (*models.Hospital, error) {
	existing, err := s.GetHospitalByID(id)
	if err != nil {
		return nil, err
	}

	existing.HospitalName = details.HospitalName
	existing.TotalBeds = details.TotalBeds
	existing.AvailableBeds = details.AvailableBeds
	existing.OxygenAvailable = details.OxygenAvailable

	if err := s.hospitalRepo.UpdateHospitalAvailability(existing); err != nil {
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}
	return existing, nil
}

// DeleteHospital removes a hospital and its locations.
func (s *hospitalService) DeleteHospital(id uint) error {
	err := s.hospitalRepo.DeleteHospital(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete hospital: %w", err)
	}
	return nil
}

// GetHospitalsByCity retrieves hospitals with at least one location in the
// given city (case-insensitive exact match).
func (s *hospitalService) GetHospitalsByCity(city string) ([]models.Hospital, error) {
	return s.hospitalRepo.FindHospitalsByCity(city)
}

// GetAllCities retrieves every distinct city across all hospital locations.
func (s *hospitalService) GetAllCities() ([]string, error) {
	return s.hospitalRepo.FindDistinctCities()
}
