package handler

import (
	"errors"
	"net/http"
	"strconv"

	"availit-backend/internal/models"
	"availit-backend/internal/service"
	"availit-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService service.HospitalService
}

func NewHospitalHandler(hospitalService service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

// GetAllHospitals retrieves one page of hospitals wrapped in a page envelope
func (h *HospitalHandler) GetAllHospitals(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		page = 0
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		size = 10
	}
	sort := c.Query("sort")

	result, err := h.hospitalService.GetHospitalPage(page, size, sort)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospitals")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAllHospitalsPublic retrieves the full collection for the public search UI
func (h *HospitalHandler) GetAllHospitalsPublic(c *gin.Context) {
	hospitals, err := h.hospitalService.GetAllHospitals()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospitals")
		return
	}

	if hospitals == nil {
		hospitals = []models.Hospital{}
	}
	c.JSON(http.StatusOK, hospitals)
}

// CreateHospital creates a new hospital entry
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var hospital models.Hospital
	if err := c.ShouldBindJSON(&hospital); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.hospitalService.CreateHospital(&hospital); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create hospital")
		return
	}

	c.JSON(http.StatusCreated, hospital)
}

// CreateHospitals bulk-creates an array of hospitals, all-or-nothing
func (h *HospitalHandler) CreateHospitals(c *gin.Context) {
	var hospitals []models.Hospital
	if err := c.ShouldBindJSON(&hospitals); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.hospitalService.CreateHospitals(hospitals)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create hospitals")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetHospital retrieves a specific hospital by ID
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalService.GetHospitalByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospital")
		return
	}

	c.JSON(http.StatusOK, hospital)
}

// UpdateHospital updates the availability fields of an existing hospital
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	var details models.Hospital
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	hospital, err := h.hospitalService.UpdateHospital(uint(id), &details)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update hospital")
		return
	}

	c.JSON(http.StatusOK, hospital)
}

// DeleteHospital removes a hospital and its locations
func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	if err := h.hospitalService.DeleteHospital(uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete hospital")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetHospitalsByCity retrieves hospitals with a location in the given city
func (h *HospitalHandler) GetHospitalsByCity(c *gin.Context) {
	city := c.Param("cityName")

	hospitals, err := h.hospitalService.GetHospitalsByCity(city)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospitals")
		return
	}

	if hospitals == nil {
		hospitals = []models.Hospital{}
	}
	c.JSON(http.StatusOK, hospitals)
}

// GetAllCities retrieves every distinct city with at least one hospital
func (h *HospitalHandler) GetAllCities(c *gin.Context) {
	cities, err := h.hospitalService.GetAllCities()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch cities")
		return
	}

	if cities == nil {
		cities = []string{}
	}
	c.JSON(http.StatusOK, cities)
}
