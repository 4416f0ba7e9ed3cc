package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"availit-backend/internal/models"
	"availit-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHospitalService struct {
	getAllFunc      func() ([]models.Hospital, error)
	getPageFunc     func(page, size int, sort string) (*models.HospitalPage, error)
	createFunc      func(h *models.Hospital) error
	createBatchFunc func(hs []models.Hospital) ([]models.Hospital, error)
	getByIDFunc     func(id uint) (*models.Hospital, error)
	updateFunc      func(id uint, details *models.Hospital) (*models.Hospital, error)
	deleteFunc      func(id uint) error
	byCityFunc      func(city string) ([]models.Hospital, error)
	citiesFunc      func() ([]string, error)
}

func (m *mockHospitalService) GetAllHospitals() ([]models.Hospital, error) {
	return m.getAllFunc()
}

func (m *mockHospitalService) GetHospitalPage(page, size int, sort string) (*models.HospitalPage, error) {
	return m.getPageFunc(page, size, sort)
}

func (m *mockHospitalService) CreateHospital(h *models.Hospital) error {
	return m.createFunc(h)
}

func (m *mockHospitalService) CreateHospitals(hs []models.Hospital) ([]models.Hospital, error) {
	return m.createBatchFunc(hs)
}

func (m *mockHospitalService) GetHospitalByID(id uint) (*models.Hospital, error) {
	return m.getByIDFunc(id)
}

func (m *mockHospitalService) UpdateHospital(id uint, details *models.Hospital) (*models.Hospital, error) {
	return m.updateFunc(id, details)
}

func (m *mockHospitalService) DeleteHospital(id uint) error {
	return m.deleteFunc(id)
}

func (m *mockHospitalService) GetHospitalsByCity(city string) ([]models.Hospital, error) {
	return m.byCityFunc(city)
}

func (m *mockHospitalService) GetAllCities() ([]string, error) {
	return m.citiesFunc()
}

func newHospitalRouter(svc service.HospitalService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHospitalHandler(svc)
	r.GET("/api/hospitals/getAllHospitals", h.GetAllHospitals)
	r.GET("/api/hospitals/public/hospitals", h.GetAllHospitalsPublic)
	r.POST("/api/hospitals", h.CreateHospital)
	r.POST("/api/hospitals/bulk", h.CreateHospitals)
	r.GET("/api/hospitals/cities", h.GetAllCities)
	r.GET("/api/hospitals/city/:cityName", h.GetHospitalsByCity)
	r.GET("/api/hospitals/:id", h.GetHospital)
	r.PUT("/api/hospitals/:id", h.UpdateHospital)
	r.DELETE("/api/hospitals/:id", h.DeleteHospital)
	return r
}

func TestCreateHospitalHandler(t *testing.T) {
	svc := &mockHospitalService{
		createFunc: func(h *models.Hospital) error {
			h.ID = 7
			return nil
		},
	}
	r := newHospitalRouter(svc)

	w := postJSON(r, "/api/hospitals", gin.H{
		"hospitalName":    "City General Hospital",
		"totalBeds":       100,
		"availableBeds":   25,
		"oxygenAvailable": true,
		"address":         "123 Main St, Springfield",
		"contactNumber":   "+1-555-1234",
		"icuBeds":         10,
		"ventilators":     5,
		"locations": []gin.H{
			{"address": "123 Main St", "city": "Boston", "state": "MA", "zipCode": "02101"},
		},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Hospital
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(7), created.ID)
	assert.Equal(t, "City General Hospital", created.HospitalName)
	assert.Equal(t, 100, created.TotalBeds)
	assert.Equal(t, 25, created.AvailableBeds)
	require.Len(t, created.Locations, 1)
	assert.Equal(t, "Boston", created.Locations[0].City)
}

func TestGetHospitalHandler_NotFound(t *testing.T) {
	svc := &mockHospitalService{
		getByIDFunc: func(id uint) (*models.Hospital, error) {
			return nil, service.ErrNotFound
		},
	}
	r := newHospitalRouter(svc)

	w := getPath(r, "/api/hospitals/42")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetHospitalHandler_InvalidID(t *testing.T) {
	r := newHospitalRouter(&mockHospitalService{})

	w := getPath(r, "/api/hospitals/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateHospitalHandler(t *testing.T) {
	var gotID uint
	svc := &mockHospitalService{
		updateFunc: func(id uint, details *models.Hospital) (*models.Hospital, error) {
			gotID = id
			return &models.Hospital{
				ID:            id,
				HospitalName:  details.HospitalName,
				TotalBeds:     details.TotalBeds,
				AvailableBeds: details.AvailableBeds,
				// Fields outside the availability set keep their stored values.
				Address:       "123 Main St, Springfield",
				ContactNumber: "+1-555-1234",
				ICUBeds:       10,
				Ventilators:   5,
			}, nil
		},
	}
	r := newHospitalRouter(svc)

	data, _ := json.Marshal(gin.H{
		"hospitalName": "Renamed", "totalBeds": 200, "availableBeds": 50,
		"icuBeds": 99,
	})
	req := httptest.NewRequest(http.MethodPut, "/api/hospitals/7", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), gotID)

	var updated models.Hospital
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Renamed", updated.HospitalName)
	assert.Equal(t, 10, updated.ICUBeds)
}

func TestUpdateHospitalHandler_NotFound(t *testing.T) {
	svc := &mockHospitalService{
		updateFunc: func(id uint, details *models.Hospital) (*models.Hospital, error) {
			return nil, service.ErrNotFound
		},
	}
	r := newHospitalRouter(svc)

	data, _ := json.Marshal(gin.H{"hospitalName": "Renamed"})
	req := httptest.NewRequest(http.MethodPut, "/api/hospitals/42", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteHospitalHandler(t *testing.T) {
	deleted := map[uint]bool{7: false}
	svc := &mockHospitalService{
		deleteFunc: func(id uint) error {
			if done, ok := deleted[id]; !ok || done {
				return service.ErrNotFound
			}
			deleted[id] = true
			return nil
		},
	}
	r := newHospitalRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/hospitals/7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// Deleting again is a plain 404, not a server error.
	req = httptest.NewRequest(http.MethodDelete, "/api/hospitals/7", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBulkCreateHandler(t *testing.T) {
	svc := &mockHospitalService{
		createBatchFunc: func(hs []models.Hospital) ([]models.Hospital, error) {
			for i := range hs {
				hs[i].ID = uint(i + 1)
			}
			return hs, nil
		},
	}
	r := newHospitalRouter(svc)

	w := postJSON(r, "/api/hospitals/bulk", []gin.H{
		{"hospitalName": "A", "totalBeds": 10},
		{"hospitalName": "B", "totalBeds": 20},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var created []models.Hospital
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created, 2)
	assert.NotEqual(t, created[0].ID, created[1].ID)
}

func TestGetHospitalsByCityHandler(t *testing.T) {
	var gotCity string
	svc := &mockHospitalService{
		byCityFunc: func(city string) ([]models.Hospital, error) {
			gotCity = city
			return nil, nil
		},
	}
	r := newHospitalRouter(svc)

	w := getPath(r, "/api/hospitals/city/Boston")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Boston", gotCity)
	// An empty result is an empty JSON array, never null.
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetAllCitiesHandler(t *testing.T) {
	svc := &mockHospitalService{
		citiesFunc: func() ([]string, error) {
			return []string{"Boston", "Springfield"}, nil
		},
	}
	r := newHospitalRouter(svc)

	w := getPath(r, "/api/hospitals/cities")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["Boston","Springfield"]`, w.Body.String())
}

func TestGetAllHospitalsHandler_PageEnvelope(t *testing.T) {
	var gotPage, gotSize int
	var gotSort string
	svc := &mockHospitalService{
		getPageFunc: func(page, size int, sort string) (*models.HospitalPage, error) {
			gotPage, gotSize, gotSort = page, size, sort
			envelope := models.NewHospitalPage([]models.Hospital{{ID: 1, HospitalName: "A"}}, 12, page, size)
			return &envelope, nil
		},
	}
	r := newHospitalRouter(svc)

	w := getPath(r, "/api/hospitals/getAllHospitals?page=1&size=5&sort=totalBeds,desc")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 5, gotSize)
	assert.Equal(t, "totalBeds,desc", gotSort)

	var page models.HospitalPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(12), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.Number)
	assert.False(t, page.First)
	assert.Len(t, page.Content, 1)
}
