package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"assistec_os/internal/adapter/http/handlers/mocks"
	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSchedulingFixture(t *testing.T) (*SchedulingHandler, *mocks.MockITechnicianUseCase, *mocks.MockIAvailabilityUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	technicians := mocks.NewMockITechnicianUseCase(ctrl)
	availability := mocks.NewMockIAvailabilityUseCase(ctrl)
	return NewSchedulingHandler(technicians, availability), technicians, availability
}

func TestSchedulingHandler_CreateTechnician(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		h, _, _ := newSchedulingFixture(t)

		r := gin.New()
		r.POST("/v1/technicians", h.CreateTechnician)

		req := httptest.NewRequest(http.MethodPost, "/v1/technicians", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		h, technicians, _ := newSchedulingFixture(t)

		r := gin.New()
		r.POST("/v1/technicians", h.CreateTechnician)

		technicians.EXPECT().Create(gomock.Any(), "", true).Return(entities.Technician{}, usecase.ErrInvalidTechnicianName)

		req := httptest.NewRequest(http.MethodPost, "/v1/technicians", bytes.NewBufferString(`{"name":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success defaults active", func(t *testing.T) {
		h, technicians, _ := newSchedulingFixture(t)

		r := gin.New()
		r.POST("/v1/technicians", h.CreateTechnician)

		now := time.Now().UTC()
		technicians.EXPECT().Create(gomock.Any(), "Carlos", true).Return(entities.Technician{ID: "tech-1", Name: "Carlos", Active: true, CreatedAt: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/technicians", bytes.NewBufferString(`{"name":"Carlos"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body["id"] != "tech-1" {
			t.Fatalf("expected id tech-1, got %v", body["id"])
		}
		if body["active"] != true {
			t.Fatalf("expected active true, got %v", body["active"])
		}
	})
}

func TestSchedulingHandler_ListTechnicians(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		h, technicians, _ := newSchedulingFixture(t)

		r := gin.New()
		r.GET("/v1/technicians", h.ListTechnicians)

		now := time.Now().UTC()
		technicians.EXPECT().List(gomock.Any()).Return([]entities.Technician{
			{ID: "tech-1", Name: "Carlos", Active: true, CreatedAt: now},
			{ID: "tech-2", Name: "Ana", Active: false, CreatedAt: now},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/technicians", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected 2 technicians, got %d", len(body))
		}
	})

	t.Run("empty list stays an array", func(t *testing.T) {
		h, technicians, _ := newSchedulingFixture(t)

		r := gin.New()
		r.GET("/v1/technicians", h.ListTechnicians)

		technicians.EXPECT().List(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/technicians", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Body.String(); got != "[]" {
			t.Fatalf("expected [], got %s", got)
		}
	})
}

func TestSchedulingHandler_GetAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing date", func(t *testing.T) {
		h, _, _ := newSchedulingFixture(t)

		r := gin.New()
		r.GET("/v1/technicians/:id/availability", h.GetAvailability)

		req := httptest.NewRequest(http.MethodGet, "/v1/technicians/tech-1/availability", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed date", func(t *testing.T) {
		h, _, _ := newSchedulingFixture(t)

		r := gin.New()
		r.GET("/v1/technicians/:id/availability", h.GetAvailability)

		req := httptest.NewRequest(http.MethodGet, "/v1/technicians/tech-1/availability?date=10-09-2026", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown technician", func(t *testing.T) {
		h, _, availability := newSchedulingFixture(t)

		r := gin.New()
		r.GET("/v1/technicians/:id/availability", h.GetAvailability)

		availability.EXPECT().ComputeAvailability(gomock.Any(), "missing", gomock.Any()).Return(usecase.DayAvailability{}, usecase.ErrTechnicianNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/technicians/missing/availability?date=2026-09-10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h, _, availability := newSchedulingFixture(t)

		r := gin.New()
		r.GET("/v1/technicians/:id/availability", h.GetAvailability)

		date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		availability.EXPECT().ComputeAvailability(gomock.Any(), "tech-1", date).Return(usecase.DayAvailability{
			Date:            "2026-09-10",
			BookedSlots:     []string{"09:00"},
			AvailableSlots:  []string{"08:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00"},
			RecommendedSlot: "08:00",
			Occupancy:       "partial",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/technicians/tech-1/availability?date=2026-09-10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body["technician_id"] != "tech-1" {
			t.Fatalf("expected technician_id tech-1, got %v", body["technician_id"])
		}
		if body["recommended_slot"] != "08:00" {
			t.Fatalf("expected recommended_slot 08:00, got %v", body["recommended_slot"])
		}
		if body["occupancy"] != "partial" {
			t.Fatalf("expected occupancy partial, got %v", body["occupancy"])
		}
	})
}

func TestSchedulingHandler_GetMonthlyDensity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed month", func(t *testing.T) {
		h, _, _ := newSchedulingFixture(t)

		r := gin.New()
		r.GET("/v1/technicians/:id/density", h.GetMonthlyDensity)

		req := httptest.NewRequest(http.MethodGet, "/v1/technicians/tech-1/density?month=september", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success classifies each day", func(t *testing.T) {
		h, _, availability := newSchedulingFixture(t)

		r := gin.New()
		r.GET("/v1/technicians/:id/density", h.GetMonthlyDensity)

		firstDay := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		lastDay := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
		availability.EXPECT().ComputeMonthlyDensity(gomock.Any(), "tech-1", firstDay, lastDay).Return(map[string]int{
			"2026-09-10": 0,
			"2026-09-11": 3,
			"2026-09-12": 9,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/technicians/tech-1/density?month=2026-09", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body struct {
			Month     string            `json:"month"`
			Days      map[string]int    `json:"days"`
			Occupancy map[string]string `json:"occupancy"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body.Month != "2026-09" {
			t.Fatalf("expected month 2026-09, got %s", body.Month)
		}
		if body.Occupancy["2026-09-10"] != "available" {
			t.Fatalf("expected available, got %s", body.Occupancy["2026-09-10"])
		}
		if body.Occupancy["2026-09-11"] != "partial" {
			t.Fatalf("expected partial, got %s", body.Occupancy["2026-09-11"])
		}
		if body.Occupancy["2026-09-12"] != "full" {
			t.Fatalf("expected full, got %s", body.Occupancy["2026-09-12"])
		}
	})
}

func TestSchedulingHandler_GetRouteSlot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing position", func(t *testing.T) {
		h, _, _ := newSchedulingFixture(t)

		r := gin.New()
		r.GET("/v1/route-slots", h.GetRouteSlot)

		req := httptest.NewRequest(http.MethodGet, "/v1/route-slots", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative position", func(t *testing.T) {
		h, _, _ := newSchedulingFixture(t)

		r := gin.New()
		r.GET("/v1/route-slots", h.GetRouteSlot)

		req := httptest.NewRequest(http.MethodGet, "/v1/route-slots?position=-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("position maps to offset hour", func(t *testing.T) {
		h, _, _ := newSchedulingFixture(t)

		r := gin.New()
		r.GET("/v1/route-slots", h.GetRouteSlot)

		req := httptest.NewRequest(http.MethodGet, "/v1/route-slots?position=2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body["suggested_time"] != "11:00" {
			t.Fatalf("expected 11:00, got %v", body["suggested_time"])
		}
	})

	t.Run("deep positions clamp to the last hour", func(t *testing.T) {
		h, _, _ := newSchedulingFixture(t)

		r := gin.New()
		r.GET("/v1/route-slots", h.GetRouteSlot)

		req := httptest.NewRequest(http.MethodGet, "/v1/route-slots?position=30", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if body["suggested_time"] != "17:00" {
			t.Fatalf("expected 17:00, got %v", body["suggested_time"])
		}
	})
}
