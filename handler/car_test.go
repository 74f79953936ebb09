package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"carmarket/data/repository"
	"carmarket/logging/logger"
	"carmarket/service"
	"carmarket/structs"
	"carmarket/validation"
)

// memCarRepo is an in-memory car store for handler tests.
type memCarRepo struct {
	byID   map[int]*structs.Car
	nextID int
}

func newMemCarRepo() *memCarRepo {
	return &memCarRepo{byID: map[int]*structs.Car{}, nextID: 1}
}

func (m *memCarRepo) Create(_ context.Context, c *structs.Car) (*structs.Car, error) {
	for _, existing := range m.byID {
		if existing.VIN == c.VIN {
			return nil, &pgconn.PgError{Code: "23505"}
		}
	}
	stored := *c
	stored.ID = m.nextID
	stored.CreatedAt = time.Now()
	m.byID[stored.ID] = &stored
	m.nextID++
	return &stored, nil
}

func (m *memCarRepo) GetByID(_ context.Context, id int) (*structs.Car, error) {
	if c, ok := m.byID[id]; ok {
		return c, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memCarRepo) List(_ context.Context, _ *structs.CarListFilter, limit, offset int) ([]*structs.Car, int, error) {
	all := make([]*structs.Car, 0)
	for id := 1; id < m.nextID; id++ {
		if c, ok := m.byID[id]; ok {
			all = append(all, c)
		}
	}
	total := len(all)
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, total, nil
}

func (m *memCarRepo) Update(_ context.Context, id int, u *structs.CarUpdate) (*structs.Car, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if u.Price != nil {
		c.Price = *u.Price
	}
	return c, nil
}

func (m *memCarRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type noPhotos struct{}

func (noPhotos) ListByCar(context.Context, int) ([]*structs.CarPhoto, error) {
	return []*structs.CarPhoto{}, nil
}

type noReports struct{}

func (noReports) ListByCar(context.Context, int) ([]*structs.CarReport, error) {
	return []*structs.CarReport{}, nil
}

type noReviews struct{}

func (noReviews) ListByCar(context.Context, int) ([]*structs.Review, error) {
	return []*structs.Review{}, nil
}

type noOrders struct{}

func (noOrders) ListByCar(context.Context, int) ([]*structs.Order, error) {
	return []*structs.Order{}, nil
}

func newCarRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := validation.RegisterCustom(); err != nil {
		t.Fatalf("register validators: %v", err)
	}

	carSvc := service.NewCar(newMemCarRepo(), service.CarRelatedRepos{
		Photos:  noPhotos{},
		Reports: noReports{},
		Reviews: noReviews{},
		Orders:  noOrders{},
	})
	h := NewCar(carSvc, logger.StdLogger())

	r := gin.New()
	r.POST("/api/v1/cars", h.Create)
	r.GET("/api/v1/cars", h.List)
	r.GET("/api/v1/cars/:id", h.Get)
	r.GET("/api/v1/cars/:id/details", h.Details)
	return r
}

func carPayload(vin string) map[string]any {
	return map[string]any{
		"vin":          vin,
		"make":         "Toyota",
		"model":        "Corolla",
		"year":         2021,
		"mileage":      12000,
		"price":        18500,
		"condition":    "used",
		"color":        "white",
		"engine_type":  "gasoline",
		"transmission": "automatic",
	}
}

func TestCarCreateEndpoint(t *testing.T) {
	r := newCarRouter(t)

	w := postJSON(r, "/api/v1/cars", carPayload("1HGCM82633A004352"))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
	}

	// Duplicate VIN conflicts.
	w = postJSON(r, "/api/v1/cars", carPayload("1HGCM82633A004352"))
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate vin status = %d, want 409", w.Code)
	}
}

func TestCarCreateInvalidVIN(t *testing.T) {
	r := newCarRouter(t)

	w := postJSON(r, "/api/v1/cars", carPayload("SHORT"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "vin") {
		t.Errorf("expected vin field error, got %s", w.Body.String())
	}
}

func TestCarListEmpty(t *testing.T) {
	r := newCarRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cars?status=sold", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Errorf("expected empty items array, got %s", w.Body.String())
	}
}

func TestCarGetNotFoundEndpoint(t *testing.T) {
	r := newCarRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cars/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/cars/abc", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("non-numeric id status = %d, want 400", w.Code)
	}
}
