package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"carmarket/data/repository"
	"carmarket/paging"
	"carmarket/structs"
)

// fakeCarRepo keeps cars in memory and enforces the vin constraint.
type fakeCarRepo struct {
	byID   map[int]*structs.Car
	nextID int
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{byID: map[int]*structs.Car{}, nextID: 1}
}

func (f *fakeCarRepo) Create(_ context.Context, c *structs.Car) (*structs.Car, error) {
	for _, existing := range f.byID {
		if existing.VIN == c.VIN {
			return nil, &pgconn.PgError{Code: "23505"}
		}
	}
	stored := *c
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.byID[stored.ID] = &stored
	f.nextID++
	return &stored, nil
}

func (f *fakeCarRepo) GetByID(_ context.Context, id int) (*structs.Car, error) {
	if c, ok := f.byID[id]; ok {
		return c, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCarRepo) List(_ context.Context, filter *structs.CarListFilter, limit, offset int) ([]*structs.Car, int, error) {
	all := make([]*structs.Car, 0)
	for id := 1; id < f.nextID; id++ {
		c, ok := f.byID[id]
		if !ok {
			continue
		}
		if filter != nil && filter.Status != "" && string(c.Status) != filter.Status {
			continue
		}
		all = append(all, c)
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

func (f *fakeCarRepo) Update(_ context.Context, id int, u *structs.CarUpdate) (*structs.Car, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if u.Price != nil {
		c.Price = *u.Price
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	c.UpdatedAt = time.Now()
	return c, nil
}

func (f *fakeCarRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type emptyPhotoRepo struct{}

func (emptyPhotoRepo) ListByCar(context.Context, int) ([]*structs.CarPhoto, error) {
	return []*structs.CarPhoto{}, nil
}

type emptyReportRepo struct{}

func (emptyReportRepo) ListByCar(context.Context, int) ([]*structs.CarReport, error) {
	return []*structs.CarReport{}, nil
}

type emptyReviewRepo struct{}

func (emptyReviewRepo) ListByCar(context.Context, int) ([]*structs.Review, error) {
	return []*structs.Review{}, nil
}

type emptyOrderRepo struct{}

func (emptyOrderRepo) ListByCar(context.Context, int) ([]*structs.Order, error) {
	return []*structs.Order{}, nil
}

func newTestCarService(repo *fakeCarRepo) *Car {
	return NewCar(repo, CarRelatedRepos{
		Photos:  emptyPhotoRepo{},
		Reports: emptyReportRepo{},
		Reviews: emptyReviewRepo{},
		Orders:  emptyOrderRepo{},
	})
}

func carCreateFixture(vin string) *structs.CarCreate {
	return &structs.CarCreate{
		VIN:          vin,
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2021,
		Mileage:      12000,
		Price:        18500,
		Condition:    structs.ConditionUsed,
		Color:        "white",
		EngineType:   structs.EngineGasoline,
		Transmission: structs.TransmissionAutomatic,
	}
}

func TestCarCreateDefaultsStatus(t *testing.T) {
	svc := newTestCarService(newFakeCarRepo())

	car, err := svc.Create(context.Background(), carCreateFixture("1HGCM82633A004352"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if car.Status != structs.CarAvailable {
		t.Errorf("status = %q, want available", car.Status)
	}
}

func TestCarCreateDuplicateVIN(t *testing.T) {
	svc := newTestCarService(newFakeCarRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, carCreateFixture("1HGCM82633A004352")); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(ctx, carCreateFixture("1HGCM82633A004352"))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCarListEmptyFilter(t *testing.T) {
	// A filter that matches nothing yields an empty page, not an error.
	repo := newFakeCarRepo()
	svc := newTestCarService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, carCreateFixture("1HGCM82633A004352")); err != nil {
		t.Fatalf("create: %v", err)
	}

	page, err := svc.List(ctx, &structs.CarListFilter{Status: "sold"}, paging.Params{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 0 {
		t.Errorf("expected no items, got %d", len(page.Items))
	}
	if page.Items == nil {
		t.Error("items must be an empty slice, not nil")
	}
}

func TestCarListPagination(t *testing.T) {
	repo := newFakeCarRepo()
	svc := newTestCarService(repo)
	ctx := context.Background()

	vins := []string{"1HGCM82633A004352", "1HGCM82633A004353", "1HGCM82633A004354"}
	for _, vin := range vins {
		if _, err := svc.Create(ctx, carCreateFixture(vin)); err != nil {
			t.Fatalf("create %s: %v", vin, err)
		}
	}

	page, err := svc.List(ctx, nil, paging.Params{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(page.Items))
	}
	if !page.HasNextPage {
		t.Error("expected a next page")
	}
	if page.Total != 3 {
		t.Errorf("total = %d, want 3", page.Total)
	}
}

func TestCarGetNotFound(t *testing.T) {
	svc := newTestCarService(newFakeCarRepo())
	if _, err := svc.Get(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCarDetails(t *testing.T) {
	repo := newFakeCarRepo()
	svc := newTestCarService(repo)
	ctx := context.Background()

	car, err := svc.Create(ctx, carCreateFixture("1HGCM82633A004352"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	details, err := svc.Details(ctx, car.ID)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if details.Car.ID != car.ID {
		t.Errorf("details car %d, want %d", details.Car.ID, car.ID)
	}
	if details.Photos == nil || details.Reports == nil || details.Reviews == nil || details.Orders == nil {
		t.Error("related collections must be non-nil")
	}
}
