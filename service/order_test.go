package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"carmarket/data/repository"
	"carmarket/structs"
)

// fakeOrderRepo keeps orders in memory.
type fakeOrderRepo struct {
	byID   map[int]*structs.Order
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byID: map[int]*structs.Order{}, nextID: 1}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *structs.Order) (*structs.Order, error) {
	stored := *o
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.byID[stored.ID] = &stored
	f.nextID++
	return &stored, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int) (*structs.Order, error) {
	if o, ok := f.byID[id]; ok {
		return o, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeOrderRepo) List(_ context.Context, _ *structs.OrderListFilter, limit, offset int) ([]*structs.Order, int, error) {
	all := make([]*structs.Order, 0)
	for id := 1; id < f.nextID; id++ {
		if o, ok := f.byID[id]; ok {
			all = append(all, o)
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

func (f *fakeOrderRepo) Update(_ context.Context, id int, u *structs.OrderUpdate) (*structs.Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if u.Status != nil {
		o.Status = *u.Status
	}
	o.UpdatedAt = time.Now()
	return o, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type emptyPaymentRepo struct{}

func (emptyPaymentRepo) ListByOrder(context.Context, int) ([]*structs.Payment, error) {
	return []*structs.Payment{}, nil
}

type emptyDeliveryRepo struct{}

func (emptyDeliveryRepo) ListByOrder(context.Context, int) ([]*structs.Delivery, error) {
	return []*structs.Delivery{}, nil
}

func newTestOrderService(orders *fakeOrderRepo, users *fakeUserRepo, cars *fakeCarRepo) *Order {
	return NewOrder(orders, OrderRelatedRepos{
		Users:      users,
		Cars:       cars,
		Payments:   emptyPaymentRepo{},
		Deliveries: emptyDeliveryRepo{},
	})
}

func orderCreateFixture(carID int) *structs.OrderCreate {
	return &structs.OrderCreate{
		CustomerName:  "Ann Customer",
		CustomerPhone: "+1-555-0100",
		CarID:         carID,
		PaymentMethod: structs.MethodCard,
		TotalAmount:   18500,
	}
}

func TestOrderCreate(t *testing.T) {
	cars := newFakeCarRepo()
	car, err := cars.Create(context.Background(), &structs.Car{VIN: "1HGCM82633A004352", Status: structs.CarAvailable})
	if err != nil {
		t.Fatalf("seed car: %v", err)
	}
	svc := newTestOrderService(newFakeOrderRepo(), newFakeUserRepo(), cars)

	order, err := svc.Create(context.Background(), orderCreateFixture(car.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.Status != structs.OrderPending {
		t.Errorf("status = %q, want pending", order.Status)
	}
}

func TestOrderCreateMissingCar(t *testing.T) {
	svc := newTestOrderService(newFakeOrderRepo(), newFakeUserRepo(), newFakeCarRepo())

	_, err := svc.Create(context.Background(), orderCreateFixture(42))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderCreateMissingUser(t *testing.T) {
	cars := newFakeCarRepo()
	car, _ := cars.Create(context.Background(), &structs.Car{VIN: "1HGCM82633A004352"})
	svc := newTestOrderService(newFakeOrderRepo(), newFakeUserRepo(), cars)

	req := orderCreateFixture(car.ID)
	missing := 42
	req.UserID = &missing
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderDetails(t *testing.T) {
	ctx := context.Background()
	cars := newFakeCarRepo()
	car, _ := cars.Create(ctx, &structs.Car{VIN: "1HGCM82633A004352"})
	users := newFakeUserRepo()
	user, _ := users.Create(ctx, &structs.User{Email: "a@example.com"})
	orders := newFakeOrderRepo()
	svc := newTestOrderService(orders, users, cars)

	req := orderCreateFixture(car.ID)
	req.UserID = &user.ID
	order, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	details, err := svc.Details(ctx, order.ID)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if details.Car.ID != car.ID {
		t.Errorf("car %d, want %d", details.Car.ID, car.ID)
	}
	if details.User == nil || details.User.ID != user.ID {
		t.Errorf("user = %+v, want id %d", details.User, user.ID)
	}
	if details.Payments == nil || details.Deliveries == nil {
		t.Error("related collections must be non-nil")
	}
}

// fakeUserOrderRepo adapts fakeOrderRepo for the user service.
type fakeUserOrderRepo struct {
	orders *fakeOrderRepo
}

func (f fakeUserOrderRepo) ListByUser(_ context.Context, userID int) ([]*structs.Order, error) {
	out := make([]*structs.Order, 0)
	for _, o := range f.orders.byID {
		if o.UserID != nil && *o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f fakeUserOrderRepo) CountByUser(ctx context.Context, userID int) (int, error) {
	orders, err := f.ListByUser(ctx, userID)
	return len(orders), err
}

type emptyUserReviewRepo struct{}

func (emptyUserReviewRepo) ListByUser(context.Context, int) ([]*structs.Review, error) {
	return []*structs.Review{}, nil
}

// fullUserRepo extends fakeUserRepo with the management surface.
type fullUserRepo struct {
	*fakeUserRepo
}

func (f fullUserRepo) List(_ context.Context, _ *structs.UserListFilter, limit, offset int) ([]*structs.User, int, error) {
	return nil, 0, nil
}

func (f fullUserRepo) Update(_ context.Context, id int, u *structs.UserUpdate) (*structs.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if u.IsActive != nil {
		user.IsActive = *u.IsActive
	}
	return user, nil
}

func (f fullUserRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestUserCreate(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := NewUser(fullUserRepo{users}, fakeUserOrderRepo{newFakeOrderRepo()}, emptyUserReviewRepo{})

	created, err := svc.Create(ctx, &structs.UserCreate{Email: "a@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Role != structs.RoleCustomer {
		t.Errorf("role = %q, want customer default", created.Role)
	}
	if !created.IsActive {
		t.Error("expected new user to be active")
	}

	// The stored record has no credentials; login is not possible for it.
	stored, _ := users.GetByID(ctx, created.ID)
	if stored.HashedPassword != "" {
		t.Errorf("hashed password = %q, want empty", stored.HashedPassword)
	}

	users.failDup = true
	if _, err := svc.Create(ctx, &structs.UserCreate{Email: "a@example.com"}); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserDeleteBlockedByOrders(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	user, _ := users.Create(ctx, &structs.User{Email: "a@example.com"})
	orders := newFakeOrderRepo()
	_, _ = orders.Create(ctx, &structs.Order{UserID: &user.ID, CarID: 1})

	svc := NewUser(fullUserRepo{users}, fakeUserOrderRepo{orders}, emptyUserReviewRepo{})

	if err := svc.Delete(ctx, user.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Without orders the delete goes through.
	other, _ := users.Create(ctx, &structs.User{Email: "b@example.com"})
	if err := svc.Delete(ctx, other.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestUserProfile(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	user, _ := users.Create(ctx, &structs.User{Email: "a@example.com"})
	orders := newFakeOrderRepo()
	_, _ = orders.Create(ctx, &structs.Order{UserID: &user.ID, CarID: 1})

	svc := NewUser(fullUserRepo{users}, fakeUserOrderRepo{orders}, emptyUserReviewRepo{})

	profile, err := svc.Profile(ctx, user.ID)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.User.ID != user.ID {
		t.Errorf("profile user %d, want %d", profile.User.ID, user.ID)
	}
	if len(profile.Orders) != 1 {
		t.Errorf("orders = %d, want 1", len(profile.Orders))
	}
}
