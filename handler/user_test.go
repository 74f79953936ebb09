package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"carmarket/logging/logger"
	"carmarket/service"
	"carmarket/structs"
)

// memFullUserRepo extends memUserRepo with the management surface. Create
// enforces the email unique constraint the way the database does.
type memFullUserRepo struct {
	*memUserRepo
}

func (m memFullUserRepo) Create(ctx context.Context, u *structs.User) (*structs.User, error) {
	if _, err := m.GetByEmail(ctx, u.Email); err == nil {
		return nil, &pgconn.PgError{Code: "23505"}
	}
	return m.memUserRepo.Create(ctx, u)
}

func (m memFullUserRepo) List(context.Context, *structs.UserListFilter, int, int) ([]*structs.User, int, error) {
	return nil, 0, nil
}

func (m memFullUserRepo) Update(ctx context.Context, id int, _ *structs.UserUpdate) (*structs.User, error) {
	return m.GetByID(ctx, id)
}

func (m memFullUserRepo) Delete(_ context.Context, id int) error {
	delete(m.byID, id)
	return nil
}

type noUserOrders struct{}

func (noUserOrders) ListByUser(context.Context, int) ([]*structs.Order, error) {
	return []*structs.Order{}, nil
}

func (noUserOrders) CountByUser(context.Context, int) (int, error) { return 0, nil }

type noUserReviews struct{}

func (noUserReviews) ListByUser(context.Context, int) ([]*structs.Review, error) {
	return []*structs.Review{}, nil
}

func newUserRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewUser(memFullUserRepo{newMemUserRepo()}, noUserOrders{}, noUserReviews{})
	h := NewUser(svc, logger.StdLogger())

	r := gin.New()
	r.POST("/api/v1/users", h.Create)
	return r
}

func TestUserCreateEndpoint(t *testing.T) {
	r := newUserRouter(t)

	w := postJSON(r, "/api/v1/users", map[string]any{
		"email":     "staff@example.com",
		"full_name": "Ann Major",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"role":"customer"`) {
		t.Errorf("expected customer default role, got %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "hashed") {
		t.Errorf("response leaks credentials: %s", w.Body.String())
	}

	// Same email again conflicts.
	w = postJSON(r, "/api/v1/users", map[string]any{"email": "staff@example.com"})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate status = %d, want 409", w.Code)
	}
}

func TestUserCreateValidation(t *testing.T) {
	r := newUserRouter(t)

	for name, body := range map[string]map[string]any{
		"missing email": {"full_name": "Ann"},
		"bad email":     {"email": "not-an-email"},
		"bad role":      {"email": "a@example.com", "role": "owner"},
	} {
		w := postJSON(r, "/api/v1/users", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, w.Code)
		}
	}
}
