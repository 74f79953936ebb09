package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"carmarket/data/repository"
	"carmarket/event"
	"carmarket/logging/logger"
	"carmarket/security/jwt"
	"carmarket/security/password"
	"carmarket/structs"
)

// fakeUserRepo keeps users in memory, keyed by id and email.
type fakeUserRepo struct {
	byID    map[int]*structs.User
	nextID  int
	failDup bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[int]*structs.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, u *structs.User) (*structs.User, error) {
	if f.failDup {
		return nil, &pgconn.PgError{Code: "23505"}
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return nil, &pgconn.PgError{Code: "23505"}
		}
	}
	stored := *u
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.byID[stored.ID] = &stored
	f.nextID++
	return &stored, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (*structs.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*structs.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

// fakePublisher records events on a channel so tests can wait for the
// fire-and-forget goroutine.
type fakePublisher struct {
	events chan *event.UserRegistered
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{events: make(chan *event.UserRegistered, 1)}
}

func (f *fakePublisher) PublishUserRegistered(_ context.Context, ev *event.UserRegistered) error {
	f.events <- ev
	return nil
}

func newTestAuth(t *testing.T, repo AuthUserRepo, pub RegistrationPublisher) *Auth {
	t.Helper()
	hasher := password.NewHasher(bcrypt.MinCost)
	tokens := jwt.NewTokenManager("test-secret", time.Minute)
	return NewAuth(repo, hasher, tokens, pub, logger.StdLogger())
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	pub := newFakePublisher()
	auth := newTestAuth(t, repo, pub)
	ctx := context.Background()

	user, err := auth.Register(ctx, &structs.AuthRegister{Email: "a@example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "a@example.com" {
		t.Errorf("unexpected email %q", user.Email)
	}
	if user.Role != structs.RoleCustomer {
		t.Errorf("expected customer role, got %q", user.Role)
	}
	if !user.IsActive {
		t.Error("expected new user to be active")
	}

	select {
	case ev := <-pub.events:
		if ev.Email != "a@example.com" {
			t.Errorf("event email = %q", ev.Email)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("registration event was not published")
	}

	token, err := auth.Login(ctx, "a@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token.TokenType != "bearer" {
		t.Errorf("token type = %q", token.TokenType)
	}

	me, err := auth.CurrentUser(ctx, token.AccessToken)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if me.ID != user.ID {
		t.Errorf("resolved user %d, want %d", me.ID, user.ID)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuth(t, repo, nil)
	ctx := context.Background()

	if _, err := auth.Register(ctx, &structs.AuthRegister{Email: "a@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := auth.Register(ctx, &structs.AuthRegister{Email: "a@example.com", Password: "other66"})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRegisterDuplicateRace(t *testing.T) {
	// The pre-check passes but the insert hits the unique constraint.
	repo := newFakeUserRepo()
	repo.failDup = true
	auth := newTestAuth(t, repo, nil)

	_, err := auth.Register(context.Background(), &structs.AuthRegister{Email: "race@example.com", Password: "secret1"})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuth(t, repo, nil)
	ctx := context.Background()

	if _, err := auth.Register(ctx, &structs.AuthRegister{Email: "a@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, errWrong := auth.Login(ctx, "a@example.com", "wrongpw")
	_, errUnknown := auth.Login(ctx, "nobody@example.com", "secret1")
	if !errors.Is(errWrong, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", errWrong)
	}
	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v", errUnknown)
	}
	// The two failures must be the same error value.
	if !errors.Is(errWrong, errUnknown) {
		t.Error("credential failures must be indistinguishable")
	}
}

func TestCurrentUserInvalidToken(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuth(t, repo, nil)
	ctx := context.Background()

	if _, err := auth.CurrentUser(ctx, "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: got %v", err)
	}

	// A valid token whose subject no longer exists is invalid too.
	tokens := jwt.NewTokenManager("test-secret", time.Minute)
	orphan, err := tokens.Generate("9999")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := auth.CurrentUser(ctx, orphan); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("orphaned subject: got %v", err)
	}
}

func TestPublishFailureDoesNotFailRegistration(t *testing.T) {
	repo := newFakeUserRepo()
	auth := newTestAuth(t, repo, failingPublisher{})

	if _, err := auth.Register(context.Background(), &structs.AuthRegister{Email: "a@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("register must succeed despite publish failure: %v", err)
	}
}

type failingPublisher struct{}

func (failingPublisher) PublishUserRegistered(context.Context, *event.UserRegistered) error {
	return errors.New("broker down")
}
