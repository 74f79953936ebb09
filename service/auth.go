package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"carmarket/data/repository"
	"carmarket/event"
	"carmarket/logging/logger"
	"carmarket/security/jwt"
	"carmarket/security/password"
	"carmarket/structs"
)

// AuthUserRepo is the slice of the user repository the auth service needs.
type AuthUserRepo interface {
	Create(ctx context.Context, u *structs.User) (*structs.User, error)
	GetByID(ctx context.Context, id int) (*structs.User, error)
	GetByEmail(ctx context.Context, email string) (*structs.User, error)
}

// RegistrationPublisher emits the user-registered event.
type RegistrationPublisher interface {
	PublishUserRegistered(ctx context.Context, ev *event.UserRegistered) error
}

// Auth implements registration, login and token resolution.
type Auth struct {
	users     AuthUserRepo
	hasher    *password.Hasher
	tokens    *jwt.TokenManager
	publisher RegistrationPublisher
	log       *logger.Logger
}

func NewAuth(users AuthUserRepo, hasher *password.Hasher, tokens *jwt.TokenManager, publisher RegistrationPublisher, log *logger.Logger) *Auth {
	return &Auth{users: users, hasher: hasher, tokens: tokens, publisher: publisher, log: log}
}

// Register creates an account. The database unique constraint is the
// authority on duplicates; the pre-check only gives a friendlier path for
// the common case.
func (s *Auth) Register(ctx context.Context, req *structs.AuthRegister) (*structs.UserRead, error) {
	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &structs.User{
		Email:          req.Email,
		HashedPassword: hash,
		IsActive:       true,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Role:           structs.RoleCustomer,
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	s.publishRegistered(ctx, user)
	return user.Public(), nil
}

// publishRegistered emits the event without blocking the request. Failures
// are logged; registration has already succeeded.
func (s *Auth) publishRegistered(ctx context.Context, user *structs.User) {
	if s.publisher == nil {
		return
	}
	ev := &event.UserRegistered{
		Email:        user.Email,
		FullName:     user.FullName,
		Phone:        user.Phone,
		RegisteredAt: user.CreatedAt,
	}
	traceCtx := logger.SetTraceID(context.Background(), logger.GetTraceID(ctx))
	go func() {
		publishCtx, cancel := context.WithTimeout(traceCtx, 30*time.Second)
		defer cancel()
		if err := s.publisher.PublishUserRegistered(publishCtx, ev); err != nil {
			s.log.Error(publishCtx, "Failed to publish registration event", "email", user.Email, "error", err)
		}
	}()
}

// Login verifies the credentials and issues a token whose subject is the
// user id. Unknown email and wrong password are indistinguishable.
func (s *Auth) Login(ctx context.Context, email, plaintext string) (*structs.Token, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !s.hasher.Verify(plaintext, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(strconv.Itoa(user.ID))
	if err != nil {
		return nil, err
	}
	return &structs.Token{AccessToken: token, TokenType: "bearer"}, nil
}

// CurrentUser resolves a bearer token to its user. Any failure, including
// a subject that no longer exists, yields ErrInvalidToken.
func (s *Auth) CurrentUser(ctx context.Context, token string) (*structs.UserRead, error) {
	subject, err := s.tokens.Decode(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	id, err := strconv.Atoi(subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user.Public(), nil
}
