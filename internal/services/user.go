package services

import (
	"context"
	"errors"

	"github.com/tasknest/apiserver/internal/auth"
	"github.com/tasknest/apiserver/internal/store"
	"github.com/tasknest/apiserver/types"
)

// ErrInvalidCredentials is returned when the email is unknown or the
// password is wrong. The two causes are deliberately collapsed so a
// caller cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInactiveUser is returned only after the password has been
// verified against a deactivated account.
var ErrInactiveUser = errors.New("user is inactive")

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	UpdateProfile(ctx context.Context, id int, patch types.UserPatch) (types.User, error)
}

// UserService encapsulates registration, login, and profile use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account with a bcrypt hash of the password.
// A duplicate email fails with store.ErrEmailTaken and leaves the
// existing record untouched.
func (s *UserService) Register(ctx context.Context, email, fullName, password string) (types.User, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return types.User{}, store.ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return types.User{}, err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return types.User{}, err
	}

	return s.repo.Create(ctx, types.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hashed,
		IsActive:     true,
	})
}

// Authenticate verifies the credentials and returns the user. Unknown
// email and wrong password yield the identical ErrInvalidCredentials;
// ErrInactiveUser fires only once the password is confirmed correct.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (types.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidCredentials
		}
		return types.User{}, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return types.User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return types.User{}, ErrInactiveUser
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile applies only the fields present in patch. Password and
// activation are not mutable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, id int, patch types.UserPatch) (types.User, error) {
	return s.repo.UpdateProfile(ctx, id, patch)
}
