package service

import (
	"context"
	"errors"
	"strings"

	"github.com/arjunthazhath2001/new-task/internal/auth"
	dom "github.com/arjunthazhath2001/new-task/internal/domain"
	"github.com/arjunthazhath2001/new-task/internal/repo"
	"github.com/arjunthazhath2001/new-task/internal/utils"

	"github.com/jackc/pgx/v5"
)

var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUsernameTaken = errors.New("username already exists")

// UserService handles registration and credential validation.
type UserService struct {
	repo   repo.UserRepo
	hasher *auth.Hasher
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo, hasher *auth.Hasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// ValidateCredentials checks username and password; returns the user if
// valid. Unknown username and wrong password both map to
// ErrInvalidCredentials so the response does not reveal which part failed.
func (s *UserService) ValidateCredentials(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if !s.hasher.Compare(u.PasswordHash, password) {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Register creates a new user with a hashed password. The insert goes
// straight to the unique constraint; a violation means the username was
// already claimed, possibly by a concurrent registration.
func (s *UserService) Register(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, username, hash)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrUsernameTaken
		}
		return dom.User{}, err
	}
	return u, nil
}
