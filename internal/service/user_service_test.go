package service

import (
	"context"
	"testing"

	"github.com/arjunthazhath2001/new-task/internal/auth"
	dom "github.com/arjunthazhath2001/new-task/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memUserRepo mimics the pgx-backed repo: unknown usernames come back
// as pgx.ErrNoRows and duplicate inserts as SQLSTATE 23505.
type memUserRepo struct {
	users  map[string]dom.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]dom.User)}
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	u, ok := r.users[username]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *memUserRepo) Create(_ context.Context, username, passwordHash string) (dom.User, error) {
	if _, ok := r.users[username]; ok {
		return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	}
	r.nextID++
	u := dom.User{ID: r.nextID, Username: username, PasswordHash: passwordHash}
	r.users[username] = u
	return u, nil
}

func newUserService() *UserService {
	return NewUserService(newMemUserRepo(), auth.NewHasher(bcrypt.MinCost))
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.NotEqual(t, "secret1", created.PasswordHash)

	u, err := svc.ValidateCredentials(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "another")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterEmptyFields(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Register(ctx, "   ", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateCredentialsWrongPassword(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, err = svc.ValidateCredentials(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateCredentialsUnknownUser(t *testing.T) {
	svc := newUserService()

	// Unknown user and bad password are indistinguishable to the caller.
	_, err := svc.ValidateCredentials(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
