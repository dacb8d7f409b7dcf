package service

import (
	"context"
	"sort"
	"testing"

	dom "github.com/arjunthazhath2001/new-task/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memTodoRepo mimics the pgx-backed repo: single-item operations filter
// by id AND user id, so a foreign item behaves exactly like a missing one.
type memTodoRepo struct {
	todos  map[int64]dom.Todo
	nextID int64
}

func newMemTodoRepo() *memTodoRepo {
	return &memTodoRepo{todos: make(map[int64]dom.Todo)}
}

func (r *memTodoRepo) Create(_ context.Context, userID int64, title string) (dom.Todo, error) {
	r.nextID++
	t := dom.Todo{ID: r.nextID, UserID: userID, Title: title}
	r.todos[t.ID] = t
	return t, nil
}

func (r *memTodoRepo) List(_ context.Context, userID int64) ([]dom.Todo, error) {
	var list []dom.Todo
	for _, t := range r.todos {
		if t.UserID == userID {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *memTodoRepo) Update(_ context.Context, userID, id int64, title string) (dom.Todo, error) {
	t, ok := r.todos[id]
	if !ok || t.UserID != userID {
		return dom.Todo{}, pgx.ErrNoRows
	}
	t.Title = title
	r.todos[id] = t
	return t, nil
}

func (r *memTodoRepo) Delete(_ context.Context, userID, id int64) error {
	t, ok := r.todos[id]
	if !ok || t.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(r.todos, id)
	return nil
}

func TestTodoCreateAndList(t *testing.T) {
	svc := NewTodoService(newMemTodoRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "  buy milk  ")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", created.Title)
	assert.Equal(t, int64(1), created.UserID)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestTodoListIsPerUser(t *testing.T) {
	svc := NewTodoService(newMemTodoRepo(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "alice's")
	require.NoError(t, err)

	list, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTodoUpdateOwned(t *testing.T) {
	svc := NewTodoService(newMemTodoRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "old")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, 1, created.ID, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
}

func TestTodoUpdateForeignOrMissing(t *testing.T) {
	svc := NewTodoService(newMemTodoRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "alice's")
	require.NoError(t, err)

	// Someone else's item and a nonexistent item fail identically.
	_, err = svc.Update(ctx, 2, created.ID, "stolen")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, 1, created.ID+100, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoDeleteForeignOrMissing(t *testing.T) {
	svc := NewTodoService(newMemTodoRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "alice's")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, 2, created.ID), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 1, created.ID+100), ErrNotFound)

	require.NoError(t, svc.Delete(ctx, 1, created.ID))

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}
