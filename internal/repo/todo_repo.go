package repo

import (
	"context"

	dom "github.com/arjunthazhath2001/new-task/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoRepo provides todo persistence. Single-item operations filter by
// id AND user_id in one statement, so a foreign item and a missing item
// are indistinguishable: both come back as pgx.ErrNoRows.
type TodoRepo interface {
	Create(ctx context.Context, userID int64, title string) (dom.Todo, error)
	List(ctx context.Context, userID int64) ([]dom.Todo, error)
	Update(ctx context.Context, userID, id int64, title string) (dom.Todo, error)
	Delete(ctx context.Context, userID, id int64) error
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, userID int64, title string) (dom.Todo, error) {
	query := `
		INSERT INTO todos (title, user_id)
		VALUES ($1, $2)
		RETURNING id, title, user_id`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, title, userID).Scan(&t.ID, &t.Title, &t.UserID)
	return t, err
}

func (r *PGTodoRepo) List(ctx context.Context, userID int64) ([]dom.Todo, error) {
	query := `
		SELECT id, title, user_id
		FROM todos WHERE user_id = $1 ORDER BY id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.UserID); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTodoRepo) Update(ctx context.Context, userID, id int64, title string) (dom.Todo, error) {
	query := `
		UPDATE todos SET title = $3
		WHERE id = $1 AND user_id = $2
		RETURNING id, title, user_id`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, userID, title).Scan(&t.ID, &t.Title, &t.UserID)
	return t, err
}

func (r *PGTodoRepo) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
