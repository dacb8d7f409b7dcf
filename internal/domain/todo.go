package domain

// Domain entity. Does not depend on Gin, Postgres or Redis.
// UserID is the owning account: every single-item storage operation
// filters by both ID and UserID in one statement.
type Todo struct {
	ID     int64
	UserID int64
	Title  string
}
