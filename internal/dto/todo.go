package dto

// CreateTodoRequest is the JSON body for POST /api/todos.
type CreateTodoRequest struct {
	Title string `json:"title" binding:"required,min=1,max=120"`
}

// UpdateTodoRequest is the JSON body for PUT /api/todos/:id.
type UpdateTodoRequest struct {
	Title string `json:"title" binding:"required,min=1,max=120"`
}

// TodoResponse mirrors the todos table row the client renders.
type TodoResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	UserID int64  `json:"user_id"`
}
