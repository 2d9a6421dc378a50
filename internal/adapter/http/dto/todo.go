package dto

type TodoItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	CategoryID  string `json:"categoryId"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type CreateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	CategoryID  *string `json:"categoryId"`
}

type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	CategoryID  *string `json:"categoryId"`
	Completed   *bool   `json:"completed"`
}

type TodoListQuery struct {
	Status string `form:"status"`
	SortBy string `form:"sortBy"`
	Order  string `form:"order"`
}
