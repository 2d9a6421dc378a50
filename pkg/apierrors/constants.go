package apierrors

const (
	MsgRouteNotFound = "routeNotFound"
	MsgInternal      = "internalError"

	MsgFailListCategories     = "failListCategories"
	MsgFailGetCategory        = "failGetCategory"
	MsgFailCreateCategory     = "failCreateCategory"
	MsgFailUpdateCategory     = "failUpdateCategory"
	MsgFailDeleteCategory     = "failDeleteCategory"
	MsgCategoryNotFound       = "categoryNotFound"
	MsgInvalidCategoryPayload = "invalidCategoryPayload"
	MsgInvalidCategoryName    = "invalidCategoryName"
	MsgInvalidCategoryColor   = "invalidCategoryColor"

	MsgFailListTodos          = "failListTodos"
	MsgFailGetTodo            = "failGetTodo"
	MsgFailCreateTodo         = "failCreateTodo"
	MsgFailUpdateTodo         = "failUpdateTodo"
	MsgFailDeleteTodo         = "failDeleteTodo"
	MsgFailToggleTodo         = "failToggleTodo"
	MsgTodoNotFound           = "todoNotFound"
	MsgInvalidTodoPayload     = "invalidTodoPayload"
	MsgInvalidTodoTitle       = "invalidTodoTitle"
	MsgInvalidTodoDescription = "invalidTodoDescription"
	MsgInvalidTodoDueDate     = "invalidTodoDueDate"
	MsgInvalidTodoCategoryID  = "invalidTodoCategoryID"
	MsgInvalidTodoCompleted   = "invalidTodoCompleted"
	MsgInvalidTodoQuery       = "invalidTodoQuery"
)
