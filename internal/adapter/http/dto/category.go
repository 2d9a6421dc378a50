package dto

type CategoryItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"createdAt"`
}

type CreateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}
