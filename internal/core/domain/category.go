package domain

import "time"

type Category struct {
	ID        string
	Name      string
	Color     string
	CreatedAt time.Time
}

type CreateCategoryInput struct {
	Name  string
	Color string
}

// UpdateCategoryInput only overwrites the fields that are set.
type UpdateCategoryInput struct {
	Name  Optional[string]
	Color Optional[string]
}

func (in UpdateCategoryInput) Apply(category Category) Category {
	category.Name = in.Name.OrElse(category.Name)
	category.Color = in.Color.OrElse(category.Color)
	return category
}
