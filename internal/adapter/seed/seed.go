// Package seed provides the starter categories a fresh store is created with.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"todolist/internal/adapter/http/validation"
	"todolist/internal/core/domain"
)

type File struct {
	Categories []Category `yaml:"categories"`
}

type Category struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

func DefaultCategories() []domain.CreateCategoryInput {
	return []domain.CreateCategoryInput{
		{Name: "Work", Color: "#3b82f6"},
		{Name: "Personal", Color: "#10b981"},
		{Name: "Shopping", Color: "#f59e0b"},
	}
}

// LoadFile reads a YAML seed file. Every category must pass the same rules as the HTTP API.
func LoadFile(path string) ([]domain.CreateCategoryInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]domain.CreateCategoryInput, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed YAML: %w", err)
	}

	categories := make([]domain.CreateCategoryInput, 0, len(file.Categories))
	for i, category := range file.Categories {
		name, err := validation.CategoryName(category.Name)
		if err != nil {
			return nil, fmt.Errorf("seed category %d: %w", i, err)
		}
		color, err := validation.CategoryColor(category.Color)
		if err != nil {
			return nil, fmt.Errorf("seed category %d: %w", i, err)
		}
		categories = append(categories, domain.CreateCategoryInput{Name: name, Color: color})
	}
	return categories, nil
}

// Resolve picks the seed a new store starts with: the file when given, the defaults when
// enabled, nothing otherwise.
func Resolve(path string, useDefaults bool) ([]domain.CreateCategoryInput, error) {
	if path != "" {
		return LoadFile(path)
	}
	if useDefaults {
		return DefaultCategories(), nil
	}
	return nil, nil
}
