// Package memory holds the authoritative in-process state for categories and todos.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

// Store keeps categories and todos in insertion order. Every operation runs under a single
// mutex, so a cascade delete or an id allocation is never observed half done.
type Store struct {
	mu sync.Mutex

	now  func() time.Time
	seed []domain.CreateCategoryInput

	categories     []domain.Category
	todos          []domain.Todo
	nextCategoryID uint64
	nextTodoID     uint64
}

type Option func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSeed creates the given categories at construction and after every Reset.
func WithSeed(categories []domain.CreateCategoryInput) Option {
	return func(s *Store) {
		s.seed = append([]domain.CreateCategoryInput(nil), categories...)
	}
}

var (
	_ ports.CategoryRepository = (*Store)(nil)
	_ ports.TodoRepository     = (*Store)(nil)
	_ ports.StatsReporter      = (*Store)(nil)
)

func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s
}

// Reset drops all records, rewinds both id counters and re-applies the seed.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Store) reset() {
	s.categories = nil
	s.todos = nil
	s.nextCategoryID = 1
	s.nextTodoID = 1
	for _, input := range s.seed {
		s.createCategory(input)
	}
}

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append(make([]domain.Category, 0, len(s.categories)), s.categories...), nil
}

func (s *Store) GetCategory(ctx context.Context, id string) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.categoryIndex(id)
	if index < 0 {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	return s.categories[index], nil
}

func (s *Store) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createCategory(input), nil
}

func (s *Store) createCategory(input domain.CreateCategoryInput) domain.Category {
	category := domain.Category{
		ID:        strconv.FormatUint(s.nextCategoryID, 10),
		Name:      input.Name,
		Color:     input.Color,
		CreatedAt: s.timestamp(),
	}
	s.nextCategoryID++
	s.categories = append(s.categories, category)
	return category
}

func (s *Store) UpdateCategory(ctx context.Context, id string, input domain.UpdateCategoryInput) (domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.categoryIndex(id)
	if index < 0 {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	s.categories[index] = input.Apply(s.categories[index])
	return s.categories[index], nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.categoryIndex(id)
	if index < 0 {
		return domain.ErrCategoryNotFound
	}

	kept := make([]domain.Todo, 0, len(s.todos))
	for _, todo := range s.todos {
		if todo.CategoryID != id {
			kept = append(kept, todo)
		}
	}
	s.todos = kept
	s.categories = append(s.categories[:index:index], s.categories[index+1:]...)
	return nil
}

func (s *Store) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append(make([]domain.Todo, 0, len(s.todos)), s.todos...), nil
}

func (s *Store) GetTodo(ctx context.Context, id string) (domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.todoIndex(id)
	if index < 0 {
		return domain.Todo{}, domain.ErrTodoNotFound
	}
	return s.todos[index], nil
}

// CreateTodo rejects a category reference that does not resolve. A rejected call does not
// consume a todo id.
func (s *Store) CreateTodo(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categoryIndex(input.CategoryID) < 0 {
		return domain.Todo{}, domain.ErrCategoryNotFound
	}

	now := s.timestamp()
	todo := domain.Todo{
		ID:          strconv.FormatUint(s.nextTodoID, 10),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		CategoryID:  input.CategoryID,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextTodoID++
	s.todos = append(s.todos, todo)
	return todo, nil
}

func (s *Store) UpdateTodo(ctx context.Context, id string, input domain.UpdateTodoInput) (domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.todoIndex(id)
	if index < 0 {
		return domain.Todo{}, domain.ErrTodoNotFound
	}
	if categoryID, ok := input.CategoryID.Get(); ok && s.categoryIndex(categoryID) < 0 {
		return domain.Todo{}, domain.ErrCategoryNotFound
	}
	return s.updateTodo(index, input), nil
}

func (s *Store) ToggleTodo(ctx context.Context, id string) (domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.todoIndex(id)
	if index < 0 {
		return domain.Todo{}, domain.ErrTodoNotFound
	}
	return s.updateTodo(index, domain.UpdateTodoInput{
		Completed: domain.Some(!s.todos[index].Completed),
	}), nil
}

func (s *Store) updateTodo(index int, input domain.UpdateTodoInput) domain.Todo {
	todo := input.Apply(s.todos[index])
	// UpdatedAt never moves backwards, even if the clock does.
	if now := s.timestamp(); now.After(todo.UpdatedAt) {
		todo.UpdatedAt = now
	}
	s.todos[index] = todo
	return todo
}

func (s *Store) DeleteTodo(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.todoIndex(id)
	if index < 0 {
		return domain.ErrTodoNotFound
	}
	s.todos = append(s.todos[:index:index], s.todos[index+1:]...)
	return nil
}

func (s *Store) Stats() ports.StoreStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := ports.StoreStats{
		Categories: len(s.categories),
		Todos:      len(s.todos),
	}
	for _, todo := range s.todos {
		if todo.Completed {
			stats.CompletedTodos++
		}
	}
	return stats
}

func (s *Store) categoryIndex(id string) int {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) todoIndex(id string) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

var (
	_ ports.CategoryRepository = (*Store)(nil)
	_ ports.TodoRepository     = (*Store)(nil)
	_ ports.StatsReporter      = (*Store)(nil)
)
