package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/category"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// Compile-time check that CategoryService implements ports.CategoryService.
var _ ports.CategoryService = (*CategoryService)(nil)

// CategoryService implements ports.CategoryService.
type CategoryService struct {
	categories ports.CategoryRepository
	logger     *slog.Logger
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(categories ports.CategoryRepository, logger *slog.Logger) *CategoryService {
	return &CategoryService{categories: categories, logger: orDiscard(logger)}
}

// ListCategories returns the user's categories, seeding the defaults when
// the user has none.
func (s *CategoryService) ListCategories(ctx context.Context, userID int64) ([]category.Category, error) {
	s.logger.InfoContext(ctx, "listing categories", slog.Int64("user_id", userID))

	cs, err := s.categories.ListCategories(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list categories",
			slog.String("operation", "ListCategories"),
			slog.Any("error", err),
		)
		return nil, err
	}
	if len(cs) > 0 {
		return cs, nil
	}

	defaults := category.Defaults()
	for i := range defaults {
		defaults[i].UserID = userID
	}
	if _, err := s.categories.CreateCategories(ctx, defaults); err != nil && !errors.Is(err, domain.ErrConflict) {
		s.logger.ErrorContext(ctx, "failed to seed categories",
			slog.String("operation", "ListCategories"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}
	// A concurrent first list may have seeded them already; read back either way.
	return s.categories.ListCategories(ctx, userID)
}

// CreateCategory validates and stores a category. Names are unique per type.
func (s *CategoryService) CreateCategory(ctx context.Context, c *category.Category) (*category.Category, error) {
	s.logger.InfoContext(ctx, "creating category", slog.String("name", c.Name))

	c.Name = strings.TrimSpace(c.Name)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	created, err := s.categories.CreateCategory(ctx, c)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create category",
			slog.String("operation", "CreateCategory"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateCategory replaces a category's fields.
func (s *CategoryService) UpdateCategory(ctx context.Context, userID, id int64, c *category.Category) (*category.Category, error) {
	s.logger.InfoContext(ctx, "updating category", slog.Int64("id", id))

	c.ID = id
	c.UserID = userID
	c.Name = strings.TrimSpace(c.Name)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.categories.UpdateCategory(ctx, c)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update category",
			slog.String("operation", "UpdateCategory"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteCategory removes a category. Its transactions become uncategorized
// and its budgets are removed.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, id int64) error {
	s.logger.InfoContext(ctx, "deleting category", slog.Int64("id", id))

	if err := s.categories.DeleteCategory(ctx, userID, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete category",
			slog.String("operation", "DeleteCategory"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// matchCategory finds the category of type typ whose name equals name,
// ignoring case. Returns nil when nothing matches.
func matchCategory(cs []category.Category, name string, typ transaction.Type) *int64 {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for i := range cs {
		if cs[i].Type == typ && strings.EqualFold(cs[i].Name, name) {
			id := cs[i].ID
			return &id
		}
	}
	return nil
}

// categoryNames maps category ids to names.
func categoryNames(cs []category.Category) map[int64]string {
	names := make(map[int64]string, len(cs))
	for _, c := range cs {
		names[c.ID] = c.Name
	}
	return names
}
