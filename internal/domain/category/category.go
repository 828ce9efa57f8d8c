// Package category holds user-defined spending and income categories.
package category

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
)

const maxNameLength = 60

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Category labels transactions, budgets and bills.
type Category struct {
	ID        int64
	UserID    int64
	Name      string
	Type      transaction.Type
	Color     string
	Icon      string
	CreatedAt time.Time
}

// Validate checks business rules for the Category entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (c *Category) Validate() error {
	fields := make(map[string]string)

	name := strings.TrimSpace(c.Name)
	switch {
	case name == "":
		fields["name"] = domain.MsgRequired
	case len(name) > maxNameLength:
		fields["name"] = fmt.Sprintf("must be at most %d characters", maxNameLength)
	}
	if !c.Type.IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", c.Type)
	}
	if c.Color != "" && !colorPattern.MatchString(c.Color) {
		fields["color"] = "must be a hex color like #1a2b3c"
	}

	return domain.FieldsError(fields)
}

// Defaults returns the categories seeded for a new user.
func Defaults() []Category {
	expense := func(name, color, icon string) Category {
		return Category{Name: name, Type: transaction.TypeExpense, Color: color, Icon: icon}
	}
	income := func(name, color, icon string) Category {
		return Category{Name: name, Type: transaction.TypeIncome, Color: color, Icon: icon}
	}

	return []Category{
		expense("Food & Dining", "#ef4444", "utensils"),
		expense("Groceries", "#f97316", "shopping-cart"),
		expense("Transport", "#eab308", "car"),
		expense("Housing", "#84cc16", "home"),
		expense("Utilities", "#22c55e", "zap"),
		expense("Entertainment", "#14b8a6", "film"),
		expense("Shopping", "#06b6d4", "shopping-bag"),
		expense("Health", "#3b82f6", "heart"),
		expense("Education", "#6366f1", "book"),
		expense("Travel", "#8b5cf6", "plane"),
		expense("Subscriptions", "#a855f7", "repeat"),
		expense("Other", "#64748b", "circle"),
		income("Salary", "#10b981", "briefcase"),
		income("Freelance", "#0ea5e9", "laptop"),
		income("Investments", "#f59e0b", "trending-up"),
		income("Gifts", "#ec4899", "gift"),
		income("Other Income", "#94a3b8", "plus-circle"),
	}
}

// MatchByName finds a category whose name equals or contains name,
// case-insensitively. Exact matches win over partial ones. Returns nil when
// nothing matches.
func MatchByName(categories []Category, name string, typ transaction.Type) *Category {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	var partial *Category
	for i := range categories {
		c := &categories[i]
		if typ != "" && c.Type != typ {
			continue
		}
		hay := strings.ToLower(c.Name)
		if hay == needle {
			return c
		}
		if partial == nil && (strings.Contains(hay, needle) || strings.Contains(needle, hay)) {
			partial = c
		}
	}
	return partial
}
