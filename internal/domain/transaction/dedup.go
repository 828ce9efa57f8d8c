package transaction

import (
	"strings"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
)

// IsDuplicate reports whether candidate repeats existing. Two transactions
// are duplicates when they share a non-empty ExternalID, or when they fall on
// the same calendar day with equal amounts and one description contains the
// other (case-insensitive).
func IsDuplicate(existing, candidate *Transaction) bool {
	if existing.ExternalID != "" && existing.ExternalID == candidate.ExternalID {
		return true
	}
	if !domain.SameDay(existing.Date, candidate.Date) {
		return false
	}
	if !existing.Amount.Equal(candidate.Amount) {
		return false
	}
	return descriptionsOverlap(existing.Description, candidate.Description)
}

// ContainsDuplicate reports whether any transaction in existing duplicates
// candidate.
func ContainsDuplicate(existing []Transaction, candidate *Transaction) bool {
	for i := range existing {
		if IsDuplicate(&existing[i], candidate) {
			return true
		}
	}
	return false
}

func descriptionsOverlap(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return a == b
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
