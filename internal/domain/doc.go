// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/goal, domain/transaction,
// domain/budget, ...). This root package holds sentinel errors, validation
// types, currency codes, calendar helpers and recurrence frequencies that are
// shared across all entities.
package domain
