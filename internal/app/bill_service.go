package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/bill"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// Upcoming window bounds in days.
const (
	defaultUpcomingDays = 7
	maxUpcomingDays     = 365
)

// Compile-time check that BillService implements ports.BillService.
var _ ports.BillService = (*BillService)(nil)

// BillService implements ports.BillService.
type BillService struct {
	bills  ports.BillRepository
	linker goalLinker
	logger *slog.Logger
	now    func() time.Time
}

// NewBillService creates a BillService. The goal repository and converter
// link optional payment transactions to a goal.
func NewBillService(bills ports.BillRepository, goals ports.GoalRepository, converter ports.CurrencyConverter,
	logger *slog.Logger,
) *BillService {
	return &BillService{
		bills:  bills,
		linker: goalLinker{goals: goals, converter: converter},
		logger: orDiscard(logger),
		now:    time.Now,
	}
}

// ListBills returns the user's bills, soonest due first.
func (s *BillService) ListBills(ctx context.Context, userID int64) ([]bill.Bill, error) {
	s.logger.InfoContext(ctx, "listing bills", slog.Int64("user_id", userID))

	bills, err := s.bills.ListBills(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list bills",
			slog.String("operation", "ListBills"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return bills, nil
}

// GetBill returns one bill.
func (s *BillService) GetBill(ctx context.Context, userID, id int64) (*bill.Bill, error) {
	b, err := s.bills.GetBill(ctx, userID, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch bill",
			slog.String("operation", "GetBill"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return b, nil
}

// CreateBill validates and stores a bill.
func (s *BillService) CreateBill(ctx context.Context, b *bill.Bill) (*bill.Bill, error) {
	s.logger.InfoContext(ctx, "creating bill", slog.String("name", b.Name))

	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.DueDate = domain.Day(b.DueDate)

	created, err := s.bills.CreateBill(ctx, b)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create bill",
			slog.String("operation", "CreateBill"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateBill replaces a bill's fields. Payment state is kept.
func (s *BillService) UpdateBill(ctx context.Context, userID, id int64, b *bill.Bill) (*bill.Bill, error) {
	s.logger.InfoContext(ctx, "updating bill", slog.Int64("id", id))

	stored, err := s.bills.GetBill(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	b.ID = id
	b.UserID = userID
	b.IsPaid = stored.IsPaid
	b.LastPaidAt = stored.LastPaidAt
	if domain.SameDay(b.DueDate, stored.DueDate) {
		b.AnchorDay = stored.AnchorDay
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.DueDate = domain.Day(b.DueDate)

	updated, err := s.bills.UpdateBill(ctx, b)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update bill",
			slog.String("operation", "UpdateBill"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteBill removes a bill.
func (s *BillService) DeleteBill(ctx context.Context, userID, id int64) error {
	s.logger.InfoContext(ctx, "deleting bill", slog.Int64("id", id))

	if err := s.bills.DeleteBill(ctx, userID, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete bill",
			slog.String("operation", "DeleteBill"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Upcoming returns unpaid bills due within days of today, overdue ones
// first. A non-positive days uses the default window.
func (s *BillService) Upcoming(ctx context.Context, userID int64, days int) ([]bill.Bill, error) {
	if days <= 0 {
		days = defaultUpcomingDays
	}
	days = min(days, maxUpcomingDays)
	until := domain.Day(s.now()).AddDate(0, 0, days)

	bills, err := s.bills.ListUnpaidBillsDueBy(ctx, userID, until)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list upcoming bills",
			slog.String("operation", "Upcoming"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return bills, nil
}

// MarkPaid records a payment today. Recurring bills roll to their next due
// date. With opts.RecordTransaction an expense for the bill amount is stored
// in the same database transaction.
func (s *BillService) MarkPaid(ctx context.Context, userID, id int64, opts ports.PayOptions) (*ports.BillPayment, error) {
	s.logger.InfoContext(ctx, "marking bill paid",
		slog.Int64("id", id),
		slog.Bool("record_transaction", opts.RecordTransaction),
	)

	b, err := s.bills.GetBill(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if b.IsPaid {
		return nil, domain.NewValidationError("is_paid", "bill is already paid")
	}

	now := s.now()
	var tx *transaction.Transaction
	if opts.RecordTransaction {
		tx = &transaction.Transaction{
			UserID:      userID,
			GoalID:      opts.GoalID,
			CategoryID:  b.CategoryID,
			Type:        transaction.TypeExpense,
			Amount:      b.Amount,
			Currency:    b.Currency,
			Description: b.Name,
			Date:        domain.Day(now),
			Source:      transaction.SourceManual,
		}
		if err := tx.Validate(); err != nil {
			return nil, err
		}
		if err := s.linker.link(ctx, tx); err != nil {
			return nil, err
		}
	}

	b.MarkPaid(now)
	recorded, err := s.bills.RecordBillPayment(ctx, b, tx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to record bill payment",
			slog.String("operation", "MarkPaid"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &ports.BillPayment{Bill: *b, Transaction: recorded}, nil
}
