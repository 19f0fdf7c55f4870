package payments

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
)

type AggregationStore interface {
	BeginTx(ctx context.Context) (pgx.Tx, error)
	InsertDetailTx(ctx context.Context, tx pgx.Tx, job JobInput) (PaymentDetail, error)
	InsertPaymentTx(ctx context.Context, tx pgx.Tx, payment Payment) (Payment, error)
	ListPayments(ctx context.Context) ([]Payment, error)
	GetPayment(ctx context.Context, id string) (*Payment, error)
	DetailsByIDs(ctx context.Context, ids []string) ([]PaymentDetail, error)
}

type Service struct {
	Store AggregationStore
}

func NewService(store AggregationStore) *Service {
	return &Service{Store: store}
}

// CreatePayment persists one detail record per job and the payment that
// references them, in a single transaction. The final total is summed from
// the detail rows as stored, never from the raw input, so the payment always
// equals the sum of its persisted details. Any failure rolls the whole batch
// back.
func (s *Service) CreatePayment(ctx context.Context, input CreatePaymentInput) (*CreatePaymentResult, error) {
	tx, err := s.Store.BeginTx(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]PaymentDetail, 0, len(input.Jobs))
	detailIDs := make([]string, 0, len(input.Jobs))
	for _, job := range input.Jobs {
		detail, err := s.Store.InsertDetailTx(ctx, tx, job)
		if err != nil {
			rollback(ctx, tx)
			return nil, err
		}
		details = append(details, detail)
		detailIDs = append(detailIDs, detail.ID)
	}

	payment, err := s.Store.InsertPaymentTx(ctx, tx, Payment{
		SiteID:     input.SiteID,
		EmployeeID: input.EmployeeID,
		DetailIDs:  detailIDs,
		FinalTotal: sumDetailTotals(details),
		PaymentBy:  input.PaymentBy,
	})
	if err != nil {
		rollback(ctx, tx)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &CreatePaymentResult{Payment: payment, PaymentDetails: details}, nil
}

func (s *Service) ListPayments(ctx context.Context) ([]Payment, error) {
	return s.Store.ListPayments(ctx)
}

func (s *Service) GetPayment(ctx context.Context, id string) (*Payment, error) {
	return s.Store.GetPayment(ctx, id)
}

// GetPaymentWithDetails resolves the payment's detail references for display.
func (s *Service) GetPaymentWithDetails(ctx context.Context, id string) (*CreatePaymentResult, error) {
	payment, err := s.Store.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	details, err := s.Store.DetailsByIDs(ctx, payment.DetailIDs)
	if err != nil {
		return nil, err
	}
	return &CreatePaymentResult{Payment: *payment, PaymentDetails: details}, nil
}

func sumDetailTotals(details []PaymentDetail) float64 {
	var total float64
	for _, detail := range details {
		total += detail.Total
	}
	return total
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil {
		slog.Warn("payment rollback failed", "err", err)
	}
}
