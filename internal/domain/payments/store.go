package payments

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("payment not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return s.DB.Begin(ctx)
}

func (s *Store) InsertDetailTx(ctx context.Context, tx pgx.Tx, job JobInput) (PaymentDetail, error) {
	var detail PaymentDetail
	err := tx.QueryRow(ctx, `
    INSERT INTO payment_details (employee_type, start_date, target_date, total)
    VALUES ($1,$2,$3,$4)
    RETURNING id, employee_type, start_date, target_date, total, last_updated
  `, job.EmployeeType, job.StartDate, job.TargetDate, job.Total).Scan(
		&detail.ID, &detail.EmployeeType, &detail.StartDate, &detail.TargetDate, &detail.Total, &detail.LastUpdated,
	)
	return detail, err
}

func (s *Store) InsertPaymentTx(ctx context.Context, tx pgx.Tx, payment Payment) (Payment, error) {
	detailIDs := payment.DetailIDs
	if detailIDs == nil {
		detailIDs = []string{}
	}
	var out Payment
	err := tx.QueryRow(ctx, `
    INSERT INTO payments (site_id, employee_id, detail_ids, final_total, payment_by)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id, site_id, employee_id, detail_ids::text[], final_total, payment_by
  `, payment.SiteID, payment.EmployeeID, detailIDs, payment.FinalTotal, payment.PaymentBy).Scan(
		&out.ID, &out.SiteID, &out.EmployeeID, &out.DetailIDs, &out.FinalTotal, &out.PaymentBy,
	)
	return out, err
}

const paymentColumns = `id, site_id, employee_id, detail_ids::text[], final_total, payment_by`

func scanPayment(row pgx.Row) (*Payment, error) {
	var p Payment
	err := row.Scan(&p.ID, &p.SiteID, &p.EmployeeID, &p.DetailIDs, &p.FinalTotal, &p.PaymentBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListPayments(ctx context.Context) ([]Payment, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+paymentColumns+` FROM payments`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (s *Store) GetPayment(ctx context.Context, id string) (*Payment, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
	return scanPayment(row)
}

// DetailsByIDs returns the referenced detail rows in the order of ids.
// Missing rows are simply absent from the result.
func (s *Store) DetailsByIDs(ctx context.Context, ids []string) ([]PaymentDetail, error) {
	if len(ids) == 0 {
		return []PaymentDetail{}, nil
	}
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_type, start_date, target_date, total, last_updated
    FROM payment_details
    WHERE id = ANY($1::uuid[])
  `, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]PaymentDetail, len(ids))
	for rows.Next() {
		var detail PaymentDetail
		if err := rows.Scan(&detail.ID, &detail.EmployeeType, &detail.StartDate, &detail.TargetDate, &detail.Total, &detail.LastUpdated); err != nil {
			return nil, err
		}
		byID[detail.ID] = detail
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]PaymentDetail, 0, len(ids))
	for _, id := range ids {
		if detail, ok := byID[id]; ok {
			out = append(out, detail)
		}
	}
	return out, nil
}
