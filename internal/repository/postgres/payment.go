package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/repository"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// paymentJoins is the join chain every payment read shares; landlord scoping
// needs the building owner, so the chain is always present and the scope
// clause alone varies.
const paymentJoins = ` FROM payments p
	LEFT JOIN room_assignments ra ON p.assignment_id = ra.id
	LEFT JOIN rooms r ON ra.room_id = r.id
	LEFT JOIN buildings b ON r.building_id = b.id`

// scopePayments builds the single role predicate used by every payment query:
// admins see all rows, landlords the payments whose assignment's room sits in
// a building they own, students only their own payments.
func scopePayments(actor domain.Actor, argIdx int) (string, []interface{}, int) {
	switch actor.Role {
	case domain.RoleLandlord:
		return fmt.Sprintf("b.owner_id = $%d", argIdx), []interface{}{actor.UserID}, argIdx + 1
	case domain.RoleStudent:
		return fmt.Sprintf("p.user_id = $%d", argIdx), []interface{}{actor.UserID}, argIdx + 1
	default:
		return "", nil, argIdx
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (user_id, assignment_id, amount, payment_method, payment_date,
	              payment_period_start, payment_period_end, receipt_number, recorded_by, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, p.UserID, p.AssignmentID, p.Amount, p.Method, p.PaymentDate,
		p.PeriodStart, p.PeriodEnd, p.ReceiptNumber, p.RecordedBy, p.Notes, now, now).Scan(&p.ID)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateReceipt
	}
	return err
}

const paymentColumns = `p.id, p.user_id, p.assignment_id, p.amount, p.payment_method, p.payment_date,
	p.payment_period_start, p.payment_period_end, p.receipt_number, p.recorded_by, COALESCE(p.notes, ''), p.created_on, p.updated_on`

func scanPayment(row interface{ Scan(...interface{}) error }) (*domain.Payment, error) {
	p := &domain.Payment{}
	var paymentDate, createdOn, updatedOn time.Time
	var periodStart, periodEnd sql.NullTime
	err := row.Scan(&p.ID, &p.UserID, &p.AssignmentID, &p.Amount, &p.Method, &paymentDate,
		&periodStart, &periodEnd, &p.ReceiptNumber, &p.RecordedBy, &p.Notes, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	p.PaymentDate = paymentDate.Format("2006-01-02")
	if periodStart.Valid {
		s := periodStart.Time.Format("2006-01-02")
		p.PeriodStart = &s
	}
	if periodEnd.Valid {
		e := periodEnd.Time.Format("2006-01-02")
		p.PeriodEnd = &e
	}
	p.CreatedOn = createdOn.Format("2006-01-02")
	p.UpdatedOn = updatedOn.Format("2006-01-02")
	return p, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments p WHERE p.id = $1`
	p, err := scanPayment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPaymentNotFound
	}
	return p, err
}

func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET amount=$1, payment_method=$2, payment_date=$3, notes=$4, updated_on=$5 WHERE id=$6`
	result, err := r.db.ExecContext(ctx, query, p.Amount, p.Method, p.PaymentDate, p.Notes, time.Now(), p.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	return err
}

func (r *paymentRepository) List(ctx context.Context, actor domain.Actor, filter domain.PaymentFilter) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + paymentJoins

	clauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if scope, scopeArgs, next := scopePayments(actor, argIdx); scope != "" {
		clauses = append(clauses, scope)
		args = append(args, scopeArgs...)
		argIdx = next
	}
	if filter.StudentID != 0 {
		clauses = append(clauses, fmt.Sprintf("p.user_id = $%d", argIdx))
		args = append(args, filter.StudentID)
		argIdx++
	}
	if filter.BuildingID != 0 {
		clauses = append(clauses, fmt.Sprintf("b.id = $%d", argIdx))
		args = append(args, filter.BuildingID)
		argIdx++
	}
	if filter.Method != "" {
		clauses = append(clauses, fmt.Sprintf("p.payment_method = $%d", argIdx))
		args = append(args, filter.Method)
		argIdx++
	}
	if filter.DateFrom != "" {
		clauses = append(clauses, fmt.Sprintf("p.payment_date >= $%d", argIdx))
		args = append(args, filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != "" {
		clauses = append(clauses, fmt.Sprintf("p.payment_date <= $%d", argIdx))
		args = append(args, filter.DateTo)
		argIdx++
	}

	for i, c := range clauses {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += ` ORDER BY p.payment_date DESC, p.id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) aggregate(ctx context.Context, actor domain.Actor, selectExpr, extraClause string) (decimal.Decimal, error) {
	query := `SELECT ` + selectExpr + paymentJoins
	scope, args, _ := scopePayments(actor, 1)

	clauses := []string{}
	if scope != "" {
		clauses = append(clauses, scope)
	}
	if extraClause != "" {
		clauses = append(clauses, extraClause)
	}
	for i, c := range clauses {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}

	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&total)
	return total, err
}

func (r *paymentRepository) TotalCollected(ctx context.Context, actor domain.Actor) (decimal.Decimal, error) {
	return r.aggregate(ctx, actor, `COALESCE(SUM(p.amount), 0)`, "")
}

func (r *paymentRepository) MonthCollected(ctx context.Context, actor domain.Actor) (decimal.Decimal, error) {
	return r.aggregate(ctx, actor, `COALESCE(SUM(p.amount), 0)`,
		`date_trunc('month', p.payment_date) = date_trunc('month', CURRENT_DATE)`)
}

func (r *paymentRepository) AveragePayment(ctx context.Context, actor domain.Actor) (decimal.Decimal, error) {
	return r.aggregate(ctx, actor, `COALESCE(AVG(p.amount), 0)`, "")
}

func (r *paymentRepository) CountPayments(ctx context.Context, actor domain.Actor) (int32, error) {
	query := `SELECT count(*)` + paymentJoins
	scope, args, _ := scopePayments(actor, 1)
	if scope != "" {
		query += " WHERE " + scope
	}
	var count int32
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *paymentRepository) TotalPaidByUser(ctx context.Context, userID int32) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&total)
	return total, err
}

func (r *paymentRepository) CountForUser(ctx context.Context, userID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM payments WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}
