package postgres_test

import (
	"context"
	"testing"
	"time"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaymentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	payment := func() *domain.Payment {
		return &domain.Payment{
			UserID:        5,
			Amount:        decimal.NewFromInt(450),
			Method:        "cash",
			PaymentDate:   "2026-09-05",
			ReceiptNumber: "PMT-20260905-0042",
			RecordedBy:    1,
		}
	}

	t.Run("Success", func(t *testing.T) {
		p := payment()

		mock.ExpectQuery("INSERT INTO payments").
			WithArgs(p.UserID, nil, sqlmock.AnyArg(), p.Method, p.PaymentDate,
				nil, nil, p.ReceiptNumber, p.RecordedBy, p.Notes, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

		err := repo.Create(ctx, p)
		assert.NoError(t, err)
		assert.Equal(t, int32(11), p.ID)
	})

	t.Run("Unique Violation Maps To Duplicate Receipt", func(t *testing.T) {
		p := payment()

		mock.ExpectQuery("INSERT INTO payments").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "payments_receipt_number_key"})

		err := repo.Create(ctx, p)
		assert.ErrorIs(t, err, domain.ErrDuplicateReceipt)
	})
}

func TestPaymentRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	cols := []string{"id", "user_id", "assignment_id", "amount", "payment_method", "payment_date",
		"payment_period_start", "payment_period_end", "receipt_number", "recorded_by", "notes", "created_on", "updated_on"}

	t.Run("Landlord Scope On Building Owner", func(t *testing.T) {
		mock.ExpectQuery(`b.owner_id = \$1`).
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(11, 5, nil, "450", "cash", time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), nil, nil, "PMT-20260905-0042", 1, "", time.Now(), time.Now()))

		res, err := repo.List(ctx, domain.Actor{UserID: 7, Role: domain.RoleLandlord}, domain.PaymentFilter{})
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "2026-09-05", res[0].PaymentDate)
	})

	t.Run("Student Scope On Own Payments", func(t *testing.T) {
		mock.ExpectQuery(`p.user_id = \$1`).
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows(cols))

		res, err := repo.List(ctx, domain.Actor{UserID: 5, Role: domain.RoleStudent}, domain.PaymentFilter{})
		assert.NoError(t, err)
		assert.Len(t, res, 0)
	})

	t.Run("Admin Filter Clauses Stack In Order", func(t *testing.T) {
		mock.ExpectQuery(`p.user_id = \$1 AND p.payment_method = \$2`).
			WithArgs(int32(5), "cash").
			WillReturnRows(sqlmock.NewRows(cols))

		_, err := repo.List(ctx, domain.Actor{UserID: 1, Role: domain.RoleAdmin}, domain.PaymentFilter{
			StudentID: 5,
			Method:    "cash",
		})
		assert.NoError(t, err)
	})
}

func TestPaymentRepository_Aggregates(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()
	admin := domain.Actor{UserID: 1, Role: domain.RoleAdmin}

	t.Run("Total Collected", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(p.amount\), 0\)`).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("10000"))

		total, err := repo.TotalCollected(ctx, admin)
		assert.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(10000)))
	})

	t.Run("Total Paid By User", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM payments WHERE user_id = \$1`).
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("350"))

		total, err := repo.TotalPaidByUser(ctx, 5)
		assert.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(350)))
	})

	t.Run("Count For User", func(t *testing.T) {
		mock.ExpectQuery(`SELECT count\(\*\) FROM payments WHERE user_id = \$1`).
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.CountForUser(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), count)
	})
}

func TestPaymentRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Missing Row", func(t *testing.T) {
		mock.ExpectExec("UPDATE payments SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, &domain.Payment{ID: 99, Amount: decimal.NewFromInt(450), Method: "cash", PaymentDate: "2026-09-05"})
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})
}
