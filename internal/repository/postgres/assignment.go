package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type assignmentRepository struct {
	db *sql.DB
}

func NewAssignmentRepository(db *sql.DB) repository.AssignmentRepository {
	return &assignmentRepository{db: db}
}

const assignmentColumns = `id, user_id, room_id, start_date, end_date, monthly_rate, status, assigned_by, created_on, updated_on`

func scanAssignment(row interface{ Scan(...interface{}) error }) (*domain.Assignment, error) {
	a := &domain.Assignment{}
	var startDate, createdOn, updatedOn time.Time
	var endDate sql.NullTime
	err := row.Scan(&a.ID, &a.UserID, &a.RoomID, &startDate, &endDate, &a.MonthlyRate, &a.Status, &a.AssignedBy, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}
	a.StartDate = startDate.Format("2006-01-02")
	if endDate.Valid {
		e := endDate.Time.Format("2006-01-02")
		a.EndDate = &e
	}
	a.CreatedOn = createdOn.Format("2006-01-02")
	a.UpdatedOn = updatedOn.Format("2006-01-02")
	return a, nil
}

// CreateActive inserts the assignment and occupies its room. Both writes
// commit together or not at all; a crash between them cannot leave a room
// marked free with an active assignment on it.
func (r *assignmentRepository) CreateActive(ctx context.Context, a *domain.Assignment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	a.Status = domain.AssignmentStatusActive
	query := `INSERT INTO room_assignments (user_id, room_id, start_date, end_date, monthly_rate, status, assigned_by, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err = tx.QueryRowContext(ctx, query, a.UserID, a.RoomID, a.StartDate, a.EndDate, a.MonthlyRate, a.Status, a.AssignedBy, now, now).Scan(&a.ID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `UPDATE rooms SET is_available = false WHERE id = $1`, a.RoomID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *assignmentRepository) GetByID(ctx context.Context, id int32) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM room_assignments WHERE id = $1`
	a, err := scanAssignment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAssignmentNotFound
	}
	return a, err
}

// UpdateWithReconcile applies the assignment update, then reconciles room
// availability inside the same transaction. The availability writes are
// derived from the assignment's final post-update state, in a fixed order:
// first the target room follows the new status (completed frees it, anything
// else occupies it), then the old room is freed if the assignment moved.
// Moving while completing therefore frees both rooms; moving while staying
// active frees the old room and occupies the new one.
func (r *assignmentRepository) UpdateWithReconcile(ctx context.Context, a *domain.Assignment, oldRoomID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE room_assignments SET room_id=$1, end_date=$2, monthly_rate=$3, status=$4, updated_on=$5 WHERE id=$6`
	result, err := tx.ExecContext(ctx, query, a.RoomID, a.EndDate, a.MonthlyRate, a.Status, time.Now(), a.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAssignmentNotFound
	}

	available := a.Status == domain.AssignmentStatusCompleted
	_, err = tx.ExecContext(ctx, `UPDATE rooms SET is_available = $1 WHERE id = $2`, available, a.RoomID)
	if err != nil {
		return err
	}

	if oldRoomID != a.RoomID {
		_, err = tx.ExecContext(ctx, `UPDATE rooms SET is_available = true WHERE id = $1`, oldRoomID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *assignmentRepository) ExistsForRoom(ctx context.Context, roomID int32) (bool, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM room_assignments WHERE room_id = $1`, roomID).Scan(&count)
	return count > 0, err
}

func (r *assignmentRepository) HasActiveForRoom(ctx context.Context, roomID int32) (bool, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM room_assignments WHERE room_id = $1 AND status = 'active'`, roomID).Scan(&count)
	return count > 0, err
}

func (r *assignmentRepository) CountForUser(ctx context.Context, userID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM room_assignments WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *assignmentRepository) List(ctx context.Context, actor domain.Actor) ([]domain.Assignment, error) {
	query := `SELECT ra.id, ra.user_id, ra.room_id, ra.start_date, ra.end_date, ra.monthly_rate, ra.status, ra.assigned_by, ra.created_on, ra.updated_on
	          FROM room_assignments ra`
	args := []interface{}{}
	switch actor.Role {
	case domain.RoleLandlord:
		query += ` JOIN rooms r ON ra.room_id = r.id
		           JOIN buildings b ON r.building_id = b.id
		           WHERE b.owner_id = $1`
		args = append(args, actor.UserID)
	case domain.RoleStudent:
		query += ` WHERE ra.user_id = $1`
		args = append(args, actor.UserID)
	}
	query += ` ORDER BY ra.start_date DESC, ra.id DESC`

	return r.queryAssignments(ctx, query, args...)
}

func (r *assignmentRepository) ListForUser(ctx context.Context, userID int32) ([]domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM room_assignments WHERE user_id = $1 ORDER BY start_date DESC`
	return r.queryAssignments(ctx, query, userID)
}

func (r *assignmentRepository) ActiveMonthlyTotal(ctx context.Context, userID int32) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(monthly_rate), 0) FROM room_assignments WHERE user_id = $1 AND status = 'active'`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&total)
	return total, err
}

func (r *assignmentRepository) NextDueDate(ctx context.Context, userID int32) (string, error) {
	var next sql.NullTime
	query := `SELECT MIN(end_date) FROM room_assignments WHERE user_id = $1 AND status = 'active' AND end_date > CURRENT_DATE`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&next)
	if err != nil {
		return "", err
	}
	if !next.Valid {
		return "", nil
	}
	return next.Time.Format("2006-01-02"), nil
}

func (r *assignmentRepository) ListEndingBetween(ctx context.Context, from, to string) ([]domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM room_assignments
	          WHERE status = 'active' AND end_date BETWEEN $1 AND $2 ORDER BY end_date`
	return r.queryAssignments(ctx, query, from, to)
}

func (r *assignmentRepository) queryAssignments(ctx context.Context, query string, args ...interface{}) ([]domain.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []domain.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, *a)
	}
	return assignments, rows.Err()
}
