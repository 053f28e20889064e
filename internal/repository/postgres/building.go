package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/repository"
)

type buildingRepository struct {
	db *sql.DB
}

func NewBuildingRepository(db *sql.DB) repository.BuildingRepository {
	return &buildingRepository{db: db}
}

func (r *buildingRepository) Create(ctx context.Context, b *domain.Building) error {
	query := `INSERT INTO buildings (name, address, total_floors, owner_id, is_active, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.Name, b.Address, b.TotalFloors, b.OwnerID, true, time.Now()).Scan(&b.ID)
}

func (r *buildingRepository) GetByID(ctx context.Context, id int32) (*domain.Building, error) {
	b := &domain.Building{}
	var createdOn time.Time
	query := `SELECT id, name, COALESCE(address, ''), total_floors, owner_id, is_active, created_on FROM buildings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Name, &b.Address, &b.TotalFloors, &b.OwnerID, &b.IsActive, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBuildingNotFound
	}
	if err != nil {
		return nil, err
	}
	b.CreatedOn = createdOn.Format("2006-01-02")
	return b, nil
}

func (r *buildingRepository) Update(ctx context.Context, b *domain.Building) error {
	query := `UPDATE buildings SET name=$1, address=$2, total_floors=$3, owner_id=$4, is_active=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, b.Name, b.Address, b.TotalFloors, b.OwnerID, b.IsActive, b.ID)
	return err
}

func (r *buildingRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM buildings WHERE id = $1`, id)
	return err
}

func (r *buildingRepository) Deactivate(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE buildings SET is_active = false WHERE id = $1`, id)
	return err
}

func (r *buildingRepository) ListActive(ctx context.Context, actor domain.Actor) ([]domain.Building, error) {
	query := `SELECT id, name, COALESCE(address, ''), total_floors, owner_id, is_active, created_on FROM buildings WHERE is_active = true`
	args := []interface{}{}
	if actor.Role == domain.RoleLandlord {
		query += ` AND owner_id = $1`
		args = append(args, actor.UserID)
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buildings []domain.Building
	for rows.Next() {
		var b domain.Building
		var createdOn time.Time
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.TotalFloors, &b.OwnerID, &b.IsActive, &createdOn); err != nil {
			return nil, err
		}
		b.CreatedOn = createdOn.Format("2006-01-02")
		buildings = append(buildings, b)
	}
	return buildings, rows.Err()
}

func (r *buildingRepository) HasAssignmentHistory(ctx context.Context, buildingID int32) (bool, error) {
	var count int32
	query := `SELECT count(*) FROM room_assignments ra
	          JOIN rooms r ON ra.room_id = r.id
	          WHERE r.building_id = $1`
	err := r.db.QueryRowContext(ctx, query, buildingID).Scan(&count)
	return count > 0, err
}
