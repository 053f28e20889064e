package postgres_test

import (
	"context"
	"testing"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRoomRepository_GetByNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRoomRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "building_id", "type_id", "room_number", "floor_number", "is_available"}).
			AddRow(9, 2, nil, "101", 1, true)

		mock.ExpectQuery(`WHERE building_id = \$1 AND room_number = \$2`).
			WithArgs(int32(2), "101").
			WillReturnRows(rows)

		room, err := repo.GetByNumber(ctx, 2, "101")
		assert.NoError(t, err)
		assert.Equal(t, int32(9), room.ID)
		assert.True(t, room.IsAvailable)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`WHERE building_id = \$1 AND room_number = \$2`).
			WithArgs(int32(2), "999").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		room, err := repo.GetByNumber(ctx, 2, "999")
		assert.Nil(t, room)
		assert.ErrorIs(t, err, domain.ErrRoomNotFound)
	})
}

func TestRoomRepository_ReconcileAvailability(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRoomRepository(db)
	ctx := context.Background()

	t.Run("Reports Corrected Row Count", func(t *testing.T) {
		mock.ExpectExec("UPDATE rooms SET is_available = NOT EXISTS").
			WillReturnResult(sqlmock.NewResult(0, 4))

		corrected, err := repo.ReconcileAvailability(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), corrected)
	})

	t.Run("Idempotent When Flags Agree", func(t *testing.T) {
		mock.ExpectExec("UPDATE rooms SET is_available = NOT EXISTS").
			WillReturnResult(sqlmock.NewResult(0, 0))

		corrected, err := repo.ReconcileAvailability(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), corrected)
	})
}

func TestRoomRepository_ListAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRoomRepository(db)
	ctx := context.Background()

	t.Run("Landlord Scope Adds Owner Clause", func(t *testing.T) {
		mock.ExpectQuery(`b.owner_id = \$1`).
			WithArgs(int32(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "building_id", "type_id", "room_number", "floor_number", "is_available"}).
				AddRow(9, 2, nil, "101", 1, true))

		rooms, err := repo.ListAvailable(ctx, domain.Actor{UserID: 7, Role: domain.RoleLandlord})
		assert.NoError(t, err)
		assert.Len(t, rooms, 1)
	})
}
