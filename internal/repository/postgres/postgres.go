package postgres

import (
	"database/sql"

	"dormhub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.BuildingRepository
	repository.RoomRepository
	repository.AssignmentRepository
	repository.PaymentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		UserRepository:       NewUserRepository(db),
		BuildingRepository:   NewBuildingRepository(db),
		RoomRepository:       NewRoomRepository(db),
		AssignmentRepository: NewAssignmentRepository(db),
		PaymentRepository:    NewPaymentRepository(db),
	}
}
