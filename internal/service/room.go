package service

import (
	"context"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/repository"
)

type roomService struct {
	roomRepo     repository.RoomRepository
	buildingRepo repository.BuildingRepository
}

func NewRoomService(roomRepo repository.RoomRepository, buildingRepo repository.BuildingRepository) RoomService {
	return &roomService{roomRepo: roomRepo, buildingRepo: buildingRepo}
}

func (s *roomService) validate(ctx context.Context, actor domain.Actor, room *domain.Room, excludeID int32) error {
	if room.RoomNumber == "" || room.BuildingID == 0 {
		return domain.ErrMissingField
	}
	building, err := s.buildingRepo.GetByID(ctx, room.BuildingID)
	if err != nil {
		return err
	}
	if actor.Role == domain.RoleLandlord && (building.OwnerID == nil || *building.OwnerID != actor.UserID) {
		return domain.ErrBuildingNotFound
	}
	if room.FloorNumber < 1 || room.FloorNumber > building.TotalFloors {
		return domain.ErrInvalidFloor
	}
	existing, err := s.roomRepo.GetByNumber(ctx, room.BuildingID, room.RoomNumber)
	if err != nil && err != domain.ErrRoomNotFound {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return domain.ErrDuplicateRoomNumber
	}
	return nil
}

func (s *roomService) Create(ctx context.Context, actor domain.Actor, room *domain.Room) error {
	if !actor.Is(domain.RoleAdmin, domain.RoleLandlord) {
		return domain.ErrPermissionDenied
	}
	if err := s.validate(ctx, actor, room, 0); err != nil {
		return err
	}
	room.IsAvailable = true
	return s.roomRepo.Create(ctx, room)
}

func (s *roomService) Update(ctx context.Context, actor domain.Actor, room *domain.Room) error {
	if !actor.Is(domain.RoleAdmin, domain.RoleLandlord) {
		return domain.ErrPermissionDenied
	}
	if _, err := s.roomRepo.GetByID(ctx, room.ID); err != nil {
		return err
	}
	if err := s.validate(ctx, actor, room, room.ID); err != nil {
		return err
	}
	return s.roomRepo.Update(ctx, room)
}

func (s *roomService) Get(ctx context.Context, roomID int32) (*domain.Room, error) {
	return s.roomRepo.GetByID(ctx, roomID)
}

func (s *roomService) ListAvailable(ctx context.Context, actor domain.Actor) ([]domain.Room, error) {
	return s.roomRepo.ListAvailable(ctx, actor)
}

func (s *roomService) SetAvailability(ctx context.Context, roomID int32, available bool) error {
	return s.roomRepo.SetAvailability(ctx, roomID, available)
}

func (s *roomService) IsAvailable(ctx context.Context, roomID int32) (bool, error) {
	return s.roomRepo.IsAvailable(ctx, roomID)
}
