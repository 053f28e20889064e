package service

import (
	"context"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/logger"
	"dormhub-backend/internal/repository"
)

// deletionService guards hard deletes behind derived state instead of letting
// foreign keys fail the operation.
type deletionService struct {
	buildingRepo   repository.BuildingRepository
	roomRepo       repository.RoomRepository
	assignmentRepo repository.AssignmentRepository
	paymentRepo    repository.PaymentRepository
	userRepo       repository.UserRepository
}

func NewDeletionService(
	buildingRepo repository.BuildingRepository,
	roomRepo repository.RoomRepository,
	assignmentRepo repository.AssignmentRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
) DeletionService {
	return &deletionService{
		buildingRepo:   buildingRepo,
		roomRepo:       roomRepo,
		assignmentRepo: assignmentRepo,
		paymentRepo:    paymentRepo,
		userRepo:       userRepo,
	}
}

// CanDeleteBuilding is false for any building whose rooms carry assignment
// history of any status; such buildings are permanently protected.
func (s *deletionService) CanDeleteBuilding(ctx context.Context, buildingID int32) (bool, error) {
	if _, err := s.buildingRepo.GetByID(ctx, buildingID); err != nil {
		return false, err
	}
	hasHistory, err := s.buildingRepo.HasAssignmentHistory(ctx, buildingID)
	if err != nil {
		return false, err
	}
	return !hasHistory, nil
}

func (s *deletionService) DeleteBuilding(ctx context.Context, actor domain.Actor, buildingID int32) error {
	if !actor.Is(domain.RoleAdmin, domain.RoleLandlord) {
		return domain.ErrPermissionDenied
	}
	ok, err := s.CanDeleteBuilding(ctx, buildingID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrBuildingHasHistory
	}
	if err := s.buildingRepo.Delete(ctx, buildingID); err != nil {
		return err
	}
	logger.Info("Building deleted", "building_id", buildingID, "by", actor.UserID)
	return nil
}

// CanDeleteRoom is false when the room is marked occupied or has an active
// assignment. Terminal-status history alone does not protect a room; this
// differs from the building policy on purpose (observed behavior, kept).
func (s *deletionService) CanDeleteRoom(ctx context.Context, roomID int32) (bool, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return false, err
	}
	hasActive, err := s.assignmentRepo.HasActiveForRoom(ctx, roomID)
	if err != nil {
		return false, err
	}
	return room.IsAvailable && !hasActive, nil
}

func (s *deletionService) RoomHasHistory(ctx context.Context, roomID int32) (bool, error) {
	return s.assignmentRepo.ExistsForRoom(ctx, roomID)
}

func (s *deletionService) DeleteRoom(ctx context.Context, actor domain.Actor, roomID int32) error {
	if !actor.Is(domain.RoleAdmin, domain.RoleLandlord) {
		return domain.ErrPermissionDenied
	}
	ok, err := s.CanDeleteRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrRoomOccupied
	}
	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		return err
	}
	logger.Info("Room deleted", "room_id", roomID, "by", actor.UserID)
	return nil
}

// DeleteOrDeactivateUser hard-deletes only when no assignment or payment row
// references the user; otherwise it soft-deletes. It never surfaces a
// referential-integrity failure.
func (s *deletionService) DeleteOrDeactivateUser(ctx context.Context, actor domain.Actor, userID int32) (DeletionOutcome, error) {
	if actor.Role != domain.RoleAdmin {
		return "", domain.ErrPermissionDenied
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return "", err
	}

	assignments, err := s.assignmentRepo.CountForUser(ctx, userID)
	if err != nil {
		return "", err
	}
	payments, err := s.paymentRepo.CountForUser(ctx, userID)
	if err != nil {
		return "", err
	}

	if assignments > 0 || payments > 0 {
		if err := s.userRepo.Deactivate(ctx, userID); err != nil {
			return "", err
		}
		logger.Info("User deactivated", "user_id", userID, "assignments", assignments, "payments", payments, "by", actor.UserID)
		return OutcomeDeactivated, nil
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return "", err
	}
	logger.Info("User deleted", "user_id", userID, "by", actor.UserID)
	return OutcomeDeleted, nil
}
