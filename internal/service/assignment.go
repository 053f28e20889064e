package service

import (
	"context"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/logger"
	"dormhub-backend/internal/repository"
	"dormhub-backend/internal/utils"
)

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	roomRepo       repository.RoomRepository
	buildingRepo   repository.BuildingRepository
	userRepo       repository.UserRepository
	emailSvc       EmailService
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	roomRepo repository.RoomRepository,
	buildingRepo repository.BuildingRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		roomRepo:       roomRepo,
		buildingRepo:   buildingRepo,
		userRepo:       userRepo,
		emailSvc:       emailSvc,
	}
}

func (s *assignmentService) Create(ctx context.Context, actor domain.Actor, in CreateAssignmentInput) (*domain.Assignment, error) {
	if !actor.Is(domain.RoleAdmin, domain.RoleLandlord) {
		return nil, domain.ErrPermissionDenied
	}
	if in.UsernameOrEmail == "" || in.RoomID == 0 || in.StartDate == "" {
		return nil, domain.ErrMissingField
	}
	if err := utils.ValidateDateRange(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsernameOrEmail(ctx, in.UsernameOrEmail)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}
	// Landlords may only assign rooms in buildings they own; report the room
	// as not found rather than reveal its existence.
	if actor.Role == domain.RoleLandlord {
		building, err := s.buildingRepo.GetByID(ctx, room.BuildingID)
		if err != nil {
			return nil, err
		}
		if building.OwnerID == nil || *building.OwnerID != actor.UserID {
			return nil, domain.ErrRoomNotFound
		}
	}
	if !room.IsAvailable {
		return nil, domain.ErrRoomUnavailable
	}

	assignment := &domain.Assignment{
		UserID:      user.ID,
		RoomID:      room.ID,
		StartDate:   in.StartDate,
		MonthlyRate: in.MonthlyRate,
		AssignedBy:  actor.UserID,
	}
	if in.EndDate != "" {
		assignment.EndDate = &in.EndDate
	}

	// Inserts as active and occupies the room in one transaction.
	if err := s.assignmentRepo.CreateActive(ctx, assignment); err != nil {
		return nil, err
	}

	logger.Info("Assignment created", "assignment_id", assignment.ID, "user_id", user.ID, "room_id", room.ID, "assigned_by", actor.UserID)
	_ = s.emailSvc.SendAssignmentConfirmation(ctx, user.Email, user.FullName(), room.RoomNumber, assignment.StartDate)

	return assignment, nil
}

func (s *assignmentService) Edit(ctx context.Context, actor domain.Actor, assignmentID int32, in EditAssignmentInput) (*domain.Assignment, error) {
	if !actor.Is(domain.RoleAdmin, domain.RoleLandlord) {
		return nil, domain.ErrPermissionDenied
	}
	if in.BuildingID == 0 || in.RoomNumber == "" || in.Status == "" {
		return nil, domain.ErrMissingField
	}
	if !in.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.Status.Terminal() && in.Status != assignment.Status {
		return nil, domain.ErrStatusFinal
	}

	// Re-resolve the target room from building + room number; the caller's
	// room select may have been disabled client-side.
	newRoom, err := s.roomRepo.GetByNumber(ctx, in.BuildingID, in.RoomNumber)
	if err != nil {
		return nil, err
	}

	if in.EndDate != "" {
		if err := utils.ValidateDateRange(assignment.StartDate, in.EndDate); err != nil {
			return nil, err
		}
	}

	oldRoomID := assignment.RoomID
	assignment.RoomID = newRoom.ID
	assignment.Status = in.Status
	if in.EndDate != "" {
		assignment.EndDate = &in.EndDate
	}
	if in.MonthlyRate != nil {
		assignment.MonthlyRate = *in.MonthlyRate
	}

	// Availability reconciliation is derived from the final post-update
	// state and committed with the assignment row.
	if err := s.assignmentRepo.UpdateWithReconcile(ctx, assignment, oldRoomID); err != nil {
		return nil, err
	}

	logger.Info("Assignment updated", "assignment_id", assignment.ID, "status", assignment.Status, "room_id", assignment.RoomID, "old_room_id", oldRoomID)
	return assignment, nil
}

func (s *assignmentService) Get(ctx context.Context, actor domain.Actor, assignmentID int32) (*domain.Assignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleStudent && assignment.UserID != actor.UserID {
		return nil, domain.ErrPermissionDenied
	}
	return assignment, nil
}

func (s *assignmentService) List(ctx context.Context, actor domain.Actor) ([]domain.Assignment, error) {
	return s.assignmentRepo.List(ctx, actor)
}
