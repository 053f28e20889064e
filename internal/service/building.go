package service

import (
	"context"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/repository"
)

type buildingService struct {
	buildingRepo repository.BuildingRepository
}

func NewBuildingService(buildingRepo repository.BuildingRepository) BuildingService {
	return &buildingService{buildingRepo: buildingRepo}
}

func (s *buildingService) Create(ctx context.Context, actor domain.Actor, b *domain.Building) error {
	if !actor.Is(domain.RoleAdmin, domain.RoleLandlord) {
		return domain.ErrPermissionDenied
	}
	if b.Name == "" || b.TotalFloors < 1 {
		return domain.ErrMissingField
	}
	// Landlords always own the buildings they create.
	if actor.Role == domain.RoleLandlord {
		owner := actor.UserID
		b.OwnerID = &owner
	}
	b.IsActive = true
	return s.buildingRepo.Create(ctx, b)
}

func (s *buildingService) Update(ctx context.Context, actor domain.Actor, b *domain.Building) error {
	if !actor.Is(domain.RoleAdmin, domain.RoleLandlord) {
		return domain.ErrPermissionDenied
	}
	current, err := s.buildingRepo.GetByID(ctx, b.ID)
	if err != nil {
		return err
	}
	if actor.Role == domain.RoleLandlord && (current.OwnerID == nil || *current.OwnerID != actor.UserID) {
		return domain.ErrBuildingNotFound
	}
	if b.Name == "" || b.TotalFloors < 1 {
		return domain.ErrMissingField
	}
	return s.buildingRepo.Update(ctx, b)
}

func (s *buildingService) Get(ctx context.Context, buildingID int32) (*domain.Building, error) {
	return s.buildingRepo.GetByID(ctx, buildingID)
}

func (s *buildingService) List(ctx context.Context, actor domain.Actor) ([]domain.Building, error) {
	return s.buildingRepo.ListActive(ctx, actor)
}

func (s *buildingService) Deactivate(ctx context.Context, actor domain.Actor, buildingID int32) error {
	if !actor.Is(domain.RoleAdmin, domain.RoleLandlord) {
		return domain.ErrPermissionDenied
	}
	current, err := s.buildingRepo.GetByID(ctx, buildingID)
	if err != nil {
		return err
	}
	if actor.Role == domain.RoleLandlord && (current.OwnerID == nil || *current.OwnerID != actor.UserID) {
		return domain.ErrBuildingNotFound
	}
	return s.buildingRepo.Deactivate(ctx, buildingID)
}
