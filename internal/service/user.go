package service

import (
	"context"

	"dormhub-backend/internal/domain"
	"dormhub-backend/internal/repository"
)

// userService manages profile rows only. Credentials and sessions live with
// the external identity provider.
type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(ctx context.Context, actor domain.Actor, u *domain.User) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrPermissionDenied
	}
	if u.Username == "" || u.Email == "" {
		return domain.ErrMissingField
	}
	if u.Role == "" {
		u.Role = domain.RoleStudent
	}
	u.IsActive = true
	return s.userRepo.Create(ctx, u)
}

func (s *userService) Update(ctx context.Context, actor domain.Actor, u *domain.User) error {
	if actor.Role != domain.RoleAdmin && actor.UserID != u.ID {
		return domain.ErrPermissionDenied
	}
	current, err := s.userRepo.GetByID(ctx, u.ID)
	if err != nil {
		return err
	}
	if u.Username == "" || u.Email == "" {
		return domain.ErrMissingField
	}
	// Only admins may change role or active flag.
	if actor.Role != domain.RoleAdmin {
		u.Role = current.Role
		u.IsActive = current.IsActive
	}
	return s.userRepo.Update(ctx, u)
}

func (s *userService) Get(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) List(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if !actor.Is(domain.RoleAdmin, domain.RoleLandlord) {
		return nil, domain.ErrPermissionDenied
	}
	return s.userRepo.ListActive(ctx)
}
