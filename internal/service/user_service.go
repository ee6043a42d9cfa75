package service

import (
	"context"
	"errors"
	"strings"

	"github.com/spec-kit/user-management/internal/auth"
	"github.com/spec-kit/user-management/internal/config"
	"github.com/spec-kit/user-management/internal/domain"
	"github.com/spec-kit/user-management/internal/events"
	"github.com/spec-kit/user-management/internal/repository"
	apperrors "github.com/spec-kit/user-management/pkg/util"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Pagination describes derived paging metadata for list responses.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalUsers  int64 `json:"totalUsers"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// UpdateProfileParams carries the only fields profile update may touch.
// Role and status are deliberately absent: they cannot be set through this
// path regardless of caller.
type UpdateProfileParams struct {
	FullName *string
	Email    *string
}

// UserService implements account administration and self-service.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{
		users:      users,
		dispatcher: dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// List returns a page of users ordered by creation time plus paging
// metadata. Page is clamped to >=1 and limit to [1,100].
func (s *UserService) List(ctx context.Context, page, limit int) ([]domain.User, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, Pagination{}, err
	}

	users, err := s.users.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, Pagination{}, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	pagination := Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalUsers:  total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
	return users, pagination, nil
}

// Activate marks the account active. The transition is idempotent.
func (s *UserService) Activate(ctx context.Context, userID, actorID string) (*domain.User, error) {
	return s.setStatus(ctx, userID, actorID, domain.UserStatusActive)
}

// Deactivate marks the account inactive. Tokens already issued to the
// account stay valid until natural expiry; only new logins are blocked.
func (s *UserService) Deactivate(ctx context.Context, userID, actorID string) (*domain.User, error) {
	return s.setStatus(ctx, userID, actorID, domain.UserStatusInactive)
}

func (s *UserService) setStatus(ctx context.Context, userID, actorID string, status domain.UserStatus) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}

	if user.Status == status {
		return user, nil
	}

	oldStatus := user.Status
	user.Status = status
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventUserStatusChanged, user.ID, events.UserStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
			ActorID:   actorID,
		}))
	}
	return user, nil
}

// UpdateProfile updates full name and/or email. An email change re-checks
// uniqueness through the store constraint.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, params UpdateProfileParams) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}

	if params.FullName != nil {
		user.FullName = strings.TrimSpace(*params.FullName)
	}
	if params.Email != nil {
		user.Email = NormalizeEmail(*params.Email)
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("email already in use")
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword re-verifies the current password before accepting the new
// one, then re-hashes and persists.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("user")
		}
		return err
	}

	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperrors.NewInvalidCredentials()
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventPasswordChanged, user.ID, nil))
	}
	return nil
}
