package dto

import (
	"time"

	"github.com/spec-kit/user-management/internal/domain"
	"github.com/spec-kit/user-management/internal/service"
	apperrors "github.com/spec-kit/user-management/pkg/util"
)

// UserView is the outward representation of an account. The password hash
// is not part of this type, so it can never be serialized.
type UserView struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	FullName  string            `json:"fullName"`
	Role      domain.Role       `json:"role"`
	Status    domain.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// NewUserView maps the domain entity to its public view.
func NewUserView(user *domain.User) UserView {
	return UserView{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// NewUserViews maps a slice of entities.
func NewUserViews(users []domain.User) []UserView {
	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, NewUserView(&users[i]))
	}
	return views
}

// UpdateProfileRequest payload for profile self-service. Fields left out of
// the request stay unchanged; role and status are not accepted here at all.
type UpdateProfileRequest struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
}

// Validate enforces profile update field rules.
func (r UpdateProfileRequest) Validate() error {
	if r.FullName == nil && r.Email == nil {
		return apperrors.NewValidationError("nothing to update", nil)
	}
	details := map[string]any{}
	if r.FullName != nil {
		if msg := validateFullName(*r.FullName); msg != "" {
			details["fullName"] = msg
		}
	}
	if r.Email != nil {
		if msg := validateEmail(*r.Email); msg != "" {
			details["email"] = msg
		}
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid profile payload", details)
	}
	return nil
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserView  `json:"user"`
}

// UserListResponse payload for the admin listing.
type UserListResponse struct {
	Users      []UserView         `json:"users"`
	Pagination service.Pagination `json:"pagination"`
}
