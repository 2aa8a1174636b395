package dto

import (
	"github.com/ecovault/eco_finance_app/internal/core/domain"
)

// CreateUserRequest is the payload for registering a new user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Name     string `json:"name" binding:"required,max=128"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest is the payload for updating a user's details.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,max=128"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

// ListUsersParams carries pagination for user listing.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ListUsersResponse wraps a page of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	UserID   int64  `json:"userID"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// ToUserResponse converts a domain user to its public representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:   u.UserID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
	}
}
