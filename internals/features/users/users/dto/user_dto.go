package dto

import (
	"github.com/google/uuid"

	uModel "missionmeals_backend/internals/features/users/users/model"
)

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
}

// Self-registration always lands on the ward role; wider scopes are granted
// by an admin afterwards.
type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,min=2,max=150"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

type CreateUserRequest struct {
	UserName     string `json:"user_name" validate:"required,min=2,max=150"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
	UserRole     string `json:"user_role" validate:"required,oneof=ward stake mission region ultra"`
}

func (r *CreateUserRequest) ToModel(passwordHash string) *uModel.UserModel {
	return &uModel.UserModel{
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
		UserPassword: passwordHash,
		UserRole:     r.UserRole,
		UserIsActive: true,
	}
}

type UpdateUserRequest struct {
	UserName     *string `json:"user_name" validate:"omitempty,min=2,max=150"`
	UserEmail    *string `json:"user_email" validate:"omitempty,email"`
	UserPassword *string `json:"user_password" validate:"omitempty,min=8,max=72"`
	UserRole     *string `json:"user_role" validate:"omitempty,oneof=ward stake mission region ultra"`
	UserIsActive *bool   `json:"user_is_active" validate:"omitempty"`
}

type LinkCongregationRequest struct {
	CongregationID uuid.UUID `json:"congregation_id" validate:"required"`
}
