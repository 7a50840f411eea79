package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"type:varchar(150);not null;column:user_name" json:"user_name"`
	UserEmail    string    `gorm:"type:varchar(150);unique;not null;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"type:varchar(100);not null;column:user_password" json:"-"`

	// ward | stake | mission | region | ultra
	UserRole     string `gorm:"type:varchar(10);not null;default:'ward';column:user_role" json:"user_role"`
	UserIsActive bool   `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

// UserCongregationModel grants a user scoped access to one congregation.
type UserCongregationModel struct {
	UserCongregationID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_congregation_id" json:"user_congregation_id"`
	UserCongregationUserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_user_congregation,unique;column:user_congregation_user_id" json:"user_congregation_user_id"`
	UserCongregationCongregationID uuid.UUID `gorm:"type:uuid;not null;index:idx_user_congregation,unique;column:user_congregation_congregation_id" json:"user_congregation_congregation_id"`
	UserCongregationCreatedAt      time.Time `gorm:"column:user_congregation_created_at;autoCreateTime" json:"user_congregation_created_at"`
}

func (UserCongregationModel) TableName() string { return "user_congregations" }
