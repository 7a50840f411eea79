package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegionModel struct {
	RegionID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:region_id" json:"region_id"`
	RegionName        string         `gorm:"type:varchar(150);not null;column:region_name" json:"region_name"`
	RegionDescription *string        `gorm:"column:region_description" json:"region_description,omitempty"`
	RegionIsActive    bool           `gorm:"not null;default:true;column:region_is_active" json:"region_is_active"`
	RegionCreatedAt   time.Time      `gorm:"column:region_created_at;autoCreateTime" json:"region_created_at"`
	RegionUpdatedAt   *time.Time     `gorm:"column:region_updated_at;autoUpdateTime" json:"region_updated_at,omitempty"`
	RegionDeletedAt   gorm.DeletedAt `gorm:"column:region_deleted_at;index" json:"region_deleted_at,omitempty"`
}

func (RegionModel) TableName() string { return "regions" }

type MissionModel struct {
	MissionID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:mission_id" json:"mission_id"`
	MissionRegionID    uuid.UUID      `gorm:"type:uuid;not null;index;column:mission_region_id" json:"mission_region_id"`
	MissionName        string         `gorm:"type:varchar(150);not null;column:mission_name" json:"mission_name"`
	MissionDescription *string        `gorm:"column:mission_description" json:"mission_description,omitempty"`
	MissionIsActive    bool           `gorm:"not null;default:true;column:mission_is_active" json:"mission_is_active"`
	MissionCreatedAt   time.Time      `gorm:"column:mission_created_at;autoCreateTime" json:"mission_created_at"`
	MissionUpdatedAt   *time.Time     `gorm:"column:mission_updated_at;autoUpdateTime" json:"mission_updated_at,omitempty"`
	MissionDeletedAt   gorm.DeletedAt `gorm:"column:mission_deleted_at;index" json:"mission_deleted_at,omitempty"`

	Region *RegionModel `gorm:"foreignKey:MissionRegionID;references:RegionID;constraint:OnDelete:CASCADE" json:"region,omitempty"`
}

func (MissionModel) TableName() string { return "missions" }

type StakeModel struct {
	StakeID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:stake_id" json:"stake_id"`
	StakeMissionID   uuid.UUID      `gorm:"type:uuid;not null;index;column:stake_mission_id" json:"stake_mission_id"`
	StakeName        string         `gorm:"type:varchar(150);not null;column:stake_name" json:"stake_name"`
	StakeDescription *string        `gorm:"column:stake_description" json:"stake_description,omitempty"`
	StakeIsActive    bool           `gorm:"not null;default:true;column:stake_is_active" json:"stake_is_active"`
	StakeCreatedAt   time.Time      `gorm:"column:stake_created_at;autoCreateTime" json:"stake_created_at"`
	StakeUpdatedAt   *time.Time     `gorm:"column:stake_updated_at;autoUpdateTime" json:"stake_updated_at,omitempty"`
	StakeDeletedAt   gorm.DeletedAt `gorm:"column:stake_deleted_at;index" json:"stake_deleted_at,omitempty"`

	Mission *MissionModel `gorm:"foreignKey:StakeMissionID;references:MissionID;constraint:OnDelete:CASCADE" json:"mission,omitempty"`
}

func (StakeModel) TableName() string { return "stakes" }
