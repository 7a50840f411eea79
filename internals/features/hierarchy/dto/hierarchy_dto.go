package dto

import (
	"github.com/google/uuid"

	hModel "missionmeals_backend/internals/features/hierarchy/model"
)

/* ===================== REGION ===================== */

type CreateRegionRequest struct {
	RegionName        string  `json:"region_name" validate:"required,min=2,max=150"`
	RegionDescription *string `json:"region_description" validate:"omitempty"`
}

func (r *CreateRegionRequest) ToModel() *hModel.RegionModel {
	return &hModel.RegionModel{
		RegionName:        r.RegionName,
		RegionDescription: r.RegionDescription,
		RegionIsActive:    true,
	}
}

type UpdateRegionRequest struct {
	RegionName        *string `json:"region_name" validate:"omitempty,min=2,max=150"`
	RegionDescription *string `json:"region_description" validate:"omitempty"`
	RegionIsActive    *bool   `json:"region_is_active" validate:"omitempty"`
}

func (r *UpdateRegionRequest) ApplyToModel(m *hModel.RegionModel) {
	if r.RegionName != nil {
		m.RegionName = *r.RegionName
	}
	if r.RegionDescription != nil {
		m.RegionDescription = r.RegionDescription
	}
	if r.RegionIsActive != nil {
		m.RegionIsActive = *r.RegionIsActive
	}
}

/* ===================== MISSION ===================== */

type CreateMissionRequest struct {
	MissionRegionID    uuid.UUID `json:"mission_region_id" validate:"required"`
	MissionName        string    `json:"mission_name" validate:"required,min=2,max=150"`
	MissionDescription *string   `json:"mission_description" validate:"omitempty"`
}

func (r *CreateMissionRequest) ToModel() *hModel.MissionModel {
	return &hModel.MissionModel{
		MissionRegionID:    r.MissionRegionID,
		MissionName:        r.MissionName,
		MissionDescription: r.MissionDescription,
		MissionIsActive:    true,
	}
}

type UpdateMissionRequest struct {
	MissionRegionID    *uuid.UUID `json:"mission_region_id" validate:"omitempty"`
	MissionName        *string    `json:"mission_name" validate:"omitempty,min=2,max=150"`
	MissionDescription *string    `json:"mission_description" validate:"omitempty"`
	MissionIsActive    *bool      `json:"mission_is_active" validate:"omitempty"`
}

func (r *UpdateMissionRequest) ApplyToModel(m *hModel.MissionModel) {
	if r.MissionRegionID != nil {
		m.MissionRegionID = *r.MissionRegionID
	}
	if r.MissionName != nil {
		m.MissionName = *r.MissionName
	}
	if r.MissionDescription != nil {
		m.MissionDescription = r.MissionDescription
	}
	if r.MissionIsActive != nil {
		m.MissionIsActive = *r.MissionIsActive
	}
}

/* ===================== STAKE ===================== */

type CreateStakeRequest struct {
	StakeMissionID   uuid.UUID `json:"stake_mission_id" validate:"required"`
	StakeName        string    `json:"stake_name" validate:"required,min=2,max=150"`
	StakeDescription *string   `json:"stake_description" validate:"omitempty"`
}

func (r *CreateStakeRequest) ToModel() *hModel.StakeModel {
	return &hModel.StakeModel{
		StakeMissionID:   r.StakeMissionID,
		StakeName:        r.StakeName,
		StakeDescription: r.StakeDescription,
		StakeIsActive:    true,
	}
}

type UpdateStakeRequest struct {
	StakeMissionID   *uuid.UUID `json:"stake_mission_id" validate:"omitempty"`
	StakeName        *string    `json:"stake_name" validate:"omitempty,min=2,max=150"`
	StakeDescription *string    `json:"stake_description" validate:"omitempty"`
	StakeIsActive    *bool      `json:"stake_is_active" validate:"omitempty"`
}

func (r *UpdateStakeRequest) ApplyToModel(m *hModel.StakeModel) {
	if r.StakeMissionID != nil {
		m.StakeMissionID = *r.StakeMissionID
	}
	if r.StakeName != nil {
		m.StakeName = *r.StakeName
	}
	if r.StakeDescription != nil {
		m.StakeDescription = r.StakeDescription
	}
	if r.StakeIsActive != nil {
		m.StakeIsActive = *r.StakeIsActive
	}
}
