package dto

import (
	"github.com/google/uuid"

	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
	mealModel "missionmeals_backend/internals/features/meals/meals/model"
)

/*
The host-facing booking endpoints keep the frontend's camelCase wire contract;
admin endpoints elsewhere use the snake_case envelope.
*/

type CreateMealRequest struct {
	MissionaryID    uuid.UUID `json:"missionaryId" validate:"required"`
	WardID          uuid.UUID `json:"wardId" validate:"required"`
	Date            string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string    `json:"startTime" validate:"required,datetime=15:04"`
	HostName        string    `json:"hostName" validate:"required,min=2,max=150"`
	HostPhone       string    `json:"hostPhone" validate:"required,min=5,max=32"`
	HostEmail       *string   `json:"hostEmail" validate:"omitempty,email"`
	HostAddress     *string   `json:"hostAddress" validate:"omitempty,max=250"`
	MealDescription *string   `json:"mealDescription" validate:"omitempty,max=500"`
	SpecialNotes    *string   `json:"specialNotes" validate:"omitempty,max=500"`
}

type UpdateMealRequest struct {
	MissionaryID    *uuid.UUID `json:"missionaryId" validate:"omitempty"`
	Date            *string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime       *string    `json:"startTime" validate:"omitempty,datetime=15:04"`
	HostName        *string    `json:"hostName" validate:"omitempty,min=2,max=150"`
	HostPhone       *string    `json:"hostPhone" validate:"omitempty,min=5,max=32"`
	HostEmail       *string    `json:"hostEmail" validate:"omitempty,email"`
	HostAddress     *string    `json:"hostAddress" validate:"omitempty,max=250"`
	MealDescription *string    `json:"mealDescription" validate:"omitempty,max=500"`
	SpecialNotes    *string    `json:"specialNotes" validate:"omitempty,max=500"`
}

type CancelMealRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

type CheckAvailabilityRequest struct {
	WardID         uuid.UUID                        `json:"wardId" validate:"required"`
	Date           string                           `json:"date" validate:"required,datetime=2006-01-02"`
	MissionaryID   *uuid.UUID                       `json:"missionaryId" validate:"omitempty"`
	MissionaryType *missionaryModel.MissionaryType  `json:"missionaryType" validate:"omitempty,oneof=elders sisters"`
}

// MealWithMissionary is the calendar projection: meal joined with a
// missionary summary.
type MealWithMissionary struct {
	Meal       mealModel.MealModel                `json:"meal"`
	Missionary missionaryModel.MissionarySummary  `json:"missionary"`
}
