package dto

import (
	"github.com/google/uuid"

	cModel "missionmeals_backend/internals/features/congregations/congregations/model"
)

/* ===================== REQUESTS ===================== */

type CreateCongregationRequest struct {
	CongregationStakeID     *uuid.UUID `json:"congregation_stake_id" validate:"omitempty"`
	CongregationName        string     `json:"congregation_name" validate:"required,min=2,max=150"`
	CongregationDescription *string    `json:"congregation_description" validate:"omitempty"`

	CongregationAllowCombinedBookings *bool `json:"congregation_allow_combined_bookings" validate:"omitempty"`
	CongregationMaxBookingsPerAddress *int  `json:"congregation_max_bookings_per_address" validate:"omitempty,gte=0"`
	CongregationMaxBookingsPerPhone   *int  `json:"congregation_max_bookings_per_phone" validate:"omitempty,gte=0"`
	CongregationMaxBookingsPerPeriod  *int  `json:"congregation_max_bookings_per_period" validate:"omitempty,gte=0"`
	CongregationBookingPeriodDays     *int  `json:"congregation_booking_period_days" validate:"omitempty,gte=1"`
}

func (r *CreateCongregationRequest) ToModel(accessCode string) *cModel.CongregationModel {
	m := &cModel.CongregationModel{
		CongregationStakeID:           r.CongregationStakeID,
		CongregationName:              r.CongregationName,
		CongregationDescription:       r.CongregationDescription,
		CongregationAccessCode:        accessCode,
		CongregationIsActive:          true,
		CongregationBookingPeriodDays: 30,
	}
	if r.CongregationAllowCombinedBookings != nil {
		m.CongregationAllowCombinedBookings = *r.CongregationAllowCombinedBookings
	}
	if r.CongregationMaxBookingsPerAddress != nil {
		m.CongregationMaxBookingsPerAddress = *r.CongregationMaxBookingsPerAddress
	}
	if r.CongregationMaxBookingsPerPhone != nil {
		m.CongregationMaxBookingsPerPhone = *r.CongregationMaxBookingsPerPhone
	}
	if r.CongregationMaxBookingsPerPeriod != nil {
		m.CongregationMaxBookingsPerPeriod = *r.CongregationMaxBookingsPerPeriod
	}
	if r.CongregationBookingPeriodDays != nil {
		m.CongregationBookingPeriodDays = *r.CongregationBookingPeriodDays
	}
	return m
}

type UpdateCongregationRequest struct {
	CongregationStakeID     *uuid.UUID `json:"congregation_stake_id" validate:"omitempty"`
	CongregationName        *string    `json:"congregation_name" validate:"omitempty,min=2,max=150"`
	CongregationDescription *string    `json:"congregation_description" validate:"omitempty"`
	CongregationIsActive    *bool      `json:"congregation_is_active" validate:"omitempty"`

	CongregationAllowCombinedBookings *bool `json:"congregation_allow_combined_bookings" validate:"omitempty"`
	CongregationMaxBookingsPerAddress *int  `json:"congregation_max_bookings_per_address" validate:"omitempty,gte=0"`
	CongregationMaxBookingsPerPhone   *int  `json:"congregation_max_bookings_per_phone" validate:"omitempty,gte=0"`
	CongregationMaxBookingsPerPeriod  *int  `json:"congregation_max_bookings_per_period" validate:"omitempty,gte=0"`
	CongregationBookingPeriodDays     *int  `json:"congregation_booking_period_days" validate:"omitempty,gte=1"`
}

func (r *UpdateCongregationRequest) ApplyToModel(m *cModel.CongregationModel) {
	if r.CongregationStakeID != nil {
		m.CongregationStakeID = r.CongregationStakeID
	}
	if r.CongregationName != nil {
		m.CongregationName = *r.CongregationName
	}
	if r.CongregationDescription != nil {
		m.CongregationDescription = r.CongregationDescription
	}
	if r.CongregationIsActive != nil {
		m.CongregationIsActive = *r.CongregationIsActive
	}
	if r.CongregationAllowCombinedBookings != nil {
		m.CongregationAllowCombinedBookings = *r.CongregationAllowCombinedBookings
	}
	if r.CongregationMaxBookingsPerAddress != nil {
		m.CongregationMaxBookingsPerAddress = *r.CongregationMaxBookingsPerAddress
	}
	if r.CongregationMaxBookingsPerPhone != nil {
		m.CongregationMaxBookingsPerPhone = *r.CongregationMaxBookingsPerPhone
	}
	if r.CongregationMaxBookingsPerPeriod != nil {
		m.CongregationMaxBookingsPerPeriod = *r.CongregationMaxBookingsPerPeriod
	}
	if r.CongregationBookingPeriodDays != nil {
		m.CongregationBookingPeriodDays = *r.CongregationBookingPeriodDays
	}
}

/* ===================== RESPONSES ===================== */

// PublicCongregationResponse hides admin-only fields from access-code viewers.
type PublicCongregationResponse struct {
	CongregationID                    uuid.UUID `json:"congregation_id"`
	CongregationName                  string    `json:"congregation_name"`
	CongregationDescription           *string   `json:"congregation_description,omitempty"`
	CongregationAllowCombinedBookings bool      `json:"congregation_allow_combined_bookings"`
}

func NewPublicCongregationResponse(m *cModel.CongregationModel) *PublicCongregationResponse {
	return &PublicCongregationResponse{
		CongregationID:                    m.CongregationID,
		CongregationName:                  m.CongregationName,
		CongregationDescription:           m.CongregationDescription,
		CongregationAllowCombinedBookings: m.CongregationAllowCombinedBookings,
	}
}

// CongregationStatsResponse backs the admin usage dashboard.
type CongregationStatsResponse struct {
	TotalMeals         int64            `json:"total_meals"`
	UpcomingMeals      int64            `json:"upcoming_meals"`
	CancelledMeals     int64            `json:"cancelled_meals"`
	ActiveMissionaries int64            `json:"active_missionaries"`
	MealsPerMonth      map[string]int64 `json:"meals_per_month"`
}
