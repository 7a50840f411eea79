package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CongregationModel struct {
	// PK
	CongregationID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:congregation_id" json:"congregation_id"`

	// Hierarchy (optional until the ward is assigned to a stake)
	CongregationStakeID *uuid.UUID `gorm:"type:uuid;index;column:congregation_stake_id" json:"congregation_stake_id,omitempty"`

	// Identity
	CongregationName        string  `gorm:"type:varchar(150);not null;column:congregation_name" json:"congregation_name"`
	CongregationDescription *string `gorm:"column:congregation_description" json:"congregation_description,omitempty"`

	// Shareable-link capability. Regenerating invalidates old links/QR codes.
	CongregationAccessCode string `gorm:"type:varchar(64);unique;not null;column:congregation_access_code" json:"congregation_access_code"`

	// Soft-disable instead of delete while meals/missionaries reference it
	CongregationIsActive bool `gorm:"not null;default:true;column:congregation_is_active" json:"congregation_is_active"`

	// Booking policy
	CongregationAllowCombinedBookings bool `gorm:"not null;default:false;column:congregation_allow_combined_bookings" json:"congregation_allow_combined_bookings"`
	CongregationMaxBookingsPerAddress int  `gorm:"not null;default:0;column:congregation_max_bookings_per_address" json:"congregation_max_bookings_per_address"`
	CongregationMaxBookingsPerPhone   int  `gorm:"not null;default:0;column:congregation_max_bookings_per_phone" json:"congregation_max_bookings_per_phone"`
	CongregationMaxBookingsPerPeriod  int  `gorm:"not null;default:0;column:congregation_max_bookings_per_period" json:"congregation_max_bookings_per_period"`
	CongregationBookingPeriodDays     int  `gorm:"not null;default:30;column:congregation_booking_period_days" json:"congregation_booking_period_days"`

	// Audit
	CongregationCreatedAt time.Time      `gorm:"column:congregation_created_at;autoCreateTime" json:"congregation_created_at"`
	CongregationUpdatedAt *time.Time     `gorm:"column:congregation_updated_at;autoUpdateTime" json:"congregation_updated_at,omitempty"`
	CongregationDeletedAt gorm.DeletedAt `gorm:"column:congregation_deleted_at;index" json:"congregation_deleted_at,omitempty"`
}

func (CongregationModel) TableName() string { return "congregations" }
