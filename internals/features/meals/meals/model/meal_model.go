package model

import (
	"time"

	"github.com/google/uuid"
)

// MealModel is one scheduled appointment between a host and a missionary
// companionship. Dates are stored as ISO "YYYY-MM-DD" strings and times as
// "HH:MM"; the calendar works in whole days.
//
// Core invariant: at most one non-cancelled meal per (missionary, date),
// enforced by the partial unique index created in the migration.
type MealModel struct {
	MealID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:meal_id" json:"meal_id"`

	MealMissionaryID uuid.UUID `gorm:"type:uuid;not null;index;column:meal_missionary_id" json:"meal_missionary_id"`
	// Denormalized for calendar range filtering
	MealCongregationID uuid.UUID `gorm:"type:uuid;not null;index;column:meal_congregation_id" json:"meal_congregation_id"`

	MealDate      string `gorm:"type:varchar(10);not null;index;column:meal_date" json:"meal_date"`
	MealStartTime string `gorm:"type:varchar(5);not null;column:meal_start_time" json:"meal_start_time"`

	MealHostName    string  `gorm:"type:varchar(150);not null;column:meal_host_name" json:"meal_host_name"`
	MealHostPhone   string  `gorm:"type:varchar(32);not null;column:meal_host_phone" json:"meal_host_phone"`
	MealHostEmail   *string `gorm:"type:varchar(150);column:meal_host_email" json:"meal_host_email,omitempty"`
	MealHostAddress *string `gorm:"type:varchar(250);column:meal_host_address" json:"meal_host_address,omitempty"`

	MealDescription  *string `gorm:"column:meal_description" json:"meal_description,omitempty"`
	MealSpecialNotes *string `gorm:"column:meal_special_notes" json:"meal_special_notes,omitempty"`

	// Cancellation is a soft state change, never a delete
	MealCancelled          bool    `gorm:"not null;default:false;column:meal_cancelled" json:"meal_cancelled"`
	MealCancellationReason *string `gorm:"column:meal_cancellation_reason" json:"meal_cancellation_reason,omitempty"`

	MealCreatedAt time.Time  `gorm:"column:meal_created_at;autoCreateTime" json:"meal_created_at"`
	MealUpdatedAt *time.Time `gorm:"column:meal_updated_at;autoUpdateTime" json:"meal_updated_at,omitempty"`
}

func (MealModel) TableName() string { return "meals" }

const DateLayout = "2006-01-02"
