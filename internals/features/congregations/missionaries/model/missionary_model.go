package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
Missionary type (matches the DB enum):
- "elders"
- "sisters"
*/
type MissionaryType string

const (
	MissionaryTypeElders  MissionaryType = "elders"
	MissionaryTypeSisters MissionaryType = "sisters"
)

// Keep values lower-case on scan/save
func (t *MissionaryType) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*t = MissionaryType(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*t = MissionaryType(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*t = ""
	}
	return nil
}
func (t MissionaryType) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(t))), nil
}

// DisplayName is the label used in conflict messages and notifications.
func (t MissionaryType) DisplayName() string {
	switch t {
	case MissionaryTypeSisters:
		return "Sisters"
	default:
		return "Elders"
	}
}

/*
Preferred notification channel:
- "email" | "whatsapp" | "text" | "messenger"
("text" and "messenger" are legacy channels kept for backward compatibility)
*/
type NotificationChannel string

const (
	ChannelEmail     NotificationChannel = "email"
	ChannelWhatsApp  NotificationChannel = "whatsapp"
	ChannelText      NotificationChannel = "text"
	ChannelMessenger NotificationChannel = "messenger"
)

func (ch *NotificationChannel) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*ch = NotificationChannel(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*ch = NotificationChannel(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*ch = ""
	}
	return nil
}
func (ch NotificationChannel) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(ch))), nil
}

/*
Consent status:
- "pending" | "granted" | "denied"
*/
type ConsentStatus string

const (
	ConsentPending ConsentStatus = "pending"
	ConsentGranted ConsentStatus = "granted"
	ConsentDenied  ConsentStatus = "denied"
)

func (s *ConsentStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = ConsentStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = ConsentStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s ConsentStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

type MissionaryModel struct {
	// PK
	MissionaryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:missionary_id" json:"missionary_id"`

	// Owning ward (exactly one at a time)
	MissionaryCongregationID uuid.UUID `gorm:"type:uuid;not null;index;column:missionary_congregation_id" json:"missionary_congregation_id"`

	// Identity
	MissionaryName   string         `gorm:"type:varchar(150);not null;column:missionary_name" json:"missionary_name"`
	MissionaryType   MissionaryType `gorm:"type:varchar(10);not null;column:missionary_type" json:"missionary_type"`
	MissionaryIsTrio bool           `gorm:"not null;default:false;column:missionary_is_trio" json:"missionary_is_trio"`

	// Contact
	MissionaryPhoneNumber      string  `gorm:"type:varchar(32);not null;column:missionary_phone_number" json:"missionary_phone_number"`
	MissionaryEmailAddress     *string `gorm:"type:varchar(150);column:missionary_email_address" json:"missionary_email_address,omitempty"`
	MissionaryWhatsappNumber   *string `gorm:"type:varchar(32);column:missionary_whatsapp_number" json:"missionary_whatsapp_number,omitempty"`
	MissionaryMessengerAccount *string `gorm:"type:varchar(150);column:missionary_messenger_account" json:"missionary_messenger_account,omitempty"`

	// Notification preferences
	MissionaryPreferredNotification     NotificationChannel `gorm:"type:varchar(12);not null;default:'email';column:missionary_preferred_notification" json:"missionary_preferred_notification"`
	MissionaryNotificationScheduleType  string              `gorm:"type:varchar(32);not null;default:'before_each_meal';column:missionary_notification_schedule_type" json:"missionary_notification_schedule_type"`

	// Status
	MissionaryIsActive         bool          `gorm:"not null;default:true;column:missionary_is_active" json:"missionary_is_active"`
	MissionaryConsentStatus    ConsentStatus `gorm:"type:varchar(10);not null;default:'pending';column:missionary_consent_status" json:"missionary_consent_status"`
	MissionaryTransferDate     *time.Time    `gorm:"type:date;column:missionary_transfer_date" json:"missionary_transfer_date,omitempty"`
	MissionaryVerificationCode *string       `gorm:"type:varchar(6);column:missionary_verification_code" json:"-"`

	// Audit
	MissionaryCreatedAt time.Time      `gorm:"column:missionary_created_at;autoCreateTime" json:"missionary_created_at"`
	MissionaryUpdatedAt *time.Time     `gorm:"column:missionary_updated_at;autoUpdateTime" json:"missionary_updated_at,omitempty"`
	MissionaryDeletedAt gorm.DeletedAt `gorm:"column:missionary_deleted_at;index" json:"missionary_deleted_at,omitempty"`
}

func (MissionaryModel) TableName() string { return "missionaries" }

// MissionarySummary is the roster projection joined onto meals and public
// congregation pages.
type MissionarySummary struct {
	MissionaryID     uuid.UUID      `json:"missionary_id"`
	MissionaryName   string         `json:"missionary_name"`
	MissionaryType   MissionaryType `json:"missionary_type"`
	MissionaryIsTrio bool           `json:"missionary_is_trio"`
}
