package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/*
Message types:
- "meal_created" | "meal_updated" | "meal_cancelled" | "custom" | "verification"
*/
const (
	MessageTypeMealCreated   = "meal_created"
	MessageTypeMealUpdated   = "meal_updated"
	MessageTypeMealCancelled = "meal_cancelled"
	MessageTypeCustom        = "custom"
	MessageTypeVerification  = "verification"
)

// MessageLogModel is an append-only audit record of every notification
// attempt. Rows are never updated or deleted.
type MessageLogModel struct {
	MessageLogID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:message_log_id" json:"message_log_id"`

	MessageLogMissionaryID   uuid.UUID `gorm:"type:uuid;not null;index;column:message_log_missionary_id" json:"message_log_missionary_id"`
	MessageLogCongregationID uuid.UUID `gorm:"type:uuid;not null;index;column:message_log_congregation_id" json:"message_log_congregation_id"`

	MessageLogMessageType string `gorm:"type:varchar(20);not null;column:message_log_message_type" json:"message_log_message_type"`
	MessageLogMethod      string `gorm:"type:varchar(12);not null;column:message_log_method" json:"message_log_method"`

	MessageLogSuccessful    bool    `gorm:"not null;column:message_log_successful" json:"message_log_successful"`
	MessageLogFailureReason *string `gorm:"column:message_log_failure_reason" json:"message_log_failure_reason,omitempty"`

	MessageLogSegmentCount  int     `gorm:"not null;default:0;column:message_log_segment_count" json:"message_log_segment_count"`
	MessageLogEstimatedCost float64 `gorm:"not null;default:0;column:message_log_estimated_cost" json:"message_log_estimated_cost"`

	MessageLogPayload datatypes.JSON `gorm:"column:message_log_payload" json:"message_log_payload,omitempty"`

	MessageLogSentAt time.Time `gorm:"column:message_log_sent_at;autoCreateTime" json:"message_log_sent_at"`
}

func (MessageLogModel) TableName() string { return "message_logs" }
