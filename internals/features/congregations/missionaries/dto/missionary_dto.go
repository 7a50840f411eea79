package dto

import (
	"time"

	"github.com/google/uuid"

	mModel "missionmeals_backend/internals/features/congregations/missionaries/model"
)

/* ===================== ADMIN REQUESTS ===================== */

type CreateMissionaryRequest struct {
	MissionaryCongregationID uuid.UUID             `json:"missionary_congregation_id" validate:"required"`
	MissionaryName           string                `json:"missionary_name" validate:"required,min=2,max=150"`
	MissionaryType           mModel.MissionaryType `json:"missionary_type" validate:"required,oneof=elders sisters"`
	MissionaryIsTrio         *bool                 `json:"missionary_is_trio" validate:"omitempty"`

	MissionaryPhoneNumber      string  `json:"missionary_phone_number" validate:"required,min=5,max=32"`
	MissionaryEmailAddress     *string `json:"missionary_email_address" validate:"omitempty,email"`
	MissionaryWhatsappNumber   *string `json:"missionary_whatsapp_number" validate:"omitempty,min=5,max=32"`
	MissionaryMessengerAccount *string `json:"missionary_messenger_account" validate:"omitempty,max=150"`

	MissionaryPreferredNotification    *mModel.NotificationChannel `json:"missionary_preferred_notification" validate:"omitempty,oneof=email whatsapp text messenger"`
	MissionaryNotificationScheduleType *string                     `json:"missionary_notification_schedule_type" validate:"omitempty,max=32"`
	MissionaryTransferDate             *time.Time                  `json:"missionary_transfer_date" validate:"omitempty"`
}

func (r *CreateMissionaryRequest) ToModel() *mModel.MissionaryModel {
	m := &mModel.MissionaryModel{
		MissionaryCongregationID:           r.MissionaryCongregationID,
		MissionaryName:                     r.MissionaryName,
		MissionaryType:                     r.MissionaryType,
		MissionaryPhoneNumber:              r.MissionaryPhoneNumber,
		MissionaryEmailAddress:             r.MissionaryEmailAddress,
		MissionaryWhatsappNumber:           r.MissionaryWhatsappNumber,
		MissionaryMessengerAccount:         r.MissionaryMessengerAccount,
		MissionaryPreferredNotification:    mModel.ChannelEmail,
		MissionaryNotificationScheduleType: "before_each_meal",
		MissionaryIsActive:                 true,
		MissionaryConsentStatus:            mModel.ConsentPending,
		MissionaryTransferDate:             r.MissionaryTransferDate,
	}
	if r.MissionaryIsTrio != nil {
		m.MissionaryIsTrio = *r.MissionaryIsTrio
	}
	if r.MissionaryPreferredNotification != nil {
		m.MissionaryPreferredNotification = *r.MissionaryPreferredNotification
	}
	if r.MissionaryNotificationScheduleType != nil {
		m.MissionaryNotificationScheduleType = *r.MissionaryNotificationScheduleType
	}
	return m
}

type UpdateMissionaryRequest struct {
	MissionaryCongregationID *uuid.UUID             `json:"missionary_congregation_id" validate:"omitempty"`
	MissionaryName           *string                `json:"missionary_name" validate:"omitempty,min=2,max=150"`
	MissionaryType           *mModel.MissionaryType `json:"missionary_type" validate:"omitempty,oneof=elders sisters"`
	MissionaryIsTrio         *bool                  `json:"missionary_is_trio" validate:"omitempty"`

	MissionaryPhoneNumber      *string `json:"missionary_phone_number" validate:"omitempty,min=5,max=32"`
	MissionaryEmailAddress     *string `json:"missionary_email_address" validate:"omitempty,email"`
	MissionaryWhatsappNumber   *string `json:"missionary_whatsapp_number" validate:"omitempty,min=5,max=32"`
	MissionaryMessengerAccount *string `json:"missionary_messenger_account" validate:"omitempty,max=150"`

	MissionaryPreferredNotification    *mModel.NotificationChannel `json:"missionary_preferred_notification" validate:"omitempty,oneof=email whatsapp text messenger"`
	MissionaryNotificationScheduleType *string                     `json:"missionary_notification_schedule_type" validate:"omitempty,max=32"`
	MissionaryIsActive                 *bool                       `json:"missionary_is_active" validate:"omitempty"`
	MissionaryTransferDate             *time.Time                  `json:"missionary_transfer_date" validate:"omitempty"`
}

func (r *UpdateMissionaryRequest) ApplyToModel(m *mModel.MissionaryModel) {
	if r.MissionaryCongregationID != nil {
		m.MissionaryCongregationID = *r.MissionaryCongregationID
	}
	if r.MissionaryName != nil {
		m.MissionaryName = *r.MissionaryName
	}
	if r.MissionaryType != nil {
		m.MissionaryType = *r.MissionaryType
	}
	if r.MissionaryIsTrio != nil {
		m.MissionaryIsTrio = *r.MissionaryIsTrio
	}
	if r.MissionaryPhoneNumber != nil {
		m.MissionaryPhoneNumber = *r.MissionaryPhoneNumber
	}
	if r.MissionaryEmailAddress != nil {
		m.MissionaryEmailAddress = r.MissionaryEmailAddress
	}
	if r.MissionaryWhatsappNumber != nil {
		m.MissionaryWhatsappNumber = r.MissionaryWhatsappNumber
	}
	if r.MissionaryMessengerAccount != nil {
		m.MissionaryMessengerAccount = r.MissionaryMessengerAccount
	}
	if r.MissionaryPreferredNotification != nil {
		m.MissionaryPreferredNotification = *r.MissionaryPreferredNotification
	}
	if r.MissionaryNotificationScheduleType != nil {
		m.MissionaryNotificationScheduleType = *r.MissionaryNotificationScheduleType
	}
	if r.MissionaryIsActive != nil {
		m.MissionaryIsActive = *r.MissionaryIsActive
	}
	if r.MissionaryTransferDate != nil {
		m.MissionaryTransferDate = r.MissionaryTransferDate
	}
}

/* ===================== PUBLIC REQUESTS ===================== */

// Self-registration via a congregation access code. The email must belong to
// the allowed missionary domain; the account stays inactive until verified.
type RegisterMissionaryRequest struct {
	AccessCode            string                `json:"access_code" validate:"required"`
	MissionaryName        string                `json:"missionary_name" validate:"required,min=2,max=150"`
	MissionaryType        mModel.MissionaryType `json:"missionary_type" validate:"required,oneof=elders sisters"`
	MissionaryPhoneNumber string                `json:"missionary_phone_number" validate:"required,min=5,max=32"`
	MissionaryEmail       string                `json:"missionary_email_address" validate:"required,email"`
}

type VerifyMissionaryRequest struct {
	MissionaryEmail  string `json:"missionary_email_address" validate:"required,email"`
	VerificationCode string `json:"verification_code" validate:"required,len=6"`
}

type ConsentRequest struct {
	AccessCode    string               `json:"access_code" validate:"required"`
	MissionaryID  uuid.UUID            `json:"missionary_id" validate:"required"`
	ConsentStatus mModel.ConsentStatus `json:"consent_status" validate:"required,oneof=granted denied"`
}
