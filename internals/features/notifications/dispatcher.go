package notifications

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"gorm.io/gorm"

	"missionmeals_backend/internals/configs"
	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
	notificationModel "missionmeals_backend/internals/features/notifications/model"
	"missionmeals_backend/internals/features/notifications/sender"
)

// MealEvent carries the booking details a notification describes. Kept as a
// plain struct so the dispatcher does not depend on the meals feature.
type MealEvent struct {
	MealDate           string  `json:"meal_date"`
	MealStartTime      string  `json:"meal_start_time"`
	HostName           string  `json:"host_name"`
	HostPhone          string  `json:"host_phone"`
	MealDescription    *string `json:"meal_description,omitempty"`
	SpecialNotes       *string `json:"special_notes,omitempty"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
}

// Dispatcher selects a channel per missionary preference and logs every
// attempt. Failures are swallowed: a host's booking must succeed even when
// the missionary cannot currently be reached.
type Dispatcher struct {
	DB      *gorm.DB
	Senders map[missionaryModel.NotificationChannel]sender.Sender
	Emailer *sender.EmailSender

	SMSCostPerSegment float64
}

func NewDispatcherFromEnv(db *gorm.DB) *Dispatcher {
	emailer := sender.NewEmailSender(
		configs.GetEnv("SMTP_HOST"),
		configs.GetEnv("SMTP_PORT", "465"),
		configs.GetEnv("SMTP_USER"),
		configs.GetEnv("SMTP_PASS"),
	)
	wa := sender.NewWhatsAppSender(
		configs.GetEnv("WHATSAPP_API_TOKEN"),
		configs.GetEnv("WHATSAPP_SENDER_NUMBER"),
		configs.GetEnv("WHATSAPP_API_BASE_URL"),
	)
	sms := sender.NewSMSSender(
		configs.GetEnv("SMS_API_KEY"),
		configs.GetEnv("SMS_SENDER_ID"),
		configs.GetEnv("SMS_BASE_URL"),
	)
	messenger := sender.NewMessengerSender(
		configs.GetEnv("MESSENGER_TOKEN"),
		configs.GetEnv("MESSENGER_BASE_URL", "https://graph.facebook.com/v17.0"),
	)

	cost, err := strconv.ParseFloat(configs.GetEnv("SMS_COST_PER_SEGMENT", "0.0075"), 64)
	if err != nil {
		cost = 0.0075
	}

	return &Dispatcher{
		DB: db,
		Senders: map[missionaryModel.NotificationChannel]sender.Sender{
			missionaryModel.ChannelEmail:     emailer,
			missionaryModel.ChannelWhatsApp:  wa,
			missionaryModel.ChannelText:      sms,
			missionaryModel.ChannelMessenger: messenger,
		},
		Emailer:           emailer,
		SMSCostPerSegment: cost,
	}
}

// senderFor falls back to email for unknown/unset preferences.
func (d *Dispatcher) senderFor(ch missionaryModel.NotificationChannel) sender.Sender {
	if s, ok := d.Senders[ch]; ok {
		return s
	}
	return d.Senders[missionaryModel.ChannelEmail]
}

// Notify makes one delivery attempt on the missionary's preferred channel and
// appends exactly one MessageLog row. Returns whether delivery succeeded.
func (d *Dispatcher) Notify(m *missionaryModel.MissionaryModel, messageType, subject, body string, payload any) bool {
	s := d.senderFor(m.MissionaryPreferredNotification)
	err := s.Send(m, subject, body)

	segments := sender.SegmentCount(subject + "\n" + body)
	cost := 0.0
	if s.Method() == missionaryModel.ChannelText {
		cost = float64(segments) * d.SMSCostPerSegment
	}

	d.appendLog(m, messageType, string(s.Method()), err, segments, cost, payload)

	if err != nil {
		log.Printf("[NOTIFY] delivery failed | missionary=%s method=%s type=%s err=%v",
			m.MissionaryID, s.Method(), messageType, err)
		return false
	}
	return true
}

// NotifyMealEvent formats and sends a booking lifecycle message.
func (d *Dispatcher) NotifyMealEvent(m *missionaryModel.MissionaryModel, messageType string, ev MealEvent) bool {
	subject, body := formatMealMessage(m, messageType, ev)
	return d.Notify(m, messageType, subject, body, ev)
}

// SendVerificationEmail always uses email, regardless of preference: the
// verification code proves ownership of the registered address.
func (d *Dispatcher) SendVerificationEmail(m *missionaryModel.MissionaryModel, code string) bool {
	subject := "Verify your meal calendar registration"
	body := fmt.Sprintf("Hello %s, your verification code is %s.", m.MissionaryName, code)

	var err error
	if m.MissionaryEmailAddress == nil || *m.MissionaryEmailAddress == "" {
		err = fmt.Errorf("missionary has no email address")
	} else {
		err = d.Emailer.SendTo(*m.MissionaryEmailAddress, subject, body)
	}

	d.appendLog(m, notificationModel.MessageTypeVerification, string(missionaryModel.ChannelEmail),
		err, 0, 0, nil)
	return err == nil
}

func (d *Dispatcher) appendLog(m *missionaryModel.MissionaryModel, messageType, method string, sendErr error, segments int, cost float64, payload any) {
	row := notificationModel.MessageLogModel{
		MessageLogMissionaryID:   m.MissionaryID,
		MessageLogCongregationID: m.MissionaryCongregationID,
		MessageLogMessageType:    messageType,
		MessageLogMethod:         method,
		MessageLogSuccessful:     sendErr == nil,
		MessageLogSegmentCount:   segments,
		MessageLogEstimatedCost:  cost,
	}
	if sendErr != nil {
		reason := sendErr.Error()
		row.MessageLogFailureReason = &reason
	}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			row.MessageLogPayload = raw
		}
	}

	if err := d.DB.Create(&row).Error; err != nil {
		log.Printf("[NOTIFY] failed to append message log: %v", err)
	}
}

func formatMealMessage(m *missionaryModel.MissionaryModel, messageType string, ev MealEvent) (string, string) {
	label := m.MissionaryType.DisplayName()

	switch messageType {
	case notificationModel.MessageTypeMealCreated:
		subject := fmt.Sprintf("New meal appointment on %s", ev.MealDate)
		body := fmt.Sprintf("%s: %s will host you on %s at %s. Phone: %s.",
			label, ev.HostName, ev.MealDate, ev.MealStartTime, ev.HostPhone)
		if ev.MealDescription != nil && *ev.MealDescription != "" {
			body += " Menu: " + *ev.MealDescription + "."
		}
		if ev.SpecialNotes != nil && *ev.SpecialNotes != "" {
			body += " Notes: " + *ev.SpecialNotes + "."
		}
		return subject, body
	case notificationModel.MessageTypeMealUpdated:
		subject := fmt.Sprintf("Meal appointment updated for %s", ev.MealDate)
		body := fmt.Sprintf("%s: your meal with %s on %s is now at %s. Phone: %s.",
			label, ev.HostName, ev.MealDate, ev.MealStartTime, ev.HostPhone)
		if ev.MealDescription != nil && *ev.MealDescription != "" {
			body += " Menu: " + *ev.MealDescription + "."
		}
		return subject, body
	case notificationModel.MessageTypeMealCancelled:
		subject := fmt.Sprintf("Meal appointment cancelled for %s", ev.MealDate)
		body := fmt.Sprintf("%s: the meal with %s on %s was cancelled.", label, ev.HostName, ev.MealDate)
		if ev.CancellationReason != nil && *ev.CancellationReason != "" {
			body += " Reason: " + *ev.CancellationReason + "."
		}
		return subject, body
	default:
		return "Meal calendar notification", fmt.Sprintf("%s: you have a new notification.", label)
	}
}
