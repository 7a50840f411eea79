package notifications

import (
	"errors"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
	notificationModel "missionmeals_backend/internals/features/notifications/model"
	"missionmeals_backend/internals/features/notifications/sender"
)

// fakeSender records the last call and returns a scripted error.
type fakeSender struct {
	method missionaryModel.NotificationChannel
	err    error

	calls   int
	subject string
	body    string
}

func (f *fakeSender) Method() missionaryModel.NotificationChannel { return f.method }

func (f *fakeSender) Send(_ *missionaryModel.MissionaryModel, subject, body string) error {
	f.calls++
	f.subject = subject
	f.body = body
	return f.err
}

func newLogDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// randomblob default stands in for gen_random_uuid(); uuid.Parse accepts
	// the plain 32-hex form it produces.
	if err := db.Exec(`
		CREATE TABLE message_logs (
			message_log_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			message_log_missionary_id TEXT NOT NULL,
			message_log_congregation_id TEXT NOT NULL,
			message_log_message_type TEXT NOT NULL,
			message_log_method TEXT NOT NULL,
			message_log_successful BOOLEAN NOT NULL,
			message_log_failure_reason TEXT,
			message_log_segment_count INTEGER NOT NULL DEFAULT 0,
			message_log_estimated_cost REAL NOT NULL DEFAULT 0,
			message_log_payload TEXT,
			message_log_sent_at DATETIME
		)`).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

func testMissionary(pref missionaryModel.NotificationChannel) *missionaryModel.MissionaryModel {
	email := "companionship@missionary.org"
	return &missionaryModel.MissionaryModel{
		MissionaryID:                    uuid.New(),
		MissionaryCongregationID:        uuid.New(),
		MissionaryName:                  "Elder Young",
		MissionaryType:                  missionaryModel.MissionaryTypeElders,
		MissionaryPhoneNumber:           "+15550001111",
		MissionaryEmailAddress:          &email,
		MissionaryPreferredNotification: pref,
	}
}

func newTestDispatcher(db *gorm.DB, senders ...*fakeSender) *Dispatcher {
	d := &Dispatcher{
		DB:                db,
		Senders:           map[missionaryModel.NotificationChannel]sender.Sender{},
		SMSCostPerSegment: 0.01,
	}
	for _, s := range senders {
		d.Senders[s.method] = s
	}
	return d
}

func loadLogs(t *testing.T, db *gorm.DB) []notificationModel.MessageLogModel {
	t.Helper()
	var rows []notificationModel.MessageLogModel
	if err := db.Order("message_log_sent_at").Find(&rows).Error; err != nil {
		t.Fatalf("load logs: %v", err)
	}
	return rows
}

func TestNotifyUsesPreferredChannel(t *testing.T) {
	db := newLogDB(t)
	email := &fakeSender{method: missionaryModel.ChannelEmail}
	wa := &fakeSender{method: missionaryModel.ChannelWhatsApp}
	d := newTestDispatcher(db, email, wa)

	m := testMissionary(missionaryModel.ChannelWhatsApp)
	ok := d.Notify(m, notificationModel.MessageTypeMealCreated, "subject", "body", nil)
	if !ok {
		t.Fatal("delivery should succeed")
	}
	if wa.calls != 1 || email.calls != 0 {
		t.Fatalf("calls: wa=%d email=%d, want whatsapp only", wa.calls, email.calls)
	}

	rows := loadLogs(t, db)
	if len(rows) != 1 {
		t.Fatalf("expected exactly one log row, got %d", len(rows))
	}
	row := rows[0]
	if row.MessageLogMethod != "whatsapp" || !row.MessageLogSuccessful {
		t.Fatalf("log row = method %q successful %v", row.MessageLogMethod, row.MessageLogSuccessful)
	}
	if row.MessageLogMissionaryID != m.MissionaryID {
		t.Fatal("log row must reference the missionary")
	}
}

func TestNotifyFallsBackToEmailForUnknownChannel(t *testing.T) {
	db := newLogDB(t)
	email := &fakeSender{method: missionaryModel.ChannelEmail}
	d := newTestDispatcher(db, email)

	m := testMissionary("carrier_pigeon")
	if ok := d.Notify(m, notificationModel.MessageTypeMealCreated, "s", "b", nil); !ok {
		t.Fatal("fallback delivery should succeed")
	}
	if email.calls != 1 {
		t.Fatalf("email calls = %d, want 1", email.calls)
	}
}

func TestNotifyLogsFailureAndReturnsFalse(t *testing.T) {
	db := newLogDB(t)
	email := &fakeSender{method: missionaryModel.ChannelEmail, err: errors.New("smtp: connection refused")}
	d := newTestDispatcher(db, email)

	m := testMissionary(missionaryModel.ChannelEmail)
	if ok := d.Notify(m, notificationModel.MessageTypeMealCancelled, "s", "b", nil); ok {
		t.Fatal("failed delivery must report false")
	}

	rows := loadLogs(t, db)
	if len(rows) != 1 {
		t.Fatalf("failure must still append one log row, got %d", len(rows))
	}
	row := rows[0]
	if row.MessageLogSuccessful {
		t.Fatal("row must record the failure")
	}
	if row.MessageLogFailureReason == nil || !strings.Contains(*row.MessageLogFailureReason, "connection refused") {
		t.Fatalf("failure reason = %v", row.MessageLogFailureReason)
	}
}

func TestNotifyBillsTextSegments(t *testing.T) {
	db := newLogDB(t)
	sms := &fakeSender{method: missionaryModel.ChannelText}
	d := newTestDispatcher(db, sms)

	m := testMissionary(missionaryModel.ChannelText)
	body := strings.Repeat("a", 200)
	d.Notify(m, notificationModel.MessageTypeMealCreated, "subject", body, nil)

	rows := loadLogs(t, db)
	row := rows[0]
	wantSegments := sender.SegmentCount("subject\n" + body)
	if row.MessageLogSegmentCount != wantSegments {
		t.Fatalf("segments = %d, want %d", row.MessageLogSegmentCount, wantSegments)
	}
	wantCost := float64(wantSegments) * 0.01
	if row.MessageLogEstimatedCost != wantCost {
		t.Fatalf("cost = %v, want %v", row.MessageLogEstimatedCost, wantCost)
	}
}

func TestNonTextChannelsCostNothing(t *testing.T) {
	db := newLogDB(t)
	email := &fakeSender{method: missionaryModel.ChannelEmail}
	d := newTestDispatcher(db, email)

	m := testMissionary(missionaryModel.ChannelEmail)
	d.Notify(m, notificationModel.MessageTypeMealCreated, "subject", strings.Repeat("a", 500), nil)

	rows := loadLogs(t, db)
	if rows[0].MessageLogEstimatedCost != 0 {
		t.Fatalf("email cost = %v, want 0", rows[0].MessageLogEstimatedCost)
	}
}

func TestSendVerificationEmailWithoutAddress(t *testing.T) {
	db := newLogDB(t)
	d := newTestDispatcher(db)

	m := testMissionary(missionaryModel.ChannelEmail)
	m.MissionaryEmailAddress = nil
	if ok := d.SendVerificationEmail(m, "123456"); ok {
		t.Fatal("no address: verification send must fail")
	}

	rows := loadLogs(t, db)
	if len(rows) != 1 || rows[0].MessageLogSuccessful {
		t.Fatalf("expected one failed log row, got %+v", rows)
	}
	if rows[0].MessageLogMessageType != notificationModel.MessageTypeVerification {
		t.Fatalf("message type = %q", rows[0].MessageLogMessageType)
	}
}

func TestMealEventFormatting(t *testing.T) {
	m := testMissionary(missionaryModel.ChannelEmail)
	menu := "Lasagna"
	ev := MealEvent{
		MealDate:        "2026-01-15",
		MealStartTime:   "18:00",
		HostName:        "The Halversons",
		HostPhone:       "+15559990000",
		MealDescription: &menu,
	}

	subject, body := formatMealMessage(m, notificationModel.MessageTypeMealCreated, ev)
	if !strings.Contains(subject, "2026-01-15") {
		t.Fatalf("subject %q should carry the date", subject)
	}
	for _, want := range []string{"Elders", "The Halversons", "18:00", "Lasagna"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body %q missing %q", body, want)
		}
	}

	reason := "Transfer day"
	ev.CancellationReason = &reason
	_, body = formatMealMessage(m, notificationModel.MessageTypeMealCancelled, ev)
	if !strings.Contains(body, "cancelled") || !strings.Contains(body, reason) {
		t.Fatalf("cancellation body %q", body)
	}
}
