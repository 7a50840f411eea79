package sender

import (
	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
)

// Sender is one delivery channel. Implementations make a single best-effort
// provider call; the dispatcher owns logging and never retries.
type Sender interface {
	Method() missionaryModel.NotificationChannel
	Send(m *missionaryModel.MissionaryModel, subject, body string) error
}

// SegmentCount returns the number of SMS segments a text occupies
// (GSM-7 style: one segment up to 160 chars, 153 per segment after that).
// Only billed on the legacy SMS path.
func SegmentCount(body string) int {
	n := len([]rune(body))
	if n == 0 {
		return 0
	}
	if n <= 160 {
		return 1
	}
	return (n + 152) / 153
}
