package sender

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
)

// MessengerSender posts to the legacy Messenger bridge. Retained only for
// backward compatibility with missionaries who registered before the
// email/WhatsApp migration.
type MessengerSender struct {
	token   string
	baseURL string
	client  *http.Client
}

func NewMessengerSender(token, baseURL string) *MessengerSender {
	return &MessengerSender{
		token:   token,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *MessengerSender) Method() missionaryModel.NotificationChannel {
	return missionaryModel.ChannelMessenger
}

func (s *MessengerSender) Send(m *missionaryModel.MissionaryModel, subject, body string) error {
	if m.MissionaryMessengerAccount == nil || *m.MissionaryMessengerAccount == "" {
		return errors.New("missionary has no messenger account")
	}

	payload := map[string]interface{}{
		"recipient": map[string]string{"id": *m.MissionaryMessengerAccount},
		"message":   map[string]string{"text": subject + "\n\n" + body},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal messenger payload: %w", err)
	}

	url := fmt.Sprintf("%s/me/messages?access_token=%s", s.baseURL, s.token)
	resp, err := s.client.Post(url, "application/json", bytes.NewBuffer(raw))
	if err != nil {
		log.Printf("[MESSENGER] HTTP error | Recipient=%s | Error=%v", *m.MissionaryMessengerAccount, err)
		return fmt.Errorf("messenger http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[MESSENGER] Failed | Recipient=%s | Status=%d", *m.MissionaryMessengerAccount, resp.StatusCode)
		return fmt.Errorf("messenger api error: status=%d", resp.StatusCode)
	}
	return nil
}
