package sender

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
)

// SMSSender posts form-encoded messages to the legacy SMS gateway. Kept for
// missionaries who still prefer plain text.
type SMSSender struct {
	apiKey   string
	senderID string
	baseURL  string
	client   *http.Client
}

func NewSMSSender(apiKey, senderID, baseURL string) *SMSSender {
	return &SMSSender{
		apiKey:   apiKey,
		senderID: senderID,
		baseURL:  baseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *SMSSender) Method() missionaryModel.NotificationChannel {
	return missionaryModel.ChannelText
}

func (s *SMSSender) Send(m *missionaryModel.MissionaryModel, subject, body string) error {
	if m.MissionaryPhoneNumber == "" {
		return errors.New("missionary has no phone number")
	}

	form := url.Values{}
	form.Set("senderid", s.senderID)
	form.Set("msgType", "text")
	form.Set("msg", subject+"\n"+body)
	form.Set("mobile", m.MissionaryPhoneNumber)
	form.Set("duplicatecheck", "true")
	form.Set("output", "json")

	apiURL := s.baseURL + "/SMSApi/send"
	req, err := http.NewRequest("POST", apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if s.apiKey != "" {
		req.Header.Set("apikey", s.apiKey)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[SMS] HTTP error sending to %s: %v", m.MissionaryPhoneNumber, err)
		return fmt.Errorf("sms http error: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Printf("[SMS] Failed | Recipient=%s | Status=%d | Response=%s",
			m.MissionaryPhoneNumber, resp.StatusCode, string(respBody))
		return fmt.Errorf("sms api error: %s", string(respBody))
	}

	log.Printf("[SMS] Sent | Recipient=%s | Duration=%v", m.MissionaryPhoneNumber, time.Since(start))
	return nil
}
