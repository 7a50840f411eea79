package sender

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
)

// WhatsAppSender posts to a WhatsApp Business API gateway.
type WhatsAppSender struct {
	token   string
	sender  string
	baseURL string
	client  *http.Client
}

func NewWhatsAppSender(token, senderNumber, baseURL string) *WhatsAppSender {
	return &WhatsAppSender{
		token:   token,
		sender:  senderNumber,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *WhatsAppSender) Method() missionaryModel.NotificationChannel {
	return missionaryModel.ChannelWhatsApp
}

func (w *WhatsAppSender) Send(m *missionaryModel.MissionaryModel, subject, body string) error {
	recipient := m.MissionaryPhoneNumber
	if m.MissionaryWhatsappNumber != nil && *m.MissionaryWhatsappNumber != "" {
		recipient = *m.MissionaryWhatsappNumber
	}
	if recipient == "" {
		return errors.New("missionary has no WhatsApp number")
	}

	payload := map[string]interface{}{
		"messageType": "text",
		"token":       w.token,
		"from":        w.sender,
		"to":          recipient,
		"text":        subject + "\n\n" + body,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal WhatsApp payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/rest/send_message", w.baseURL)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(raw))
	if err != nil {
		return fmt.Errorf("failed to create WhatsApp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := w.client.Do(req)
	if err != nil {
		log.Printf("[WHATSAPP] HTTP error | Recipient=%s | Error=%v", recipient, err)
		return fmt.Errorf("whatsapp http error: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Printf("[WHATSAPP] Failed | Recipient=%s | Status=%d | Response=%s",
			recipient, resp.StatusCode, string(respBody))
		return fmt.Errorf("whatsapp api error: status=%d", resp.StatusCode)
	}

	log.Printf("[WHATSAPP] Sent | Recipient=%s | Duration=%v", recipient, time.Since(start))
	return nil
}
