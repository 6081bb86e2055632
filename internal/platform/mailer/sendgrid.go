// Package mailer delivers transactional mail through the SendGrid v3 API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	portssvc "github.com/petadminhq/pet_admin_app/internal/core/ports/services"
)

const sendgridSendURL = "https://api.sendgrid.com/v3/mail/send"

type sendgridMailer struct {
	apiKey      string
	fromAddress string
	httpClient  *http.Client
}

// NewSendgridMailer creates a NotifierSvc backed by the SendGrid mail send API.
func NewSendgridMailer(apiKey, fromAddress string) portssvc.NotifierSvc {
	return &sendgridMailer{
		apiKey:      apiKey,
		fromAddress: fromAddress,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

var _ portssvc.NotifierSvc = (*sendgridMailer)(nil)

type sendgridAddress struct {
	Email string `json:"email"`
}

type sendgridPersonalization struct {
	To []sendgridAddress `json:"to"`
}

type sendgridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendgridMessage struct {
	Personalizations []sendgridPersonalization `json:"personalizations"`
	From             sendgridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendgridContent         `json:"content"`
}

// Send posts a single HTML message. SendGrid answers 202 Accepted on success;
// any other status is reported as a failure.
func (m *sendgridMailer) Send(ctx context.Context, toAddress, subject, htmlBody string) error {
	message := sendgridMessage{
		Personalizations: []sendgridPersonalization{
			{To: []sendgridAddress{{Email: toAddress}}},
		},
		From:    sendgridAddress{Email: m.fromAddress},
		Subject: subject,
		Content: []sendgridContent{
			{Type: "text/html", Value: htmlBody},
		},
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to encode mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendgridSendURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("sendgrid returned non-202 status: %s", resp.Status)
	}
	return nil
}
