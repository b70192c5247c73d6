package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cityscope/config"
)

// Webhook posts account events to a configured URL. Deliveries are
// fire-and-forget; a failed post is logged by the caller and never blocks the
// request that triggered it.
type Webhook struct {
	url        string
	httpClient *http.Client
}

func NewWebhook(cfg *config.WebhookConfig) *Webhook {
	return &Webhook{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.TimeoutDuration()},
	}
}

type registrationEvent struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
}

func (w *Webhook) NotifyUserRegistered(userID string, username string) error {
	payload := &registrationEvent{
		UserID:    userID,
		Username:  username,
		Event:     "user_registered",
		Timestamp: time.Now().Format(time.RFC3339),
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	response, err := w.httpClient.Post(w.url, "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d", response.StatusCode)
	}

	return nil
}
