package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/khareetaty/zone_alerting_system/internal/config"
	"github.com/sirupsen/logrus"
)

// WebhookNotifier delivers alert messages to a configured HTTP endpoint,
// signing the payload with HMAC-SHA256 when a secret is set.
type WebhookNotifier struct {
	cfg        *config.Config
	logger     *logrus.Logger
	httpClient *http.Client
}

// NewWebhookNotifier creates a webhook channel from the application config.
func NewWebhookNotifier(cfg *config.Config, logger *logrus.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Name implements Notifier.
func (w *WebhookNotifier) Name() string { return "webhook" }

// webhookPayload wraps the message with the recipient so one endpoint can
// fan out internally.
type webhookPayload struct {
	Recipient string  `json:"recipient"`
	Message   Message `json:"message"`
}

// Send posts the message, retrying with exponential backoff. The last error
// is returned so the engine can record the channel as failed; retries beyond
// this call are an external ops concern.
func (w *WebhookNotifier) Send(ctx context.Context, recipient string, msg Message) error {
	log := w.logger.WithFields(logrus.Fields{
		"channel":   "webhook",
		"recipient": recipient,
		"alert_id":  msg.AlertID,
	})

	if w.cfg.WebhookURL == "" {
		return fmt.Errorf("webhook URL is not configured")
	}

	payload, err := json.Marshal(webhookPayload{Recipient: recipient, Message: msg})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	delay := w.cfg.WebhookBaseDelay
	var lastErr error
	for i := 0; i < w.cfg.WebhookMaxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to create webhook request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if w.cfg.WebhookSecret != "" {
			req.Header.Set("X-Webhook-Signature", signHMACSHA256(payload, w.cfg.WebhookSecret))
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			lastErr = err
			log.WithError(err).Warnf("Webhook delivery failed. Retrying in %v. Retries left: %d", delay, w.cfg.WebhookMaxRetries-1-i)
			time.Sleep(delay)
			delay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Webhook delivered successfully")
			return nil
		}
		lastErr = fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
		log.Warnf("Webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, delay, w.cfg.WebhookMaxRetries-1-i)
		time.Sleep(delay)
		delay *= 2
	}

	return fmt.Errorf("webhook delivery failed after %d retries: %w", w.cfg.WebhookMaxRetries, lastErr)
}

// signHMACSHA256 generates the HMAC-SHA256 signature for the payload.
func signHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
