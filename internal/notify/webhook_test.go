package notify

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/khareetaty/zone_alerting_system/internal/config"
	"github.com/khareetaty/zone_alerting_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() Message {
	return Message{
		AlertID:    uuid.New(),
		ZoneID:     10,
		ZoneNameEn: "Sharq",
		ZoneNameAr: "شرق",
		Tier:       models.TierMedium,
		Body:       "[medium] Sharq (شرق): incident activity rising",
		CreatedAt:  time.Now().UTC(),
	}
}

func newWebhookNotifier(url, secret string, retries int) *WebhookNotifier {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewWebhookNotifier(&config.Config{
		WebhookURL:        url,
		WebhookSecret:     secret,
		WebhookTimeout:    2 * time.Second,
		WebhookMaxRetries: retries,
		WebhookBaseDelay:  time.Millisecond,
	}, logger)
}

func TestWebhookSend_SignsPayload(t *testing.T) {
	secret := "test-secret"
	var gotSignature string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := newWebhookNotifier(server.URL, secret, 3)
	msg := testMessage()

	require.NoError(t, notifier.Send(context.Background(), "duty-officer", msg))

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(gotBody)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)

	var payload webhookPayload
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "duty-officer", payload.Recipient)
	assert.Equal(t, msg.AlertID, payload.Message.AlertID)
	assert.Equal(t, models.TierMedium, payload.Message.Tier)
}

func TestWebhookSend_RetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := newWebhookNotifier(server.URL, "", 3)

	require.NoError(t, notifier.Send(context.Background(), "duty-officer", testMessage()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestWebhookSend_FailsAfterRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := newWebhookNotifier(server.URL, "", 3)

	err := notifier.Send(context.Background(), "duty-officer", testMessage())
	require.Error(t, err)
	assert.ErrorContains(t, err, "after 3 retries")
	assert.ErrorContains(t, err, "status 500")
	assert.Equal(t, int32(3), calls.Load())
}

func TestWebhookSend_MissingURL(t *testing.T) {
	notifier := newWebhookNotifier("", "", 3)

	err := notifier.Send(context.Background(), "duty-officer", testMessage())
	require.Error(t, err)
	assert.ErrorContains(t, err, "not configured")
}

func TestWebhookSend_NoSignatureWithoutSecret(t *testing.T) {
	var gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := newWebhookNotifier(server.URL, "", 3)

	require.NoError(t, notifier.Send(context.Background(), "duty-officer", testMessage()))
	assert.Empty(t, gotSignature)
}
