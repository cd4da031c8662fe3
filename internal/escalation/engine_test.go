package escalation

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/khareetaty/zone_alerting_system/internal/config"
	"github.com/khareetaty/zone_alerting_system/internal/escalation/mocks"
	"github.com/khareetaty/zone_alerting_system/internal/models"
	"github.com/khareetaty/zone_alerting_system/internal/notify"
	notify_mocks "github.com/khareetaty/zone_alerting_system/internal/notify/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var engineNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func testEngineConfig() *config.Config {
	return &config.Config{
		TierThresholds: map[models.Tier]float64{
			models.TierLow:      3,
			models.TierMedium:   5,
			models.TierHigh:     10,
			models.TierCritical: 20,
		},
		Cooldown: 6 * time.Hour,
		ChannelsByTier: map[models.Tier][]config.ChannelRoute{
			models.TierMedium: {
				{Channel: "webhook", Recipient: "zone-analyst"},
				{Channel: "opsfeed", Recipient: "zone-analyst"},
			},
			models.TierCritical: {
				{Channel: "webhook", Recipient: "ops-room"},
			},
		},
	}
}

func newTestEngine(t *testing.T) (*Engine, *mocks.MockStateStore, *mocks.MockAlertStore, *notify_mocks.MockNotifier, *notify_mocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	stateMock := mocks.NewMockStateStore(ctrl)
	alertMock := mocks.NewMockAlertStore(ctrl)
	webhookMock := notify_mocks.NewMockNotifier(ctrl)
	opsfeedMock := notify_mocks.NewMockNotifier(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	notifiers := map[string]notify.Notifier{
		"webhook": webhookMock,
		"opsfeed": opsfeedMock,
	}

	engine := NewEngine(stateMock, alertMock, notifiers, testEngineConfig(), logger)
	engine.now = func() time.Time { return engineNow }
	return engine, stateMock, alertMock, webhookMock, opsfeedMock
}

func testEngineZone() models.Zone {
	return models.Zone{ID: 10, Level: models.LevelDistrict, NameEn: "Sharq", NameAr: "شرق"}
}

func hotspotSignal(score float64) *models.Hotspot {
	return &models.Hotspot{
		ID:            uuid.New(),
		ZoneID:        10,
		IncidentCount: int(score),
		Score:         score,
		DetectedAt:    engineNow,
	}
}

func forecastSignal(predicted float64) *models.ForecastPoint {
	return &models.ForecastPoint{
		ID:             uuid.New(),
		ZoneID:         10,
		HorizonStart:   engineNow,
		HorizonEnd:     engineNow.Add(24 * time.Hour),
		PredictedCount: predicted,
		CreatedAt:      engineNow,
	}
}

func TestEvaluate_BelowThreshold(t *testing.T) {
	engine, stateMock, alertMock, _, _ := newTestEngine(t)
	ctx := context.Background()

	stateMock.EXPECT().TryTrigger(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	alertMock.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Times(0)

	alert, err := engine.Evaluate(ctx, testEngineZone(), Signals{Hotspot: hotspotSignal(2)})

	require.NoError(t, err)
	assert.Nil(t, alert)
}

func TestEvaluate_FiresAndDispatches(t *testing.T) {
	engine, stateMock, alertMock, webhookMock, opsfeedMock := newTestEngine(t)
	ctx := context.Background()
	hs := hotspotSignal(6) // crosses medium, not high

	stateMock.EXPECT().
		TryTrigger(ctx, int64(10), models.TierMedium, gomock.Any(), engineNow, engineNow.Add(6*time.Hour)).
		Return(true, nil, nil).
		Times(1)

	alertMock.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		Do(func(_ context.Context, alert *models.Alert) {
			assert.Equal(t, models.TierMedium, alert.Tier)
			require.NotNil(t, alert.HotspotID)
			assert.Equal(t, hs.ID, *alert.HotspotID)
			assert.Nil(t, alert.ForecastID)
			assert.Nil(t, alert.SuppressedDuplicateOf)
		}).Return(nil).Times(1)

	webhookMock.EXPECT().
		Send(ctx, "zone-analyst", gomock.Any()).
		Do(func(_ context.Context, _ string, msg notify.Message) {
			assert.Equal(t, "Sharq", msg.ZoneNameEn)
			assert.Equal(t, models.TierMedium, msg.Tier)
			assert.Contains(t, msg.Body, "Sharq")
		}).Return(nil).Times(1)
	opsfeedMock.EXPECT().Send(ctx, "zone-analyst", gomock.Any()).Return(nil).Times(1)

	alertMock.EXPECT().RecordDispatch(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)

	alert, err := engine.Evaluate(ctx, testEngineZone(), Signals{Hotspot: hs})

	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.False(t, alert.Suppressed)
	require.Len(t, alert.Dispatches, 2)
	assert.True(t, alert.Dispatches[0].Success)
	assert.True(t, alert.Dispatches[1].Success)
}

func TestEvaluate_SuppressedDuringCooldown(t *testing.T) {
	engine, stateMock, alertMock, webhookMock, opsfeedMock := newTestEngine(t)
	ctx := context.Background()
	liveAlertID := uuid.New()

	stateMock.EXPECT().
		TryTrigger(ctx, int64(10), models.TierMedium, gomock.Any(), engineNow, engineNow.Add(6*time.Hour)).
		Return(false, &liveAlertID, nil).
		Times(1)

	// The suppressed alert is still recorded for the audit trail, but nothing
	// is dispatched.
	alertMock.EXPECT().CreateAlert(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	opsfeedMock.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	alertMock.EXPECT().RecordDispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	alert, err := engine.Evaluate(ctx, testEngineZone(), Signals{Hotspot: hotspotSignal(6)})

	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.True(t, alert.Suppressed)
	require.NotNil(t, alert.SuppressedDuplicateOf)
	assert.Equal(t, liveAlertID, *alert.SuppressedDuplicateOf)
	assert.Empty(t, alert.Dispatches)
}

func TestEvaluate_SuppressedDuringMute(t *testing.T) {
	engine, stateMock, alertMock, webhookMock, opsfeedMock := newTestEngine(t)
	ctx := context.Background()

	// A manually muted pair is Cooling with no backing alert, so the live
	// alert id comes back nil.
	stateMock.EXPECT().
		TryTrigger(ctx, int64(10), models.TierMedium, gomock.Any(), engineNow, engineNow.Add(6*time.Hour)).
		Return(false, nil, nil).
		Times(1)

	alertMock.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		Do(func(_ context.Context, alert *models.Alert) {
			assert.True(t, alert.Suppressed)
			assert.Nil(t, alert.SuppressedDuplicateOf)
		}).Return(nil).Times(1)
	webhookMock.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	opsfeedMock.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	alertMock.EXPECT().RecordDispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	alert, err := engine.Evaluate(ctx, testEngineZone(), Signals{Hotspot: hotspotSignal(6)})

	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.True(t, alert.Suppressed)
	assert.Nil(t, alert.SuppressedDuplicateOf)
	assert.Empty(t, alert.Dispatches)
}

func TestEvaluate_AlertWriteFailureReleasesTrigger(t *testing.T) {
	engine, stateMock, alertMock, webhookMock, opsfeedMock := newTestEngine(t)
	ctx := context.Background()
	var claimedID uuid.UUID

	stateMock.EXPECT().
		TryTrigger(ctx, int64(10), models.TierMedium, gomock.Any(), engineNow, engineNow.Add(6*time.Hour)).
		DoAndReturn(func(_ context.Context, _ int64, _ models.Tier, alertID uuid.UUID, _, _ time.Time) (bool, *uuid.UUID, error) {
			claimedID = alertID
			return true, &alertID, nil
		}).Times(1)
	alertMock.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		Return(fmt.Errorf("connection refused")).
		Times(1)

	// The unwritten alert's claim on the state row is rolled back so a later
	// suppression never references a missing alert.
	stateMock.EXPECT().
		ReleaseTrigger(ctx, int64(10), models.TierMedium, gomock.Any()).
		Do(func(_ context.Context, _ int64, _ models.Tier, alertID uuid.UUID) {
			assert.Equal(t, claimedID, alertID)
		}).Return(nil).Times(1)

	webhookMock.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	opsfeedMock.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	alert, err := engine.Evaluate(ctx, testEngineZone(), Signals{Hotspot: hotspotSignal(6)})

	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorContains(t, err, "failed to record alert")
}

func TestEvaluate_ChannelFailureDoesNotBlockOthers(t *testing.T) {
	engine, stateMock, alertMock, webhookMock, opsfeedMock := newTestEngine(t)
	ctx := context.Background()

	stateMock.EXPECT().
		TryTrigger(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil, nil).
		Times(1)
	alertMock.EXPECT().CreateAlert(ctx, gomock.Any()).Return(nil).Times(1)

	webhookMock.EXPECT().
		Send(ctx, "zone-analyst", gomock.Any()).
		Return(fmt.Errorf("endpoint returned 502")).
		Times(1)
	opsfeedMock.EXPECT().Send(ctx, "zone-analyst", gomock.Any()).Return(nil).Times(1)

	alertMock.EXPECT().RecordDispatch(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)

	alert, err := engine.Evaluate(ctx, testEngineZone(), Signals{Hotspot: hotspotSignal(6)})

	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.False(t, alert.Suppressed)
	require.Len(t, alert.Dispatches, 2)
	assert.False(t, alert.Dispatches[0].Success)
	assert.Contains(t, alert.Dispatches[0].Error, "502")
	assert.True(t, alert.Dispatches[1].Success)
}

func TestEvaluate_HigherTierWins(t *testing.T) {
	engine, stateMock, alertMock, webhookMock, _ := newTestEngine(t)
	ctx := context.Background()
	hs := hotspotSignal(6)   // medium
	fc := forecastSignal(25) // critical

	stateMock.EXPECT().
		TryTrigger(ctx, int64(10), models.TierCritical, gomock.Any(), engineNow, engineNow.Add(6*time.Hour)).
		Return(true, nil, nil).
		Times(1)

	alertMock.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		Do(func(_ context.Context, alert *models.Alert) {
			assert.Equal(t, models.TierCritical, alert.Tier)
			// Both signals crossed a threshold, so both are referenced.
			require.NotNil(t, alert.HotspotID)
			assert.Equal(t, hs.ID, *alert.HotspotID)
			require.NotNil(t, alert.ForecastID)
			assert.Equal(t, fc.ID, *alert.ForecastID)
		}).Return(nil).Times(1)

	webhookMock.EXPECT().Send(ctx, "ops-room", gomock.Any()).Return(nil).Times(1)
	alertMock.EXPECT().RecordDispatch(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)

	alert, err := engine.Evaluate(ctx, testEngineZone(), Signals{Hotspot: hs, Forecast: fc})

	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, models.TierCritical, alert.Tier)
}

func TestEvaluate_QuietForecastNotReferenced(t *testing.T) {
	engine, stateMock, alertMock, webhookMock, opsfeedMock := newTestEngine(t)
	ctx := context.Background()
	hs := hotspotSignal(6)  // medium
	fc := forecastSignal(1) // below every threshold

	stateMock.EXPECT().
		TryTrigger(ctx, int64(10), models.TierMedium, gomock.Any(), engineNow, engineNow.Add(6*time.Hour)).
		Return(true, nil, nil).
		Times(1)
	alertMock.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		Do(func(_ context.Context, alert *models.Alert) {
			require.NotNil(t, alert.HotspotID)
			assert.Nil(t, alert.ForecastID)
		}).Return(nil).Times(1)
	webhookMock.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	opsfeedMock.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	alertMock.EXPECT().RecordDispatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := engine.Evaluate(ctx, testEngineZone(), Signals{Hotspot: hs, Forecast: fc})
	require.NoError(t, err)
}

func TestEvaluate_UnknownChannelRecorded(t *testing.T) {
	engine, stateMock, alertMock, _, _ := newTestEngine(t)
	engine.cfg.ChannelsByTier[models.TierMedium] = []config.ChannelRoute{
		{Channel: "pager", Recipient: "duty-officer"},
	}
	ctx := context.Background()

	stateMock.EXPECT().
		TryTrigger(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil, nil).
		Times(1)
	alertMock.EXPECT().CreateAlert(ctx, gomock.Any()).Return(nil).Times(1)
	alertMock.EXPECT().RecordDispatch(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)

	alert, err := engine.Evaluate(ctx, testEngineZone(), Signals{Hotspot: hotspotSignal(6)})

	require.NoError(t, err)
	require.Len(t, alert.Dispatches, 1)
	assert.False(t, alert.Dispatches[0].Success)
	assert.Contains(t, alert.Dispatches[0].Error, "unknown channel")
}

func TestEvaluate_TryTriggerError(t *testing.T) {
	engine, stateMock, alertMock, _, _ := newTestEngine(t)
	ctx := context.Background()

	stateMock.EXPECT().
		TryTrigger(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil, fmt.Errorf("connection refused")).
		Times(1)
	alertMock.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Times(0)

	alert, err := engine.Evaluate(ctx, testEngineZone(), Signals{Hotspot: hotspotSignal(6)})

	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorContains(t, err, "failed to acquire trigger")
}

func TestMute(t *testing.T) {
	engine, stateMock, _, _, _ := newTestEngine(t)
	ctx := context.Background()
	until := engineNow.Add(6 * time.Hour)

	stateMock.EXPECT().
		ForceCooldown(ctx, int64(10), models.TierHigh, uuid.Nil, until).
		Return(nil).
		Times(1)

	require.NoError(t, engine.Mute(ctx, 10, models.TierHigh, until))
}

func TestMute_StoreError(t *testing.T) {
	engine, stateMock, _, _, _ := newTestEngine(t)
	ctx := context.Background()
	until := engineNow.Add(6 * time.Hour)

	stateMock.EXPECT().
		ForceCooldown(ctx, int64(10), models.TierHigh, uuid.Nil, until).
		Return(fmt.Errorf("connection refused")).
		Times(1)

	err := engine.Mute(ctx, 10, models.TierHigh, until)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to mute")
}
