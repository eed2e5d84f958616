package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aviengine/internal/catalog"
	"aviengine/internal/config"
	"aviengine/internal/engine"
	"aviengine/internal/model"
)

func newTestVoiceClient(t *testing.T, cfg *config.VoiceConfig) *VoiceClient {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	log := logrus.New()
	return NewVoiceClient(cfg, cat, engine.Fixed(0.5), log)
}

func TestExtractSignalMockFallback(t *testing.T) {
	client := newTestVoiceClient(t, &config.VoiceConfig{TimeoutMS: 1000})

	signal, err := client.ExtractSignal(context.Background(), "edad", "", 0)
	require.NoError(t, err)

	assert.Positive(t, signal.ResponseTime)
	assert.Len(t, signal.Features.PitchSeries, 6)
	assert.Len(t, signal.Features.EnergySeries, 6)
}

func TestExtractSignalMockUnknownQuestion(t *testing.T) {
	client := newTestVoiceClient(t, &config.VoiceConfig{TimeoutMS: 1000})

	_, err := client.ExtractSignal(context.Background(), "nope", "", 0)
	assert.Error(t, err)
}

func TestExtractSignalMockRespectsDuration(t *testing.T) {
	client := newTestVoiceClient(t, &config.VoiceConfig{TimeoutMS: 1000})

	signal, err := client.ExtractSignal(context.Background(), "edad", "", 7.5)
	require.NoError(t, err)
	assert.Equal(t, 7.5, signal.ResponseTime)
}

func TestExtractSignalCallsBackend(t *testing.T) {
	want := model.ResponseSignal{
		Transcript:   "tengo cuarenta años",
		ResponseTime: 4.2,
		Features: model.AcousticFeatures{
			PitchSeries:  []float64{118, 122, 120},
			EnergySeries: []float64{0.6, 0.61, 0.59},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/analyze", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req extractRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "edad", req.QuestionID)

		json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	client := newTestVoiceClient(t, &config.VoiceConfig{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		TimeoutMS: 1000,
	})

	signal, err := client.ExtractSignal(context.Background(), "edad", "YXVkaW8=", 4.2)
	require.NoError(t, err)
	assert.Equal(t, &want, signal)
}

func TestExtractSignalFallsBackOnBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestVoiceClient(t, &config.VoiceConfig{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		TimeoutMS: 1000,
	})

	signal, err := client.ExtractSignal(context.Background(), "edad", "YXVkaW8=", 0)
	require.NoError(t, err)
	assert.Len(t, signal.Features.PitchSeries, 6)
}
