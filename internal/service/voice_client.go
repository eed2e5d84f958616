package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"aviengine/internal/catalog"
	"aviengine/internal/config"
	"aviengine/internal/engine"
	"aviengine/internal/model"
)

// VoiceClient talks to the external voice feature-extraction backend. When
// the backend is not configured, or a request fails, it falls back to a
// simulated signal so interviews keep moving in development environments.
type VoiceClient struct {
	cfg     *config.VoiceConfig
	client  *http.Client
	catalog *catalog.Catalog
	noise   engine.Noise
	log     *logrus.Logger
}

// NewVoiceClient creates a voice backend client
func NewVoiceClient(cfg *config.VoiceConfig, cat *catalog.Catalog, noise engine.Noise, log *logrus.Logger) *VoiceClient {
	return &VoiceClient{
		cfg:     cfg,
		client:  &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond},
		catalog: cat,
		noise:   noise,
		log:     log,
	}
}

type extractRequest struct {
	QuestionID  string  `json:"questionId"`
	AudioBase64 string  `json:"audioBase64"`
	DurationSec float64 `json:"durationSec"`
}

// ExtractSignal obtains transcript and acoustic features for one recorded
// answer
func (c *VoiceClient) ExtractSignal(ctx context.Context, questionID, audioBase64 string, durationSec float64) (*model.ResponseSignal, error) {
	if !c.cfg.IsEnabled() {
		return c.mockSignal(questionID, durationSec)
	}

	signal, err := c.callBackend(ctx, questionID, audioBase64, durationSec)
	if err != nil {
		c.log.WithError(err).WithField("questionId", questionID).
			Warn("voice backend unavailable, using simulated signal")
		return c.mockSignal(questionID, durationSec)
	}
	return signal, nil
}

func (c *VoiceClient) callBackend(ctx context.Context, questionID, audioBase64 string, durationSec float64) (*model.ResponseSignal, error) {
	body, err := json.Marshal(extractRequest{
		QuestionID:  questionID,
		AudioBase64: audioBase64,
		DurationSec: durationSec,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AnalyzeEndpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("voice backend returned status %d", resp.StatusCode)
	}

	var signal model.ResponseSignal
	if err := json.NewDecoder(resp.Body).Decode(&signal); err != nil {
		return nil, err
	}
	return &signal, nil
}

// mockSignal synthesizes a plausible signal from the question's expected
// timing and stress configuration
func (c *VoiceClient) mockSignal(questionID string, durationSec float64) (*model.ResponseSignal, error) {
	question, ok := c.catalog.Get(questionID)
	if !ok {
		return nil, fmt.Errorf("unknown question %s", questionID)
	}

	responseTime := durationSec
	if responseTime <= 0 {
		responseTime = question.Analytics.ExpectedResponseTime * (0.8 + 0.8*c.noise.Float64())
	}

	// Pitch dispersion widens with the question's stress level
	jitter := 5 + float64(question.StressLevel)*8
	pitch := make([]float64, 6)
	for i := range pitch {
		pitch[i] = 120 + jitter*(c.noise.Float64()-0.5)*2
	}
	energy := make([]float64, 6)
	for i := range energy {
		energy[i] = 0.6 + 0.1*(c.noise.Float64()-0.5)*2
	}

	disfluencies := 0
	if question.IsHighStress() && c.noise.Float64() > 0.5 {
		disfluencies = 1 + int(c.noise.Float64()*3)
	}

	return &model.ResponseSignal{
		ResponseTime: responseTime,
		Features: model.AcousticFeatures{
			PitchSeries:     pitch,
			EnergySeries:    energy,
			DisfluencyCount: disfluencies,
		},
	}, nil
}
