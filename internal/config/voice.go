package config

import "os"

// VoiceConfig holds the configuration for the external voice feature
// extraction backend
type VoiceConfig struct {
	APIKey    string `json:"-"` // Never serialize
	BaseURL   string `json:"baseUrl"`
	TimeoutMS int    `json:"timeoutMs"`
}

// DefaultVoiceConfig returns the default voice backend configuration
func DefaultVoiceConfig() *VoiceConfig {
	return &VoiceConfig{
		APIKey:    os.Getenv("VOICE_API_KEY"),
		BaseURL:   getEnvOrDefault("VOICE_API_URL", "http://voice-backend:9000"),
		TimeoutMS: 15000, // audio uploads are slow on bad links
	}
}

// IsEnabled returns true if the voice backend is configured
func (c *VoiceConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// AnalyzeEndpoint returns the feature extraction endpoint
func (c *VoiceConfig) AnalyzeEndpoint() string {
	return c.BaseURL + "/v1/analyze"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
