package config

import (
	"github.com/pitabwire/frame/config"
)

// SpeechlensConfig holds configuration for the speechlens service.
type SpeechlensConfig struct {
	config.ConfigurationDefault

	// Analysis
	SampleRate    int    `envDefault:"16000"    env:"SAMPLE_RATE"`
	VocabDir      string `envDefault:"./vocab"  env:"VOCAB_DIR"`
	MaxAudioBytes int64  `envDefault:"20971520" env:"MAX_AUDIO_BYTES"`

	// Stats storage: memory, postgres or redis.
	StatsBackend string `envDefault:"memory"         env:"STATS_BACKEND"`
	RedisAddr    string `envDefault:"localhost:6379" env:"REDIS_ADDR"`

	// Recommendations
	RecommendBaseURL    string `envDefault:"https://openrouter.ai/api/v1" env:"RECOMMEND_BASE_URL"`
	RecommendAPIKey     string `envDefault:""                              env:"RECOMMEND_API_KEY"`
	RecommendModel      string `envDefault:"tngtech/tng-r1t-chimera:free" env:"RECOMMEND_MODEL"`
	RecommendTimeoutSec int    `envDefault:"60"                            env:"RECOMMEND_TIMEOUT_SEC"`
}

// RecommendEnabled reports whether the recommendation client should be
// constructed at all.
func (c *SpeechlensConfig) RecommendEnabled() bool {
	return c.RecommendAPIKey != ""
}
