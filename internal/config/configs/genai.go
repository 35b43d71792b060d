package configs

import "time"

// GenAI configures the image editor backed by the Gemini API. An empty
// APIKey disables image editing.
type GenAI struct {
	APIKey  string        `env:"API_KEY"`
	Model   string        `env:"MODEL" envDefault:"gemini-2.5-flash-image"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
}

// Enabled reports whether an API key was provided.
func (c GenAI) Enabled() bool { return c.APIKey != "" }
