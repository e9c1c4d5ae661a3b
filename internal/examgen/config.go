package examgen

// Config controls the generation pipeline.
type Config struct {
	// MaxRetries is how many regeneration rounds follow a rejected
	// candidate. Total rounds = MaxRetries + 1.
	MaxRetries int

	// MaxTokens is the token budget for one full question set.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended pipeline settings.
func DefaultConfig() Config {
	return Config{
		MaxRetries:  2,
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
