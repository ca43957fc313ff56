package config

import "time"

// Quickplay game rules configuration
type GameConfig struct {
	InitialLives       int           // Lives a new session starts with
	InitialTimeLimit   int           // Starting time budget in seconds
	MinTimeLimit       int           // Floor for the time budget
	SpeedUpEvery       int           // Every Nth correct answer tightens the budget
	SpeedUpStep        int           // Seconds removed per tightening
	AnonymousStateTTL  time.Duration // Lifetime of an untouched anonymous session
}

var DefaultGameConfig = GameConfig{
	InitialLives:      3,
	InitialTimeLimit:  300,
	MinTimeLimit:      60,
	SpeedUpEvery:      3,
	SpeedUpStep:       15,
	AnonymousStateTTL: time.Hour,
}

// Rate limit configuration for the AI question generator
type GeneratorRateLimitConfig struct {
	MaxRequests int           // Calls allowed per window
	Window      time.Duration // Sliding window length
	MaxAttempts int           // Generate-and-validate attempts before giving up
}

var DefaultGeneratorRateLimitConfig = GeneratorRateLimitConfig{
	MaxRequests: 50,
	Window:      time.Minute,
	MaxAttempts: 3,
}
