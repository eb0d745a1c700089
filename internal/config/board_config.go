package config

import "time"

const (
	// Report input limits
	MaxRoomLength    = 20
	MaxContentLength = 1000

	// Account input limits
	MinUsernameLength = 3
	MinPasswordLength = 6

	// UI timings
	EnteringDuration = 320 * time.Millisecond
	SubmitCooldown   = 3 * time.Second

	// Defaults for Load
	DefaultServerURL = "http://localhost:5000"
	DefaultLanguage  = "zh-TW"
	DefaultTimeout   = 10 * time.Second
)
