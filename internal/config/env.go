package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Env holds the runtime settings of the client binaries.
type Env struct {
	// ServerURL is the base URL of the report board backend, without a trailing slash.
	ServerURL string
	// Language selects the message catalog ("zh-TW", "en").
	Language string
	// Timeout bounds every HTTP request.
	Timeout time.Duration
}

// Load reads an optional .env file and then the REPORTBOARD_* variables.
// Unset variables keep their defaults.
func Load() (Env, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: no .env file, using process environment")
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds an Env from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (Env, error) {
	env := Env{
		ServerURL: DefaultServerURL,
		Language:  DefaultLanguage,
		Timeout:   DefaultTimeout,
	}

	if v, ok := lookup("REPORTBOARD_SERVER"); ok && strings.TrimSpace(v) != "" {
		env.ServerURL = strings.TrimRight(strings.TrimSpace(v), "/")
	}
	if v, ok := lookup("REPORTBOARD_LANG"); ok && strings.TrimSpace(v) != "" {
		env.Language = strings.TrimSpace(v)
	}
	if v, ok := lookup("REPORTBOARD_TIMEOUT"); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return env, fmt.Errorf("invalid REPORTBOARD_TIMEOUT %q: %w", v, err)
		}
		if d <= 0 {
			return env, fmt.Errorf("REPORTBOARD_TIMEOUT must be positive, got %s", d)
		}
		env.Timeout = d
	}

	return env, nil
}

// WithServer returns a copy of env pointing at server, if server is non-empty.
func (e Env) WithServer(server string) Env {
	if s := strings.TrimSpace(server); s != "" {
		e.ServerURL = strings.TrimRight(s, "/")
	}
	return e
}
