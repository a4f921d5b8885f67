package config

import (
	"os"
	"strings"
	"time"

	dErrors "attest/pkg/domain-errors"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr     string
	LogLevel string
	Judge    Judge
}

// Judge captures the Azure OpenAI connection settings. All four keys are
// required; Validate reports every missing one at once so operators fix the
// deployment in a single pass.
type Judge struct {
	Endpoint   string
	APIKey     string
	Deployment string
	APIVersion string
	Timeout    time.Duration
}

// MaxUploadBytes bounds the multipart document upload.
const MaxUploadBytes = 32 << 20

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("ATTEST_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	timeout := 60 * time.Second
	if raw := os.Getenv("ATTEST_JUDGE_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			timeout = d
		}
	}

	return Server{
		Addr:     addr,
		LogLevel: os.Getenv("ATTEST_LOG_LEVEL"),
		Judge: Judge{
			Endpoint:   strings.TrimRight(os.Getenv("AZURE_OPENAI_ENDPOINT"), "/"),
			APIKey:     os.Getenv("AZURE_OPENAI_KEY"),
			Deployment: os.Getenv("AZURE_OPENAI_DEPLOYMENT"),
			APIVersion: os.Getenv("AZURE_OPENAI_API_VERSION"),
			Timeout:    timeout,
		},
	}
}

// Validate reports missing judge settings as a configuration error. The
// server still starts without them (health checks must stay reachable); the
// assessment endpoint surfaces the error as a 500 before any document work.
func (j Judge) Validate() error {
	var missing []string
	if j.Endpoint == "" {
		missing = append(missing, "AZURE_OPENAI_ENDPOINT")
	}
	if j.APIKey == "" {
		missing = append(missing, "AZURE_OPENAI_KEY")
	}
	if j.Deployment == "" {
		missing = append(missing, "AZURE_OPENAI_DEPLOYMENT")
	}
	if j.APIVersion == "" {
		missing = append(missing, "AZURE_OPENAI_API_VERSION")
	}
	if len(missing) > 0 {
		return dErrors.New(dErrors.CodeConfiguration, "missing required configuration: "+strings.Join(missing, ", "))
	}
	return nil
}
