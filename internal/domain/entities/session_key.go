package entities

import (
	"errors"
	"strings"
)

var ErrMissingPublicAPIKey = errors.New("public api key is required")

// Environment is derived from the public API key prefix.
type Environment string

const (
	EnvironmentSandbox Environment = "sandbox"
	EnvironmentLive    Environment = "live"
)

const sandboxKeyPrefix = "pk_sandbox_"

func EnvironmentFromPublicKey(key string) Environment {
	if strings.HasPrefix(key, sandboxKeyPrefix) {
		return EnvironmentSandbox
	}
	return EnvironmentLive
}

// SessionKeyContext is created by initialize and replaced by any later initialize.
type SessionKeyContext struct {
	PublicAPIKey string
	Environment  Environment
}

func NewSessionKeyContext(publicAPIKey string) (SessionKeyContext, error) {
	publicAPIKey = strings.TrimSpace(publicAPIKey)
	if publicAPIKey == "" {
		return SessionKeyContext{}, ErrMissingPublicAPIKey
	}
	return SessionKeyContext{
		PublicAPIKey: publicAPIKey,
		Environment:  EnvironmentFromPublicKey(publicAPIKey),
	}, nil
}
