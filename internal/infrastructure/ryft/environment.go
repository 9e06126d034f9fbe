package ryft

import "ryft_bridge/internal/domain/entities"

const (
	SandboxBaseURL = "https://sandbox-api.ryftpay.com/v1"
	LiveBaseURL    = "https://api.ryftpay.com/v1"
)

// BaseURLFor returns the API root for env. A non-empty override wins.
func BaseURLFor(env entities.Environment, override string) string {
	if override != "" {
		return override
	}
	if env == entities.EnvironmentSandbox {
		return SandboxBaseURL
	}
	return LiveBaseURL
}
