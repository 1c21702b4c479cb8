package webhook

import (
	"fmt"
	"os"
	"strings"
)

// SecretStore resolves the shared HMAC secret for a registered endpoint.
// Secrets are resolved once at startup; they are injected configuration,
// not compile-time constants.
type SecretStore interface {
	Secret(endpoint string) (string, error)
}

// EnvSecretStore reads one secret per endpoint from the environment using a
// configurable prefix, e.g. WEBHOOK_SECRET_ERP for endpoint "erp".
type EnvSecretStore struct {
	prefix string
}

func NewEnvSecretStore(prefix string) *EnvSecretStore {
	if prefix == "" {
		prefix = "WEBHOOK_SECRET_"
	}
	return &EnvSecretStore{prefix: prefix}
}

func (s *EnvSecretStore) Secret(endpoint string) (string, error) {
	key := s.prefix + strings.ToUpper(endpoint)
	secret, ok := os.LookupEnv(key)
	if !ok || secret == "" {
		return "", fmt.Errorf("no webhook secret configured for endpoint %q (%s)", endpoint, key)
	}
	return secret, nil
}

// StaticSecretStore holds an in-memory endpoint→secret map. Used for tests
// and for registries hydrated from another source at startup.
type StaticSecretStore map[string]string

func (s StaticSecretStore) Secret(endpoint string) (string, error) {
	secret, ok := s[endpoint]
	if !ok {
		return "", fmt.Errorf("no webhook secret configured for endpoint %q", endpoint)
	}
	return secret, nil
}
