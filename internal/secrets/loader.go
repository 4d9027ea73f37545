// Package secrets resolves secret values such as API keys from files or
// inline configuration.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Load returns the secret named name, preferring the file over the inline
// value when both are set. The result is always trimmed. An error is
// returned when neither source yields a usable secret.
func Load(name, file, value string) (string, error) {
	if strings.TrimSpace(name) == "" {
		name = "secret"
	}

	file = strings.TrimSpace(file)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		value = string(data)
	}

	secret := strings.TrimSpace(value)
	if secret == "" {
		if file != "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return "", fmt.Errorf("%s is not configured", name)
	}

	return secret, nil
}
