package config

import (
	"fmt"
	"os"

	"github.com/amaumene/trigger/internal/domain"
)

// Lookup returns the value of a configuration key and whether it was set.
type Lookup func(key string) (string, bool)

// MapLookup serves values from a fixed map.
func MapLookup(values map[string]string) Lookup {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

// TriggerLoader reads the trigger configuration on demand. It holds no
// cached values.
type TriggerLoader struct {
	lookup Lookup
}

// NewTriggerLoader returns a loader backed by lookup, or by the process
// environment when lookup is nil.
func NewTriggerLoader(lookup Lookup) *TriggerLoader {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &TriggerLoader{lookup: lookup}
}

func (l *TriggerLoader) Load() (domain.TriggerConfig, error) {
	secretPath, err := l.required(EnvSecretPath, domain.ErrSecretPathMissing)
	if err != nil {
		return domain.TriggerConfig{}, err
	}

	command, err := l.required(EnvCommand, domain.ErrCommandMissing)
	if err != nil {
		return domain.TriggerConfig{}, err
	}

	return domain.TriggerConfig{
		SecretPath: secretPath,
		Command:    command,
	}, nil
}

func (l *TriggerLoader) required(key string, missing error) (string, error) {
	value, ok := l.lookup(key)
	if !ok || value == "" {
		return "", fmt.Errorf("%s: %w", key, missing)
	}
	return value, nil
}
