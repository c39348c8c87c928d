package domain

import "errors"

var (
	ErrSecretPathMissing = errors.New("secret path not configured")
	ErrCommandMissing    = errors.New("command not configured")
	ErrCommandFailed     = errors.New("command could not be run")
)

// IsConfigError reports whether err comes from missing trigger configuration.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrSecretPathMissing) || errors.Is(err, ErrCommandMissing)
}
