package domain

import (
	"context"
	"net/http"
)

// TriggerConfig is read fresh for every request.
type TriggerConfig struct {
	SecretPath string
	Command    string
}

type Outcome int

const (
	OutcomeTriggered Outcome = iota
	OutcomeNotFound
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeTriggered:
		return "triggered"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StatusCode maps an outcome to the HTTP status returned to the caller.
func (o Outcome) StatusCode() int {
	switch o {
	case OutcomeTriggered:
		return http.StatusOK
	case OutcomeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// CommandRunner starts a command and blocks until it exits. The command's
// own exit status is not an error.
type CommandRunner interface {
	Run(ctx context.Context, command string) error
}

// ConfigLoader returns the trigger configuration currently in effect.
type ConfigLoader interface {
	Load() (TriggerConfig, error)
}
