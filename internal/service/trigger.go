package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/amaumene/trigger/internal/domain"
)

type TriggerService struct {
	loader domain.ConfigLoader
	runner domain.CommandRunner
}

func NewTriggerService(loader domain.ConfigLoader, runner domain.CommandRunner) *TriggerService {
	return &TriggerService{
		loader: loader,
		runner: runner,
	}
}

// Trigger runs the configured command when path equals the secret path.
// The returned error is non-nil only for OutcomeFailed.
func (s *TriggerService) Trigger(ctx context.Context, path string) (domain.Outcome, error) {
	cfg, err := s.loader.Load()
	if err != nil {
		return domain.OutcomeFailed, fmt.Errorf("loading trigger config: %w", err)
	}

	if !matchesSecret(path, cfg.SecretPath) {
		return domain.OutcomeNotFound, nil
	}

	if err := s.runner.Run(ctx, cfg.Command); err != nil {
		return domain.OutcomeFailed, fmt.Errorf("running %s: %w", cfg.Command, err)
	}
	return domain.OutcomeTriggered, nil
}

func matchesSecret(path, secret string) bool {
	return subtle.ConstantTimeCompare([]byte(path), []byte(secret)) == 1
}
