package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/amaumene/trigger/internal/domain"
	log "github.com/sirupsen/logrus"
)

type ExecRunner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecRunner returns a runner whose children inherit this process's
// standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run starts command with no arguments and waits for it to exit. A non-zero
// exit status is not an error. The context does not bound the child's
// lifetime.
func (r *ExecRunner) Run(_ context.Context, command string) error {
	cmd := exec.Command(command)
	// A bare name found through a relative PATH entry still runs.
	if errors.Is(cmd.Err, exec.ErrDot) {
		cmd.Err = nil
	}
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		log.WithFields(log.Fields{
			"component": "runner",
			"command":   command,
			"exit_code": exitErr.ExitCode(),
		}).Debug("command exited with non-zero status")
		return nil
	}

	return fmt.Errorf("%w: %w", domain.ErrCommandFailed, err)
}
