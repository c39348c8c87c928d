package main

import (
	"path/filepath"
	"testing"

	"github.com/amaumene/trigger/internal/config"
)

func TestRootCmd_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		logLevel string
	}{
		{
			name: "positional arguments rejected",
			args: []string{"extra"},
		},
		{
			name: "invalid log level flag",
			args: []string{"--log-level", "verbose"},
		},
		{
			name:     "invalid LOG_LEVEL",
			logLevel: "verbose",
		},
		{
			name: "unreadable env file",
			args: []string{"--env-file", "."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvLogLevel, tt.logLevel)
			args := tt.args
			if len(args) == 0 || args[0] != "--env-file" {
				args = append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...)
			}

			cmd := newRootCmd()
			cmd.SetArgs(args)
			if err := cmd.Execute(); err == nil {
				t.Error("Execute() returned nil error")
			}
		})
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()

	envFile := cmd.Flags().Lookup("env-file")
	if envFile == nil || envFile.DefValue != config.DefaultEnvFile {
		t.Errorf("--env-file default = %v, want %q", envFile, config.DefaultEnvFile)
	}
	if cmd.Flags().Lookup("log-level") == nil {
		t.Error("--log-level flag not registered")
	}
}
