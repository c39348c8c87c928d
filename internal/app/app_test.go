package app

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/amaumene/trigger/internal/config"
	log "github.com/sirupsen/logrus"
)

func startTestApp(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listening: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := New(&config.Config{ListenAddr: ln.Addr().String(), LogLevel: log.InfoLevel})

	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, ln) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Serve() error = %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("Serve() did not return after cancel")
		}
	})

	return "http://" + ln.Addr().String()
}

func lookPath(t *testing.T, name string) string {
	t.Helper()
	path, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
	return path
}

func get(t *testing.T, url string) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestApp_Scenario(t *testing.T) {
	truePath := lookPath(t, "true")
	falsePath := lookPath(t, "false")
	baseURL := startTestApp(t)

	t.Setenv(config.EnvSecretPath, "deploy123")
	t.Setenv(config.EnvCommand, truePath)

	if got := get(t, baseURL+"/deploy123"); got != http.StatusOK {
		t.Errorf("authorized request status = %d, want %d", got, http.StatusOK)
	}
	if got := get(t, baseURL+"/wrong"); got != http.StatusNotFound {
		t.Errorf("wrong path status = %d, want %d", got, http.StatusNotFound)
	}

	// The command's exit status does not affect the response.
	t.Setenv(config.EnvCommand, falsePath)
	if got := get(t, baseURL+"/deploy123"); got != http.StatusOK {
		t.Errorf("failing command status = %d, want %d", got, http.StatusOK)
	}

	os.Unsetenv(config.EnvSecretPath)
	if got := get(t, baseURL+"/deploy123"); got != http.StatusInternalServerError {
		t.Errorf("unset secret status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestApp_CommandRunsOncePerRequest(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	dir := t.TempDir()
	marker := filepath.Join(dir, "marker")
	script := filepath.Join(dir, "hook.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho run >> '"+marker+"'\n"), 0o755); err != nil {
		t.Fatalf("writing script: %v", err)
	}

	baseURL := startTestApp(t)
	t.Setenv(config.EnvSecretPath, "deploy123")
	t.Setenv(config.EnvCommand, script)

	if got := get(t, baseURL+"/deploy123"); got != http.StatusOK {
		t.Fatalf("status = %d, want %d", got, http.StatusOK)
	}
	if got := get(t, baseURL+"/nope"); got != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", got, http.StatusNotFound)
	}

	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("reading marker: %v", err)
	}
	if got := strings.Count(string(data), "run\n"); got != 1 {
		t.Errorf("command ran %d times, want 1", got)
	}
}

func TestApp_MissingCommandBinary(t *testing.T) {
	baseURL := startTestApp(t)
	t.Setenv(config.EnvSecretPath, "deploy123")
	t.Setenv(config.EnvCommand, filepath.Join(t.TempDir(), "missing"))

	if got := get(t, baseURL+"/deploy123"); got != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", got, http.StatusInternalServerError)
	}
}

func TestApp_RunAddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listening: %v", err)
	}
	defer ln.Close()

	app := New(&config.Config{ListenAddr: ln.Addr().String(), LogLevel: log.InfoLevel})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.Run(ctx); err == nil {
		t.Error("Run() on a bound address returned nil error")
	}
}
