// Package config handles configuration loading.
//
// Process settings (listen address, log level) are read once at startup.
// Trigger settings (secret path, command) are read on every request through
// a TriggerLoader so that environment changes apply without a restart.
package config
