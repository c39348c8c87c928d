// Package service implements the trigger logic.
//
// TriggerService decides, for one request path, whether the configured
// command runs. ExecRunner starts that command with the parent's standard
// streams and waits for it to exit.
package service
