// Package domain defines the core types and interfaces for trigger.
//
// This package contains the per-request trigger configuration, the outcome
// of a trigger attempt and the CommandRunner interface that abstracts
// process execution.
package domain
