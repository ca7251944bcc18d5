// Package helpers provides common assertions and adapters for unit tests.
package helpers
