// Package errors provides coded, formatted errors for route configuration
// problems surfaced by the CLI. Each code maps to a registered template with
// a message, detail, and fix hint, so `wayfind check` output stays uniform.
package errors
